package sand

// RunTick advances the grid by one tick. Every processed flag is cleared,
// then cells are visited once in index order (bottom row first). A cell
// that became the destination of a move earlier in the pass is skipped,
// so no particle moves more than one cell per tick.
func (g *Grid) RunTick() {
	g.clearProcessed()
	for i := range g.cells {
		c := &g.cells[i]
		if c.Processed {
			continue
		}
		c.Processed = true
		x, y := g.ToCoord(i)
		g.update(x, y)
	}
	// Flags must not leak into the gap between ticks where painting and
	// rendering happen.
	g.clearProcessed()
}

func (g *Grid) clearProcessed() {
	for i := range g.cells {
		g.cells[i].Processed = false
	}
}
