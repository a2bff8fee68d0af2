package sand

// Paint sets every cell in the square of the given radius around (x, y)
// to kind k, clipped to the grid. The centre itself may lie outside the
// grid. Painted cells lose any armed fuse. Paint bypasses the movement and
// reaction rules and must only be called between ticks.
func (g *Grid) Paint(x, y, radius int, k Kind) {
	if radius < 0 {
		radius = 0
	}
	if !k.Valid() {
		return
	}
	x0, x1 := max(x-radius, 0), min(x+radius, g.w-1)
	y0, y1 := max(y-radius, 0), min(y+radius, g.h-1)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			g.cells[g.ToIndex(px, py)] = Cell{Kind: k}
		}
	}
}

// CellAt returns the kind at (x, y). It panics when (x, y) is out of
// bounds.
func (g *Grid) CellAt(x, y int) Kind {
	return g.Get(x, y).Kind
}
