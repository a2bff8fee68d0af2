package sand

import "fmt"

// Cell is the per-position simulation state.
type Cell struct {
	Kind Kind
	// Fuse arms Fire and Acid one tick before their effect fires.
	Fuse bool
	// Processed marks a cell as handled during the current tick.
	Processed bool
}

// Grid owns the flat cell array for the whole world. It is not safe for
// concurrent use; ticks, painting and rendering must be serialized by the
// driver.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a w*h grid with every cell Empty.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (int, int) { return g.w, g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Get returns the cell at (x, y). It panics when (x, y) is out of bounds.
func (g *Grid) Get(x, y int) Cell {
	return g.cells[g.mustIndex(x, y)]
}

// Set stores c at (x, y). It panics when (x, y) is out of bounds.
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[g.mustIndex(x, y)] = c
}

// Swap exchanges the kind and fuse of cells a and b and marks b, the
// destination, as processed. The processed flag of a is left alone.
func (g *Grid) Swap(a, b int) {
	ca, cb := &g.cells[a], &g.cells[b]
	ca.Kind, cb.Kind = cb.Kind, ca.Kind
	ca.Fuse, cb.Fuse = cb.Fuse, ca.Fuse
	cb.Processed = true
}

// Reset clears every cell to Empty.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// is reports whether (x, y) is in bounds and holds kind k. Out-of-bounds
// positions are never eligible.
func (g *Grid) is(x, y int, k Kind) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.ToIndex(x, y)].Kind == k
}

// convert changes the kind at (x, y) and clears its fuse.
func (g *Grid) convert(x, y int, k Kind) {
	c := &g.cells[g.mustIndex(x, y)]
	c.Kind = k
	c.Fuse = false
}

func (g *Grid) mustIndex(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("sand: coordinate (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	return g.ToIndex(x, y)
}
