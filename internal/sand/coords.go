package sand

// The flat layout runs from the bottom-right corner: index 0 is
// (W-1, H-1), indices grow leftwards along a row and then upwards row by
// row. Scanning indices in increasing order therefore visits lower rows
// before upper rows, which the tick scheduler relies on.

// ToIndex maps (x, y) to its flat index. Callers bounds-check first.
func (g *Grid) ToIndex(x, y int) int {
	return (g.h-1-y)*g.w + (g.w - 1 - x)
}

// ToCoord maps a flat index back to (x, y). Callers bounds-check first.
func (g *Grid) ToCoord(index int) (int, int) {
	col := index % g.w
	row := index / g.w
	return g.w - 1 - col, g.h - 1 - row
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}
