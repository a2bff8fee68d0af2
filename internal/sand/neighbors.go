package sand

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// neighborOffsets is the fixed E, W, S, N, SE, SW, NE, NW order. Reaction
// tie-breaks depend on it. y grows downwards, so S is +1.
var neighborOffsets = [8]Point{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
}

// Neighbors returns the in-bounds 8-connected neighbours of (x, y) in
// E, W, S, N, SE, SW, NE, NW order.
func (g *Grid) Neighbors(x, y int) []Point {
	out := make([]Point, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nx, ny := x+off.X, y+off.Y
		if g.InBounds(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}
	return out
}
