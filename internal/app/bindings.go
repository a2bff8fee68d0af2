package app

import (
	"strconv"

	"sandfall/internal/sand"
)

// Binding ties a keyboard letter to the material it selects.
type Binding struct {
	Key  string
	Kind sand.Kind
}

// Bindings lists the material selection keys.
var Bindings = []Binding{
	{Key: "Q", Kind: sand.Sand},
	{Key: "E", Kind: sand.Water},
	{Key: "R", Kind: sand.Wood},
	{Key: "T", Kind: sand.Iron},
	{Key: "F", Kind: sand.Fire},
	{Key: "A", Kind: sand.Lava},
	{Key: "W", Kind: sand.Acid},
	{Key: "D", Kind: sand.Steam},
	{Key: "G", Kind: sand.Smoke},
	{Key: "X", Kind: sand.Empty},
}

// ScreenToGrid converts a cursor position in screen pixels to grid
// coordinates. The result may lie outside the grid; painting clips it.
func ScreenToGrid(px, py, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func formatInt64(v int64) string { return strconv.FormatInt(v, 10) }
