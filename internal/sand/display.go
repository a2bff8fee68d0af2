package sand

import "image/color"

var sandPalette = buildPalette()

// Palette maps kind values in Cells to display colors.
func (w *World) Palette() []color.RGBA {
	return sandPalette
}

// Color returns the display color of k.
func (k Kind) Color() color.RGBA {
	if !k.Valid() {
		return sandPalette[Empty]
	}
	return sandPalette[k]
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, kindCount)
	palette[Empty] = color.RGBA{A: 255}
	palette[Sand] = color.RGBA{R: 255, G: 255, A: 255}
	palette[Water] = color.RGBA{B: 255, A: 255}
	palette[Wood] = color.RGBA{R: 165, G: 42, B: 42, A: 255}
	palette[Iron] = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	palette[Fire] = color.RGBA{R: 255, A: 255}
	palette[Acid] = color.RGBA{G: 255, A: 255}
	palette[Smoke] = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	palette[Steam] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	palette[Lava] = color.RGBA{R: 255, B: 255, A: 255}
	return palette
}

// rebuildDisplay writes the grid into the row-major display buffer.
func (w *World) rebuildDisplay() {
	g := w.grid
	for y := 0; y < g.h; y++ {
		row := y * g.w
		for x := 0; x < g.w; x++ {
			w.display[row+x] = uint8(g.cells[g.ToIndex(x, y)].Kind)
		}
	}
}
