package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{A: 255},
		{R: 255, G: 255, A: 255},
		{B: 255, A: 255},
	}
	cells := []uint8{0, 1, 2, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		0, 0, 0, 255,
		255, 255, 0, 255,
		0, 0, 255, 255,
		0, 0, 255, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("unexpected pixels %v", buf)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{1, 2}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %d", i, b)
		}
	}
}
