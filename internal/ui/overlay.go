//go:build ebiten

package ui

import (
	"image/color"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type brushProvider interface {
	BrushRadius() int
}

// Overlay outlines the paint brush under the cursor. Tab toggles it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
}

// Draw renders the brush outline onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(brushProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= size.W*o.scale || my >= size.H*o.scale {
		return
	}
	r := provider.BrushRadius()
	cx, cy := mx/o.scale, my/o.scale
	x0 := float64((cx - r) * o.scale)
	y0 := float64((cy - r) * o.scale)
	side := float64((2*r + 1) * o.scale)

	c := color.RGBA{R: 255, G: 255, B: 255, A: 160}
	o.line(screen, x0, y0, side, 1, c)
	o.line(screen, x0, y0+side-1, side, 1, c)
	o.line(screen, x0, y0, 1, side, c)
	o.line(screen, x0+side-1, y0, 1, side, c)
}

func (o *Overlay) line(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
