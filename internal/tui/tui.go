// Package tui draws a sandbox grid in a truecolor terminal, two grid rows
// per text line using half blocks.
package tui

import (
	"fmt"
	stdcolor "image/color"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"sandfall/internal/core"
	"sandfall/internal/sand"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// StatusLines is the number of text lines reserved below the grid.
	StatusLines = 2

	halfBlock   = "▀"
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
)

// TerminalSize returns the stdout terminal size, falling back to defaults
// when it cannot be determined.
func TerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Renderer turns display buffers into terminal frames.
type Renderer struct {
	palette []stdcolor.RGBA
	styles  map[[2]uint8]*color.RGBStyle
	first   bool
}

// New creates a renderer for the given palette.
func New(palette []stdcolor.RGBA) *Renderer {
	return &Renderer{
		palette: palette,
		styles:  map[[2]uint8]*color.RGBStyle{},
		first:   true,
	}
}

// Frame renders cells (row-major, size.W*size.H) clipped to cols x rows
// text cells, leaving room for the status lines.
func (r *Renderer) Frame(cells []uint8, size core.Size, cols, rows int) string {
	if len(cells) != size.W*size.H || size.W <= 0 || size.H <= 0 {
		return ""
	}
	visibleW := min(size.W, cols)
	textRows := min((size.H+1)/2, rows-StatusLines)
	if visibleW <= 0 || textRows <= 0 {
		return ""
	}

	var b strings.Builder
	if r.first {
		b.WriteString(clearScreen)
		r.first = false
	}
	b.WriteString(cursorHome)
	for row := 0; row < textRows; row++ {
		top := row * 2
		for x := 0; x < visibleW; x++ {
			upper := cells[top*size.W+x]
			lower := uint8(sand.Empty)
			if top+1 < size.H {
				lower = cells[(top+1)*size.W+x]
			}
			b.WriteString(r.style(upper, lower).Sprint(halfBlock))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) style(upper, lower uint8) *color.RGBStyle {
	key := [2]uint8{upper, lower}
	if s, ok := r.styles[key]; ok {
		return s
	}
	fg := r.rgb(upper, false)
	bg := r.rgb(lower, true)
	s := color.NewRGBStyle(fg, bg)
	r.styles[key] = s
	return s
}

func (r *Renderer) rgb(v uint8, isBg bool) color.RGBColor {
	if len(r.palette) == 0 {
		return color.RGB(0, 0, 0, isBg)
	}
	c := r.palette[min(int(v), len(r.palette)-1)]
	return color.RGB(c.R, c.G, c.B, isBg)
}

// Status summarizes the world tick and census, each material name drawn
// in its own color.
func Status(w *sand.World) string {
	census := w.Grid().Census()
	var b strings.Builder
	fmt.Fprintf(&b, "tick %-6d particles %-6d", w.Ticks(), census.Total())
	for _, k := range sand.Kinds()[1:] {
		n := census.Count(k)
		if n == 0 {
			continue
		}
		c := k.Color()
		b.WriteString(" ")
		b.WriteString(color.RGB(c.R, c.G, c.B).Sprint(k.String()))
		fmt.Fprintf(&b, " %d", n)
	}
	b.WriteString("\x1b[K\n")
	return b.String()
}
