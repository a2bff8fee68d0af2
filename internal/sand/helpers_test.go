package sand

import (
	"strings"
	"testing"
)

var glyphs = map[byte]Kind{
	'.': Empty,
	's': Sand,
	'~': Water,
	'#': Wood,
	'I': Iron,
	'f': Fire,
	'a': Acid,
	'm': Smoke,
	't': Steam,
	'L': Lava,
}

// gridFrom builds a grid from rows of glyphs, top row first.
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			t.Fatalf("row %d has width %d, want %d", y, len(row), len(rows[0]))
		}
		for x := 0; x < len(row); x++ {
			k, ok := glyphs[row[x]]
			if !ok {
				t.Fatalf("unknown glyph %q", row[x])
			}
			g.Set(x, y, Cell{Kind: k})
		}
	}
	return g
}

func render(g *Grid) []string {
	inverse := map[Kind]byte{}
	for b, k := range glyphs {
		inverse[k] = b
	}
	w, h := g.Dimensions()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			b.WriteByte(inverse[g.CellAt(x, y)])
		}
		rows[y] = b.String()
	}
	return rows
}

func expectGrid(t *testing.T, g *Grid, want ...string) {
	t.Helper()
	got := render(g)
	for y := range want {
		if got[y] != want[y] {
			t.Fatalf("grid mismatch\n got:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
		}
	}
}

func arm(g *Grid, x, y int) {
	c := g.Get(x, y)
	c.Fuse = true
	g.Set(x, y, c)
}
