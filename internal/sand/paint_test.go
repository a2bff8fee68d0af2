package sand

import "testing"

func TestPaintClipsAtCorner(t *testing.T) {
	g := NewGrid(4, 3)
	g.Paint(0, 0, 1, Iron)
	expectGrid(t, g,
		"II..",
		"II..",
		"....",
	)
}

func TestPaintCentreOutsideGrid(t *testing.T) {
	g := NewGrid(4, 3)
	g.Paint(5, 3, 2, Wood)
	expectGrid(t, g,
		"....",
		"...#",
		"...#",
	)
	g.Paint(-10, -10, 2, Sand)
	expectGrid(t, g,
		"....",
		"...#",
		"...#",
	)
}

func TestPaintRadiusZeroAndNegative(t *testing.T) {
	g := NewGrid(3, 3)
	g.Paint(1, 1, 0, Water)
	g.Paint(0, 0, -4, Sand)
	expectGrid(t, g,
		"s..",
		".~.",
		"...",
	)
}

func TestPaintResetsFuse(t *testing.T) {
	g := gridFrom(t, "ff", "..")
	arm(g, 0, 0)
	arm(g, 1, 0)
	g.Paint(0, 0, 0, Fire)
	if g.Get(0, 0).Fuse {
		t.Fatalf("painted cell kept its fuse")
	}
	if !g.Get(1, 0).Fuse {
		t.Fatalf("cell outside the brush lost its fuse")
	}
}

func TestPaintIgnoresInvalidKind(t *testing.T) {
	g := gridFrom(t, "s.", "..")
	g.Paint(0, 0, 3, Kind(200))
	expectGrid(t, g, "s.", "..")
}

func TestCellAt(t *testing.T) {
	g := gridFrom(t, "s~", "#L")
	cases := []struct {
		x, y int
		want Kind
	}{
		{0, 0, Sand},
		{1, 0, Water},
		{0, 1, Wood},
		{1, 1, Lava},
	}
	for _, tc := range cases {
		if got := g.CellAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("CellAt(%d,%d) = %s, want %s", tc.x, tc.y, got, tc.want)
		}
	}
}
