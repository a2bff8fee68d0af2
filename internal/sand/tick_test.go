package sand

import (
	"math/rand/v2"
	"testing"
)

func TestProcessedFlagsClearedAfterTick(t *testing.T) {
	g := gridFrom(t,
		"s~m.",
		".#.L",
		"a..f",
	)
	for tick := 0; tick < 3; tick++ {
		g.RunTick()
		for i := 0; i < g.Len(); i++ {
			x, y := g.ToCoord(i)
			if g.Get(x, y).Processed {
				t.Fatalf("tick %d: (%d,%d) still processed", tick, x, y)
			}
		}
	}
}

// Fuse is unused by sand, water and gases but travels with swaps, so it
// can tag one physical particle across a tick.
func TestSingleMovePerTick(t *testing.T) {
	movers := []Kind{Sand, Water, Smoke, Steam}
	pool := []Kind{Empty, Empty, Empty, Sand, Water, Smoke, Steam, Wood, Iron}
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 300; trial++ {
		g := NewGrid(12, 10)
		w, h := g.Dimensions()
		var candidates []Point
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				k := pool[rng.IntN(len(pool))]
				g.Set(x, y, Cell{Kind: k})
				for _, m := range movers {
					if k == m {
						candidates = append(candidates, Point{x, y})
					}
				}
			}
		}
		if len(candidates) == 0 {
			continue
		}
		start := candidates[rng.IntN(len(candidates))]
		kind := g.CellAt(start.X, start.Y)
		arm(g, start.X, start.Y)

		g.RunTick()

		var tagged []Point
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if g.Get(x, y).Fuse {
					tagged = append(tagged, Point{x, y})
				}
			}
		}
		if len(tagged) != 1 {
			t.Fatalf("trial %d: expected one tagged particle, found %d", trial, len(tagged))
		}
		end := tagged[0]
		if g.CellAt(end.X, end.Y) != kind {
			t.Fatalf("trial %d: tagged %s became %s", trial, kind, g.CellAt(end.X, end.Y))
		}
		if abs(end.X-start.X) > 1 || abs(end.Y-start.Y) > 1 {
			t.Fatalf("trial %d: %s moved from %v to %v in one tick", trial, kind, start, end)
		}
	}
}

func TestBoundarySafety(t *testing.T) {
	g := NewGrid(6, 5)
	w, h := g.Dimensions()
	kinds := Kinds()
	i := 0
	for x := 0; x < w; x++ {
		for _, y := range []int{0, h - 1} {
			g.Paint(x, y, 0, kinds[i%len(kinds)])
			i++
		}
	}
	for y := 0; y < h; y++ {
		for _, x := range []int{0, w - 1} {
			g.Paint(x, y, 0, kinds[i%len(kinds)])
			i++
		}
	}
	for _, corner := range []Point{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		g.Paint(corner.X, corner.Y, 3, Water)
	}
	for tick := 0; tick < 50; tick++ {
		g.RunTick()
	}
}

func TestTickLeavesSettledGridUnchanged(t *testing.T) {
	g := gridFrom(t,
		"#.I.",
		"ss~~",
		"IIII",
	)
	g.RunTick()
	expectGrid(t, g, "#.I.", "ss~~", "IIII")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
