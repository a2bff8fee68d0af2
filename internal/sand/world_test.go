package sand

import (
	"slices"
	"testing"

	"sandfall/internal/core"
)

func TestWorldDisplayIsRowMajor(t *testing.T) {
	w := New(3, 2)
	w.Paint(1, 0, Wood)

	want := []uint8{uint8(Wood), uint8(Wood), uint8(Wood), uint8(Wood), uint8(Wood), uint8(Wood)}
	if w.BrushRadius() != 2 {
		t.Fatalf("expected default brush 2, got %d", w.BrushRadius())
	}
	if !slices.Equal(w.Cells(), want) {
		t.Fatalf("unexpected cells %v", w.Cells())
	}

	w.SetIntParameter("brush", 0)
	w.Clear()
	w.Paint(0, 0, Sand)
	w.Paint(2, 1, Iron)
	want = []uint8{uint8(Sand), 0, 0, 0, 0, uint8(Iron)}
	if !slices.Equal(w.Cells(), want) {
		t.Fatalf("unexpected cells %v", w.Cells())
	}
}

func TestWorldStepUpdatesDisplay(t *testing.T) {
	w := New(1, 3)
	w.SetIntParameter("brush", 0)
	w.Paint(0, 0, Sand)
	w.Step()
	w.Step()
	if !slices.Equal(w.Cells(), []uint8{0, 0, uint8(Sand)}) {
		t.Fatalf("unexpected cells after two ticks %v", w.Cells())
	}
	if w.Ticks() != 2 {
		t.Fatalf("expected 2 ticks, got %d", w.Ticks())
	}
}

func TestWorldResetRunsSeeder(t *testing.T) {
	w := New(4, 4)
	var seeds []int64
	w.SetSeeder(func(g *Grid, seed int64) {
		seeds = append(seeds, seed)
		g.Set(1, 1, Cell{Kind: Wood})
	})
	w.Reset(0)
	w.Paint(3, 3, Sand)
	w.Step()
	w.Reset(42)

	if !slices.Equal(seeds, []int64{1337, 42}) {
		t.Fatalf("unexpected seeds %v", seeds)
	}
	if w.Seed() != 42 || w.Ticks() != 0 {
		t.Fatalf("expected seed 42 and tick 0, got %d %d", w.Seed(), w.Ticks())
	}
	c := w.Grid().Census()
	if c.Total() != 1 || c.Count(Wood) != 1 {
		t.Fatalf("reset should leave only the seeded wood, census %v", c)
	}
	if w.Cells()[1*4+1] != uint8(Wood) {
		t.Fatalf("display not rebuilt after reset")
	}
}

func TestWorldConfigClamps(t *testing.T) {
	w := NewWithConfig(Config{Width: 0, Height: -3, BrushRadius: 99})
	if w.Size() != (core.Size{W: 1, H: 1}) {
		t.Fatalf("unexpected size %+v", w.Size())
	}
	if w.BrushRadius() != MaxBrushRadius {
		t.Fatalf("expected brush clamp to %d, got %d", MaxBrushRadius, w.BrushRadius())
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"w": "64", "h": "48", "seed": "-9", "brush": "40"})
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Seed != -9 || cfg.BrushRadius != MaxBrushRadius {
		t.Fatalf("unexpected config %+v", cfg)
	}
	cfg = FromMap(map[string]string{"w": "-1", "h": "abc", "brush": "-2"})
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("invalid values should keep defaults, got %+v", cfg)
	}
	if FromMap(nil) != def {
		t.Fatalf("nil map should return defaults")
	}
}

func TestSetIntParameter(t *testing.T) {
	w := New(8, 8)
	if !w.SetIntParameter("brush", 5) || w.BrushRadius() != 5 {
		t.Fatalf("expected brush 5, got %d", w.BrushRadius())
	}
	w.SetIntParameter("brush", -3)
	if w.BrushRadius() != 0 {
		t.Fatalf("expected brush clamp to 0, got %d", w.BrushRadius())
	}
	w.SetIntParameter("brush", 100)
	if w.BrushRadius() != MaxBrushRadius {
		t.Fatalf("expected brush clamp to %d, got %d", MaxBrushRadius, w.BrushRadius())
	}
	if w.SetIntParameter("gravity", 2) {
		t.Fatalf("unknown key should be rejected")
	}
}

func TestParametersSnapshot(t *testing.T) {
	w := New(5, 4)
	w.SetIntParameter("brush", 0)
	w.Paint(0, 0, Sand)
	w.Paint(1, 0, Sand)
	w.Paint(4, 3, Lava)
	w.Step()

	snap := w.Parameters()
	checks := map[string]string{
		"w":           "5",
		"h":           "4",
		"seed":        "1337",
		"tick":        "1",
		"brush":       "0",
		"count_sand":  "2",
		"count_lava":  "1",
		"count_water": "0",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s = %q, want %q", key, p.Value, want)
		}
	}
	if _, ok := snap.Lookup("count_empty"); ok {
		t.Fatalf("empty cells should not be counted")
	}
	last := snap.Groups[len(snap.Groups)-1]
	if last.Name != "Census" || last.Summary != "3 particles" {
		t.Fatalf("unexpected census group %q %q", last.Name, last.Summary)
	}
}

func TestSandboxRegistered(t *testing.T) {
	f, ok := core.Sims()["sandbox"]
	if !ok {
		t.Fatalf("sandbox not registered")
	}
	sim := f(map[string]string{"w": "12", "h": "7"})
	if sim.Size() != (core.Size{W: 12, H: 7}) || sim.Name() != "sandbox" {
		t.Fatalf("unexpected sim %s %+v", sim.Name(), sim.Size())
	}
	if len(sim.Cells()) != 12*7 {
		t.Fatalf("unexpected cell count %d", len(sim.Cells()))
	}
}

func TestPaletteCoversKinds(t *testing.T) {
	w := New(2, 2)
	if len(w.Palette()) != len(Kinds()) {
		t.Fatalf("palette has %d entries for %d kinds", len(w.Palette()), len(Kinds()))
	}
	if Fire.Color().R != 255 || Fire.Color().G != 0 {
		t.Fatalf("unexpected fire color %+v", Fire.Color())
	}
}
