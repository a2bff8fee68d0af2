package sand

import "sandfall/internal/core"

// Seeder fills a freshly cleared grid. It runs on every Reset.
type Seeder func(g *Grid, seed int64)

// World adapts a Grid to the core.Sim contract used by the drivers.
type World struct {
	cfg Config

	grid    *Grid
	display []uint8
	ticks   int
	seed    int64

	seeder Seeder
}

// New returns an empty sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options.
func NewWithConfig(cfg Config) *World {
	grid := NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.Dimensions()
	cfg.BrushRadius = max(0, min(cfg.BrushRadius, MaxBrushRadius))
	return &World{
		cfg:     cfg,
		grid:    grid,
		display: make([]uint8, grid.Len()),
		seed:    cfg.Seed,
	}
}

// SetSeeder installs the function that populates the grid on Reset.
func (w *World) SetSeeder(s Seeder) { w.seeder = s }

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the row-major display buffer of kind values.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the underlying grid store.
func (w *World) Grid() *Grid { return w.grid }

// Ticks returns the number of ticks run since the last Reset.
func (w *World) Ticks() int { return w.ticks }

// Seed returns the seed used by the last Reset.
func (w *World) Seed() int64 { return w.seed }

// BrushRadius returns the radius used by Paint.
func (w *World) BrushRadius() int { return w.cfg.BrushRadius }

// Reset clears the grid and reseeds it. A zero seed falls back to the
// configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed = effective
	w.ticks = 0
	w.grid.Reset()
	if w.seeder != nil {
		w.seeder(w.grid, effective)
	}
	w.rebuildDisplay()
}

// Clear empties the grid without reseeding.
func (w *World) Clear() {
	w.grid.Reset()
	w.rebuildDisplay()
}

// Step runs one tick.
func (w *World) Step() {
	w.grid.RunTick()
	w.ticks++
	w.rebuildDisplay()
}

// Paint fills the brush square around (x, y) with k.
func (w *World) Paint(x, y int, k Kind) {
	w.grid.Paint(x, y, w.cfg.BrushRadius, k)
	w.rebuildDisplay()
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
