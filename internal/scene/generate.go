// Package scene builds starting worlds: procedural terrain and YAML
// scenarios made of paint strokes.
package scene

import (
	"math"

	"github.com/aquilax/go-perlin"

	"sandfall/internal/core"
	"sandfall/internal/sand"
	pcore "sandfall/pkg/core"
)

// Options tunes the dune generator.
type Options struct {
	Seed int64

	// DuneHeight is the mean dune height as a fraction of the grid height.
	DuneHeight float64
	// Roughness scales the noise amplitude relative to DuneHeight.
	Roughness float64
	// Features adds a wood grove, an iron slab, a water pool and a lava
	// pocket on top of the dunes.
	Features bool
}

// DefaultOptions returns the generator defaults.
func DefaultOptions() Options {
	return Options{
		DuneHeight: 0.22,
		Roughness:  0.6,
		Features:   true,
	}
}

const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3
	noiseScale  = 0.025
)

// Generate fills g deterministically from opts.Seed. Existing contents are
// overwritten only where terrain or features are placed.
func Generate(g *sand.Grid, opts Options) {
	w, h := g.Dimensions()
	heights := duneHeights(w, h, opts)
	for x := 0; x < w; x++ {
		for y := h - heights[x]; y < h; y++ {
			g.Set(x, y, sand.Cell{Kind: sand.Sand})
		}
	}
	if !opts.Features || w < 8 || h < 8 {
		return
	}
	rng := pcore.NewRNG(opts.Seed)
	placeFeatures(g, rng, heights)
}

// Seeder returns a sand.Seeder running Generate with the reset seed.
func Seeder(opts Options) sand.Seeder {
	return func(g *sand.Grid, seed int64) {
		o := opts
		o.Seed = seed
		Generate(g, o)
	}
}

func duneHeights(w, h int, opts Options) []int {
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, opts.Seed)
	mean := opts.DuneHeight * float64(h)
	amp := mean * opts.Roughness
	heights := make([]int, w)
	for x := range heights {
		v := mean + amp*noise.Noise1D(float64(x)*noiseScale)
		heights[x] = max(0, min(int(math.Round(v)), h-1))
	}
	return heights
}

// surface returns the y of the topmost empty cell above the dune at x.
func surface(heights []int, h, x int) int {
	return h - 1 - heights[x]
}

func placeFeatures(g *sand.Grid, rng *pcore.RNG, heights []int) {
	w, h := g.Dimensions()
	quarter := w / 4

	// Wood grove on the left: a few trunks standing on the dunes.
	for i := 0; i < 3; i++ {
		x := rng.IntRange(quarter/4, quarter)
		top := surface(heights, h, x) - rng.IntRange(h/10, h/5)
		for y := max(top, 0); y <= surface(heights, h, x); y++ {
			g.Set(x, y, sand.Cell{Kind: sand.Wood})
		}
	}

	// Iron slab floating over the middle with a water pool above it.
	slabY := max(surface(heights, h, w/2)-h/4, 2)
	slabX0, slabX1 := w/2-quarter/2, w/2+quarter/2
	for x := slabX0; x <= slabX1; x++ {
		g.Set(x, slabY, sand.Cell{Kind: sand.Iron})
	}
	g.Paint(w/2, slabY-2, max(1, quarter/6), sand.Water)

	// Lava pocket dropped over the right quarter.
	lx := rng.IntRange(w-quarter, w-1)
	g.Paint(lx, max(surface(heights, h, lx)-h/6, 1), 1, sand.Lava)
}

func init() {
	core.Register("dunes", func(cfg map[string]string) core.Sim {
		w := sand.NewWithConfig(sand.FromMap(cfg))
		w.SetSeeder(Seeder(DefaultOptions()))
		return w
	})
}
