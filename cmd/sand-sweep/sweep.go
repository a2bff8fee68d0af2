package main

import (
	"fmt"
	"slices"
	"strings"

	"sandfall/internal/sand"
	"sandfall/internal/scene"
)

type sweepResult struct {
	seed        int64
	initial     sand.Census
	final       sand.Census
	settledStep int
	extinct     []sand.Kind
}

func (r sweepResult) String() string {
	names := make([]string, len(r.extinct))
	for i, k := range r.extinct {
		names[i] = k.String()
	}
	settled := "never"
	if r.settledStep >= 0 {
		settled = fmt.Sprint(r.settledStep)
	}
	return fmt.Sprintf("seed=%d particles=%d->%d settled=%s extinct=[%s]",
		r.seed, r.initial.Total(), r.final.Total(), settled, strings.Join(names, ","))
}

// runSeed generates a dune world for seed, runs it for steps ticks and
// reports the census change. settledStep is the first tick after which the
// display stopped changing, or -1.
func runSeed(cfg sand.Config, opts scene.Options, seed int64, steps int) sweepResult {
	cfg.Seed = seed
	world := sand.NewWithConfig(cfg)
	world.SetSeeder(scene.Seeder(opts))
	world.Reset(seed)

	res := sweepResult{seed: seed, initial: world.Grid().Census(), settledStep: -1}
	prev := slices.Clone(world.Cells())
	for step := 1; step <= steps; step++ {
		world.Step()
		cur := world.Cells()
		if slices.Equal(prev, cur) {
			if res.settledStep < 0 {
				res.settledStep = step
			}
		} else {
			res.settledStep = -1
		}
		copy(prev, cur)
	}
	res.final = world.Grid().Census()
	res.extinct = extinctKinds(res.initial, res.final)
	return res
}

// extinctKinds lists kinds present in before but absent from after.
func extinctKinds(before, after sand.Census) []sand.Kind {
	present := after.Kinds()
	var out []sand.Kind
	before.Kinds().Each(func(k sand.Kind) {
		if !present.Has(k) {
			out = append(out, k)
		}
	})
	slices.Sort(out)
	return out
}
