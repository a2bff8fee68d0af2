package main

import (
	"slices"
	"testing"

	"sandfall/internal/sand"
	"sandfall/internal/scene"
)

func TestExtinctKinds(t *testing.T) {
	var before, after sand.Census
	before[sand.Wood] = 4
	before[sand.Fire] = 1
	before[sand.Sand] = 10
	after[sand.Sand] = 10
	after[sand.Smoke] = 5

	got := extinctKinds(before, after)
	want := []sand.Kind{sand.Wood, sand.Fire}
	if !slices.Equal(got, want) {
		t.Fatalf("extinct = %v, want %v", got, want)
	}
}

func TestRunSeedDeterministic(t *testing.T) {
	cfg := sand.DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	opts := scene.DefaultOptions()

	a := runSeed(cfg, opts, 5, 50)
	b := runSeed(cfg, opts, 5, 50)
	if a.final != b.final || a.settledStep != b.settledStep {
		t.Fatalf("runs differ: %v vs %v", a, b)
	}
	if a.initial.Total() == 0 {
		t.Fatal("dune world should not start empty")
	}
}
