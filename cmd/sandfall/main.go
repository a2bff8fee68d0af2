//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/sand"
	_ "sandfall/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	world, ok := factory(cfg.SimConfig()).(*sand.World)
	if !ok {
		log.Fatalf("sim %q is not a sandbox world", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("sandfall: " + cfg.Sim)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUD, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
