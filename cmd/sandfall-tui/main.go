package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/sand"
	"sandfall/internal/scene"
	"sandfall/internal/tui"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario to load (default: dunes)")
	tps := flag.Int("tps", 30, "ticks per second")
	ticks := flag.Int("ticks", -1, "ticks to run before exiting (0 runs forever, -1 uses the scenario)")
	seed := flag.Int64("seed", 0, "override the scenario seed")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := core.NewLogger(*logLevel)

	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	if *seed != 0 {
		sc.Seed = *seed
	}
	if *ticks >= 0 {
		sc.Ticks = *ticks
	}
	world := sc.Build()
	logger.Debugf("scenario %q: %dx%d seed=%d generator=%s strokes=%d", sc.Name, sc.Width, sc.Height, sc.Seed, sc.Generator, len(sc.Strokes))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run(ctx, world, sc.Ticks, core.NewFixedStep(*tps))
	logger.Infof("stopped after %d ticks, %d particles", world.Ticks(), world.Grid().Census().Total())
}

func loadScenario(path string) (*scene.Scenario, error) {
	if path == "" {
		return scene.Parse([]byte("name: dunes\ngenerator: dunes\nwidth: 120\nheight: 60\n"))
	}
	return scene.Load(path)
}

// run ticks the world at the pacer's rate and redraws after every tick.
// Rendering happens strictly between ticks.
func run(ctx context.Context, world *sand.World, limit int, pacer *core.FixedStep) {
	renderer := tui.New(world.Palette())
	for limit == 0 || world.Ticks() < limit {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !pacer.ShouldStep() {
			time.Sleep(pacer.Wait())
			continue
		}
		world.Step()
		cols, rows := tui.TerminalSize()
		os.Stdout.WriteString(renderer.Frame(world.Cells(), world.Size(), cols, rows))
		os.Stdout.WriteString(tui.Status(world))
	}
}
