package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/sand"
	"sandfall/internal/scene"
)

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 16, "number of seeds to sweep")
	firstSeed := flag.Int64("seed", 1, "first seed")
	width := flag.Int("w", 160, "world width")
	height := flag.Int("h", 90, "world height")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := core.NewLogger(*logLevel)

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	opts := scene.DefaultOptions()

	logger.Infof("sweeping %d seeds (%d workers, %d steps, %dx%d)", *seeds, *workers, *steps, cfg.Width, cfg.Height)

	jobs := make(chan int64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	// Worlds are independent; each one is ticked by a single goroutine.
	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res := runSeed(cfg, opts, seed, *steps)
				logger.Debugf("seed %d done: settled at %d", seed, res.settledStep)
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *firstSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	fmt.Printf("Results (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Println(res)
	}
}
