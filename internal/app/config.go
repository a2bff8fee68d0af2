package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	HUD   int
	Brush int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sandbox", Scale: 3, TPS: 60, Seed: 42, HUD: 220, Brush: 2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (sandbox, dunes)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush radius")
}

// SimConfig converts the flags into the factory configuration map.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"seed":  formatInt64(c.Seed),
		"brush": formatInt64(int64(c.Brush)),
	}
}
