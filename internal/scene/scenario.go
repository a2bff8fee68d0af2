package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sandfall/internal/sand"
)

// MaxDimension bounds scenario grid sizes.
const MaxDimension = 4096

var (
	// ErrInvalidSize reports a non-positive or oversized grid.
	ErrInvalidSize = errors.New("scene: invalid grid size")
	// ErrUnknownKind reports a stroke naming an unknown particle kind.
	ErrUnknownKind = errors.New("scene: unknown particle kind")
	// ErrUnknownGenerator reports an unsupported generator name.
	ErrUnknownGenerator = errors.New("scene: unknown generator")
)

// Generator names accepted by Scenario.Generator.
const (
	GeneratorEmpty = "empty"
	GeneratorDunes = "dunes"
)

// Stroke paints a square of Kind with the given radius around (X, Y).
type Stroke struct {
	Kind   string `yaml:"kind"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Radius int    `yaml:"radius"`
}

// Scenario describes a starting world: size, seed, terrain generator and
// the strokes painted on top.
type Scenario struct {
	Name      string   `yaml:"name"`
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Seed      int64    `yaml:"seed"`
	Generator string   `yaml:"generator"`
	Ticks     int      `yaml:"ticks"`
	Brush     int      `yaml:"brush"`
	Strokes   []Stroke `yaml:"strokes"`
}

// Load reads and validates a YAML scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scenario. Missing fields take the
// sandbox defaults.
func Parse(data []byte) (*Scenario, error) {
	def := sand.DefaultConfig()
	s := &Scenario{
		Width:     def.Width,
		Height:    def.Height,
		Seed:      def.Seed,
		Generator: GeneratorEmpty,
		Brush:     def.BrushRadius,
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks sizes, generator and stroke kinds.
func (s *Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Width > MaxDimension || s.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	switch s.Generator {
	case "", GeneratorEmpty, GeneratorDunes:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGenerator, s.Generator)
	}
	if s.Ticks < 0 {
		return fmt.Errorf("scene: negative tick count %d", s.Ticks)
	}
	for i, st := range s.Strokes {
		if _, ok := sand.ParseKind(st.Kind); !ok {
			return fmt.Errorf("stroke %d: %w: %q", i, ErrUnknownKind, st.Kind)
		}
		if st.Radius < 0 {
			return fmt.Errorf("stroke %d: negative radius %d", i, st.Radius)
		}
	}
	return nil
}

// Build creates the world described by the scenario and resets it with
// the scenario seed. Resetting the world later replays the generator and
// the strokes.
func (s *Scenario) Build() *sand.World {
	cfg := sand.DefaultConfig()
	cfg.Width = s.Width
	cfg.Height = s.Height
	cfg.Seed = s.Seed
	cfg.BrushRadius = s.Brush
	w := sand.NewWithConfig(cfg)

	var gen sand.Seeder
	if s.Generator == GeneratorDunes {
		gen = Seeder(DefaultOptions())
	}
	w.SetSeeder(func(g *sand.Grid, seed int64) {
		if gen != nil {
			gen(g, seed)
		}
		s.paint(g)
	})
	w.Reset(s.Seed)
	return w
}

// paint applies the strokes in order. Strokes with unknown kinds are
// skipped; Validate rejects them up front.
func (s *Scenario) paint(g *sand.Grid) {
	for _, st := range s.Strokes {
		k, ok := sand.ParseKind(st.Kind)
		if !ok {
			continue
		}
		g.Paint(st.X, st.Y, st.Radius, k)
	}
}
