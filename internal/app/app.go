//go:build ebiten

package app

import (
	"time"

	"sandfall/internal/render"
	"sandfall/internal/sand"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var letterKeys = map[string]ebiten.Key{
	"Q": ebiten.KeyQ,
	"E": ebiten.KeyE,
	"R": ebiten.KeyR,
	"T": ebiten.KeyT,
	"F": ebiten.KeyF,
	"A": ebiten.KeyA,
	"W": ebiten.KeyW,
	"D": ebiten.KeyD,
	"G": ebiten.KeyG,
	"X": ebiten.KeyX,
}

// Game adapts a sandbox world to the ebiten.Game interface. Input painting
// and rendering happen strictly between ticks.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	selected sand.Kind

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg *Config) *Game {
	size := world.Size()
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(size.W, size.H, world.Palette()),
		hud:      ui.NewHUD(world, cfg.HUD),
		overlay:  ui.NewOverlay(world, cfg.Scale),
		selected: sand.Sand,
		scale:    cfg.Scale,
		hudWidth: max(cfg.HUD, 0),
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.world.SetIntParameter("brush", g.world.BrushRadius()-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.world.SetIntParameter("brush", g.world.BrushRadius()+1)
	}
	for _, b := range Bindings {
		if inpututil.IsKeyJustPressed(letterKeys[b.Key]) {
			g.selected = b.Kind
		}
	}

	size := g.world.Size()
	g.hud.Update(size.W*g.scale, g.selected)
	g.overlay.Update()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < size.W*g.scale {
			x, y := ScreenToGrid(mx, my, g.scale)
			g.world.Paint(x, y, g.selected)
		}
	}

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current world, the brush outline and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.world.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
