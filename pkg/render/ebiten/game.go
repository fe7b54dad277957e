// pkg/render/ebiten/game.go
package ebiten

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/level"
	"github.com/opd-ai/go-gravity/pkg/logging"
	"github.com/opd-ai/go-gravity/pkg/render"
)

// defaultFrameDelta is used for the first tick, before there is a
// previous tick to measure from
const defaultFrameDelta = time.Second / ebiten.DefaultTPS

// Game implements ebiten.Game for a running simulation
type Game struct {
	sim      *engine.Simulation
	scene    *render.Scene
	newLevel func() (*level.Level, error)
	thrust   *engine.ThrustInput
	input    *Input
	renderer *EbitenRenderer
	logger   *logging.Logger

	width, height int
	now           func() time.Time
	last          time.Time
}

// NewGame creates a game that plays sim and rebuilds levels with newLevel
// when the player resets
func NewGame(cfg *config.GameConfig, sim *engine.Simulation, scene *render.Scene, newLevel func() (*level.Level, error), logger *logging.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	thrust := engine.NewThrustInput()
	return &Game{
		sim:      sim,
		scene:    scene,
		newLevel: newLevel,
		thrust:   thrust,
		input:    NewInput(thrust),
		renderer: NewEbitenRenderer(scene.View),
		logger:   logger,
		width:    cfg.Display.ScreenWidth,
		height:   cfg.Display.ScreenHeight,
		now:      time.Now,
	}
}

// SetOverlay shows img, a gravity map of the world, under the playfield
func (g *Game) SetOverlay(img image.Image, worldHeight float64) {
	g.renderer.SetOverlay(img, worldHeight)
}

// Update advances the game by the wall time since the previous tick
func (g *Game) Update() error {
	reset, quit := g.input.Poll()
	if quit {
		g.logger.Info(g.sim.Context(), "quit requested",
			"tick", g.sim.CurrentTick,
			"status", g.sim.Status.String())
		return ebiten.Termination
	}
	if reset {
		if err := g.sim.ResetWith(g.newLevel); err != nil {
			g.logger.Debug(g.sim.Context(), "reset skipped, current level kept")
		}
	}

	g.advance(g.frameDelta())
	return nil
}

// frameDelta measures the time since the previous call
func (g *Game) frameDelta() time.Duration {
	now := g.now()
	dt := defaultFrameDelta
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now
	return dt
}

func (g *Game) advance(dt time.Duration) {
	g.sim.ApplyThrust(g.thrust.Direction())
	g.sim.Update(dt)
	g.scene.Update(dt)
}

// Draw renders the current frame onto screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.target = screen
	render.Draw(g.renderer, g.sim, g.scene)
}

// Layout keeps a fixed logical screen and lets ebiten scale it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close releases the scene's event subscriptions
func (g *Game) Close() {
	g.scene.Effects.Close()
}

// Run opens the window and blocks until it is closed or ESC is pressed
func Run(cfg *config.GameConfig, g *Game) error {
	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetFullscreen(cfg.Display.Fullscreen)
	defer g.Close()

	g.sim.Start()
	if err := ebiten.RunGame(g); err != nil {
		return logging.WrapError(err, "run ebiten game")
	}
	return nil
}
