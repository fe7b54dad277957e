// pkg/render/engo/scene.go
package engo

import (
	"image/color"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/level"
	"github.com/opd-ai/go-gravity/pkg/logging"
	"github.com/opd-ai/go-gravity/pkg/render"
)

// GameScene represents the main game scene in Engo
type GameScene struct {
	world *ecs.World

	sim      *engine.Simulation
	scene    *render.Scene
	newLevel func() (*level.Level, error)
	thrust   *engine.ThrustInput
	logger   *logging.Logger

	// Rendering components
	assets   *AssetManager
	camera   *Camera
	renderer *EngoRenderer
	input    *InputSystem
	hud      *HUDSystem
}

// NewGameScene creates a scene that plays sim and rebuilds levels with
// newLevel when the player resets
func NewGameScene(sim *engine.Simulation, scene *render.Scene, newLevel func() (*level.Level, error), logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameScene{
		sim:      sim,
		scene:    scene,
		newLevel: newLevel,
		thrust:   engine.NewThrustInput(),
		logger:   logger,
		assets:   NewAssetManager(),
		camera:   NewCamera(scene.View),
	}
}

// Type returns the scene type (required by Engo)
func (gs *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo). Every
// asset is generated in Setup, so there is nothing to fetch.
func (gs *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (gs *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	gs.world = world
	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	if err := gs.assets.LoadAssets(); err != nil {
		gs.logger.Error(gs.sim.Context(), "failed to load assets", err)
		panic("Failed to initialize renderer: " + err.Error())
	}

	view := gs.scene.View
	gs.hud = NewHUDSystem(renderSystem, gs.assets.Font(), float32(view.Width), float32(view.Height))
	gs.renderer = NewEngoRenderer(renderSystem, gs.camera, gs.assets, gs.hud)

	SetupInputBindings()
	gs.input = NewInputSystem(gs.thrust, gs.reset, engo.Exit)
	world.AddSystem(gs.input)
	world.AddSystem(&simulationSystem{gs: gs})

	gs.sim.Start()
}

// reset swaps in a freshly built level. A failed build keeps playing the
// current one.
func (gs *GameScene) reset() {
	if err := gs.sim.ResetWith(gs.newLevel); err != nil {
		gs.logger.Debug(gs.sim.Context(), "reset skipped, current level kept")
	}
}

// update advances one frame: input, physics, effects, then drawing
func (gs *GameScene) update(dt time.Duration) {
	gs.sim.ApplyThrust(gs.thrust.Direction())
	gs.sim.Update(dt)
	gs.scene.Update(dt)
	render.Draw(gs.renderer, gs.sim, gs.scene)
}

// Exit is called when the scene is exiting (required by Engo)
func (gs *GameScene) Exit() {
	if gs.renderer != nil {
		gs.renderer.Close()
	}
	gs.scene.Effects.Close()
	gs.logger.Info(gs.sim.Context(), "window closed",
		"tick", gs.sim.CurrentTick,
		"status", gs.sim.Status.String())
}

// simulationSystem runs the game once per engo frame, after input
type simulationSystem struct {
	gs *GameScene
}

// Remove satisfies the ecs.System interface
func (s *simulationSystem) Remove(ecs.BasicEntity) {}

// Update converts engo's frame time in seconds and advances the game
func (s *simulationSystem) Update(dt float32) {
	s.gs.update(time.Duration(float64(dt) * float64(time.Second)))
}

// Run opens the window and blocks until it is closed
func Run(cfg *config.GameConfig, gs *GameScene) {
	engo.Run(engo.RunOptions{
		Title:        cfg.Display.Title,
		Width:        cfg.Display.ScreenWidth,
		Height:       cfg.Display.ScreenHeight,
		Fullscreen:   cfg.Display.Fullscreen,
		NotResizable: true,
	}, gs)
}
