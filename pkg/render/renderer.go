// pkg/render/renderer.go
package render

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/logging"
)

// Renderer draws level entities plus the screen decorations around them
type Renderer interface {
	entity.Renderer
	RenderStar(star Star)
	RenderBurst(burst *Burst)
	RenderPointer(pointer Pointer)
	RenderHUD(hud HUD)
}

// Scene is the presentation state shared by every frontend
type Scene struct {
	View          *Viewport
	Stars         []Star
	Effects       *Effects
	PointerMargin float64
}

// NewScene builds a scene sized from the display config and subscribes
// its effects to bus
func NewScene(cfg *config.GameConfig, bus *event.Bus, rng *rand.Rand) *Scene {
	d := cfg.Display
	w, h := float64(d.ScreenWidth), float64(d.ScreenHeight)

	sc := &Scene{
		View:          NewViewport(w, h),
		Stars:         NewStarfield(rng, d.Stars, DefaultMinStarSize, DefaultMaxStarSize, w, h),
		Effects:       NewEffects(rng),
		PointerMargin: d.PointerMargin,
	}
	sc.Effects.Subscribe(bus)
	bus.Subscribe(event.LevelReset, func(event.Event) {
		sc.View.Reset()
	})
	return sc
}

// Update advances the scene's effects by one frame
func (sc *Scene) Update(dt time.Duration) {
	sc.Effects.Update(dt)
}

// Draw renders one frame of sim: background, entities, bursts, pointers
// and the HUD, in that order
func Draw(r Renderer, sim *engine.Simulation, sc *Scene) {
	if ship := sim.Level.Ship(); ship != nil {
		sc.View.Follow(ship.Position())
	}
	state := sim.Snapshot()

	r.Clear()
	for _, star := range sc.Stars {
		r.RenderStar(star)
	}
	for _, e := range sim.Level.Entities() {
		e.Render(r)
	}
	for _, b := range sc.Effects.Bursts() {
		r.RenderBurst(b)
	}
	for _, p := range Pointers(sc.View, state.Ships, state.Waypoints, sc.PointerMargin) {
		r.RenderPointer(p)
	}
	r.RenderHUD(NewHUD(state))
	r.Present()
}

// NullRenderer discards every draw call and logs it at debug level. It
// drives the frame pipeline for headless runs.
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context
	Frames int
}

// NewNullRenderer creates a NullRenderer. A nil logger discards output.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{
		logger: logger,
		ctx:    context.Background(),
	}
}

// SetContext sets the context used for log entries, normally the
// simulation's so that entries carry its run ID
func (d *NullRenderer) SetContext(ctx context.Context) {
	d.ctx = ctx
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.Frames++
}

// RenderShip implements entity.Renderer.
func (d *NullRenderer) RenderShip(ship *entity.Ship) {
	if ship == nil {
		d.logger.Debug(d.ctx, "RenderShip called with nil ship")
		return
	}
	d.logger.Debug(d.ctx, "RenderShip",
		"id", ship.GetID(),
		"x", ship.Position().X,
		"y", ship.Position().Y,
		"thrusting", ship.Thrusting)
}

// RenderPlanet implements entity.Renderer.
func (d *NullRenderer) RenderPlanet(planet *entity.Planet) {
	if planet == nil {
		d.logger.Debug(d.ctx, "RenderPlanet called with nil planet")
		return
	}
	d.logger.Debug(d.ctx, "RenderPlanet",
		"id", planet.GetID(),
		"x", planet.Position().X,
		"y", planet.Position().Y,
		"radius", planet.Radius())
}

// RenderWaypoint implements entity.Renderer.
func (d *NullRenderer) RenderWaypoint(waypoint *entity.Waypoint) {
	if waypoint == nil {
		d.logger.Debug(d.ctx, "RenderWaypoint called with nil waypoint")
		return
	}
	d.logger.Debug(d.ctx, "RenderWaypoint",
		"id", waypoint.GetID(),
		"x", waypoint.X,
		"y", waypoint.Y)
}

// RenderStar implements Renderer.
func (d *NullRenderer) RenderStar(Star) {}

// RenderBurst implements Renderer.
func (d *NullRenderer) RenderBurst(burst *Burst) {
	d.logger.Debug(d.ctx, "RenderBurst", "kind", burst.Kind, "x", burst.Origin.X, "y", burst.Origin.Y)
}

// RenderPointer implements Renderer.
func (d *NullRenderer) RenderPointer(pointer Pointer) {
	d.logger.Debug(d.ctx, "RenderPointer", "waypoint", pointer.Waypoint, "angle", pointer.Angle)
}

// RenderHUD implements Renderer.
func (d *NullRenderer) RenderHUD(hud HUD) {
	d.logger.Debug(d.ctx, "RenderHUD", "fuel", hud.Fuel, "elapsed", hud.Elapsed, "status", hud.Status.String())
}
