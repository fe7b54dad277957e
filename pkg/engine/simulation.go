// pkg/engine/simulation.go
package engine

import (
	"context"
	"time"

	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/level"
	"github.com/opd-ai/go-gravity/pkg/logging"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// Tick is the simulated duration of one integration step
const Tick = time.Millisecond

// Status is the outcome of the current level
type Status int

const (
	StatusActive Status = iota
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Simulation advances a level in fixed one-millisecond ticks. It is not
// safe for concurrent use; the host drives it from its frame callback.
type Simulation struct {
	Config      *config.GameConfig
	Level       *level.Level
	Integrator  *physics.Integrator
	Resolver    *CollisionResolver
	EventBus    *event.Bus
	Logger      *logging.Logger
	Status      Status
	CurrentTick uint64
	Elapsed     time.Duration // simulated time with a live ship and waypoints left

	thrust    r2.Point
	ctx       context.Context
	waypoints int // waypoints at load; a level without any never completes
}

// NewSimulation creates a simulation over lvl. A nil bus or logger is
// replaced by a private bus or a discarding logger.
func NewSimulation(cfg *config.GameConfig, lvl *level.Level, bus *event.Bus, logger *logging.Logger) *Simulation {
	if bus == nil {
		bus = event.NewEventBus()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	s := &Simulation{
		Config:     cfg,
		Integrator: physics.NewIntegrator(cfg.Physics.Gravity),
		EventBus:   bus,
		Logger:     logger.With("component", "simulation"),
	}
	s.Resolver = NewCollisionResolver(bus, s)
	s.load(lvl)
	return s
}

// Context returns the context carrying the current run ID
func (s *Simulation) Context() context.Context {
	return s.ctx
}

// Start announces the current level
func (s *Simulation) Start() {
	s.Logger.Info(s.ctx, "level started",
		"planets", len(s.Level.Planets()),
		"waypoints", len(s.Level.Waypoints()))
	s.publishLevelEvent(event.LevelStarted)
}

// ApplyThrust sets the thrust direction used by every tick until changed.
// Each axis component is expected in {-1, 0, 1}.
func (s *Simulation) ApplyThrust(dir r2.Point) {
	s.thrust = dir
}

// Thrust returns the current thrust direction
func (s *Simulation) Thrust() r2.Point {
	return s.thrust
}

// Update runs one tick per whole millisecond of frameDelta. The fraction
// is dropped. Ticks are capped at Physics.MaxTicksPerFrame when it is set.
// It returns the number of ticks run.
func (s *Simulation) Update(frameDelta time.Duration) int {
	ticks := int(frameDelta / Tick)
	if ticks < 0 {
		ticks = 0
	}
	if limit := s.Config.Physics.MaxTicksPerFrame; limit > 0 && ticks > limit {
		s.Logger.Debug(s.ctx, "frame capped", "requested", ticks, "ran", limit)
		ticks = limit
	}
	s.Step(ticks)
	return ticks
}

// Step runs dtMs ticks
func (s *Simulation) Step(dtMs int) {
	for i := 0; i < dtMs; i++ {
		s.tick()
	}
}

// tick applies thrust, integrates gravity and resolves collisions
func (s *Simulation) tick() {
	ship := s.Level.Ship()
	if ship != nil {
		ship.ThrustPower = s.Config.Physics.ThrustPower
		ship.Thrust(s.thrust)
	}

	s.Integrator.Tick(s.Level.Bodies())
	s.Resolver.Resolve(s.Level)
	s.CurrentTick++

	if s.Level.Ship() != nil && len(s.Level.Waypoints()) > 0 {
		s.Elapsed += Tick
	}
	s.checkOutcome()
}

// checkOutcome moves an active level to completed or failed. A level that
// started without waypoints is free flight and can only fail.
func (s *Simulation) checkOutcome() {
	if s.Status != StatusActive {
		return
	}

	switch {
	case len(s.Level.Ships()) == 0:
		s.Status = StatusFailed
		s.Logger.Info(s.ctx, "level failed", "tick", s.CurrentTick, "elapsed", s.Elapsed)
		s.publishLevelEvent(event.LevelFailed)
	case s.waypoints > 0 && len(s.Level.Waypoints()) == 0:
		s.Status = StatusCompleted
		s.Logger.Info(s.ctx, "level completed",
			"tick", s.CurrentTick, "elapsed", s.Elapsed, "fuel", s.FuelUsage())
		s.publishLevelEvent(event.LevelCompleted)
	}
}

// Reset discards the current level and continues with lvl
func (s *Simulation) Reset(lvl *level.Level) {
	s.load(lvl)
	s.Logger.Info(s.ctx, "level reset",
		"planets", len(lvl.Planets()),
		"waypoints", len(lvl.Waypoints()))
	s.publishLevelEvent(event.LevelReset)
}

// ResetWith builds a new level with build and resets to it. On error the
// current level is kept.
func (s *Simulation) ResetWith(build func() (*level.Level, error)) error {
	lvl, err := build()
	if err != nil {
		s.Logger.Error(s.ctx, "level build failed", err)
		return logging.WrapError(err, "reset level")
	}
	s.Reset(lvl)
	return nil
}

func (s *Simulation) load(lvl *level.Level) {
	s.Level = lvl
	s.waypoints = len(lvl.Waypoints())
	s.Status = StatusActive
	s.CurrentTick = 0
	s.Elapsed = 0
	s.thrust = r2.Point{}
	s.ctx = logging.WithRunID(context.Background(), "")
}

// FuelUsage returns the player ship's fuel counter, 0 once it is gone
func (s *Simulation) FuelUsage() int {
	if ship := s.Level.Ship(); ship != nil {
		return ship.FuelUsage
	}
	return 0
}

func (s *Simulation) publishLevelEvent(t event.Type) {
	s.EventBus.Publish(event.NewLevelEvent(t, s, s.CurrentTick, s.Elapsed.Milliseconds(), s.FuelUsage()))
}
