// pkg/level/generator.go
package level

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/geometry"
)

// ErrPlacementFailed is returned when random placement cannot fit an entity
var ErrPlacementFailed = errors.New("could not place entity")

// Params controls random level generation
type Params struct {
	Width, Height   float64
	Padding         float64 // minimum gap between any two placed circles
	Ships           int
	Planets         int
	Waypoints       int
	MinPlanetRadius int
	MaxPlanetRadius int
	WaypointRadius  float64
	ShipClearance   float64 // radius kept free around each ship spawn
	MaxAttempts     int     // per entity
}

// ParamsFromConfig extracts generation parameters from a game config
func ParamsFromConfig(cfg *config.GameConfig) Params {
	return Params{
		Width:           cfg.World.Width,
		Height:          cfg.World.Height,
		Padding:         cfg.World.Padding,
		Ships:           cfg.Level.Ships,
		Planets:         cfg.Level.Planets,
		Waypoints:       cfg.Level.Waypoints,
		MinPlanetRadius: cfg.Level.MinPlanetRadius,
		MaxPlanetRadius: cfg.Level.MaxPlanetRadius,
		WaypointRadius:  cfg.Level.WaypointRadius,
		ShipClearance:   cfg.Level.ShipClearance,
		MaxAttempts:     cfg.Level.MaxAttempts,
	}
}

// Random builds a level with ships at the center of the field and planets
// and waypoints scattered by rejection sampling so that no two circles come
// closer than the padding.
func Random(p Params, rng *rand.Rand) (*Level, error) {
	if p.Planets > 0 && p.MaxPlanetRadius < p.MinPlanetRadius {
		return nil, fmt.Errorf("planet radius range %d..%d: %w", p.MinPlanetRadius, p.MaxPlanetRadius, config.ErrInvalidConfig)
	}

	var placed []geometry.Circle

	ships := make([]*entity.Ship, 0, p.Ships)
	for i := 0; i < p.Ships; i++ {
		x, y := p.Width/2, p.Height/2
		ships = append(ships, entity.NewShip(x, y))
		placed = append(placed, geometry.Circle{X: x, Y: y, R: p.ShipClearance})
	}

	planets := make([]*entity.Planet, 0, p.Planets)
	for i := 0; i < p.Planets; i++ {
		c, err := p.place(rng, placed, func() float64 {
			return float64(p.MinPlanetRadius + rng.IntN(p.MaxPlanetRadius-p.MinPlanetRadius+1))
		})
		if err != nil {
			return nil, fmt.Errorf("planet %d: %w", i, err)
		}
		planet := entity.NewPlanet(c.X, c.Y, c.R)
		planet.Look = rng.IntN(entity.PlanetLooks)
		planet.Rotation = float64(rng.IntN(360))
		planets = append(planets, planet)
		placed = append(placed, c)
	}

	waypoints := make([]*entity.Waypoint, 0, p.Waypoints)
	for i := 0; i < p.Waypoints; i++ {
		c, err := p.place(rng, placed, func() float64 { return p.WaypointRadius })
		if err != nil {
			return nil, fmt.Errorf("waypoint %d: %w", i, err)
		}
		waypoints = append(waypoints, entity.NewWaypoint(c.X, c.Y, c.R))
		placed = append(placed, c)
	}

	return New(ships, planets, waypoints), nil
}

// place samples integer positions until a circle fits inside the field and
// keeps at least the padding from every placed circle.
func (p Params) place(rng *rand.Rand, placed []geometry.Circle, radius func() float64) (geometry.Circle, error) {
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		r := radius()
		margin := int(r + p.Padding)
		spanX := int(p.Width) - 2*margin
		spanY := int(p.Height) - 2*margin
		if spanX < 0 || spanY < 0 {
			continue
		}

		c := geometry.Circle{
			X: float64(margin + rng.IntN(spanX+1)),
			Y: float64(margin + rng.IntN(spanY+1)),
			R: r,
		}
		if gap, ok := geometry.MinSpacing(c, placed); ok && gap < p.Padding {
			continue
		}
		return c, nil
	}
	return geometry.Circle{}, ErrPlacementFailed
}

// NewRand returns a generator for seed, or a randomly seeded one for 0
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Build creates the level described by cfg
func Build(cfg *config.GameConfig, rng *rand.Rand) (*Level, error) {
	switch cfg.Level.Mode {
	case config.ModeRandom:
		return Random(ParamsFromConfig(cfg), rng)
	case config.ModePreset:
		return Preset(cfg.Level.Preset, cfg.World.Width, cfg.World.Height)
	case config.ModeCustom:
		if cfg.Level.Layout == nil {
			return nil, fmt.Errorf("custom level: %w", config.ErrInvalidConfig)
		}
		return FromLayout(cfg.Level.Layout), nil
	default:
		return nil, fmt.Errorf("unknown level mode %q: %w", cfg.Level.Mode, config.ErrInvalidConfig)
	}
}

// NewBuilder returns a function that builds successive levels from cfg
// with one generator seeded from cfg.Level.Seed, so a seeded session
// replays the same sequence of levels
func NewBuilder(cfg *config.GameConfig) func() (*Level, error) {
	rng := NewRand(cfg.Level.Seed)
	return func() (*Level, error) {
		return Build(cfg, rng)
	}
}

// FromLayout builds a hand-placed level
func FromLayout(layout *config.LayoutConfig) *Level {
	ships := make([]*entity.Ship, 0, len(layout.Ships))
	for _, c := range layout.Ships {
		ships = append(ships, entity.NewShip(c.X, c.Y))
	}
	planets := make([]*entity.Planet, 0, len(layout.Planets))
	for i, c := range layout.Planets {
		planet := entity.NewPlanet(c.X, c.Y, c.R)
		planet.Look = i % entity.PlanetLooks
		planets = append(planets, planet)
	}
	waypoints := make([]*entity.Waypoint, 0, len(layout.Waypoints))
	for _, c := range layout.Waypoints {
		waypoints = append(waypoints, entity.NewWaypoint(c.X, c.Y, c.R))
	}
	return New(ships, planets, waypoints)
}
