// pkg/engine/state.go
package engine

import (
	"time"

	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/entity"
)

// State is a copy of the simulation taken between frames
type State struct {
	Tick      uint64
	Elapsed   time.Duration
	Status    Status
	FuelUsage int
	Ships     []ShipState
	Planets   []PlanetState
	Waypoints []WaypointState
}

// ShipState is a snapshot of one ship
type ShipState struct {
	ID        entity.ID
	Position  r2.Point
	Velocity  r2.Point
	Radius    float64
	Heading   float64
	Thrusting bool
	FuelUsage int
}

// PlanetState is a snapshot of one planet
type PlanetState struct {
	ID       entity.ID
	Position r2.Point
	Radius   float64
	Look     int
	Rotation float64
}

// WaypointState is a snapshot of one waypoint
type WaypointState struct {
	ID       entity.ID
	Position r2.Point
	Radius   float64
}

// Snapshot returns a copy of the current simulation state
func (s *Simulation) Snapshot() *State {
	return &State{
		Tick:      s.CurrentTick,
		Elapsed:   s.Elapsed,
		Status:    s.Status,
		FuelUsage: s.FuelUsage(),
		Ships:     s.getShipStates(),
		Planets:   s.getPlanetStates(),
		Waypoints: s.getWaypointStates(),
	}
}

func (s *Simulation) getShipStates() []ShipState {
	states := make([]ShipState, 0, len(s.Level.Ships()))
	for _, ship := range s.Level.Ships() {
		body := ship.Body()
		states = append(states, ShipState{
			ID:        ship.GetID(),
			Position:  body.Position,
			Velocity:  body.Velocity,
			Radius:    body.Radius,
			Heading:   ship.Heading,
			Thrusting: ship.Thrusting,
			FuelUsage: ship.FuelUsage,
		})
	}
	return states
}

func (s *Simulation) getPlanetStates() []PlanetState {
	states := make([]PlanetState, 0, len(s.Level.Planets()))
	for _, planet := range s.Level.Planets() {
		states = append(states, PlanetState{
			ID:       planet.GetID(),
			Position: planet.Position(),
			Radius:   planet.Radius(),
			Look:     planet.Look,
			Rotation: planet.Rotation,
		})
	}
	return states
}

func (s *Simulation) getWaypointStates() []WaypointState {
	states := make([]WaypointState, 0, len(s.Level.Waypoints()))
	for _, w := range s.Level.Waypoints() {
		states = append(states, WaypointState{
			ID:       w.GetID(),
			Position: w.Position(),
			Radius:   w.R,
		})
	}
	return states
}
