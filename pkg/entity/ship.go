// pkg/entity/ship.go
package entity

import (
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/geometry"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// ShipRadius is the collision radius of the player ship
const ShipRadius = 12

// Ship is a movable body steered by thrust
type Ship struct {
	BaseEntity
	body        *physics.Body
	ThrustPower float64
	FuelUsage   int     // ticks spent thrusting
	Thrusting   bool    // whether the last tick applied thrust
	Heading     float64 // degrees clockwise from up
}

// NewShip creates a ship at rest at (x, y)
func NewShip(x, y float64) *Ship {
	return &Ship{
		BaseEntity:  BaseEntity{ID: GenerateID()},
		body:        physics.NewBody(x, y, ShipRadius, false),
		ThrustPower: physics.DefaultThrustPower,
	}
}

// Kind implements Entity
func (s *Ship) Kind() Kind {
	return KindShip
}

// Body returns the ship's physical body
func (s *Ship) Body() *physics.Body {
	return s.body
}

// Circle implements Entity
func (s *Ship) Circle() geometry.Circle {
	return s.body.Circle()
}

// Position returns the ship's center
func (s *Ship) Position() r2.Point {
	return s.body.Position
}

// Thrust queues one tick of thrust along dir. A zero direction turns the
// engine off without consuming fuel; the heading only changes for one of
// the eight axis directions.
func (s *Ship) Thrust(dir r2.Point) {
	s.Thrusting = dir != (r2.Point{})
	if s.Thrusting {
		s.FuelUsage++
	}
	s.body.ApplyForce(physics.ThrustForce(dir, s.ThrustPower))
	if heading, ok := physics.HeadingFor(dir); ok {
		s.Heading = heading
	}
}
