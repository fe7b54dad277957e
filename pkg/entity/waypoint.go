package entity

import (
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/geometry"
)

// Waypoint is a collectible target. It has no mass.
type Waypoint struct {
	BaseEntity
	X, Y, R float64
}

// NewWaypoint creates a waypoint of radius r at (x, y)
func NewWaypoint(x, y, r float64) *Waypoint {
	return &Waypoint{
		BaseEntity: BaseEntity{ID: GenerateID()},
		X:          x,
		Y:          y,
		R:          r,
	}
}

// Kind implements Entity
func (w *Waypoint) Kind() Kind {
	return KindWaypoint
}

// Circle implements Entity
func (w *Waypoint) Circle() geometry.Circle {
	return geometry.Circle{X: w.X, Y: w.Y, R: w.R}
}

// Position returns the waypoint's center
func (w *Waypoint) Position() r2.Point {
	return r2.Point{X: w.X, Y: w.Y}
}
