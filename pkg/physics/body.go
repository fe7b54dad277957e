// pkg/physics/body.go
package physics

import (
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/geometry"
)

// Body is a circular point mass. Fixed bodies never move but still attract
// movable ones.
type Body struct {
	Position     r2.Point
	Velocity     r2.Point // distance per tick
	PendingForce r2.Point // consumed by the next integration step
	Radius       float64
	Fixed        bool
}

// NewBody creates a body at rest
func NewBody(x, y, radius float64, fixed bool) *Body {
	return &Body{
		Position: r2.Point{X: x, Y: y},
		Radius:   radius,
		Fixed:    fixed,
	}
}

// Mass returns the body's mass, the cube of its radius
func (b *Body) Mass() float64 {
	return b.Radius * b.Radius * b.Radius
}

// Circle returns the collision projection of the body
func (b *Body) Circle() geometry.Circle {
	return geometry.Circle{X: b.Position.X, Y: b.Position.Y, R: b.Radius}
}

// ApplyForce queues a velocity change for the next step. Forces on fixed
// bodies are discarded.
func (b *Body) ApplyForce(f r2.Point) {
	if b.Fixed {
		return
	}
	b.PendingForce = b.PendingForce.Add(f)
}

// integrate adds the queued force and the gravity pull to the velocity,
// then moves the body by one tick.
func (b *Body) integrate(pull r2.Point) {
	b.Velocity = b.Velocity.Add(b.PendingForce).Add(pull)
	b.PendingForce = r2.Point{}
	b.Position = b.Position.Add(b.Velocity)
}
