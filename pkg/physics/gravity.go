// pkg/physics/gravity.go
package physics

import (
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/geometry"
)

// DefaultGravity is the gravitational constant tuned for one-millisecond ticks
const DefaultGravity = 8e-6

// Integrator advances bodies under pairwise inverse-square attraction
type Integrator struct {
	G float64
}

// NewIntegrator creates an integrator with gravitational constant g
func NewIntegrator(g float64) *Integrator {
	return &Integrator{G: g}
}

// Step advances the bodies by dtMs one-millisecond ticks
func (in *Integrator) Step(bodies []*Body, dtMs int) {
	for i := 0; i < dtMs; i++ {
		in.Tick(bodies)
	}
}

// Tick advances the bodies by a single tick. Every pull is computed from
// the positions at the start of the tick before any body moves.
func (in *Integrator) Tick(bodies []*Body) {
	pulls := make([]r2.Point, len(bodies))
	for i, body := range bodies {
		if body.Fixed {
			continue
		}
		pulls[i] = in.pull(body.Position, body, bodies)
	}

	for i, body := range bodies {
		if body.Fixed {
			continue
		}
		body.integrate(pulls[i])
	}
}

// FieldAt returns the pull a massless probe at p would feel
func (in *Integrator) FieldAt(p r2.Point, bodies []*Body) r2.Point {
	return in.pull(p, nil, bodies)
}

// pull sums the attraction of every source except self on a point.
// Sources at zero distance contribute nothing.
func (in *Integrator) pull(p r2.Point, self *Body, sources []*Body) r2.Point {
	var total r2.Point
	for _, other := range sources {
		if other == self {
			continue
		}
		d := other.Position.Sub(p)
		dist2 := d.X*d.X + d.Y*d.Y
		if dist2 == 0 {
			continue
		}
		magnitude := in.G * other.Mass() / dist2
		total = total.Add(geometry.UnitVector(p, other.Position).Mul(magnitude))
	}
	return total
}
