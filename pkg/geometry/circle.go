// pkg/geometry/circle.go
package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Circle is the x, y, radius projection every collidable entity exposes
type Circle struct {
	X float64
	Y float64
	R float64
}

// Center returns the circle center as a point
func (c Circle) Center() r2.Point {
	return r2.Point{X: c.X, Y: c.Y}
}

// Distance returns the distance between the centers of two circles.
// Radii are ignored.
func Distance(a, b Circle) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Collide reports whether two circles overlap. Circles that only touch do
// not collide.
func Collide(a, b Circle) bool {
	limit := a.R + b.R
	if math.Abs(a.X-b.X) > limit || math.Abs(a.Y-b.Y) > limit {
		return false
	}
	return Distance(a, b) < limit
}

// MinSpacing returns the smallest edge-to-edge gap between candidate and
// any of existing. The second result is false when existing is empty,
// meaning the candidate is unconstrained.
func MinSpacing(candidate Circle, existing []Circle) (float64, bool) {
	if len(existing) == 0 {
		return 0, false
	}
	best := math.Inf(1)
	for _, other := range existing {
		gap := Distance(candidate, other) - candidate.R - other.R
		if gap < best {
			best = gap
		}
	}
	return best, true
}

// ImpactPoint returns the point a third of the way from the ship center
// toward the body it hit.
func ImpactPoint(ship, body Circle) r2.Point {
	from := ship.Center()
	return from.Add(body.Center().Sub(from).Mul(1.0 / 3.0))
}
