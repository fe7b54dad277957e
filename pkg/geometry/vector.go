// pkg/geometry/vector.go
package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// UnitVector returns the normalized direction from a to b. Coincident
// points yield the zero vector.
func UnitVector(a, b r2.Point) r2.Point {
	return b.Sub(a).Normalize()
}

// PointDistance returns the distance between two points
func PointDistance(a, b r2.Point) float64 {
	return b.Sub(a).Norm()
}

// Dot returns the dot product of the vectors a->b and b->c
func Dot(a, b, c r2.Point) float64 {
	return b.Sub(a).Dot(c.Sub(b))
}

// Cross returns the z component of the cross product of a->b and a->c
func Cross(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// PointSegmentDistance returns the distance from c to the line through a
// and b. When segment is true the distance is measured to the segment
// a-b instead, clamping to the nearer endpoint.
func PointSegmentDistance(a, b, c r2.Point, segment bool) float64 {
	if a == b {
		return PointDistance(a, c)
	}
	if segment {
		if Dot(a, b, c) > 0 {
			return PointDistance(b, c)
		}
		if Dot(b, a, c) > 0 {
			return PointDistance(a, c)
		}
	}
	return math.Abs(Cross(a, b, c)) / PointDistance(a, b)
}
