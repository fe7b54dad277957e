// pkg/geometry/vector_test.go
package geometry

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

const epsilon = 1e-9

func TestUnitVector(t *testing.T) {
	t.Run("normalized direction", func(t *testing.T) {
		u := UnitVector(r2.Point{X: 1, Y: 1}, r2.Point{X: 4, Y: 5})
		if math.Abs(u.X-0.6) > epsilon || math.Abs(u.Y-0.8) > epsilon {
			t.Errorf("UnitVector() = %v, want (0.6, 0.8)", u)
		}
		if math.Abs(u.Norm()-1) > epsilon {
			t.Errorf("UnitVector() length = %v, want 1", u.Norm())
		}
	})

	t.Run("coincident points give zero vector", func(t *testing.T) {
		u := UnitVector(r2.Point{X: 2, Y: 2}, r2.Point{X: 2, Y: 2})
		if u != (r2.Point{}) {
			t.Errorf("UnitVector() = %v, want zero vector", u)
		}
	})
}

func TestDotCross(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 10, Y: 0}
	c := r2.Point{X: 15, Y: 3}

	if got := Dot(a, b, c); got != 50 {
		t.Errorf("Dot() = %v, want 50", got)
	}
	if got := Cross(a, b, c); got != 30 {
		t.Errorf("Cross() = %v, want 30", got)
	}
	if got := Cross(a, c, b); got != -30 {
		t.Errorf("Cross() reversed = %v, want -30", got)
	}
}

func TestPointSegmentDistance(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 10, Y: 0}

	tests := []struct {
		name     string
		a, b, c  r2.Point
		segment  bool
		expected float64
	}{
		{"perpendicular foot inside", a, b, r2.Point{X: 5, Y: 5}, true, 5},
		{"beyond b clamps to b", a, b, r2.Point{X: 15, Y: 0}, true, 5},
		{"before a clamps to a", a, b, r2.Point{X: -3, Y: 4}, true, 5},
		{"infinite line ignores endpoints", a, b, r2.Point{X: 15, Y: 3}, false, 3},
		{"collinear point inside diagonal", r2.Point{}, r2.Point{X: 10, Y: 10}, r2.Point{X: 3, Y: 3}, true, 0},
		{"collinear point inside horizontal", a, b, r2.Point{X: 5, Y: 0}, true, 0},
		{"degenerate segment", r2.Point{X: 1, Y: 1}, r2.Point{X: 1, Y: 1}, r2.Point{X: 4, Y: 5}, true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointSegmentDistance(tt.a, tt.b, tt.c, tt.segment)
			if math.Abs(got-tt.expected) > epsilon {
				t.Errorf("PointSegmentDistance() = %v, want %v", got, tt.expected)
			}
		})
	}
}
