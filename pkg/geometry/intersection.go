// pkg/geometry/intersection.go
package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// boxTolerance absorbs rounding in the computed crossing so that points on
// axis-aligned segments, whose bounding box has zero width or height, still
// count as inside
const boxTolerance = 1e-9

// line is a*x + b*y = c
type line struct {
	a, b, c float64
}

func lineThrough(p1, p2 r2.Point) line {
	a := p2.Y - p1.Y
	b := p1.X - p2.X
	return line{a: a, b: b, c: a*p1.X + b*p1.Y}
}

// SegmentIntersectionExact returns the point where segments pa1-pa2 and
// pb1-pb2 cross. Parallel or collinear segments never intersect.
func SegmentIntersectionExact(pa1, pa2, pb1, pb2 r2.Point) (r2.Point, bool) {
	la := lineThrough(pa1, pa2)
	lb := lineThrough(pb1, pb2)

	det := la.a*lb.b - lb.a*la.b
	if det == 0 {
		return r2.Point{}, false
	}

	p := r2.Point{
		X: (lb.b*la.c - la.b*lb.c) / det,
		Y: (la.a*lb.c - lb.a*la.c) / det,
	}
	if !r2.RectFromPoints(pa1, pa2).ExpandedByMargin(boxTolerance).ContainsPoint(p) ||
		!r2.RectFromPoints(pb1, pb2).ExpandedByMargin(boxTolerance).ContainsPoint(p) {
		return r2.Point{}, false
	}
	return p, true
}

// SegmentIntersection is SegmentIntersectionExact with the coordinates
// truncated toward zero, matching pixel-space callers.
func SegmentIntersection(pa1, pa2, pb1, pb2 r2.Point) (r2.Point, bool) {
	p, ok := SegmentIntersectionExact(pa1, pa2, pb1, pb2)
	if !ok {
		return r2.Point{}, false
	}
	return r2.Point{X: truncate(p.X), Y: truncate(p.Y)}, true
}

// truncate drops the fraction of v toward zero. Values within boxTolerance
// of an integer snap to it first, so 49.99999999999999 reads as 50.
func truncate(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < boxTolerance {
		return r
	}
	return math.Trunc(v)
}

// RectangleBoundaryIntersection returns where segment p1-p2 crosses the
// border of the rectangle with corner (x, y) and size w by h. Edges are
// tested top, right, bottom, left and the first hit wins. The hit is
// truncated to whole pixels like SegmentIntersection; fractional inputs
// are accepted.
func RectangleBoundaryIntersection(x, y, w, h float64, p1, p2 r2.Point) (r2.Point, bool) {
	tl := r2.Point{X: x, Y: y}
	tr := r2.Point{X: x + w, Y: y}
	br := r2.Point{X: x + w, Y: y + h}
	bl := r2.Point{X: x, Y: y + h}

	edges := [4][2]r2.Point{
		{tl, tr},
		{tr, br},
		{br, bl},
		{bl, tl},
	}
	for _, edge := range edges {
		if p, ok := SegmentIntersection(edge[0], edge[1], p1, p2); ok {
			return p, true
		}
	}
	return r2.Point{}, false
}
