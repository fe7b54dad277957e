// pkg/render/pointer.go
package render

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/geometry"
)

// DefaultPointerMargin is the inset of the pointer rectangle from the
// screen edges
const DefaultPointerMargin = 50

// Pointer marks the screen edge in the direction of an off-screen waypoint
type Pointer struct {
	Ship     entity.ID
	Waypoint entity.ID
	Position r2.Point // screen space
	Angle    float64  // degrees clockwise from the +x axis
}

// Pointers returns one pointer for every ship and waypoint pair whose
// connecting segment crosses the rectangle inset by margin from the
// screen edges. The segment runs from the waypoint to the ship, both
// truncated to whole screen pixels.
func Pointers(v *Viewport, ships []engine.ShipState, waypoints []engine.WaypointState, margin float64) []Pointer {
	x, y := margin, margin
	w, h := v.Width-2*margin, v.Height-2*margin

	var pointers []Pointer
	for _, ship := range ships {
		for _, wp := range waypoints {
			d := wp.Position.Sub(ship.Position)
			angle := -math.Atan2(d.Y, d.X) * 180 / math.Pi

			p2 := truncate(v.ToScreen(ship.Position))
			p1 := truncate(v.ToScreen(wp.Position))
			hit, ok := geometry.RectangleBoundaryIntersection(x, y, w, h, p1, p2)
			if !ok {
				continue
			}
			pointers = append(pointers, Pointer{
				Ship:     ship.ID,
				Waypoint: wp.ID,
				Position: hit,
				Angle:    angle,
			})
		}
	}
	return pointers
}

func truncate(p r2.Point) r2.Point {
	return r2.Point{X: math.Trunc(p.X), Y: math.Trunc(p.Y)}
}
