// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/render"
)

// Camera converts between world coordinates and engo's screen space,
// which has its origin at the top-left corner with y growing downward.
// Scrolling is owned by the shared render.Viewport.
type Camera struct {
	view *render.Viewport
}

// NewCamera creates a camera over view
func NewCamera(view *render.Viewport) *Camera {
	return &Camera{view: view}
}

// Viewport returns the viewport the camera reads
func (c *Camera) Viewport() *render.Viewport {
	return c.view
}

// WorldToScreen converts a world point to engo screen coordinates
func (c *Camera) WorldToScreen(p r2.Point) engo.Point {
	return c.OverlayToScreen(c.view.ToScreen(p))
}

// BackgroundToScreen converts a background point, scrolled with parallax
func (c *Camera) BackgroundToScreen(p r2.Point) engo.Point {
	return c.OverlayToScreen(c.view.Background(p))
}

// OverlayToScreen converts a point already in viewport screen space
func (c *Camera) OverlayToScreen(p r2.Point) engo.Point {
	q := c.view.Flip(p)
	return engo.Point{X: float32(q.X), Y: float32(q.Y)}
}

// ScreenToWorld converts engo screen coordinates back to the world
func (c *Camera) ScreenToWorld(p engo.Point) r2.Point {
	q := c.view.Flip(r2.Point{X: float64(p.X), Y: float64(p.Y)})
	return q.Sub(c.view.Offset)
}
