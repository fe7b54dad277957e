// pkg/render/viewport.go
package render

import (
	"math"

	"github.com/golang/geo/r2"
)

// ParallaxFactor divides the scroll offset applied to the star background
const ParallaxFactor = 8

// Viewport scrolls the world so the followed ship stays inside the middle
// third of the screen. Screen coordinates keep the world's orientation:
// origin at the bottom-left corner, y growing upward.
type Viewport struct {
	Width  float64
	Height float64
	Offset r2.Point
}

// NewViewport creates a viewport of the given screen size with no scroll
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// Follow shifts the offset just enough to bring p back inside the middle
// third of the screen on each axis. The position is truncated to whole
// pixels first so the view does not jitter on sub-pixel motion.
func (v *Viewport) Follow(p r2.Point) {
	left := math.Floor(v.Width / 3)
	right := v.Width - left
	bottom := math.Floor(v.Height / 3)
	top := v.Height - bottom

	sx, sy := math.Trunc(p.X), math.Trunc(p.Y)
	dx, dy := v.Offset.X, v.Offset.Y

	if sx+dx < left {
		dx = left - sx
	}
	if sx+dx > right {
		dx = right - sx
	}
	if sy+dy < bottom {
		dy = bottom - sy
	}
	if sy+dy > top {
		dy = top - sy
	}
	v.Offset = r2.Point{X: dx, Y: dy}
}

// Reset returns the view to the unscrolled origin
func (v *Viewport) Reset() {
	v.Offset = r2.Point{}
}

// ToScreen maps a world point to screen space
func (v *Viewport) ToScreen(p r2.Point) r2.Point {
	return p.Add(v.Offset)
}

// Background maps a background point to screen space with parallax
func (v *Viewport) Background(p r2.Point) r2.Point {
	return p.Add(v.Offset.Mul(1.0 / ParallaxFactor))
}

// Flip converts a screen point to raster space, origin top-left, y down
func (v *Viewport) Flip(p r2.Point) r2.Point {
	return r2.Point{X: p.X, Y: v.Height - p.Y}
}

// Visible reports whether a circle in screen space overlaps the screen
func (v *Viewport) Visible(center r2.Point, radius float64) bool {
	return center.X+radius >= 0 && center.X-radius <= v.Width &&
		center.Y+radius >= 0 && center.Y-radius <= v.Height
}
