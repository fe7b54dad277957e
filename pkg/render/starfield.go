// pkg/render/starfield.go
package render

import (
	"math/rand/v2"

	"github.com/golang/geo/r2"
)

// Starfield defaults
const (
	DefaultMinStarSize = 4
	DefaultMaxStarSize = 14
	starPadding        = 100
)

// Star is one background star. Position is in background space and is
// scrolled with Viewport.Background.
type Star struct {
	Position r2.Point
	Size     float64
	Rotation float64
	Opacity  uint8
}

// NewStarfield scatters count stars over the screen plus a margin so that
// parallax scrolling does not reveal empty edges. Smaller stars are
// dimmer: opacity runs from 64 at minSize to 255 at maxSize.
func NewStarfield(rng *rand.Rand, count, minSize, maxSize int, width, height float64) []Star {
	if maxSize < minSize {
		minSize, maxSize = maxSize, minSize
	}
	w, h := int(width), int(height)

	stars := make([]Star, count)
	for i := range stars {
		size := minSize + rng.IntN(maxSize-minSize+1)
		p := 1.0
		if maxSize > minSize {
			p = float64(size-minSize) / float64(maxSize-minSize)
		}
		stars[i] = Star{
			Position: r2.Point{
				X: float64(rng.IntN(w+2*starPadding+1) - starPadding),
				Y: float64(rng.IntN(h+2*starPadding+1) - starPadding),
			},
			Size:     float64(size),
			Rotation: float64(rng.IntN(360)),
			Opacity:  uint8((255-64)*p + 64),
		}
	}
	return stars
}
