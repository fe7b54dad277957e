// Package overlay renders the gravitational field of a level as a
// grayscale heat map.
package overlay

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/golang/geo/r2"
	xdraw "golang.org/x/image/draw"

	"github.com/opd-ai/go-gravity/pkg/level"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// GravityMap samples the field strength of bodies over bounds, one sample
// per step by step cell, and returns an image the size of bounds. World y
// grows upward, so the top image row is the highest world row.
func GravityMap(in *physics.Integrator, bodies []*physics.Body, bounds image.Rectangle, step int) *image.Gray {
	if step < 1 {
		step = 1
	}
	w, h := bounds.Dx(), bounds.Dy()
	cols := w/step + 1
	rows := h/step + 1

	grid := image.NewGray(image.Rect(0, 0, cols, rows))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := r2.Point{
				X: float64(bounds.Min.X + col*step + step/2),
				Y: float64(bounds.Min.Y + row*step + step/2),
			}
			grid.Pix[row*grid.Stride+col] = Intensity(in.FieldAt(center, bodies), in.G)
		}
	}

	full := image.NewGray(image.Rect(0, 0, cols*step, rows*step))
	xdraw.NearestNeighbor.Scale(full, full.Bounds(), grid, grid.Bounds(), xdraw.Src, nil)

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := full.Pix[(h-1-y)*full.Stride:]
		copy(out.Pix[y*out.Stride:y*out.Stride+w], src[:w])
	}
	return out
}

// LevelMap is the gravity map of the planets of lvl over the world
// rectangle of width by height
func LevelMap(in *physics.Integrator, lvl *level.Level, width, height float64, step int) *image.Gray {
	planets := lvl.Planets()
	bodies := make([]*physics.Body, 0, len(planets))
	for _, p := range planets {
		bodies = append(bodies, p.Body())
	}
	return GravityMap(in, bodies, image.Rect(0, 0, int(width), int(height)), step)
}

// Intensity maps a field vector to a gray level: 128 per decade of
// strength above g, clamped to 0..255.
func Intensity(field r2.Point, g float64) uint8 {
	length := field.Norm()
	if length == 0 || g <= 0 {
		return 0
	}
	v := math.Log10(length/g) * 128
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode gravity map: %w", err)
	}
	return nil
}
