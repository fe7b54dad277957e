// pkg/render/ebiten/renderer.go
package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/render"
)

// Debug font cell size used by ebitenutil.DebugPrintAt
const (
	glyphWidth  = 6
	glyphHeight = 16
)

const (
	overlayAlpha   = 0.35
	particleSize   = 32
	pointerLength  = 20
	pointerBarb    = 8
	hudMargin      = 8
	waypointStroke = 3
)

var (
	colorShip     = color.NRGBA{230, 230, 240, 255}
	colorFlame    = color.NRGBA{255, 120, 40, 255}
	colorWaypoint = color.NRGBA{64, 224, 208, 255}
	colorPointer  = color.NRGBA{255, 220, 64, 255}
	colorSparkle  = color.NRGBA{135, 206, 235, 255}
	colorSmoke    = color.NRGBA{150, 150, 150, 255}
	colorBanner   = color.NRGBA{0, 0, 0, 160}

	planetColors = [entity.PlanetLooks]color.NRGBA{
		{214, 140, 69, 255},
		{84, 130, 196, 255},
		{118, 158, 84, 255},
		{196, 92, 84, 255},
		{170, 120, 190, 255},
	}
)

// EbitenRenderer draws a frame onto the ebiten screen image with vector
// shapes. The target is swapped in by Game.Draw every frame.
type EbitenRenderer struct {
	view        *render.Viewport
	target      *ebiten.Image
	overlay     image.Image
	background  *ebiten.Image
	worldHeight float64
}

// NewEbitenRenderer creates a renderer showing view
func NewEbitenRenderer(view *render.Viewport) *EbitenRenderer {
	return &EbitenRenderer{view: view}
}

// SetOverlay sets an image drawn under the playfield, typically the
// gravity map of the current level. Its top row is world y = worldHeight.
// A nil image removes the overlay.
func (r *EbitenRenderer) SetOverlay(img image.Image, worldHeight float64) {
	r.overlay = img
	r.worldHeight = worldHeight
	if r.background != nil {
		r.background.Deallocate()
		r.background = nil
	}
}

// pixel converts a screen point, y up, to target pixel coordinates
func (r *EbitenRenderer) pixel(p r2.Point) (float32, float32) {
	q := r.view.Flip(p)
	return float32(q.X), float32(q.Y)
}

// worldPixel converts a world point to target pixel coordinates
func (r *EbitenRenderer) worldPixel(p r2.Point) (float32, float32) {
	return r.pixel(r.view.ToScreen(p))
}

// overlayOrigin returns where the overlay's top-left pixel lands
func (r *EbitenRenderer) overlayOrigin() (float64, float64) {
	q := r.view.Flip(r.view.ToScreen(r2.Point{X: 0, Y: r.worldHeight}))
	return q.X, q.Y
}

// Clear implements entity.Renderer
func (r *EbitenRenderer) Clear() {
	r.target.Fill(color.Black)
	if r.overlay == nil {
		return
	}
	if r.background == nil {
		r.background = ebiten.NewImageFromImage(r.overlay)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.overlayOrigin())
	op.ColorScale.ScaleAlpha(overlayAlpha)
	r.target.DrawImage(r.background, op)
}

// Present implements entity.Renderer. ebiten shows the screen image once
// Draw returns.
func (r *EbitenRenderer) Present() {}

// RenderShip implements entity.Renderer
func (r *EbitenRenderer) RenderShip(ship *entity.Ship) {
	x, y := r.worldPixel(ship.Position())
	radius := float32(ship.Body().Radius)
	nose := headingVector(ship.Heading)

	if ship.Thrusting {
		fx := x - float32(nose.X)*radius
		fy := y - float32(nose.Y)*radius
		vector.DrawFilledCircle(r.target, fx, fy, radius/2, colorFlame, true)
	}
	vector.DrawFilledCircle(r.target, x, y, radius*0.6, colorShip, true)
	vector.StrokeLine(r.target, x, y, x+float32(nose.X)*radius, y+float32(nose.Y)*radius, 3, colorShip, true)
}

// RenderPlanet implements entity.Renderer
func (r *EbitenRenderer) RenderPlanet(planet *entity.Planet) {
	center := r.view.ToScreen(planet.Position())
	if !r.view.Visible(center, planet.Radius()) {
		return
	}
	x, y := r.pixel(center)
	vector.DrawFilledCircle(r.target, x, y, float32(planet.Radius()), planetColor(planet.Look), true)
}

// RenderWaypoint implements entity.Renderer
func (r *EbitenRenderer) RenderWaypoint(waypoint *entity.Waypoint) {
	x, y := r.worldPixel(waypoint.Position())
	vector.StrokeCircle(r.target, x, y, float32(waypoint.R), waypointStroke, colorWaypoint, true)
}

// RenderStar implements render.Renderer
func (r *EbitenRenderer) RenderStar(star render.Star) {
	x, y := r.pixel(r.view.Background(star.Position))
	size := float32(star.Size) / 4
	c := color.NRGBA{255, 255, 255, star.Opacity}
	vector.DrawFilledRect(r.target, x-size/2, y-size/2, size, size, c, false)
}

// RenderBurst implements render.Renderer
func (r *EbitenRenderer) RenderBurst(burst *render.Burst) {
	base := colorSparkle
	if burst.Kind == render.BurstSmoke {
		base = colorSmoke
	}
	for _, p := range burst.Particles() {
		if p.Opacity == 0 {
			continue
		}
		x, y := r.worldPixel(p.Position)
		radius := float32(p.Scale * particleSize / 2)
		vector.DrawFilledCircle(r.target, x, y, max(radius, 1), withAlpha(base, p.Opacity), true)
	}
}

// RenderPointer implements render.Renderer
func (r *EbitenRenderer) RenderPointer(pointer render.Pointer) {
	lines := arrowLines(r.view.Flip(pointer.Position), pointer.Angle)
	tip := lines[0]
	for _, end := range lines[1:] {
		vector.StrokeLine(r.target, float32(tip.X), float32(tip.Y), float32(end.X), float32(end.Y), 2, colorPointer, true)
	}
}

// RenderHUD implements render.Renderer
func (r *EbitenRenderer) RenderHUD(hud render.HUD) {
	width, height := int(r.view.Width), int(r.view.Height)

	ebitenutil.DebugPrintAt(r.target, hud.FuelLabel(), hudMargin, hudMargin)
	clock := hud.TimeLabel()
	ebitenutil.DebugPrintAt(r.target, clock, width-textWidth(clock)-hudMargin, hudMargin)

	banner := hud.StatusLabel()
	if banner == "" {
		return
	}
	x := (width - textWidth(banner)) / 2
	y := height/2 - glyphHeight/2
	vector.DrawFilledRect(r.target, float32(x-hudMargin), float32(y-hudMargin/2),
		float32(textWidth(banner)+2*hudMargin), glyphHeight+hudMargin, colorBanner, false)
	ebitenutil.DebugPrintAt(r.target, banner, x, y)
}

// headingVector returns the unit nose direction in pixel space for a
// heading in degrees clockwise from up
func headingVector(deg float64) r2.Point {
	rad := deg * math.Pi / 180
	return r2.Point{X: math.Sin(rad), Y: -math.Cos(rad)}
}

// arrowLines returns the tip of a pointer followed by the ends of its
// shaft and two barbs, all in pixel space. angle is degrees clockwise
// from +x, which is counterclockwise-positive once y points down.
func arrowLines(tip r2.Point, angle float64) [4]r2.Point {
	along := func(deg, length float64) r2.Point {
		rad := deg * math.Pi / 180
		return tip.Sub(r2.Point{X: math.Cos(rad), Y: math.Sin(rad)}.Mul(length))
	}
	return [4]r2.Point{
		tip,
		along(angle, pointerLength),
		along(angle+30, pointerBarb),
		along(angle-30, pointerBarb),
	}
}

func planetColor(look int) color.NRGBA {
	i := look % entity.PlanetLooks
	if i < 0 {
		i += entity.PlanetLooks
	}
	return planetColors[i]
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

func textWidth(s string) int {
	return len([]rune(s)) * glyphWidth
}
