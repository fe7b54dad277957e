package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/entity"
)

var (
	styleDefault  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleShip     = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleThrust   = styleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	styleWaypoint = styleDefault.Foreground(tcell.ColorAqua)
	stylePointer  = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSmoke    = styleDefault.Foreground(tcell.ColorGray)
	styleSparkle  = styleDefault.Foreground(tcell.ColorSkyblue)
	styleHUD      = styleDefault.Foreground(tcell.ColorLime)
	styleBanner   = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)

	planetStyles = [entity.PlanetLooks]tcell.Style{
		styleDefault.Foreground(tcell.ColorOrange),
		styleDefault.Foreground(tcell.ColorSteelBlue),
		styleDefault.Foreground(tcell.ColorOliveDrab),
		styleDefault.Foreground(tcell.ColorIndianRed),
		styleDefault.Foreground(tcell.ColorPlum),
	}
)

// shipGlyphs indexes the ship heading in 45 degree steps, clockwise from up
var shipGlyphs = [8]rune{'^', '/', '>', '\\', 'v', '/', '<', '\\'}

// pointerGlyphs indexes the pointer angle in 45 degree steps, clockwise
// from the +x axis
var pointerGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// TerminalRenderer draws the playfield as character cells on a tcell
// screen. The whole viewport is scaled to the terminal, so one cell covers
// several world units on each axis.
type TerminalRenderer struct {
	screen tcell.Screen
	view   *Viewport
	width  int
	height int
	scaleX float64 // world units per column
	scaleY float64 // world units per row
}

// NewTerminalRenderer creates a renderer on screen showing view
func NewTerminalRenderer(screen tcell.Screen, view *Viewport) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, view: view}
	r.Resize()
	return r
}

// Resize re-reads the terminal size. Call it after a resize event.
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.scaleX = r.view.Width / float64(max(r.width, 1))
	r.scaleY = r.view.Height / float64(max(r.height, 1))
}

// screenToCell converts a screen point, y up, to a cell column and row
func (r *TerminalRenderer) screenToCell(p r2.Point) (int, int) {
	q := r.view.Flip(p)
	return int(math.Floor(q.X / r.scaleX)), int(math.Floor(q.Y / r.scaleY))
}

// worldToCell converts a world point to a cell column and row
func (r *TerminalRenderer) worldToCell(p r2.Point) (int, int) {
	return r.screenToCell(r.view.ToScreen(p))
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// fillCircle fills every cell whose center lies inside the circle
func (r *TerminalRenderer) fillCircle(center r2.Point, radius float64, ch rune, style tcell.Style) {
	c := r.view.Flip(r.view.ToScreen(center))
	x0 := int(math.Floor((c.X - radius) / r.scaleX))
	x1 := int(math.Ceil((c.X + radius) / r.scaleX))
	y0 := int(math.Floor((c.Y - radius) / r.scaleY))
	y1 := int(math.Ceil((c.Y + radius) / r.scaleY))

	drawn := false
	for y := max(y0, 0); y <= min(y1, r.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.width-1); x++ {
			cx := (float64(x) + 0.5) * r.scaleX
			cy := (float64(y) + 0.5) * r.scaleY
			if math.Hypot(cx-c.X, cy-c.Y) <= radius {
				r.screen.SetContent(x, y, ch, nil, style)
				drawn = true
			}
		}
	}
	// Circles smaller than a cell still get one glyph.
	if !drawn {
		r.set(int(math.Floor(c.X/r.scaleX)), int(math.Floor(c.Y/r.scaleY)), ch, style)
	}
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.screen.Fill(' ', styleDefault)
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderShip implements entity.Renderer
func (r *TerminalRenderer) RenderShip(ship *entity.Ship) {
	style := styleShip
	if ship.Thrusting {
		style = styleThrust
	}
	x, y := r.worldToCell(ship.Position())
	r.set(x, y, shipGlyphs[octant(ship.Heading)], style)
}

// RenderPlanet implements entity.Renderer
func (r *TerminalRenderer) RenderPlanet(planet *entity.Planet) {
	style := planetStyles[planet.Look%entity.PlanetLooks]
	r.fillCircle(planet.Position(), planet.Radius(), '#', style)
}

// RenderWaypoint implements entity.Renderer
func (r *TerminalRenderer) RenderWaypoint(waypoint *entity.Waypoint) {
	r.fillCircle(waypoint.Position(), waypoint.R, 'o', styleWaypoint)
}

// RenderStar implements Renderer
func (r *TerminalRenderer) RenderStar(star Star) {
	ch := '.'
	if star.Opacity > 192 {
		ch = '*'
	}
	x, y := r.screenToCell(r.view.Background(star.Position))
	r.set(x, y, ch, styleDefault.Foreground(tcell.NewRGBColor(int32(star.Opacity), int32(star.Opacity), int32(star.Opacity))))
}

// RenderBurst implements Renderer
func (r *TerminalRenderer) RenderBurst(burst *Burst) {
	ch, style := '*', styleSparkle
	if burst.Kind == BurstSmoke {
		ch, style = '~', styleSmoke
	}
	for _, p := range burst.Particles() {
		if p.Opacity == 0 {
			continue
		}
		x, y := r.worldToCell(p.Position)
		r.set(x, y, ch, style)
	}
}

// RenderPointer implements Renderer
func (r *TerminalRenderer) RenderPointer(pointer Pointer) {
	x, y := r.screenToCell(pointer.Position)
	r.set(x, y, pointerGlyphs[octant(pointer.Angle)], stylePointer)
}

// RenderHUD implements Renderer
func (r *TerminalRenderer) RenderHUD(hud HUD) {
	r.text(1, 0, hud.FuelLabel(), styleHUD)
	clock := hud.TimeLabel()
	r.text(r.width-len(clock)-1, 0, clock, styleHUD)
	if banner := hud.StatusLabel(); banner != "" {
		r.text((r.width-len(banner))/2, r.height/2, banner, styleBanner)
	}
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, ch, style)
	}
}

// octant maps an angle in degrees to one of eight 45 degree sectors
func octant(deg float64) int {
	i := int(math.Round(deg/45)) % 8
	if i < 0 {
		i += 8
	}
	return i
}
