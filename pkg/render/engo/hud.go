// pkg/render/engo/hud.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravity/pkg/render"
)

// hudMargin is the inset of the HUD labels from the screen corners
const hudMargin = 10

// timeLabelWidth reserves room for the right-aligned clock
const timeLabelWidth = 120

// HUDSystem shows the fuel counter, the run clock and the end-of-level
// banner as text sprites
type HUDSystem struct {
	sink   spriteSink
	font   *common.Font
	width  float32
	height float32

	fuel   *sprite
	clock  *sprite
	banner *sprite
}

// NewHUDSystem creates the HUD labels for a screen of the given size. A
// nil font is allowed in tests where nothing is drawn.
func NewHUDSystem(sink spriteSink, font *common.Font, width, height float32) *HUDSystem {
	hud := &HUDSystem{
		sink:   sink,
		font:   font,
		width:  width,
		height: height,
	}
	hud.fuel = hud.newLabel(engo.Point{X: hudMargin, Y: hudMargin})
	hud.clock = hud.newLabel(engo.Point{X: width - timeLabelWidth, Y: hudMargin})
	hud.banner = hud.newLabel(engo.Point{X: width / 4, Y: height / 2})
	hud.banner.Hidden = true
	return hud
}

func (hud *HUDSystem) newLabel(pos engo.Point) *sprite {
	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.Drawable = common.Text{Font: hud.font}
	s.Position = pos
	s.Scale = engo.Point{X: 1, Y: 1}
	setZIndex(&s.RenderComponent, zHUD)
	hud.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

// Update rewrites the labels from h
func (hud *HUDSystem) Update(h render.HUD) {
	hud.fuel.Drawable = common.Text{Font: hud.font, Text: h.FuelLabel()}
	hud.clock.Drawable = common.Text{Font: hud.font, Text: h.TimeLabel()}

	banner := h.StatusLabel()
	hud.banner.Hidden = banner == ""
	hud.banner.Drawable = common.Text{Font: hud.font, Text: banner}
}

// Text returns the current fuel, clock and banner strings
func (hud *HUDSystem) Text() (fuel, clock, banner string) {
	return labelText(hud.fuel), labelText(hud.clock), labelText(hud.banner)
}

func labelText(s *sprite) string {
	if t, ok := s.Drawable.(common.Text); ok {
		return t.Text
	}
	return ""
}

// Close removes the labels from the sink
func (hud *HUDSystem) Close() {
	for _, s := range []*sprite{hud.fuel, hud.clock, hud.banner} {
		hud.sink.Remove(s.BasicEntity)
	}
}
