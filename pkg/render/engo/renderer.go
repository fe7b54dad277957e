// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/render"
)

// Draw layers, back to front
const (
	zStars float32 = iota
	zPlanets
	zWaypoints
	zShips
	zParticles
	zPointers
	zHUD
)

// spriteSink receives sprites for drawing. *common.RenderSystem is the
// production sink.
type spriteSink interface {
	Add(basic *ecs.BasicEntity, rc *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// place centers the sprite at center with the given on-screen size.
// textureSize is the drawable's native size used to derive the scale.
func (s *sprite) place(center engo.Point, size, textureSize, rotation float32) {
	s.Width, s.Height = size, size
	s.Scale = engo.Point{X: size / textureSize, Y: size / textureSize}
	s.Rotation = rotation
	s.SetCenter(center)
}

// spritePool reuses sprites between frames. Sprites not claimed during a
// frame are hidden rather than removed.
type spritePool struct {
	sink  spriteSink
	z     float32
	items []*sprite
	used  int
}

func newSpritePool(sink spriteSink, z float32) *spritePool {
	return &spritePool{sink: sink, z: z}
}

func (p *spritePool) reset() {
	p.used = 0
}

func (p *spritePool) next(d common.Drawable) *sprite {
	if p.used == len(p.items) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		setZIndex(&s.RenderComponent, p.z)
		p.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		p.items = append(p.items, s)
	}
	s := p.items[p.used]
	p.used++
	s.Drawable = d
	s.Hidden = false
	s.Color = color.White
	return s
}

func (p *spritePool) hideUnused() {
	for _, s := range p.items[p.used:] {
		s.Hidden = true
	}
}

func (p *spritePool) removeAll() {
	for _, s := range p.items {
		p.sink.Remove(s.BasicEntity)
	}
	p.items = nil
	p.used = 0
}

// setZIndex orders a sprite. The mailbox that SetZIndex notifies only
// exists once engo is running.
func setZIndex(rc *common.RenderComponent, z float32) {
	if engo.Mailbox != nil {
		rc.SetZIndex(z)
	}
}

// EngoRenderer implements render.Renderer with pooled engo sprites
type EngoRenderer struct {
	camera *Camera
	assets *AssetManager
	hud    *HUDSystem

	stars     *spritePool
	planets   *spritePool
	waypoints *spritePool
	ships     *spritePool
	particles *spritePool
	pointers  *spritePool
}

// NewEngoRenderer creates a renderer that feeds sink
func NewEngoRenderer(sink spriteSink, camera *Camera, assets *AssetManager, hud *HUDSystem) *EngoRenderer {
	return &EngoRenderer{
		camera:    camera,
		assets:    assets,
		hud:       hud,
		stars:     newSpritePool(sink, zStars),
		planets:   newSpritePool(sink, zPlanets),
		waypoints: newSpritePool(sink, zWaypoints),
		ships:     newSpritePool(sink, zShips),
		particles: newSpritePool(sink, zParticles),
		pointers:  newSpritePool(sink, zPointers),
	}
}

func (r *EngoRenderer) pools() []*spritePool {
	return []*spritePool{r.stars, r.planets, r.waypoints, r.ships, r.particles, r.pointers}
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for _, p := range r.pools() {
		p.reset()
	}
}

// Present implements entity.Renderer. The render system draws on its own;
// this only hides sprites left over from earlier frames.
func (r *EngoRenderer) Present() {
	for _, p := range r.pools() {
		p.hideUnused()
	}
}

// Close removes every sprite from the sink
func (r *EngoRenderer) Close() {
	for _, p := range r.pools() {
		p.removeAll()
	}
	r.hud.Close()
}

// RenderShip implements entity.Renderer
func (r *EngoRenderer) RenderShip(ship *entity.Ship) {
	s := r.ships.next(r.assets.ShipSprite(ship.Thrusting))
	size := float32(2 * ship.Body().Radius)
	s.place(r.camera.WorldToScreen(ship.Position()), size, shipTextureSize, float32(ship.Heading))
}

// RenderPlanet implements entity.Renderer
func (r *EngoRenderer) RenderPlanet(planet *entity.Planet) {
	s := r.planets.next(r.assets.PlanetSprite(planet.Look))
	size := float32(2 * planet.Radius())
	s.place(r.camera.WorldToScreen(planet.Position()), size, planetTextureSize, float32(planet.Rotation))
}

// RenderWaypoint implements entity.Renderer
func (r *EngoRenderer) RenderWaypoint(waypoint *entity.Waypoint) {
	s := r.waypoints.next(r.assets.WaypointSprite())
	size := float32(2 * waypoint.R)
	s.place(r.camera.WorldToScreen(waypoint.Position()), size, waypointTextureSize, 0)
}

// RenderStar implements render.Renderer
func (r *EngoRenderer) RenderStar(star render.Star) {
	s := r.stars.next(r.assets.StarSprite())
	s.place(r.camera.BackgroundToScreen(star.Position), float32(star.Size), starTextureSize, float32(star.Rotation))
	s.Color = color.NRGBA{255, 255, 255, star.Opacity}
}

// RenderBurst implements render.Renderer
func (r *EngoRenderer) RenderBurst(burst *render.Burst) {
	d := r.assets.ParticleSprite(burst.Kind)
	for _, p := range burst.Particles() {
		s := r.particles.next(d)
		size := float32(p.Scale * particleTextureSize)
		s.place(r.camera.WorldToScreen(p.Position), size, particleTextureSize, float32(p.Rotation))
		s.Color = color.NRGBA{255, 255, 255, p.Opacity}
	}
}

// RenderPointer implements render.Renderer
func (r *EngoRenderer) RenderPointer(pointer render.Pointer) {
	s := r.pointers.next(r.assets.PointerSprite())
	s.place(r.camera.OverlayToScreen(pointer.Position), pointerTextureSize, pointerTextureSize, float32(pointer.Angle))
}

// RenderHUD implements render.Renderer
func (r *EngoRenderer) RenderHUD(hud render.HUD) {
	r.hud.Update(hud)
}
