// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/render"
)

// Texture sizes in pixels. Sprites are scaled from these to world size.
const (
	shipTextureSize     = 32
	planetTextureSize   = 128
	waypointTextureSize = 64
	starTextureSize     = 16
	particleTextureSize = 32
	pointerTextureSize  = 24
)

const fontURL = "goregular.ttf"

// planetColors is the palette indexed by entity.Planet.Look
var planetColors = [entity.PlanetLooks]color.NRGBA{
	{214, 140, 69, 255},
	{84, 130, 196, 255},
	{118, 158, 84, 255},
	{196, 92, 84, 255},
	{170, 120, 190, 255},
}

// AssetManager builds the game's textures from generated images
type AssetManager struct {
	shipSprites     [2]common.Drawable // engine off, engine on
	planetSprites   [entity.PlanetLooks]common.Drawable
	waypointSprite  common.Drawable
	starSprite      common.Drawable
	particleSprites [2]common.Drawable // indexed by render.BurstKind
	pointerSprite   common.Drawable

	font *common.Font
}

// NewAssetManager creates an empty asset manager. Drawables stay nil until
// LoadAssets runs inside a live engo context.
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// LoadAssets uploads every texture and prepares the HUD font. It needs the
// GL context that engo.Run provides.
func (am *AssetManager) LoadAssets() error {
	am.shipSprites[0] = toTexture(shipImage(false))
	am.shipSprites[1] = toTexture(shipImage(true))
	for i, c := range planetColors {
		am.planetSprites[i] = toTexture(discImage(planetTextureSize, c))
	}
	am.waypointSprite = toTexture(ringImage(waypointTextureSize, color.NRGBA{64, 200, 255, 255}))
	am.starSprite = toTexture(starImage(starTextureSize))
	am.particleSprites[render.BurstStars] = toTexture(starImage(particleTextureSize))
	am.particleSprites[render.BurstSmoke] = toTexture(discImage(particleTextureSize, color.NRGBA{160, 160, 160, 200}))
	am.pointerSprite = toTexture(arrowImage(pointerTextureSize))

	return am.loadFont()
}

// loadFont registers the embedded Go font with engo's file loader
func (am *AssetManager) loadFont() error {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return err
	}
	fnt := &common.Font{
		URL:  fontURL,
		FG:   color.White,
		Size: 18,
	}
	if err := fnt.CreatePreloaded(); err != nil {
		return err
	}
	am.font = fnt
	return nil
}

func toTexture(img *image.NRGBA) common.Drawable {
	return common.NewTextureSingle(common.NewImageObject(img))
}

// newImage creates a transparent square image
func newImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	return img
}

// fillWhere colors every pixel whose center satisfies inside, given in
// coordinates relative to the image center
func fillWhere(img *image.NRGBA, c color.NRGBA, inside func(x, y float64) bool) {
	b := img.Bounds()
	half := float64(b.Dx()) / 2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if inside(float64(x)+0.5-half, float64(y)+0.5-half) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// discImage draws a filled circle touching the image edges
func discImage(size int, c color.NRGBA) *image.NRGBA {
	img := newImage(size)
	r := float64(size) / 2
	fillWhere(img, c, func(x, y float64) bool {
		return math.Hypot(x, y) <= r
	})
	return img
}

// ringImage draws a circle outline an eighth of the radius thick
func ringImage(size int, c color.NRGBA) *image.NRGBA {
	img := newImage(size)
	outer := float64(size) / 2
	inner := outer * 7 / 8
	fillWhere(img, c, func(x, y float64) bool {
		d := math.Hypot(x, y)
		return d <= outer && d >= inner
	})
	return img
}

// starImage draws a four-pointed star
func starImage(size int) *image.NRGBA {
	img := newImage(size)
	r := float64(size) / 2
	fillWhere(img, color.NRGBA{255, 255, 255, 255}, func(x, y float64) bool {
		ax, ay := math.Abs(x), math.Abs(y)
		return math.Sqrt(ax)+math.Sqrt(ay) <= math.Sqrt(r)
	})
	return img
}

// shipImage draws the ship as a triangle pointing up, with an exhaust
// flame below it when thrusting
func shipImage(thrusting bool) *image.NRGBA {
	img := newImage(shipTextureSize)
	r := float64(shipTextureSize) / 2

	if thrusting {
		fillWhere(img, color.NRGBA{255, 140, 40, 255}, func(x, y float64) bool {
			return y > r/2 && math.Abs(x) < (r-y)/2
		})
	}
	fillWhere(img, color.NRGBA{230, 230, 240, 255}, func(x, y float64) bool {
		// apex at the top, base a quarter below center
		return y >= -r && y <= r/2 && math.Abs(x) <= (y+r)/3
	})
	return img
}

// arrowImage draws an arrow head pointing along +x
func arrowImage(size int) *image.NRGBA {
	img := newImage(size)
	r := float64(size) / 2
	fillWhere(img, color.NRGBA{255, 220, 64, 255}, func(x, y float64) bool {
		return x >= -r/2 && x <= r && math.Abs(y) <= (r-x)/2
	})
	return img
}

// ShipSprite returns the ship texture with or without exhaust
func (am *AssetManager) ShipSprite(thrusting bool) common.Drawable {
	if thrusting {
		return am.shipSprites[1]
	}
	return am.shipSprites[0]
}

// PlanetSprite returns the texture for a planet look
func (am *AssetManager) PlanetSprite(look int) common.Drawable {
	if look < 0 {
		look = -look
	}
	return am.planetSprites[look%entity.PlanetLooks]
}

// WaypointSprite returns the waypoint ring texture
func (am *AssetManager) WaypointSprite() common.Drawable {
	return am.waypointSprite
}

// StarSprite returns the background star texture
func (am *AssetManager) StarSprite() common.Drawable {
	return am.starSprite
}

// ParticleSprite returns the texture for a burst kind
func (am *AssetManager) ParticleSprite(kind render.BurstKind) common.Drawable {
	if kind == render.BurstSmoke {
		return am.particleSprites[render.BurstSmoke]
	}
	return am.particleSprites[render.BurstStars]
}

// PointerSprite returns the off-screen pointer texture
func (am *AssetManager) PointerSprite() common.Drawable {
	return am.pointerSprite
}

// Font returns the HUD font, nil before LoadAssets
func (am *AssetManager) Font() *common.Font {
	return am.font
}
