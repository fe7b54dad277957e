// pkg/render/ebiten/input.go
package ebiten

import (
	"time"

	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/physics"
	"github.com/opd-ai/go-gravity/pkg/validation"
)

// Resets allowed per window while SPACE is hammered
const (
	resetBurst  = 2
	resetWindow = time.Second
)

// thrustKeys binds the arrow keys, and WASD as an alternative, to thrust
// directions
var thrustKeys = []struct {
	keys []ebiten.Key
	dir  r2.Point
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, physics.Up},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, physics.Down},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, physics.Left},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, physics.Right},
}

// keyReader reports keyboard state
type keyReader interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

// ebitenKeys reads ebiten's keyboard state for the current tick
type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenKeys) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Input maps the keyboard onto a ThrustInput once per tick
type Input struct {
	thrust  *engine.ThrustInput
	keys    keyReader
	limiter *validation.RateLimiter
}

// NewInput creates an Input reading the live keyboard into thrust
func NewInput(thrust *engine.ThrustInput) *Input {
	return newInput(thrust, ebitenKeys{})
}

func newInput(thrust *engine.ThrustInput, keys keyReader) *Input {
	return &Input{
		thrust:  thrust,
		keys:    keys,
		limiter: validation.NewRateLimiter(resetBurst, resetWindow),
	}
}

// Poll updates the held thrust directions and reports whether a reset or
// quit was requested this tick
func (in *Input) Poll() (reset, quit bool) {
	for _, binding := range thrustKeys {
		down := false
		for _, key := range binding.keys {
			down = down || in.keys.Pressed(key)
		}
		in.thrust.Set(binding.dir, down)
	}

	reset = in.keys.JustPressed(ebiten.KeySpace) && in.limiter.Allow("reset")
	quit = in.keys.JustPressed(ebiten.KeyEscape)
	return reset, quit
}
