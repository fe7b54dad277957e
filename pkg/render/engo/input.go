// pkg/render/engo/input.go
package engo

import (
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/physics"
	"github.com/opd-ai/go-gravity/pkg/validation"
)

// Button names registered with engo.Input
const (
	ButtonThrustUp    = "thrustUp"
	ButtonThrustDown  = "thrustDown"
	ButtonThrustLeft  = "thrustLeft"
	ButtonThrustRight = "thrustRight"
	ButtonReset       = "reset"
	ButtonQuit        = "quit"
)

// Resets allowed per window while SPACE is hammered or held
const (
	resetBurst  = 2
	resetWindow = time.Second
)

var thrustButtons = map[string]r2.Point{
	ButtonThrustUp:    physics.Up,
	ButtonThrustDown:  physics.Down,
	ButtonThrustLeft:  physics.Left,
	ButtonThrustRight: physics.Right,
}

// buttonReader reports button state by name
type buttonReader interface {
	Down(name string) bool
	JustPressed(name string) bool
}

// engoButtons reads engo's global input manager
type engoButtons struct{}

func (engoButtons) Down(name string) bool {
	return engo.Input.Button(name).Down()
}

func (engoButtons) JustPressed(name string) bool {
	return engo.Input.Button(name).JustPressed()
}

// InputSystem maps the arrow keys onto a ThrustInput and handles the
// reset and quit keys
type InputSystem struct {
	thrust  *engine.ThrustInput
	buttons buttonReader
	limiter *validation.RateLimiter

	onReset func()
	onQuit  func()
}

// NewInputSystem creates an input system reading engo.Input
func NewInputSystem(thrust *engine.ThrustInput, onReset, onQuit func()) *InputSystem {
	return newInputSystem(thrust, engoButtons{}, onReset, onQuit)
}

func newInputSystem(thrust *engine.ThrustInput, buttons buttonReader, onReset, onQuit func()) *InputSystem {
	return &InputSystem{
		thrust:  thrust,
		buttons: buttons,
		limiter: validation.NewRateLimiter(resetBurst, resetWindow),
		onReset: onReset,
		onQuit:  onQuit,
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update samples the keyboard once per frame
func (is *InputSystem) Update(dt float32) {
	for name, dir := range thrustButtons {
		is.thrust.Set(dir, is.buttons.Down(name))
	}

	if is.buttons.JustPressed(ButtonReset) && is.limiter.Allow(ButtonReset) {
		is.onReset()
	}
	if is.buttons.JustPressed(ButtonQuit) {
		is.onQuit()
	}
}

// SetupInputBindings registers the game's keys with engo
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonThrustUp, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonThrustDown, engo.KeyArrowDown)
	engo.Input.RegisterButton(ButtonThrustLeft, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonThrustRight, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonReset, engo.KeySpace)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}
