// pkg/render/hud.go
package render

import (
	"fmt"
	"time"

	"github.com/opd-ai/go-gravity/pkg/engine"
)

// HUD holds the values shown over the playfield
type HUD struct {
	Fuel    int
	Elapsed time.Duration
	Status  engine.Status
}

// NewHUD reads the HUD values from a snapshot
func NewHUD(state *engine.State) HUD {
	return HUD{
		Fuel:    state.FuelUsage,
		Elapsed: state.Elapsed,
		Status:  state.Status,
	}
}

// FuelLabel formats the fuel counter
func (h HUD) FuelLabel() string {
	return fmt.Sprintf("Fuel: %d", h.Fuel)
}

// TimeLabel formats the run clock in seconds
func (h HUD) TimeLabel() string {
	return fmt.Sprintf("Time: %.1f", h.Elapsed.Seconds())
}

// StatusLabel is the banner shown once the level is over, empty while it
// is still being played
func (h HUD) StatusLabel() string {
	switch h.Status {
	case engine.StatusCompleted:
		return "All waypoints reached! Press SPACE for a new level"
	case engine.StatusFailed:
		return "Ship destroyed. Press SPACE to try again"
	default:
		return ""
	}
}
