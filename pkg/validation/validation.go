// Package validation checks configuration and level layouts before they
// reach the simulation, and throttles player commands.
package validation

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-gravity/pkg/config"
)

// FieldError describes one invalid configuration field
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig reports every invalid field of cfg. The returned error
// wraps config.ErrInvalidConfig and one *FieldError per problem.
func ValidateConfig(cfg *config.GameConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", config.ErrInvalidConfig)
	}

	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		add("world", "size must be positive, got %vx%v", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.Padding < 0 {
		add("world.padding", "must not be negative, got %v", cfg.World.Padding)
	}

	errs = append(errs, validateLevel(&cfg.Level)...)

	if cfg.Physics.Gravity < 0 {
		add("physics.gravity", "must not be negative, got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.ThrustPower < 0 {
		add("physics.thrustPower", "must not be negative, got %v", cfg.Physics.ThrustPower)
	}
	if cfg.Physics.MaxTicksPerFrame < 0 {
		add("physics.maxTicksPerFrame", "must not be negative, got %d", cfg.Physics.MaxTicksPerFrame)
	}

	if cfg.Display.ScreenWidth <= 0 || cfg.Display.ScreenHeight <= 0 {
		add("display", "screen size must be positive, got %dx%d", cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	}
	if cfg.Display.OverlayStep < 0 {
		add("display.overlayStep", "must not be negative, got %d", cfg.Display.OverlayStep)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", config.ErrInvalidConfig, errors.Join(errs...))
}

func validateLevel(lc *config.LevelConfig) []error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	switch lc.Mode {
	case config.ModeRandom:
		if lc.Ships < 0 || lc.Planets < 0 || lc.Waypoints < 0 {
			add("level", "entity counts must not be negative")
		}
		if lc.MinPlanetRadius < 0 {
			add("level.minPlanetRadius", "must not be negative, got %d", lc.MinPlanetRadius)
		}
		if lc.MinPlanetRadius > lc.MaxPlanetRadius {
			add("level.maxPlanetRadius", "must be at least minPlanetRadius (%d), got %d", lc.MinPlanetRadius, lc.MaxPlanetRadius)
		}
		if lc.WaypointRadius < 0 {
			add("level.waypointRadius", "must not be negative, got %v", lc.WaypointRadius)
		}
		if lc.ShipClearance < 0 {
			add("level.shipClearance", "must not be negative, got %v", lc.ShipClearance)
		}
		if lc.MaxAttempts <= 0 {
			add("level.maxAttempts", "must be positive, got %d", lc.MaxAttempts)
		}
	case config.ModePreset:
		if lc.Preset == "" {
			add("level.preset", "required in preset mode")
		}
	case config.ModeCustom:
		if lc.Layout == nil {
			add("level.layout", "required in custom mode")
			break
		}
		for i, c := range lc.Layout.Ships {
			errs = appendIf(errs, ValidateCircle(fmt.Sprintf("level.layout.ships[%d]", i), c))
		}
		for i, c := range lc.Layout.Planets {
			errs = appendIf(errs, ValidateCircle(fmt.Sprintf("level.layout.planets[%d]", i), c))
		}
		for i, c := range lc.Layout.Waypoints {
			errs = appendIf(errs, ValidateCircle(fmt.Sprintf("level.layout.waypoints[%d]", i), c))
		}
	default:
		add("level.mode", "unknown mode %q", lc.Mode)
	}
	return errs
}

// ValidateCircle checks a hand-placed entity
func ValidateCircle(field string, c config.CircleConfig) error {
	if c.R < 0 {
		return &FieldError{Field: field, Message: fmt.Sprintf("radius must not be negative, got %v", c.R)}
	}
	return nil
}

func appendIf(errs []error, err error) []error {
	if err != nil {
		return append(errs, err)
	}
	return errs
}
