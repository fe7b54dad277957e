// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig wraps every configuration validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Level generation modes
const (
	ModeRandom = "random"
	ModePreset = "preset"
	ModeCustom = "custom"
)

// GameConfig contains configuration for a gravity sandbox session
type GameConfig struct {
	World   WorldConfig   `json:"world"`
	Level   LevelConfig   `json:"level"`
	Physics PhysicsConfig `json:"physics"`
	Display DisplayConfig `json:"display"`
}

// WorldConfig describes the playfield used for level generation
type WorldConfig struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
}

// LevelConfig controls how levels are built on start and reset
type LevelConfig struct {
	Mode            string        `json:"mode"`
	Preset          string        `json:"preset,omitempty"`
	Seed            uint64        `json:"seed"` // 0 picks a fresh seed per level
	Ships           int           `json:"ships"`
	Planets         int           `json:"planets"`
	Waypoints       int           `json:"waypoints"`
	MinPlanetRadius int           `json:"minPlanetRadius"`
	MaxPlanetRadius int           `json:"maxPlanetRadius"`
	WaypointRadius  float64       `json:"waypointRadius"`
	ShipClearance   float64       `json:"shipClearance"`
	MaxAttempts     int           `json:"maxAttempts"`
	Layout          *LayoutConfig `json:"layout,omitempty"`
}

// LayoutConfig is a hand-placed level used by the custom mode
type LayoutConfig struct {
	Ships     []CircleConfig `json:"ships"`
	Planets   []CircleConfig `json:"planets"`
	Waypoints []CircleConfig `json:"waypoints"`
}

// CircleConfig places one entity
type CircleConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r,omitempty"`
}

// PhysicsConfig contains physics-related configuration
type PhysicsConfig struct {
	Gravity          float64 `json:"gravity"`
	ThrustPower      float64 `json:"thrustPower"`
	MaxTicksPerFrame int     `json:"maxTicksPerFrame"` // 0 means unbounded
}

// DisplayConfig contains presentation settings shared by the frontends
type DisplayConfig struct {
	Title         string  `json:"title"`
	ScreenWidth   int     `json:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight"`
	PointerMargin float64 `json:"pointerMargin"`
	OverlayStep   int     `json:"overlayStep"` // 0 disables the gravity overlay
	Stars         int     `json:"stars"`
	Fullscreen    bool    `json:"fullscreen"`
	Mute          bool    `json:"mute"`
}

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default configuration: a random level of five
// planets and five waypoints on a 960x640 field.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Width:   960,
			Height:  640,
			Padding: 25,
		},
		Level: LevelConfig{
			Mode:            ModeRandom,
			Preset:          "level1",
			Ships:           1,
			Planets:         5,
			Waypoints:       5,
			MinPlanetRadius: 30,
			MaxPlanetRadius: 60,
			WaypointRadius:  20,
			ShipClearance:   100,
			MaxAttempts:     10000,
		},
		Physics: PhysicsConfig{
			Gravity:          8e-6,
			ThrustPower:      1e-4,
			MaxTicksPerFrame: 250,
		},
		Display: DisplayConfig{
			Title:         "Gravity",
			ScreenWidth:   960,
			ScreenHeight:  640,
			PointerMargin: 50,
			OverlayStep:   8,
			Stars:         200,
		},
	}
}
