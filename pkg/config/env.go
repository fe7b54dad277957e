// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnvOverrides
const (
	EnvSeed             = "GRAVITY_SEED"
	EnvGravity          = "GRAVITY_GRAVITY"
	EnvThrustPower      = "GRAVITY_THRUST_POWER"
	EnvMaxTicksPerFrame = "GRAVITY_MAX_TICKS_PER_FRAME"
	EnvLevelMode        = "GRAVITY_LEVEL_MODE"
	EnvPlanets          = "GRAVITY_PLANETS"
	EnvWaypoints        = "GRAVITY_WAYPOINTS"
)

// LoadConfigFromEnv returns the default configuration with environment
// overrides applied.
func LoadConfigFromEnv() (*GameConfig, error) {
	config := DefaultConfig()
	if err := ApplyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnvOverrides overwrites fields of config from GRAVITY_* variables
// that are set. A malformed value is an error.
func ApplyEnvOverrides(config *GameConfig) error {
	if err := setUint(EnvSeed, &config.Level.Seed); err != nil {
		return err
	}
	if err := setFloat(EnvGravity, &config.Physics.Gravity); err != nil {
		return err
	}
	if err := setFloat(EnvThrustPower, &config.Physics.ThrustPower); err != nil {
		return err
	}
	if err := setInt(EnvMaxTicksPerFrame, &config.Physics.MaxTicksPerFrame); err != nil {
		return err
	}
	if err := setInt(EnvPlanets, &config.Level.Planets); err != nil {
		return err
	}
	if err := setInt(EnvWaypoints, &config.Level.Waypoints); err != nil {
		return err
	}
	if mode, ok := os.LookupEnv(EnvLevelMode); ok && mode != "" {
		config.Level.Mode = mode
	}
	return nil
}

func setFloat(key string, dst *float64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func setInt(key string, dst *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func setUint(key string, dst *uint64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}
