package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/logging"
)

func presetConfig() *config.GameConfig {
	cfg := config.DefaultConfig()
	cfg.Level.Mode = config.ModePreset
	cfg.Display.Stars = 10
	return cfg
}

func TestSimulate_Coasting(t *testing.T) {
	sum, err := simulate(presetConfig(), runOptions{
		frames:     50,
		frameDelta: 16 * time.Millisecond,
		untilDone:  true,
	}, logging.Discard())
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	if sum.Frames != 50 || sum.Drawn != 50 {
		t.Errorf("frames = %d, drawn = %d, want 50, 50", sum.Frames, sum.Drawn)
	}
	if sum.Ticks != 800 || sum.Elapsed != 800*time.Millisecond {
		t.Errorf("ticks = %d, elapsed = %v", sum.Ticks, sum.Elapsed)
	}
	if sum.Status != engine.StatusActive || sum.FuelUsage != 0 {
		t.Errorf("status = %v, fuel = %d", sum.Status, sum.FuelUsage)
	}
	if sum.Events[event.LevelStarted] != 1 {
		t.Errorf("LevelStarted published %d times", sum.Events[event.LevelStarted])
	}
}

func TestSimulate_ThrustIntoPlanet(t *testing.T) {
	thrust, err := parseScript("right:1000")
	if err != nil {
		t.Fatalf("parseScript() error = %v", err)
	}

	sum, err := simulate(presetConfig(), runOptions{
		frames:     1000,
		frameDelta: 16 * time.Millisecond,
		thrust:     thrust,
		untilDone:  true,
	}, logging.Discard())
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	if sum.Status != engine.StatusFailed {
		t.Fatalf("status = %v, want failed", sum.Status)
	}
	if sum.Frames >= 1000 {
		t.Errorf("run did not stop at the crash: %d frames", sum.Frames)
	}
	if sum.Events[event.ShipDestroyed] != 1 || sum.Events[event.LevelFailed] != 1 {
		t.Errorf("events = %v", sum.Events)
	}
	if sum.Events[event.WaypointReached] != 0 {
		t.Errorf("reached %d waypoints on the way into a planet", sum.Events[event.WaypointReached])
	}
}

func TestSimulate_WritesOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.png")

	if _, err := simulate(presetConfig(), runOptions{frames: 1, frameDelta: time.Millisecond, overlayPath: path}, logging.Discard()); err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("overlay not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 960 || b.Dy() != 640 {
		t.Errorf("overlay bounds = %v, want 960x640", b)
	}
}

func TestSimulate_BadOverlayPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "overlay.png")

	if _, err := simulate(presetConfig(), runOptions{frames: 1, overlayPath: path}, logging.Discard()); err == nil {
		t.Error("expected an error for an unwritable overlay path")
	}
}

func TestLoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv(config.EnvPlanets, "3")

	cfg, err := loadConfig(context.Background(), logging.Discard(), filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Level.Planets != 3 {
		t.Errorf("Planets = %d, want 3 from the environment", cfg.Level.Planets)
	}
	if cfg.World.Width != 960 {
		t.Errorf("World.Width = %v, want the default 960", cfg.World.Width)
	}
}
