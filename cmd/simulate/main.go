// cmd/simulate/main.go
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/level"
	"github.com/opd-ai/go-gravity/pkg/logging"
	"github.com/opd-ai/go-gravity/pkg/overlay"
	"github.com/opd-ai/go-gravity/pkg/render"
	"github.com/opd-ai/go-gravity/pkg/validation"
)

// runOptions describes one headless run
type runOptions struct {
	frames      int
	frameDelta  time.Duration
	thrust      script
	overlayPath string
	untilDone   bool
}

// summary is what a run reports when it ends
type summary struct {
	Frames    int
	Ticks     uint64
	Status    engine.Status
	Elapsed   time.Duration
	FuelUsage int
	Events    map[event.Type]int
	Drawn     int
}

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	preset := flag.String("preset", "", "Run a preset level instead of the configured level mode")
	seed := flag.Uint64("seed", 0, "Level generator seed (0 keeps the configured seed)")
	frames := flag.Int("frames", 600, "Number of frames to run")
	frameMs := flag.Int("frame-ms", 16, "Simulated milliseconds per frame")
	thrust := flag.String("thrust", "", "Thrust script, e.g. right:30,none:60,up+left:20")
	overlayPath := flag.String("overlay", "", "Write the level's gravity map to this PNG file")
	untilDone := flag.Bool("until-done", true, "Stop once the level is completed or failed")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	cfg, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}
	if *preset != "" {
		cfg.Level.Mode = config.ModePreset
		cfg.Level.Preset = *preset
	}
	if *seed != 0 {
		cfg.Level.Seed = *seed
	}
	if err := validation.ValidateConfig(cfg); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}

	schedule, err := parseScript(*thrust)
	if err != nil {
		logger.Error(ctx, "Invalid thrust script", err, "thrust", *thrust)
		os.Exit(1)
	}

	sum, err := simulate(cfg, runOptions{
		frames:      *frames,
		frameDelta:  time.Duration(*frameMs) * time.Millisecond,
		thrust:      schedule,
		overlayPath: *overlayPath,
		untilDone:   *untilDone,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Simulation failed", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Simulation finished",
		"frames", sum.Frames,
		"ticks", sum.Ticks,
		"status", sum.Status.String(),
		"elapsed", sum.Elapsed,
		"fuel", sum.FuelUsage,
		"waypoints_reached", sum.Events[event.WaypointReached],
		"ships_destroyed", sum.Events[event.ShipDestroyed],
	)
}

// loadConfig reads path, falling back to defaults when it does not exist,
// then applies environment overrides
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.GameConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		cfg, err := config.LoadConfigFromEnv()
		if err != nil {
			return nil, logging.WrapError(err, "apply environment overrides")
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnvOverrides(cfg); err != nil {
		return nil, logging.WrapError(err, "apply environment overrides")
	}
	return cfg, nil
}

// simulate plays one level headlessly, driving the full frame pipeline
// through a NullRenderer
func simulate(cfg *config.GameConfig, opts runOptions, logger *logging.Logger) (summary, error) {
	lvl, err := level.NewBuilder(cfg)()
	if err != nil {
		return summary{}, logging.WrapError(err, "build level in %s mode", cfg.Level.Mode)
	}

	bus := event.NewEventBus()
	sim := engine.NewSimulation(cfg, lvl, bus, logger)
	scene := render.NewScene(cfg, bus, level.NewRand(cfg.Level.Seed))
	defer scene.Effects.Close()

	counts := make(map[event.Type]int)
	for _, t := range []event.Type{
		event.ShipDestroyed, event.WaypointReached,
		event.LevelStarted, event.LevelCompleted, event.LevelFailed,
	} {
		bus.Subscribe(t, func(e event.Event) {
			counts[e.GetType()]++
			logEvent(sim, logger, e)
		})
	}

	if opts.overlayPath != "" {
		if err := writeOverlay(cfg, sim, opts.overlayPath); err != nil {
			return summary{}, err
		}
		logger.Info(sim.Context(), "gravity map written", "path", opts.overlayPath)
	}

	renderer := render.NewNullRenderer(logger)
	renderer.SetContext(sim.Context())

	sim.Start()
	frame := 0
	for ; frame < opts.frames; frame++ {
		if opts.untilDone && sim.Status != engine.StatusActive {
			break
		}
		sim.ApplyThrust(opts.thrust.At(frame))
		sim.Update(opts.frameDelta)
		scene.Update(opts.frameDelta)
		render.Draw(renderer, sim, scene)
	}

	return summary{
		Frames:    frame,
		Ticks:     sim.CurrentTick,
		Status:    sim.Status,
		Elapsed:   sim.Elapsed,
		FuelUsage: sim.FuelUsage(),
		Events:    counts,
		Drawn:     renderer.Frames,
	}, nil
}

func logEvent(sim *engine.Simulation, logger *logging.Logger, e event.Event) {
	ctx := sim.Context()
	switch e := e.(type) {
	case *event.ShipDestroyedEvent:
		logger.Info(ctx, "ship destroyed",
			"tick", sim.CurrentTick,
			"x", e.ImpactPoint.X,
			"y", e.ImpactPoint.Y)
	case *event.WaypointReachedEvent:
		logger.Info(ctx, "waypoint reached",
			"tick", sim.CurrentTick,
			"x", e.Point.X,
			"y", e.Point.Y)
	case *event.LevelEvent:
		logger.Info(ctx, "level event",
			"type", string(e.GetType()),
			"tick", e.Tick,
			"elapsed_ms", e.ElapsedMs,
			"fuel", e.FuelUsage)
	}
}

func writeOverlay(cfg *config.GameConfig, sim *engine.Simulation, path string) error {
	step := cfg.Display.OverlayStep
	if step <= 0 {
		step = 1
	}
	img := overlay.LevelMap(sim.Integrator, sim.Level, cfg.World.Width, cfg.World.Height, step)

	f, err := os.Create(path)
	if err != nil {
		return logging.WrapError(err, "create overlay file %s", path)
	}
	if err := overlay.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
