// cmd/gravity/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/go-gravity/pkg/audio"
	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/level"
	"github.com/opd-ai/go-gravity/pkg/logging"
	"github.com/opd-ai/go-gravity/pkg/overlay"
	"github.com/opd-ai/go-gravity/pkg/render"
	ebitenrender "github.com/opd-ai/go-gravity/pkg/render/ebiten"
	engorender "github.com/opd-ai/go-gravity/pkg/render/engo"
	"github.com/opd-ai/go-gravity/pkg/validation"
)

// Renderer names accepted by -renderer
const (
	rendererTerminal = "terminal"
	rendererEngo     = "engo"
	rendererEbiten   = "ebiten"
)

// options are the command-line overrides applied on top of the config
type options struct {
	preset string
	seed   uint64
	mute   bool
}

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	rendererName := flag.String("renderer", rendererTerminal, "Renderer type: 'terminal', 'engo' or 'ebiten'")
	preset := flag.String("preset", "", "Play a preset level instead of the configured level mode")
	seed := flag.Uint64("seed", 0, "Level generator seed (0 keeps the configured seed)")
	mute := flag.Bool("mute", false, "Disable sound")
	logPath := flag.String("log", "", "Log file (the terminal renderer logs nowhere by default)")
	flag.Parse()

	logger, closeLog, err := newLogger(*rendererName, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	ctx := context.Background()

	cfg, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}
	applyOptions(cfg, options{preset: *preset, seed: *seed, mute: *mute})
	if err := validation.ValidateConfig(cfg); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, *rendererName, logger); err != nil {
		logger.Error(ctx, "Game exited with error", err, "renderer", *rendererName)
		closeLog()
		os.Exit(1)
	}
}

// newLogger logs to stdout for the windowed renderers. The terminal
// renderer owns the screen, so it only logs when given a file.
func newLogger(renderer, path string) (*logging.Logger, func(), error) {
	if path == "" {
		if renderer == rendererTerminal {
			return logging.NewLoggerWithWriter(io.Discard), func() {}, nil
		}
		return logging.NewLogger(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewLoggerWithWriter(f), func() { f.Close() }, nil
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

// applyOptions lets flags override the loaded config
func applyOptions(cfg *config.GameConfig, opts options) {
	if opts.preset != "" {
		cfg.Level.Mode = config.ModePreset
		cfg.Level.Preset = opts.preset
	}
	if opts.seed != 0 {
		cfg.Level.Seed = opts.seed
	}
	if opts.mute {
		cfg.Display.Mute = true
	}
}

// session is everything the frontends share: the simulation, its scene
// and the level builder used on reset
type session struct {
	bus      *event.Bus
	sim      *engine.Simulation
	scene    *render.Scene
	newLevel func() (*level.Level, error)
	sound    *audio.SoundManager
}

func newSession(ctx context.Context, cfg *config.GameConfig, logger *logging.Logger) (*session, error) {
	newLevel := level.NewBuilder(cfg)
	lvl, err := newLevel()
	if err != nil {
		return nil, logging.WrapError(err, "build first level in %s mode", cfg.Level.Mode)
	}

	bus := event.NewEventBus()
	s := &session{
		bus:      bus,
		sim:      engine.NewSimulation(cfg, lvl, bus, logger),
		scene:    render.NewScene(cfg, bus, level.NewRand(cfg.Level.Seed)),
		newLevel: newLevel,
		sound:    audio.NewSoundManager(logger, level.NewRand(0)),
	}

	if !cfg.Display.Mute {
		if err := s.sound.Initialize(); err != nil {
			logger.Warn(ctx, "Audio unavailable, continuing without sound", "error", err.Error())
		}
	}
	s.sound.Subscribe(bus)
	return s, nil
}

func (s *session) Close() {
	s.sound.Close()
	s.scene.Effects.Close()
}

// run builds the session and blocks in the chosen frontend
func run(ctx context.Context, cfg *config.GameConfig, renderer string, logger *logging.Logger) error {
	s, err := newSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	logger.Info(ctx, "Starting game",
		"renderer", renderer,
		"mode", cfg.Level.Mode,
		"seed", cfg.Level.Seed,
	)

	switch renderer {
	case rendererEngo:
		engorender.Run(cfg, engorender.NewGameScene(s.sim, s.scene, s.newLevel, logger))
		return nil
	case rendererEbiten:
		g := ebitenrender.NewGame(cfg, s.sim, s.scene, s.newLevel, logger)
		if cfg.Display.OverlayStep > 0 {
			showOverlay := func() {
				img := overlay.LevelMap(s.sim.Integrator, s.sim.Level, cfg.World.Width, cfg.World.Height, cfg.Display.OverlayStep)
				g.SetOverlay(img, cfg.World.Height)
			}
			showOverlay()
			s.bus.Subscribe(event.LevelReset, func(event.Event) { showOverlay() })
		}
		return ebitenrender.Run(cfg, g)
	case rendererTerminal:
		return runTerminal(s, logger)
	default:
		return fmt.Errorf("unknown renderer %q", renderer)
	}
}
