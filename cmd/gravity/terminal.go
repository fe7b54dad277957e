// cmd/gravity/terminal.go
package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/logging"
	"github.com/opd-ai/go-gravity/pkg/physics"
	"github.com/opd-ai/go-gravity/pkg/render"
	"github.com/opd-ai/go-gravity/pkg/validation"
)

const (
	frameInterval = 33 * time.Millisecond

	// Terminals report key presses but not releases, so a thrust key
	// counts as held until this long after its last press or repeat.
	keyHold = 250 * time.Millisecond

	resetBurst  = 2
	resetWindow = time.Second
)

var arrowKeys = map[tcell.Key]r2.Point{
	tcell.KeyUp:    physics.Up,
	tcell.KeyDown:  physics.Down,
	tcell.KeyLeft:  physics.Left,
	tcell.KeyRight: physics.Right,
}

// terminalGame drives a session on a tcell screen
type terminalGame struct {
	s        *session
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	thrust   *engine.ThrustInput
	held     map[r2.Point]time.Time
	limiter  *validation.RateLimiter
	logger   *logging.Logger
}

func newTerminalGame(s *session, screen tcell.Screen, logger *logging.Logger) *terminalGame {
	return &terminalGame{
		s:        s,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, s.scene.View),
		thrust:   engine.NewThrustInput(),
		held:     make(map[r2.Point]time.Time),
		limiter:  validation.NewRateLimiter(resetBurst, resetWindow),
		logger:   logger,
	}
}

// runTerminal plays s in the terminal until ESC or Ctrl-C
func runTerminal(s *session, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "initialize terminal screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	tg := newTerminalGame(s, screen, logger)
	s.sim.Start()
	tg.loop()

	logger.Info(s.sim.Context(), "terminal closed",
		"tick", s.sim.CurrentTick,
		"status", s.sim.Status.String())
	return nil
}

func (tg *terminalGame) loop() {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := tg.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if tg.handle(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			tg.frame(now.Sub(last), now)
			last = now
		}
	}
}

// handle applies one terminal event and reports whether to quit
func (tg *terminalGame) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		tg.screen.Sync()
		tg.renderer.Resize()
	case *tcell.EventKey:
		return tg.key(ev.Key(), ev.Rune(), now)
	}
	return false
}

// key handles one key press and reports whether to quit
func (tg *terminalGame) key(k tcell.Key, ch rune, now time.Time) bool {
	if dir, ok := arrowKeys[k]; ok {
		tg.held[dir] = now
		tg.thrust.Press(dir)
		return false
	}

	switch {
	case k == tcell.KeyEscape, k == tcell.KeyCtrlC:
		return true
	case k == tcell.KeyRune && ch == ' ':
		if !tg.limiter.Allow("reset") {
			return false
		}
		// a failed build keeps the current level and the held keys
		if err := tg.s.sim.ResetWith(tg.s.newLevel); err != nil {
			return false
		}
		tg.thrust.Clear()
		clear(tg.held)
	}
	return false
}

// frame releases stale keys, advances the simulation by dt and draws
func (tg *terminalGame) frame(dt time.Duration, now time.Time) {
	for dir, pressed := range tg.held {
		if now.Sub(pressed) > keyHold {
			tg.thrust.Release(dir)
			delete(tg.held, dir)
		}
	}

	tg.s.sim.ApplyThrust(tg.thrust.Direction())
	tg.s.sim.Update(dt)
	tg.s.scene.Update(dt)
	render.Draw(tg.renderer, tg.s.sim, tg.s.scene)
}
