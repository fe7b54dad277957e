package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/level"
	"github.com/opd-ai/go-gravity/pkg/logging"
)

// newTestTerminalGame plays the preset level on a 96x32 simulation screen,
// one cell per 10 by 20 world units
func newTestTerminalGame(t *testing.T) *terminalGame {
	t.Helper()
	s, err := newSession(context.Background(), testConfig(), logging.Discard())
	if err != nil {
		t.Fatalf("newSession() error = %v", err)
	}
	t.Cleanup(s.Close)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(96, 32)

	return newTerminalGame(s, screen, logging.Discard())
}

func TestTerminalGame_ArrowHoldsThrust(t *testing.T) {
	tg := newTestTerminalGame(t)
	start := time.Unix(100, 0)

	tg.key(tcell.KeyUp, 0, start)
	tg.frame(10*time.Millisecond, start.Add(10*time.Millisecond))

	if got := tg.s.sim.Thrust(); got != (r2.Point{X: 0, Y: 1}) {
		t.Errorf("Thrust() = %v, want up", got)
	}
	if got := tg.s.sim.FuelUsage(); got != 10 {
		t.Errorf("FuelUsage() = %d, want 10", got)
	}

	// no repeat arrives, so the key counts as released
	tg.frame(10*time.Millisecond, start.Add(keyHold+time.Millisecond))
	if got := tg.s.sim.Thrust(); got != (r2.Point{}) {
		t.Errorf("Thrust() after hold expired = %v", got)
	}
}

func TestTerminalGame_RepeatExtendsHold(t *testing.T) {
	tg := newTestTerminalGame(t)
	start := time.Unix(100, 0)

	tg.key(tcell.KeyLeft, 0, start)
	tg.key(tcell.KeyLeft, 0, start.Add(200*time.Millisecond))
	tg.frame(time.Millisecond, start.Add(keyHold+time.Millisecond))

	if got := tg.s.sim.Thrust(); got != (r2.Point{X: -1, Y: 0}) {
		t.Errorf("Thrust() = %v, want left", got)
	}
}

func TestTerminalGame_Keys(t *testing.T) {
	tg := newTestTerminalGame(t)
	now := time.Unix(100, 0)
	first := tg.s.sim.Level

	if quit := tg.key(tcell.KeyRune, ' ', now); quit {
		t.Error("SPACE requested quit")
	}
	if tg.s.sim.Level == first {
		t.Error("SPACE kept the old level")
	}
	if tg.s.sim.Status != engine.StatusActive {
		t.Errorf("Status = %v after reset", tg.s.sim.Status)
	}

	if quit := tg.key(tcell.KeyRune, 'x', now); quit {
		t.Error("unbound key requested quit")
	}
	if quit := tg.key(tcell.KeyEscape, 0, now); !quit {
		t.Error("ESC did not request quit")
	}
	if quit := tg.key(tcell.KeyCtrlC, 0, now); !quit {
		t.Error("Ctrl-C did not request quit")
	}
}

func TestTerminalGame_FailedResetKeepsLevel(t *testing.T) {
	tg := newTestTerminalGame(t)
	tg.s.newLevel = func() (*level.Level, error) {
		return nil, errors.New("no room for planets")
	}
	start := time.Unix(100, 0)
	first := tg.s.sim.Level

	tg.key(tcell.KeyUp, 0, start)
	if quit := tg.key(tcell.KeyRune, ' ', start); quit {
		t.Error("SPACE requested quit")
	}
	if tg.s.sim.Level != first {
		t.Error("failed reset replaced the level")
	}

	tg.frame(10*time.Millisecond, start.Add(10*time.Millisecond))
	if got := tg.s.sim.Thrust(); got != (r2.Point{X: 0, Y: 1}) {
		t.Errorf("Thrust() after failed reset = %v, want up", got)
	}
}

func TestTerminalGame_FrameDraws(t *testing.T) {
	tg := newTestTerminalGame(t)

	tg.frame(0, time.Unix(100, 0))

	// the ship starts at the world center, heading up
	if ch, _, _, _ := tg.screen.GetContent(48, 16); ch != '^' {
		t.Errorf("ship cell = %q, want '^'", ch)
	}
	if ch, _, _, _ := tg.screen.GetContent(1, 0); ch != 'F' {
		t.Errorf("HUD starts with %q, want 'F'", ch)
	}
}

func TestTerminalGame_Resize(t *testing.T) {
	tg := newTestTerminalGame(t)
	sim := tg.screen.(tcell.SimulationScreen)

	sim.SetSize(48, 16)
	tg.handle(tcell.NewEventResize(48, 16), time.Unix(100, 0))
	tg.frame(0, time.Unix(100, 0))

	if ch, _, _, _ := tg.screen.GetContent(24, 8); ch != '^' {
		t.Errorf("ship cell after resize = %q, want '^'", ch)
	}
}
