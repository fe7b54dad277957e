package audio

import (
	"math/rand/v2"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/gopxl/beep"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/event"
)

// newRecordingManager returns a manager that counts streamers instead of
// opening a device
func newRecordingManager() (*SoundManager, *int) {
	sm := NewSoundManager(nil, rand.New(rand.NewPCG(1, 2)))
	played := 0
	sm.initialized = true
	sm.play = func(beep.Streamer) { played++ }
	return sm, &played
}

func TestSoundManager_SilentUntilInitialized(t *testing.T) {
	sm := NewSoundManager(nil, rand.New(rand.NewPCG(1, 2)))
	played := 0
	sm.play = func(beep.Streamer) { played++ }

	sm.Play(CueCrash)

	if played != 0 {
		t.Errorf("uninitialized manager played %d cues", played)
	}
}

func TestSoundManager_Subscribe(t *testing.T) {
	ship := entity.NewShip(0, 0)
	planet := entity.NewPlanet(10, 0, 5)
	waypoint := entity.NewWaypoint(0, 10, 5)

	tests := []struct {
		name   string
		event  event.Event
		played int
	}{
		{"crash", event.NewShipDestroyedEvent(nil, ship, planet, r2.Point{}), 1},
		{"waypoint", event.NewWaypointReachedEvent(nil, ship, waypoint), 1},
		{"level completed", event.NewLevelEvent(event.LevelCompleted, nil, 10, 10, 0), 1},
		{"level reset is silent", event.NewLevelEvent(event.LevelReset, nil, 0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := event.NewEventBus()
			sm, played := newRecordingManager()
			sm.Subscribe(bus)

			bus.Publish(tt.event)

			if *played != tt.played {
				t.Errorf("played = %d, want %d", *played, tt.played)
			}
		})
	}
}

func TestSoundManager_CloseUnsubscribes(t *testing.T) {
	bus := event.NewEventBus()
	sm, played := newRecordingManager()
	sm.Subscribe(bus)

	sm.Close()
	bus.Publish(event.NewLevelEvent(event.LevelCompleted, nil, 0, 0, 0))

	if *played != 0 {
		t.Errorf("closed manager played %d cues", *played)
	}
}

func TestCue_String(t *testing.T) {
	tests := []struct {
		cue    Cue
		expect string
	}{
		{CueCrash, "crash"},
		{CueWaypoint, "waypoint"},
		{CueLevelComplete, "level_complete"},
		{Cue(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cue.String(); got != tt.expect {
			t.Errorf("Cue(%d).String() = %q, want %q", tt.cue, got, tt.expect)
		}
	}
}
