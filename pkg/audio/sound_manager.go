// Package audio plays short procedural sound cues in response to
// simulation events.
package audio

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/logging"
)

// SampleRate is the output rate of every cue
const SampleRate = beep.SampleRate(44100)

// speakerBuffer is the speaker latency
const speakerBuffer = 100 * time.Millisecond

// SoundManager mixes cues into the speaker. Until Initialize succeeds
// every cue is dropped, so a muted or device-less run is silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	logger      *logging.Logger
	ctx         context.Context
	subs        []*event.Subscription
	initialized bool

	// play hands a streamer to the output; replaced in tests
	play func(beep.Streamer)
}

// NewSoundManager creates a silent sound manager. A nil logger discards
// output.
func NewSoundManager(logger *logging.Logger, rng *rand.Rand) *SoundManager {
	if logger == nil {
		logger = logging.Discard()
	}
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		rng:    rng,
		logger: logger.With("component", "audio"),
		ctx:    context.Background(),
	}
	sm.play = sm.mix
	return sm
}

// SetContext sets the context used for log entries
func (sm *SoundManager) SetContext(ctx context.Context) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.ctx = ctx
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(speakerBuffer)); err != nil {
		return logging.WrapError(err, "initialize speaker at %d Hz", int(SampleRate))
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe plays the crash on ShipDestroyed, the chirp on WaypointReached
// and the arpeggio on LevelCompleted
func (sm *SoundManager) Subscribe(bus *event.Bus) {
	cues := map[event.Type]Cue{
		event.ShipDestroyed:   CueCrash,
		event.WaypointReached: CueWaypoint,
		event.LevelCompleted:  CueLevelComplete,
	}
	for t, cue := range cues {
		sm.subs = append(sm.subs, bus.Subscribe(t, func(event.Event) {
			sm.Play(cue)
		}))
	}
}

// Play starts cue on top of whatever is already playing
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.logger.Debug(sm.ctx, "play cue", "cue", cue.String())
	sm.play(NewCueStreamer(cue, SampleRate, sm.rng))
}

// mix adds s to the mixer under the speaker lock
func (sm *SoundManager) mix(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close cancels the bus subscriptions and stops every cue
func (sm *SoundManager) Close() {
	for _, sub := range sm.subs {
		sub.Cancel()
	}
	sm.subs = nil

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
