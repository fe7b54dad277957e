// pkg/audio/cues.go
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue is one of the game's sound effects
type Cue int

const (
	// CueCrash plays when a ship hits a planet
	CueCrash Cue = iota
	// CueWaypoint plays when a ship collects a waypoint
	CueWaypoint
	// CueLevelComplete plays when the last waypoint is collected
	CueLevelComplete
)

func (c Cue) String() string {
	switch c {
	case CueCrash:
		return "crash"
	case CueWaypoint:
		return "waypoint"
	case CueLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

const (
	crashLength = 400 * time.Millisecond
	chirpLength = 150 * time.Millisecond
	noteLength  = 90 * time.Millisecond
	fadeLength  = 5 * time.Millisecond

	cueVolume = 0.4
)

// arpeggioNotes is a C major arpeggio, C5 to C6
var arpeggioNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// chirp is a sine tone sweeping linearly from one frequency to another,
// faded in and out to avoid clicks
type chirp struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
	fade     int
}

func newChirp(rate beep.SampleRate, from, to float64, d time.Duration) *chirp {
	return &chirp{
		rate:  rate,
		from:  from,
		to:    to,
		total: rate.N(d),
		fade:  rate.N(fadeLength),
	}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for n = range samples {
		if c.pos >= c.total {
			return n, true
		}
		t := float64(c.pos) / float64(c.total)
		freq := c.from + (c.to-c.from)*t

		v := math.Sin(2*math.Pi*c.phase) * fadeGain(c.pos, c.total, c.fade)
		samples[n][0] = v
		samples[n][1] = v

		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// noise is white noise with a quadratic decay, used for the crash
type noise struct {
	rng   *rand.Rand
	pos   int
	total int
}

func newNoise(rate beep.SampleRate, d time.Duration, rng *rand.Rand) *noise {
	return &noise{rng: rng, total: rate.N(d)}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for n = range samples {
		if s.pos >= s.total {
			return n, true
		}
		decay := 1 - float64(s.pos)/float64(s.total)
		v := (s.rng.Float64()*2 - 1) * decay * decay
		samples[n][0] = v
		samples[n][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

// fadeGain ramps the first and last fade samples of a sound of total
// samples
func fadeGain(pos, total, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	g := 1.0
	if pos < fade {
		g = float64(pos) / float64(fade)
	}
	if rest := total - pos; rest < fade {
		g = math.Min(g, float64(rest)/float64(fade))
	}
	return g
}

// newVolume scales s by a linear gain
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// NewCueStreamer builds a fresh streamer for cue. rng seeds the crash
// noise and is only read here, never from the audio goroutine.
func NewCueStreamer(cue Cue, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueCrash:
		s = newNoise(rate, crashLength, rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())))
	case CueWaypoint:
		s = newChirp(rate, 600, 1200, chirpLength)
	case CueLevelComplete:
		notes := make([]beep.Streamer, len(arpeggioNotes))
		for i, f := range arpeggioNotes {
			notes[i] = newChirp(rate, f, f, noteLength)
		}
		s = beep.Seq(notes...)
	default:
		return beep.Silence(0)
	}
	return newVolume(s, cueVolume)
}
