// pkg/render/effects.go
package render

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/event"
)

// BurstKind selects the look and motion of a burst
type BurstKind int

const (
	// BurstStars marks a collected waypoint
	BurstStars BurstKind = iota
	// BurstSmoke marks a ship lost to a planet
	BurstSmoke
)

const (
	// BurstParticles is the number of particles in every burst
	BurstParticles = 10
	// BurstLifetime is how long a burst stays on screen
	BurstLifetime = time.Second
)

type particle struct {
	angle float64 // direction of travel, degrees
	speed float64 // pixels per second
	rot   float64 // initial rotation, degrees
	spin  float64 // degrees per second
}

// ParticleState is one particle at the burst's current age
type ParticleState struct {
	Position r2.Point // world space
	Rotation float64
	Scale    float64
	Opacity  uint8
}

// Burst is a short-lived ring of particles flying out from a point
type Burst struct {
	Kind      BurstKind
	Origin    r2.Point
	age       time.Duration
	particles [BurstParticles]particle
}

// NewBurst creates a burst at origin with particles drawn from rng
func NewBurst(kind BurstKind, origin r2.Point, rng *rand.Rand) *Burst {
	b := &Burst{Kind: kind, Origin: origin}
	for i := range b.particles {
		p := particle{
			angle: float64(rng.IntN(360)),
			rot:   float64(rng.IntN(360)),
		}
		switch kind {
		case BurstSmoke:
			p.speed = float64(rng.IntN(51))
			p.spin = float64(rng.IntN(361) - 180)
		default:
			p.speed = float64(20 + rng.IntN(81))
			p.spin = float64(rng.IntN(721) - 360)
		}
		b.particles[i] = p
	}
	return b
}

// Update ages the burst by dt and reports whether it is still alive
func (b *Burst) Update(dt time.Duration) bool {
	b.age += dt
	return !b.Done()
}

// Done reports whether the burst has outlived BurstLifetime
func (b *Burst) Done() bool {
	return b.age >= BurstLifetime
}

// Particles returns every particle at the burst's current age
func (b *Burst) Particles() []ParticleState {
	t := b.age.Seconds()
	opacity := uint8(math.Max(0, 255-255*t))
	scale := t / 16
	if b.Kind == BurstSmoke {
		scale = t / 4
	}

	states := make([]ParticleState, len(b.particles))
	for i, p := range b.particles {
		d := t * p.speed
		rad := p.angle * math.Pi / 180
		states[i] = ParticleState{
			Position: r2.Point{
				X: b.Origin.X + math.Cos(rad)*d,
				Y: b.Origin.Y + math.Sin(rad)*d,
			},
			Rotation: p.rot + t*p.spin,
			Scale:    scale,
			Opacity:  opacity,
		}
	}
	return states
}

// Effects owns the live bursts and spawns new ones from simulation events
type Effects struct {
	bursts []*Burst
	rng    *rand.Rand
	subs   []*event.Subscription
	mu     sync.Mutex
}

// NewEffects creates an empty effect set drawing randomness from rng
func NewEffects(rng *rand.Rand) *Effects {
	return &Effects{rng: rng}
}

// Subscribe spawns smoke on ShipDestroyed and stars on WaypointReached,
// and drops every burst on LevelReset
func (e *Effects) Subscribe(bus *event.Bus) {
	e.subs = append(e.subs,
		bus.Subscribe(event.ShipDestroyed, func(ev event.Event) {
			if d, ok := ev.(*event.ShipDestroyedEvent); ok {
				e.Spawn(BurstSmoke, d.ImpactPoint)
			}
		}),
		bus.Subscribe(event.WaypointReached, func(ev event.Event) {
			if w, ok := ev.(*event.WaypointReachedEvent); ok {
				e.Spawn(BurstStars, w.Point)
			}
		}),
		bus.Subscribe(event.LevelReset, func(event.Event) {
			e.Clear()
		}),
	)
}

// Close cancels every bus subscription
func (e *Effects) Close() {
	for _, sub := range e.subs {
		sub.Cancel()
	}
	e.subs = nil
}

// Spawn adds a burst at origin
func (e *Effects) Spawn(kind BurstKind, origin r2.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bursts = append(e.bursts, NewBurst(kind, origin, e.rng))
}

// Update ages every burst by dt and drops the finished ones
func (e *Effects) Update(dt time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	live := e.bursts[:0]
	for _, b := range e.bursts {
		if b.Update(dt) {
			live = append(live, b)
		}
	}
	clear(e.bursts[len(live):])
	e.bursts = live
}

// Clear drops every burst
func (e *Effects) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bursts = nil
}

// Bursts returns a copy of the live bursts
func (e *Effects) Bursts() []*Burst {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Burst, len(e.bursts))
	copy(out, e.bursts)
	return out
}
