package render

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/event"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewBurst_ParticleRanges(t *testing.T) {
	tests := []struct {
		name     string
		kind     BurstKind
		minSpeed float64
		maxSpeed float64
		maxSpin  float64
	}{
		{"stars", BurstStars, 20, 100, 360},
		{"smoke", BurstSmoke, 0, 50, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBurst(tt.kind, r2.Point{X: 10, Y: 20}, testRand())

			for i, p := range b.particles {
				if p.speed < tt.minSpeed || p.speed > tt.maxSpeed {
					t.Errorf("particle %d speed %v outside [%v, %v]", i, p.speed, tt.minSpeed, tt.maxSpeed)
				}
				if math.Abs(p.spin) > tt.maxSpin {
					t.Errorf("particle %d spin %v exceeds %v", i, p.spin, tt.maxSpin)
				}
				if p.angle < 0 || p.angle >= 360 {
					t.Errorf("particle %d angle %v outside [0, 360)", i, p.angle)
				}
			}
		})
	}
}

func TestBurstParticles_AtBirth(t *testing.T) {
	origin := r2.Point{X: 10, Y: 20}
	b := NewBurst(BurstStars, origin, testRand())

	states := b.Particles()
	if len(states) != BurstParticles {
		t.Fatalf("got %d particles, want %d", len(states), BurstParticles)
	}
	for i, s := range states {
		if s.Position != origin {
			t.Errorf("particle %d at %v, want origin", i, s.Position)
		}
		if s.Opacity != 255 || s.Scale != 0 {
			t.Errorf("particle %d opacity %d scale %v", i, s.Opacity, s.Scale)
		}
	}
}

func TestBurstUpdate_FadesAndExpands(t *testing.T) {
	tests := []struct {
		name  string
		kind  BurstKind
		scale float64
	}{
		{"stars shrink to a sixteenth", BurstStars, 0.5 / 16},
		{"smoke grows to a quarter", BurstSmoke, 0.5 / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBurst(tt.kind, r2.Point{}, testRand())

			if !b.Update(500 * time.Millisecond) {
				t.Fatal("burst died at half its lifetime")
			}
			for i, s := range b.Particles() {
				if s.Opacity != 127 {
					t.Errorf("particle %d opacity %d, want 127", i, s.Opacity)
				}
				if s.Scale != tt.scale {
					t.Errorf("particle %d scale %v, want %v", i, s.Scale, tt.scale)
				}
				want := 0.5 * b.particles[i].speed
				if d := s.Position.Norm(); math.Abs(d-want) > 1e-9 {
					t.Errorf("particle %d travelled %v, want %v", i, d, want)
				}
			}

			if b.Update(500 * time.Millisecond) {
				t.Error("burst alive after its lifetime")
			}
			if !b.Done() {
				t.Error("Done() = false after lifetime")
			}
		})
	}
}

func TestEffects_SpawnsFromEvents(t *testing.T) {
	bus := event.NewEventBus()
	fx := NewEffects(testRand())
	fx.Subscribe(bus)

	ship := entity.NewShip(0, 0)
	planet := entity.NewPlanet(90, 0, 50)
	waypoint := entity.NewWaypoint(200, 40, 20)

	bus.Publish(event.NewShipDestroyedEvent(nil, ship, planet, r2.Point{X: 30, Y: 0}))
	bus.Publish(event.NewWaypointReachedEvent(nil, ship, waypoint))

	bursts := fx.Bursts()
	if len(bursts) != 2 {
		t.Fatalf("expected 2 bursts, got %d", len(bursts))
	}
	if bursts[0].Kind != BurstSmoke || bursts[0].Origin != (r2.Point{X: 30, Y: 0}) {
		t.Errorf("unexpected planet burst %+v", bursts[0])
	}
	if bursts[1].Kind != BurstStars || bursts[1].Origin != (r2.Point{X: 200, Y: 40}) {
		t.Errorf("unexpected waypoint burst %+v", bursts[1])
	}

	bus.Publish(&event.BaseEvent{EventType: event.LevelReset})
	if n := len(fx.Bursts()); n != 0 {
		t.Errorf("LevelReset left %d bursts", n)
	}

	fx.Close()
	bus.Publish(event.NewWaypointReachedEvent(nil, ship, waypoint))
	if n := len(fx.Bursts()); n != 0 {
		t.Errorf("closed effects spawned %d bursts", n)
	}
}

func TestEffectsUpdate_DropsFinishedBursts(t *testing.T) {
	fx := NewEffects(testRand())
	fx.Spawn(BurstStars, r2.Point{})
	fx.Update(600 * time.Millisecond)
	fx.Spawn(BurstSmoke, r2.Point{X: 1})

	fx.Update(500 * time.Millisecond)

	bursts := fx.Bursts()
	if len(bursts) != 1 {
		t.Fatalf("expected 1 live burst, got %d", len(bursts))
	}
	if bursts[0].Kind != BurstSmoke {
		t.Errorf("wrong burst survived: %v", bursts[0].Kind)
	}
}

func TestNewStarfield(t *testing.T) {
	stars := NewStarfield(testRand(), 200, DefaultMinStarSize, DefaultMaxStarSize, 960, 640)

	if len(stars) != 200 {
		t.Fatalf("got %d stars, want 200", len(stars))
	}
	for i, s := range stars {
		if s.Size < DefaultMinStarSize || s.Size > DefaultMaxStarSize {
			t.Errorf("star %d size %v out of range", i, s.Size)
		}
		if s.Position.X < -100 || s.Position.X > 1060 || s.Position.Y < -100 || s.Position.Y > 740 {
			t.Errorf("star %d at %v outside padded screen", i, s.Position)
		}
		if s.Opacity < 64 {
			t.Errorf("star %d opacity %d below 64", i, s.Opacity)
		}
		if s.Size == DefaultMaxStarSize && s.Opacity != 255 {
			t.Errorf("largest star %d opacity %d, want 255", i, s.Opacity)
		}
		if s.Size == DefaultMinStarSize && s.Opacity != 64 {
			t.Errorf("smallest star %d opacity %d, want 64", i, s.Opacity)
		}
	}
}

func TestNewStarfield_EqualSizes(t *testing.T) {
	stars := NewStarfield(testRand(), 5, 8, 8, 100, 100)
	for i, s := range stars {
		if s.Size != 8 || s.Opacity != 255 {
			t.Errorf("star %d = %+v", i, s)
		}
	}
}
