package level

import (
	"errors"
	"testing"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/geometry"
)

func testLevel() (*Level, *entity.Ship, *entity.Planet, *entity.Waypoint) {
	ship := entity.NewShip(0, 0)
	planet := entity.NewPlanet(100, 0, 30)
	waypoint := entity.NewWaypoint(0, 100, 20)
	return New([]*entity.Ship{ship}, []*entity.Planet{planet}, []*entity.Waypoint{waypoint}), ship, planet, waypoint
}

func TestLevel_DerivedLists(t *testing.T) {
	l, ship, planet, waypoint := testLevel()

	entities := l.Entities()
	if len(entities) != 3 {
		t.Fatalf("Entities() has %d items, want 3", len(entities))
	}
	if entities[0] != entity.Entity(planet) || entities[1] != entity.Entity(waypoint) || entities[2] != entity.Entity(ship) {
		t.Errorf("Entities() not in draw order: %v", entities)
	}

	bodies := l.Bodies()
	if len(bodies) != 2 || bodies[0] != planet.Body() || bodies[1] != ship.Body() {
		t.Errorf("Bodies() = %v, want planet and ship bodies", bodies)
	}
}

func TestLevel_RemoveRebuildsCaches(t *testing.T) {
	l, ship, _, waypoint := testLevel()
	before := l.Bodies()

	if !l.RemoveShip(ship) {
		t.Fatal("RemoveShip() = false for present ship")
	}
	if l.RemoveShip(ship) {
		t.Error("RemoveShip() = true for already removed ship")
	}
	if l.Ship() != nil || len(l.Ships()) != 0 {
		t.Error("ship still present after removal")
	}
	if len(l.Bodies()) != 1 {
		t.Errorf("Bodies() has %d items after ship removal, want 1", len(l.Bodies()))
	}
	if len(before) != 2 {
		t.Error("previously returned body list was mutated")
	}

	if !l.RemoveWaypoint(waypoint) {
		t.Fatal("RemoveWaypoint() = false for present waypoint")
	}
	if len(l.Waypoints()) != 0 || len(l.Entities()) != 1 {
		t.Errorf("waypoint still listed: %v", l.Entities())
	}
}

func TestLevel_AddRebuildsCaches(t *testing.T) {
	l := New(nil, nil, nil)
	if len(l.Entities()) != 0 || len(l.Bodies()) != 0 || l.Ship() != nil {
		t.Fatal("empty level should have no entities")
	}

	ship := entity.NewShip(1, 1)
	l.AddShip(ship)
	l.AddPlanet(entity.NewPlanet(50, 50, 10))
	l.AddWaypoint(entity.NewWaypoint(9, 9, 2))

	if l.Ship() != ship {
		t.Error("Ship() should return the added ship")
	}
	if len(l.Entities()) != 3 || len(l.Bodies()) != 2 {
		t.Errorf("got %d entities and %d bodies", len(l.Entities()), len(l.Bodies()))
	}
}

func defaultParams() Params {
	return ParamsFromConfig(config.DefaultConfig())
}

func TestRandom_Placement(t *testing.T) {
	p := defaultParams()

	for seed := uint64(1); seed <= 20; seed++ {
		l, err := Random(p, NewRand(seed))
		if err != nil {
			t.Fatalf("seed %d: Random() error: %v", seed, err)
		}
		if len(l.Ships()) != 1 || len(l.Planets()) != 5 || len(l.Waypoints()) != 5 {
			t.Fatalf("seed %d: unexpected counts", seed)
		}

		ship := l.Ship().Circle()
		if ship.X != 480 || ship.Y != 320 {
			t.Errorf("seed %d: ship at (%v, %v), want center", seed, ship.X, ship.Y)
		}

		circles := []geometry.Circle{{X: ship.X, Y: ship.Y, R: p.ShipClearance}}
		for _, planet := range l.Planets() {
			c := planet.Circle()
			if c.R < 30 || c.R > 60 {
				t.Errorf("seed %d: planet radius %v out of range", seed, c.R)
			}
			circles = append(circles, c)
		}
		for _, w := range l.Waypoints() {
			circles = append(circles, w.Circle())
		}

		for i, c := range circles {
			if c.X-c.R < p.Padding && i > 0 {
				t.Errorf("seed %d: circle %v too close to the left edge", seed, c)
			}
			if gap, ok := geometry.MinSpacing(c, circles[:i]); ok && gap < p.Padding {
				t.Errorf("seed %d: circle %v only %v from a neighbour", seed, c, gap)
			}
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := Random(defaultParams(), NewRand(99))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Random(defaultParams(), NewRand(99))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Planets() {
		if a.Planets()[i].Circle() != b.Planets()[i].Circle() {
			t.Errorf("planet %d differs between runs with the same seed", i)
		}
	}
}

func TestRandom_PlacementFailed(t *testing.T) {
	p := defaultParams()
	p.Width, p.Height = 200, 200
	p.Planets = 20
	p.MaxAttempts = 50

	_, err := Random(p, NewRand(1))
	if !errors.Is(err, ErrPlacementFailed) {
		t.Errorf("Random() error = %v, want ErrPlacementFailed", err)
	}
}

func TestPreset_Level1(t *testing.T) {
	l, err := Preset("level1", 960, 640)
	if err != nil {
		t.Fatalf("Preset() error: %v", err)
	}

	if got := l.Ship().Circle(); got != (geometry.Circle{X: 480, Y: 320, R: entity.ShipRadius}) {
		t.Errorf("ship = %v", got)
	}
	wantPlanets := []geometry.Circle{{X: 280, Y: 320, R: 50}, {X: 680, Y: 320, R: 50}}
	for i, want := range wantPlanets {
		if got := l.Planets()[i].Circle(); got != want {
			t.Errorf("planet %d = %v, want %v", i, got, want)
		}
	}
	wantWaypoints := []geometry.Circle{
		{X: 180, Y: 320, R: 20}, {X: 780, Y: 320, R: 20},
		{X: 480, Y: 120, R: 20}, {X: 480, Y: 520, R: 20},
	}
	for i, want := range wantWaypoints {
		if got := l.Waypoints()[i].Circle(); got != want {
			t.Errorf("waypoint %d = %v, want %v", i, got, want)
		}
	}

	if _, err := Preset("nope", 960, 640); err == nil {
		t.Error("expected error for unknown preset")
	}
	if names := Presets(); len(names) != 1 || names[0] != "level1" {
		t.Errorf("Presets() = %v", names)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *config.GameConfig)
		planets   int
		waypoints int
		wantErr   bool
	}{
		{"random", func(c *config.GameConfig) {}, 5, 5, false},
		{"preset", func(c *config.GameConfig) { c.Level.Mode = config.ModePreset }, 2, 4, false},
		{"custom", func(c *config.GameConfig) {
			c.Level.Mode = config.ModeCustom
			c.Level.Layout = &config.LayoutConfig{
				Ships:     []config.CircleConfig{{X: 10, Y: 10}},
				Planets:   []config.CircleConfig{{X: 100, Y: 10, R: 40}},
				Waypoints: []config.CircleConfig{{X: 10, Y: 90, R: 20}, {X: 90, Y: 90, R: 20}},
			}
		}, 1, 2, false},
		{"custom without layout", func(c *config.GameConfig) { c.Level.Mode = config.ModeCustom }, 0, 0, true},
		{"unknown mode", func(c *config.GameConfig) { c.Level.Mode = "maze" }, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)

			l, err := Build(cfg, NewRand(3))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(l.Planets()) != tt.planets || len(l.Waypoints()) != tt.waypoints {
				t.Errorf("got %d planets, %d waypoints", len(l.Planets()), len(l.Waypoints()))
			}
		})
	}
}

func TestNewBuilder_SeededSequence(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Level.Seed = 11

	a, b := NewBuilder(cfg), NewBuilder(cfg)
	for i := 0; i < 3; i++ {
		la, err := a()
		if err != nil {
			t.Fatalf("build %d: %v", i, err)
		}
		lb, err := b()
		if err != nil {
			t.Fatalf("build %d: %v", i, err)
		}
		if la.Planets()[0].Position() != lb.Planets()[0].Position() {
			t.Errorf("build %d differs between builders with one seed", i)
		}
	}

	first, _ := NewBuilder(cfg)()
	builder := NewBuilder(cfg)
	_, _ = builder()
	second, _ := builder()
	if first.Planets()[0].Position() == second.Planets()[0].Position() {
		t.Error("second level repeats the first")
	}
}
