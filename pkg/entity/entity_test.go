// pkg/entity/entity_test.go
package entity

import (
	"testing"

	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/geometry"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if seen[id] {
			t.Fatalf("GenerateID() returned duplicate %d", id)
		}
		seen[id] = true
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindShip, "ship"},
		{KindPlanet, "planet"},
		{KindWaypoint, "waypoint"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestShip_Thrust(t *testing.T) {
	t.Run("thrust consumes fuel and sets heading", func(t *testing.T) {
		ship := NewShip(480, 320)
		ship.Thrust(physics.Right)

		if ship.FuelUsage != 1 || !ship.Thrusting {
			t.Errorf("FuelUsage = %d, Thrusting = %v", ship.FuelUsage, ship.Thrusting)
		}
		if ship.Heading != 90 {
			t.Errorf("Heading = %v, want 90", ship.Heading)
		}
		if ship.Body().PendingForce != (r2.Point{X: physics.DefaultThrustPower}) {
			t.Errorf("PendingForce = %v", ship.Body().PendingForce)
		}
	})

	t.Run("zero thrust keeps heading and fuel", func(t *testing.T) {
		ship := NewShip(0, 0)
		ship.Thrust(physics.Down.Add(physics.Left))
		ship.Thrust(r2.Point{})

		if ship.FuelUsage != 1 {
			t.Errorf("FuelUsage = %d, want 1", ship.FuelUsage)
		}
		if ship.Thrusting {
			t.Error("Thrusting should be false after zero thrust")
		}
		if ship.Heading != 225 {
			t.Errorf("Heading = %v, want 225", ship.Heading)
		}
	})
}

func TestEntities_Circle(t *testing.T) {
	tests := []struct {
		name     string
		entity   Entity
		kind     Kind
		expected geometry.Circle
	}{
		{"ship", NewShip(10, 20), KindShip, geometry.Circle{X: 10, Y: 20, R: ShipRadius}},
		{"planet", NewPlanet(5, 6, 50), KindPlanet, geometry.Circle{X: 5, Y: 6, R: 50}},
		{"waypoint", NewWaypoint(7, 8, 20), KindWaypoint, geometry.Circle{X: 7, Y: 8, R: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entity.Circle(); got != tt.expected {
				t.Errorf("Circle() = %v, want %v", got, tt.expected)
			}
			if tt.entity.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.entity.Kind(), tt.kind)
			}
		})
	}
}

func TestMassive(t *testing.T) {
	var planet Entity = NewPlanet(0, 0, 30)
	m, ok := planet.(Massive)
	if !ok {
		t.Fatal("planet should be Massive")
	}
	if !m.Body().Fixed {
		t.Error("planet body should be fixed")
	}

	var waypoint Entity = NewWaypoint(0, 0, 20)
	if _, ok := waypoint.(Massive); ok {
		t.Error("waypoint should not be Massive")
	}
}

type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) RenderShip(*Ship)         { r.calls = append(r.calls, "ship") }
func (r *recordingRenderer) RenderPlanet(*Planet)     { r.calls = append(r.calls, "planet") }
func (r *recordingRenderer) RenderWaypoint(*Waypoint) { r.calls = append(r.calls, "waypoint") }
func (r *recordingRenderer) Clear()                   { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) Present()                 { r.calls = append(r.calls, "present") }

func TestEntity_Render(t *testing.T) {
	r := &recordingRenderer{}
	for _, e := range []Entity{NewPlanet(0, 0, 30), NewWaypoint(0, 0, 20), NewShip(0, 0)} {
		e.Render(r)
	}

	want := []string{"planet", "waypoint", "ship"}
	if len(r.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, r.calls[i], want[i])
		}
	}
}
