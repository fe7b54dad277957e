// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/entity"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

func TestBusSubscribe_MultipleHandlers_UniqueIDs(t *testing.T) {
	bus := NewEventBus()
	noop := func(Event) {}

	sub1 := bus.Subscribe(ShipDestroyed, noop)
	sub2 := bus.Subscribe(ShipDestroyed, noop)
	_ = bus.Subscribe(WaypointReached, noop)

	if sub1.ID == 0 || sub1.ID == sub2.ID {
		t.Errorf("subscription IDs not unique: %d, %d", sub1.ID, sub2.ID)
	}

	bus.mu.RLock()
	defer bus.mu.RUnlock()
	if len(bus.handlers[ShipDestroyed]) != 2 {
		t.Errorf("expected 2 ShipDestroyed handlers, got %d", len(bus.handlers[ShipDestroyed]))
	}
	if len(bus.handlers[WaypointReached]) != 1 {
		t.Errorf("expected 1 WaypointReached handler, got %d", len(bus.handlers[WaypointReached]))
	}
}

func TestBusPublish_DispatchesByType(t *testing.T) {
	bus := NewEventBus()
	var destroyed, reached int

	bus.Subscribe(ShipDestroyed, func(Event) { destroyed++ })
	bus.Subscribe(ShipDestroyed, func(Event) { destroyed++ })
	bus.Subscribe(WaypointReached, func(Event) { reached++ })

	bus.Publish(&BaseEvent{EventType: ShipDestroyed, Source: "test"})
	bus.Publish(&BaseEvent{EventType: LevelReset, Source: "test"})

	if destroyed != 2 {
		t.Errorf("expected 2 ShipDestroyed calls, got %d", destroyed)
	}
	if reached != 0 {
		t.Errorf("WaypointReached handler called %d times", reached)
	}
}

func TestSubscriptionCancel_OnlyTargetRemoved(t *testing.T) {
	bus := NewEventBus()
	var called [3]bool

	sub := bus.Subscribe(ShipDestroyed, func(Event) { called[0] = true })
	bus.Subscribe(ShipDestroyed, func(Event) { called[1] = true })
	bus.Subscribe(LevelFailed, func(Event) { called[2] = true })

	sub.Cancel()
	sub.Cancel()

	bus.Publish(&BaseEvent{EventType: ShipDestroyed})
	bus.Publish(&BaseEvent{EventType: LevelFailed})

	if called[0] {
		t.Error("cancelled handler was called")
	}
	if !called[1] || !called[2] {
		t.Errorf("remaining handlers not called: %v", called)
	}
}

func TestBus_ConcurrentAccess_ThreadSafe(t *testing.T) {
	bus := NewEventBus()
	var wg sync.WaitGroup
	var mu sync.Mutex
	count := 0

	handler := func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	const subscribers = 10
	wg.Add(subscribers)
	for i := 0; i < subscribers; i++ {
		go func() {
			defer wg.Done()
			bus.Subscribe(WaypointReached, handler)
		}()
	}
	wg.Wait()

	wg.Add(3)
	for i := 0; i < 3; i++ {
		go func() {
			defer wg.Done()
			bus.Publish(&BaseEvent{EventType: WaypointReached})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if count != subscribers*3 {
		t.Errorf("expected %d handler calls, got %d", subscribers*3, count)
	}
}

func TestNewShipDestroyedEvent(t *testing.T) {
	ship := entity.NewShip(0, 0)
	planet := entity.NewPlanet(90, 0, 50)
	impact := r2.Point{X: 30, Y: 0}

	e := NewShipDestroyedEvent("sim", ship, planet, impact)

	if e.GetType() != ShipDestroyed || e.GetSource() != "sim" {
		t.Errorf("unexpected base event %+v", e.BaseEvent)
	}
	if e.Ship != ship || e.Planet != planet || e.ImpactPoint != impact {
		t.Errorf("unexpected payload %+v", e)
	}
}

func TestNewWaypointReachedEvent(t *testing.T) {
	ship := entity.NewShip(0, 0)
	waypoint := entity.NewWaypoint(40, -20, 20)

	e := NewWaypointReachedEvent(nil, ship, waypoint)

	if e.GetType() != WaypointReached {
		t.Errorf("GetType() = %v", e.GetType())
	}
	if e.Point != (r2.Point{X: 40, Y: -20}) {
		t.Errorf("Point = %v, want waypoint center", e.Point)
	}
}

func TestNewLevelEvent(t *testing.T) {
	e := NewLevelEvent(LevelCompleted, nil, 1500, 1500, 320)

	if e.GetType() != LevelCompleted || e.Tick != 1500 || e.ElapsedMs != 1500 || e.FuelUsage != 320 {
		t.Errorf("unexpected level event %+v", e)
	}
}
