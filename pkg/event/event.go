// pkg/event/event.go
package event

import (
	"sync"

	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/entity"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	ShipDestroyed   Type = "ship_destroyed"
	WaypointReached Type = "waypoint_reached"
	LevelStarted    Type = "level_started"
	LevelReset      Type = "level_reset"
	LevelCompleted  Type = "level_completed"
	LevelFailed     Type = "level_failed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is returned by Subscribe. Cancel removes the handler.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, reg := range regs {
		if reg.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, reg := range regs {
		reg.handler(event)
	}
}

// Specific event implementations

// ShipDestroyedEvent reports a ship lost to a planet
type ShipDestroyedEvent struct {
	BaseEvent
	Ship        *entity.Ship
	Planet      *entity.Planet
	ImpactPoint r2.Point
}

// NewShipDestroyedEvent creates a new ship destroyed event
func NewShipDestroyedEvent(source interface{}, ship *entity.Ship, planet *entity.Planet, impact r2.Point) *ShipDestroyedEvent {
	return &ShipDestroyedEvent{
		BaseEvent: BaseEvent{
			EventType: ShipDestroyed,
			Source:    source,
		},
		Ship:        ship,
		Planet:      planet,
		ImpactPoint: impact,
	}
}

// WaypointReachedEvent reports a waypoint collected by a ship
type WaypointReachedEvent struct {
	BaseEvent
	Ship     *entity.Ship
	Waypoint *entity.Waypoint
	Point    r2.Point
}

// NewWaypointReachedEvent creates a new waypoint reached event
func NewWaypointReachedEvent(source interface{}, ship *entity.Ship, waypoint *entity.Waypoint) *WaypointReachedEvent {
	return &WaypointReachedEvent{
		BaseEvent: BaseEvent{
			EventType: WaypointReached,
			Source:    source,
		},
		Ship:     ship,
		Waypoint: waypoint,
		Point:    waypoint.Position(),
	}
}

// LevelEvent carries the run summary for level lifecycle events
type LevelEvent struct {
	BaseEvent
	Tick      uint64
	ElapsedMs int64
	FuelUsage int
}

// NewLevelEvent creates a new level lifecycle event
func NewLevelEvent(eventType Type, source interface{}, tick uint64, elapsedMs int64, fuel int) *LevelEvent {
	return &LevelEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Tick:      tick,
		ElapsedMs: elapsedMs,
		FuelUsage: fuel,
	}
}
