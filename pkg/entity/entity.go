// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-gravity/pkg/geometry"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

var lastID atomic.Uint64

// GenerateID returns a fresh, process-unique entity ID
func GenerateID() ID {
	return ID(lastID.Add(1))
}

// Kind identifies what an entity is
type Kind int

const (
	KindShip Kind = iota
	KindPlanet
	KindWaypoint
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindPlanet:
		return "planet"
	case KindWaypoint:
		return "waypoint"
	default:
		return "unknown"
	}
}

// Entity is the base interface for all objects in a level
type Entity interface {
	GetID() ID
	Kind() Kind
	Circle() geometry.Circle
	Render(r Renderer)
}

// Massive is implemented by entities that take part in gravity
type Massive interface {
	Entity
	Body() *physics.Body
}

// BaseEntity contains the identity shared by all entities
type BaseEntity struct {
	ID ID
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}
