// pkg/engine/collision.go
package engine

import (
	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/geometry"
	"github.com/opd-ai/go-gravity/pkg/level"
)

// CollisionResolver tests every ship against every planet and waypoint
// and applies the outcome to the level.
type CollisionResolver struct {
	bus    *event.Bus
	source interface{}
}

// NewCollisionResolver creates a resolver publishing to bus
func NewCollisionResolver(bus *event.Bus, source interface{}) *CollisionResolver {
	return &CollisionResolver{bus: bus, source: source}
}

// Resolve handles all current contacts. A ship touching a planet is
// removed and tested no further, so it cannot collect a waypoint it
// touches in the same tick. A waypoint touched by a surviving ship is
// removed.
func (r *CollisionResolver) Resolve(l *level.Level) {
	for _, ship := range l.Ships() {
		if r.checkPlanets(l, ship) {
			continue
		}
		r.checkWaypoints(l, ship)
	}
}

// checkPlanets reports whether the ship was destroyed
func (r *CollisionResolver) checkPlanets(l *level.Level, ship *entity.Ship) bool {
	for _, planet := range l.Planets() {
		if geometry.Collide(ship.Circle(), planet.Circle()) {
			r.handleShipPlanetCollision(l, ship, planet)
			return true
		}
	}
	return false
}

// handleShipPlanetCollision removes the ship and reports the impact point
func (r *CollisionResolver) handleShipPlanetCollision(l *level.Level, ship *entity.Ship, planet *entity.Planet) {
	if !l.RemoveShip(ship) {
		return
	}
	impact := geometry.ImpactPoint(ship.Circle(), planet.Circle())
	r.bus.Publish(event.NewShipDestroyedEvent(r.source, ship, planet, impact))
}

func (r *CollisionResolver) checkWaypoints(l *level.Level, ship *entity.Ship) {
	for _, waypoint := range l.Waypoints() {
		if geometry.Collide(ship.Circle(), waypoint.Circle()) {
			r.handleShipWaypointCollision(l, ship, waypoint)
		}
	}
}

// handleShipWaypointCollision collects the waypoint
func (r *CollisionResolver) handleShipWaypointCollision(l *level.Level, ship *entity.Ship, waypoint *entity.Waypoint) {
	if !l.RemoveWaypoint(waypoint) {
		return
	}
	r.bus.Publish(event.NewWaypointReachedEvent(r.source, ship, waypoint))
}
