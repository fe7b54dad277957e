// Package level holds the entities of one playthrough and builds new
// levels from configuration.
package level

import (
	"slices"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// Level owns the ships, planets and waypoints of a run. The combined
// entity list and the body list handed to the integrator are rebuilt
// after every mutation.
type Level struct {
	ships     []*entity.Ship
	planets   []*entity.Planet
	waypoints []*entity.Waypoint

	entities []entity.Entity
	bodies   []*physics.Body
}

// New creates a level from the given entities
func New(ships []*entity.Ship, planets []*entity.Planet, waypoints []*entity.Waypoint) *Level {
	l := &Level{
		ships:     slices.Clone(ships),
		planets:   slices.Clone(planets),
		waypoints: slices.Clone(waypoints),
	}
	l.rebuild()
	return l
}

// Ships returns the live ships. The slice must not be modified.
func (l *Level) Ships() []*entity.Ship { return l.ships }

// Planets returns the planets. The slice must not be modified.
func (l *Level) Planets() []*entity.Planet { return l.planets }

// Waypoints returns the uncollected waypoints. The slice must not be modified.
func (l *Level) Waypoints() []*entity.Waypoint { return l.waypoints }

// Entities returns planets, waypoints and ships in draw order
func (l *Level) Entities() []entity.Entity { return l.entities }

// Bodies returns the bodies of every massive entity
func (l *Level) Bodies() []*physics.Body { return l.bodies }

// Ship returns the player ship, or nil once it has been destroyed
func (l *Level) Ship() *entity.Ship {
	if len(l.ships) == 0 {
		return nil
	}
	return l.ships[0]
}

// AddShip adds a ship to the level
func (l *Level) AddShip(s *entity.Ship) {
	l.ships = append(l.ships, s)
	l.rebuild()
}

// AddPlanet adds a planet to the level
func (l *Level) AddPlanet(p *entity.Planet) {
	l.planets = append(l.planets, p)
	l.rebuild()
}

// AddWaypoint adds a waypoint to the level
func (l *Level) AddWaypoint(w *entity.Waypoint) {
	l.waypoints = append(l.waypoints, w)
	l.rebuild()
}

// RemoveShip removes s and reports whether it was present
func (l *Level) RemoveShip(s *entity.Ship) bool {
	var ok bool
	l.ships, ok = remove(l.ships, s)
	if ok {
		l.rebuild()
	}
	return ok
}

// RemoveWaypoint removes w and reports whether it was present
func (l *Level) RemoveWaypoint(w *entity.Waypoint) bool {
	var ok bool
	l.waypoints, ok = remove(l.waypoints, w)
	if ok {
		l.rebuild()
	}
	return ok
}

func remove[T comparable](items []T, item T) ([]T, bool) {
	i := slices.Index(items, item)
	if i < 0 {
		return items, false
	}
	return slices.Delete(slices.Clone(items), i, i+1), true
}

// rebuild recomputes the derived lists from the entity sets
func (l *Level) rebuild() {
	entities := make([]entity.Entity, 0, len(l.planets)+len(l.waypoints)+len(l.ships))
	for _, p := range l.planets {
		entities = append(entities, p)
	}
	for _, w := range l.waypoints {
		entities = append(entities, w)
	}
	for _, s := range l.ships {
		entities = append(entities, s)
	}

	bodies := make([]*physics.Body, 0, len(l.planets)+len(l.ships))
	for _, e := range entities {
		if m, ok := e.(entity.Massive); ok {
			bodies = append(bodies, m.Body())
		}
	}

	l.entities = entities
	l.bodies = bodies
}
