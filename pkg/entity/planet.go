// pkg/entity/planet.go
package entity

import (
	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/geometry"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

// PlanetLooks is the number of distinct planet appearances
const PlanetLooks = 5

// Planet is a fixed gravity source
type Planet struct {
	BaseEntity
	body     *physics.Body
	Look     int     // index into the renderer's planet palette
	Rotation float64 // cosmetic, degrees
}

// NewPlanet creates a fixed planet of radius r at (x, y)
func NewPlanet(x, y, r float64) *Planet {
	return &Planet{
		BaseEntity: BaseEntity{ID: GenerateID()},
		body:       physics.NewBody(x, y, r, true),
	}
}

// Kind implements Entity
func (p *Planet) Kind() Kind {
	return KindPlanet
}

// Body returns the planet's physical body
func (p *Planet) Body() *physics.Body {
	return p.body
}

// Circle implements Entity
func (p *Planet) Circle() geometry.Circle {
	return p.body.Circle()
}

// Position returns the planet's center
func (p *Planet) Position() r2.Point {
	return p.body.Position
}

// Radius returns the planet's radius
func (p *Planet) Radius() float64 {
	return p.body.Radius
}
