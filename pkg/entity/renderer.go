package entity

// Renderer draws level entities
type Renderer interface {
	RenderShip(ship *Ship)
	RenderPlanet(planet *Planet)
	RenderWaypoint(waypoint *Waypoint)
	Clear()
	Present()
}

func (s *Ship) Render(r Renderer) {
	r.RenderShip(s)
}

func (p *Planet) Render(r Renderer) {
	r.RenderPlanet(p)
}

func (w *Waypoint) Render(r Renderer) {
	r.RenderWaypoint(w)
}
