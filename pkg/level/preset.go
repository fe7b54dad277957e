package level

import (
	"fmt"
	"slices"

	"github.com/opd-ai/go-gravity/pkg/entity"
)

var presets = map[string]func(width, height float64) *Level{
	"level1": level1,
}

// Preset builds the named fixed layout centered on a width by height field
func Preset(name string, width, height float64) (*Level, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	return build(width, height), nil
}

// Presets lists the available preset names
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// level1 puts the ship between two planets with a waypoint on each side
func level1(width, height float64) *Level {
	mx, my := width/2, height/2

	ships := []*entity.Ship{entity.NewShip(mx, my)}
	planets := []*entity.Planet{
		entity.NewPlanet(mx-200, my, 50),
		entity.NewPlanet(mx+200, my, 50),
	}
	planets[1].Look = 1
	waypoints := []*entity.Waypoint{
		entity.NewWaypoint(mx-300, my, 20),
		entity.NewWaypoint(mx+300, my, 20),
		entity.NewWaypoint(mx, my-200, 20),
		entity.NewWaypoint(mx, my+200, 20),
	}
	return New(ships, planets, waypoints)
}
