// cmd/simulate/script.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/opd-ai/go-gravity/pkg/physics"
)

var scriptDirections = map[string]r2.Point{
	"none":  {},
	"up":    physics.Up,
	"down":  physics.Down,
	"left":  physics.Left,
	"right": physics.Right,
}

// step holds one thrust direction for a number of frames
type step struct {
	dir    r2.Point
	frames int
}

// script is a thrust schedule. Past its last step the engine is off.
type script []step

// parseScript reads a comma-separated list of direction:frames steps.
// Directions combine with '+', for example "right:30,none:60,up+left:20".
func parseScript(s string) (script, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out script
	for _, part := range strings.Split(s, ",") {
		name, count, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("thrust step %q: want direction:frames", part)
		}
		frames, err := strconv.Atoi(count)
		if err != nil || frames < 0 {
			return nil, fmt.Errorf("thrust step %q: bad frame count", part)
		}

		var dir r2.Point
		for _, axis := range strings.Split(name, "+") {
			d, ok := scriptDirections[strings.ToLower(axis)]
			if !ok {
				return nil, fmt.Errorf("thrust step %q: unknown direction %q", part, axis)
			}
			dir = dir.Add(d)
		}
		out = append(out, step{dir: dir, frames: frames})
	}
	return out, nil
}

// At returns the thrust for frame, counting from 0
func (sc script) At(frame int) r2.Point {
	for _, st := range sc {
		if frame < st.frames {
			return st.dir
		}
		frame -= st.frames
	}
	return r2.Point{}
}

// Frames is the total length of the script
func (sc script) Frames() int {
	n := 0
	for _, st := range sc {
		n += st.frames
	}
	return n
}
