package engine

import "github.com/golang/geo/r2"

// ThrustInput tracks which thrust directions are held down
type ThrustInput struct {
	held map[r2.Point]bool
}

// NewThrustInput creates an empty input set
func NewThrustInput() *ThrustInput {
	return &ThrustInput{held: make(map[r2.Point]bool)}
}

// Press marks dir as held
func (in *ThrustInput) Press(dir r2.Point) {
	in.held[dir] = true
}

// Release marks dir as no longer held
func (in *ThrustInput) Release(dir r2.Point) {
	delete(in.held, dir)
}

// Set presses or releases dir
func (in *ThrustInput) Set(dir r2.Point, down bool) {
	if down {
		in.Press(dir)
	} else {
		in.Release(dir)
	}
}

// Clear releases every direction
func (in *ThrustInput) Clear() {
	clear(in.held)
}

// Direction returns the sum of all held directions. Opposing keys cancel
// and orthogonal keys combine into a diagonal.
func (in *ThrustInput) Direction() r2.Point {
	var sum r2.Point
	for dir := range in.held {
		sum = sum.Add(dir)
	}
	return sum
}
