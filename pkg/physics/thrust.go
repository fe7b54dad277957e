// pkg/physics/thrust.go
package physics

import "github.com/golang/geo/r2"

// DefaultThrustPower is the velocity change per tick for each active axis
const DefaultThrustPower = 1e-4

// Cardinal thrust directions. World y grows upward.
var (
	Up    = r2.Point{X: 0, Y: 1}
	Down  = r2.Point{X: 0, Y: -1}
	Left  = r2.Point{X: -1, Y: 0}
	Right = r2.Point{X: 1, Y: 0}
)

// headings maps each of the eight thrust directions to a sprite rotation
// in degrees, clockwise from up.
var headings = map[[2]int]float64{
	{0, 1}:   0,
	{1, 1}:   45,
	{1, 0}:   90,
	{1, -1}:  135,
	{0, -1}:  180,
	{-1, -1}: 225,
	{-1, 0}:  270,
	{-1, 1}:  315,
}

// HeadingFor returns the rotation matching a thrust direction. The second
// result is false for the zero direction or anything off the eight axes.
func HeadingFor(dir r2.Point) (float64, bool) {
	key := [2]int{int(dir.X), int(dir.Y)}
	if float64(key[0]) != dir.X || float64(key[1]) != dir.Y {
		return 0, false
	}
	h, ok := headings[key]
	return h, ok
}

// ThrustForce scales a direction by the thrust power. Two orthogonal axes
// combine into a diagonal without renormalizing.
func ThrustForce(dir r2.Point, power float64) r2.Point {
	return dir.Mul(power)
}
