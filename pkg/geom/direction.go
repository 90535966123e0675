package geom

import "github.com/go-gl/mathgl/mgl32"

// Direction is one of the six axis-aligned face directions.
type Direction int

const (
	East  Direction = iota // +X
	West                   // -X
	Up                     // +Y
	Down                   // -Y
	North                  // +Z
	South                  // -Z
)

// Vector returns the unit normal for the direction.
func (d Direction) Vector() mgl32.Vec3 {
	switch d {
	case East:
		return mgl32.Vec3{1, 0, 0}
	case West:
		return mgl32.Vec3{-1, 0, 0}
	case Up:
		return mgl32.Vec3{0, 1, 0}
	case Down:
		return mgl32.Vec3{0, -1, 0}
	case North:
		return mgl32.Vec3{0, 0, 1}
	case South:
		return mgl32.Vec3{0, 0, -1}
	}
	return mgl32.Vec3{}
}

// AxisDirection returns the direction along the given primary axis
// (0=X, 1=Y, 2=Z), signed by sign (+1 or -1).
func AxisDirection(axis, sign int) Direction {
	switch axis {
	case 0:
		if sign > 0 {
			return East
		}
		return West
	case 1:
		if sign > 0 {
			return Up
		}
		return Down
	default:
		if sign > 0 {
			return North
		}
		return South
	}
}
