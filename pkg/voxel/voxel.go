// Package voxel defines the voxel grid consumed by the meshing backends.
// A grid is a dense 3D array of discrete states; meshers treat it as a
// read-only snapshot for the duration of one call.
package voxel

// State is the discrete content of a single voxel cell.
type State uint8

const (
	Empty State = iota
	Dirt
	Stone
	Grass
	Water

	numStates
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Dirt:
		return "dirt"
	case Stone:
		return "stone"
	case Grass:
		return "grass"
	case Water:
		return "water"
	}
	return "unknown"
}

// Solid reports whether the state contributes geometry.
func (s State) Solid() bool {
	return s != Empty && s < numStates
}

// States returns all non-empty states in ascending order. Meshers run one
// pass per entry, so the order here fixes the output mesh order.
func States() []State {
	out := make([]State, 0, numStates-1)
	for s := Empty + 1; s < numStates; s++ {
		out = append(out, s)
	}
	return out
}

// Field is a read-only view of a voxel grid. Implementations must be
// side-effect free and must return Empty for any out-of-range coordinate;
// At never fails.
type Field interface {
	Width() int
	Height() int
	Depth() int
	At(x, y, z int) State
}
