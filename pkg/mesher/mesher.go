// Package mesher defines the abstract meshing interface and the mesh
// buffer format. Backends (greedy, metaball) convert a voxel field into
// renderable triangle geometry behind this interface, so render styles can
// be swapped without changing the rest of the system.
package mesher

import (
	"fmt"

	"github.com/chazu/voxmesh/pkg/voxel"
)

// Config carries the per-call numeric meshing parameters. It is a plain
// value; there is no file or environment configuration in this engine.
type Config struct {
	// VoxelSize is the world-space edge length of one voxel.
	VoxelSize float32

	// BlobRadius is the metaball falloff radius in voxel units.
	BlobRadius float32

	// Resolution is the number of scalar field samples per voxel per axis.
	Resolution int

	// Padding is the number of extra voxels of scalar field on every side
	// of the grid, so isosurfaces near the boundary close smoothly.
	Padding int

	// Threshold is the isosurface level extracted by marching cubes.
	Threshold float32
}

// DefaultConfig returns the standard meshing parameters. A single metaball
// peaks at 1.0 in its center, so the default threshold sits at 0.5 to keep
// isolated voxels visible while letting clusters merge.
func DefaultConfig() Config {
	return Config{
		VoxelSize:  1.0,
		BlobRadius: 1.5,
		Resolution: 2,
		Padding:    2,
		Threshold:  0.5,
	}
}

// Validate reports the first invalid parameter, if any.
func (c Config) Validate() error {
	if c.VoxelSize <= 0 {
		return fmt.Errorf("mesher: voxel size must be positive, got %g", c.VoxelSize)
	}
	if c.BlobRadius <= 0 {
		return fmt.Errorf("mesher: blob radius must be positive, got %g", c.BlobRadius)
	}
	if c.Resolution < 1 {
		return fmt.Errorf("mesher: resolution must be at least 1, got %d", c.Resolution)
	}
	if c.Padding < 0 {
		return fmt.Errorf("mesher: padding must not be negative, got %d", c.Padding)
	}
	return nil
}

// Mesher converts a voxel field into per-state triangle meshes.
//
// A call is synchronous, single-threaded and pure CPU work; the field must
// be a stable snapshot for its duration. Implementations may keep scratch
// buffers between calls but carry no state that affects output. Meshing
// never partially fails: a state either yields a complete mesh or is
// absent from the result.
type Mesher interface {
	BuildMeshes(f voxel.Field, cfg Config) ([]*Mesh, error)
}
