package mesher

import "github.com/chazu/voxmesh/pkg/voxel"

// Mesh is the per-state triangle mesh produced by a backend.
// All arrays are flat: positions has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, colors has 3 floats per vertex,
// indices has 3 uint32s per triangle.
type Mesh struct {
	State     voxel.State
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// statePalette maps each solid state to its vertex color.
var statePalette = map[voxel.State][3]float32{
	voxel.Dirt:  {0.55, 0.37, 0.22},
	voxel.Stone: {0.55, 0.55, 0.58},
	voxel.Grass: {0.29, 0.62, 0.27},
	voxel.Water: {0.18, 0.41, 0.75},
}

// StateColor returns the render color for a state. Unknown states render
// magenta so they stand out.
func StateColor(s voxel.State) [3]float32 {
	if c, ok := statePalette[s]; ok {
		return c
	}
	return [3]float32{1, 0, 1}
}
