// Package geom holds the geometry primitives and the lattice-to-world
// coordinate transform shared by the meshing backends.
package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform maps voxel lattice coordinates into world space. The grid is
// centered at the world origin: a lattice point v maps to
// v*VoxelSize - Dim*VoxelSize/2 per axis.
type Transform struct {
	VoxelSize float32
	Dim       [3]int
}

// offset is the centering offset per axis.
func (t Transform) offset() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(t.Dim[0]) * t.VoxelSize / 2,
		float32(t.Dim[1]) * t.VoxelSize / 2,
		float32(t.Dim[2]) * t.VoxelSize / 2,
	}
}

// ToWorld maps a (possibly fractional) lattice coordinate to world space.
func (t Transform) ToWorld(x, y, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x * t.VoxelSize, y * t.VoxelSize, z * t.VoxelSize}.Sub(t.offset())
}

// ToLattice is the inverse of ToWorld.
func (t Transform) ToLattice(p mgl32.Vec3) mgl32.Vec3 {
	q := p.Add(t.offset())
	return mgl32.Vec3{q.X() / t.VoxelSize, q.Y() / t.VoxelSize, q.Z() / t.VoxelSize}
}

// VoxelCenter maps a voxel cell index to the world position of its center.
func (t Transform) VoxelCenter(x, y, z int) mgl32.Vec3 {
	return t.ToWorld(float32(x)+0.5, float32(y)+0.5, float32(z)+0.5)
}

// Quad is one merged axis-aligned face: four coplanar world-space corners
// wound counter-clockwise around the outward face normal.
type Quad struct {
	Verts  [4]mgl32.Vec3
	Normal mgl32.Vec3
}

// Area returns the covered face area in voxel-face units, assuming the
// given voxel size.
func (q Quad) Area(voxelSize float32) float32 {
	a := q.Verts[1].Sub(q.Verts[0]).Len()
	b := q.Verts[3].Sub(q.Verts[0]).Len()
	return a * b / (voxelSize * voxelSize)
}

// Triangle is a single world-space triangle.
type Triangle struct {
	Verts [3]mgl32.Vec3
}

// Normal returns the flat face normal, the normalized cross product of two
// edge vectors. Degenerate triangles yield the zero vector.
func (t Triangle) Normal() mgl32.Vec3 {
	e1 := t.Verts[1].Sub(t.Verts[0])
	e2 := t.Verts[2].Sub(t.Verts[0])
	n := e1.Cross(e2)
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}
