// Package greedy implements the faceted meshing backend. It sweeps the
// voxel grid along each axis, builds a 2D mask of exposed faces per layer
// boundary, and merges runs of identical mask cells into the fewest
// possible axis-aligned quads.
package greedy

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/voxmesh/pkg/geom"
	"github.com/chazu/voxmesh/pkg/mesher"
	"github.com/chazu/voxmesh/pkg/voxel"
)

// Compile-time interface check.
var _ mesher.Mesher = (*Mesher)(nil)

// Mesher is the greedy face-meshing backend. The zero value is ready to
// use; the mask scratch buffer is reused across calls.
type Mesher struct {
	mask []int8
}

// New returns a new greedy Mesher.
func New() *Mesher {
	return &Mesher{}
}

// BuildMeshes emits one quad mesh per solid state present in the field.
// Each exposed voxel face is covered by exactly one quad, with no gaps or
// duplicates; output is deterministic for identical input.
func (m *Mesher) BuildMeshes(f voxel.Field, cfg mesher.Config) ([]*mesher.Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	asm := mesher.NewAssembler()
	for _, s := range voxel.States() {
		m.meshState(f, cfg, s, asm)
	}
	return asm.Build(), nil
}

// MeshState collects the quads for a single target state. Exposed for
// callers that want raw quads rather than assembled buffers.
func (m *Mesher) MeshState(f voxel.Field, cfg mesher.Config, s voxel.State) []geom.Quad {
	var quads []geom.Quad
	m.sweep(f, cfg, s, func(q geom.Quad) { quads = append(quads, q) })
	return quads
}

func (m *Mesher) meshState(f voxel.Field, cfg mesher.Config, s voxel.State, asm *mesher.Assembler) {
	m.sweep(f, cfg, s, func(q geom.Quad) { asm.AddQuad(s, q) })
}

// sweep runs the three axis sweeps and calls emit for every merged quad.
func (m *Mesher) sweep(f voxel.Field, cfg mesher.Config, s voxel.State, emit func(geom.Quad)) {
	dim := [3]int{f.Width(), f.Height(), f.Depth()}
	tr := geom.Transform{VoxelSize: cfg.VoxelSize, Dim: dim}

	at := func(p [3]int) voxel.State {
		return f.At(p[0], p[1], p[2]) // out of range resolves to Empty
	}

	for d := 0; d < 3; d++ {
		u := (d + 1) % 3
		v := (d + 2) % 3
		dimU, dimV := dim[u], dim[v]

		if cap(m.mask) < dimU*dimV {
			m.mask = make([]int8, dimU*dimV)
		}
		mask := m.mask[:dimU*dimV]

		// Walk every boundary plane between adjacent layers, including
		// the two world edges (layer -1 and layer dim-1).
		for layer := -1; layer < dim[d]; layer++ {
			// Build the mask: a cell is set when exactly one side of the
			// boundary holds the target state. The sign records which
			// side, and therefore which way the face points.
			filled := 0
			var lo, hi [3]int
			lo[d] = layer
			hi[d] = layer + 1
			for iu := 0; iu < dimU; iu++ {
				lo[u], hi[u] = iu, iu
				for iv := 0; iv < dimV; iv++ {
					lo[v], hi[v] = iv, iv
					a := at(lo) == s
					b := at(hi) == s
					switch {
					case a && !b:
						mask[iu*dimV+iv] = 1
						filled++
					case b && !a:
						mask[iu*dimV+iv] = -1
						filled++
					default:
						mask[iu*dimV+iv] = 0
					}
				}
			}
			if filled == 0 {
				continue
			}

			// Merge rectangles, always starting at the first unconsumed
			// cell in scan order so output is reproducible.
			for n := 0; n < dimU*dimV; n++ {
				sign := mask[n]
				if sign == 0 {
					continue
				}
				u0 := n / dimV
				v0 := n % dimV

				// Grow the width while the next column matches.
				width := 1
				for v0+width < dimV && mask[u0*dimV+v0+width] == sign {
					width++
				}

				// Grow the height row by row while the whole width matches.
				height := 1
			growth:
				for u0+height < dimU {
					row := (u0 + height) * dimV
					for k := v0; k < v0+width; k++ {
						if mask[row+k] != sign {
							break growth
						}
					}
					height++
				}

				emit(buildQuad(tr, d, u, v, layer+1, u0, v0, width, height, int(sign)))

				// Clear the consumed region.
				for iu := u0; iu < u0+height; iu++ {
					row := iu * dimV
					for iv := v0; iv < v0+width; iv++ {
						mask[row+iv] = 0
					}
				}
			}
		}
	}
}

// buildQuad maps a merged mask rectangle to a world-space quad. The quad
// lies in the boundary plane at lattice coordinate `plane` along axis d
// and is wound counter-clockwise around its outward normal.
func buildQuad(tr geom.Transform, d, u, v, plane, u0, v0, width, height, sign int) geom.Quad {
	var base, du, dv [3]float32
	base[d] = float32(plane)
	base[u] = float32(u0)
	base[v] = float32(v0)
	du[u] = float32(height)
	dv[v] = float32(width)

	corner := func(su, sv float32) mgl32.Vec3 {
		return tr.ToWorld(
			base[0]+su*du[0]+sv*dv[0],
			base[1]+su*du[1]+sv*dv[1],
			base[2]+su*du[2]+sv*dv[2],
		)
	}

	q := geom.Quad{Normal: geom.AxisDirection(d, sign).Vector()}
	if sign > 0 {
		// u cross v points along +d, so (base, +u, +u+v, +v) is CCW.
		q.Verts = [4]mgl32.Vec3{corner(0, 0), corner(1, 0), corner(1, 1), corner(0, 1)}
	} else {
		q.Verts = [4]mgl32.Vec3{corner(0, 0), corner(0, 1), corner(1, 1), corner(1, 0)}
	}
	return q
}
