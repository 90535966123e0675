package metaball

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/voxmesh/pkg/geom"
	"github.com/chazu/voxmesh/pkg/mesher"
	"github.com/chazu/voxmesh/pkg/voxel"
)

// Compile-time interface check.
var _ mesher.Mesher = (*Mesher)(nil)

// Mesher is the metaball meshing backend. The zero value is ready to use;
// the scalar field buffer is reused across calls.
type Mesher struct {
	field scalarField
}

// New returns a new metaball Mesher.
func New() *Mesher {
	return &Mesher{}
}

// BuildMeshes runs the full field-splat plus marching-cubes pipeline once
// per solid state and returns the per-state triangle meshes. A field that
// never crosses the threshold simply contributes no mesh.
func (m *Mesher) BuildMeshes(f voxel.Field, cfg mesher.Config) ([]*mesher.Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	asm := mesher.NewAssembler()
	for _, s := range voxel.States() {
		if !m.field.build(f, s, cfg) {
			continue
		}
		extract(&m.field, cfg.Threshold, func(t geom.Triangle) {
			asm.AddTriangle(s, t)
		})
	}
	return asm.Build(), nil
}

// cornerOffsets lists the 8 cube corners in table order: 0-3 wind around
// the z face, 4-7 around the z+1 face.
var cornerOffsets = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// cornerEdges maps each of the 12 cube edges to its two corner indices,
// matching the edge numbering the lookup tables were generated for.
var cornerEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// extract walks every unit cube of the field and emits the triangles of
// the threshold isosurface. Cube traversal and table lookups are fully
// deterministic, so identical fields produce byte-identical output.
func extract(sf *scalarField, threshold float32, emit func(geom.Triangle)) {
	var vals [8]float32
	var pos [8]mgl32.Vec3
	var verts [12]mgl32.Vec3

	for x := 0; x < sf.size[0]-1; x++ {
		for y := 0; y < sf.size[1]-1; y++ {
			for z := 0; z < sf.size[2]-1; z++ {
				ci := 0
				for i, off := range cornerOffsets {
					v := sf.at(x+off[0], y+off[1], z+off[2])
					vals[i] = v
					if v < threshold {
						ci |= 1 << i
					}
				}

				// All corners on one side of the threshold: no surface
				// in this cube.
				edges := edgeTable[ci]
				if edges == 0 {
					continue
				}

				for i, off := range cornerOffsets {
					pos[i] = sf.samplePos(x+off[0], y+off[1], z+off[2])
				}

				for e := 0; e < 12; e++ {
					if edges&(1<<e) == 0 {
						continue
					}
					c := cornerEdges[e]
					verts[e] = interpolate(threshold, pos[c[0]], pos[c[1]], vals[c[0]], vals[c[1]])
				}

				row := triTable[ci]
				for i := 0; row[i] != -1; i += 3 {
					emit(geom.Triangle{Verts: [3]mgl32.Vec3{
						verts[row[i]],
						verts[row[i+1]],
						verts[row[i+2]],
					}})
				}
			}
		}
	}
}

// interpolate finds the threshold crossing on the edge between p1 and p2.
// A flat edge (equal corner values) crosses at the midpoint.
func interpolate(threshold float32, p1, p2 mgl32.Vec3, v1, v2 float32) mgl32.Vec3 {
	t := float32(0.5)
	if v2 != v1 {
		t = (threshold - v1) / (v2 - v1)
	}
	return p1.Add(p2.Sub(p1).Mul(t))
}

// FieldValueAt exposes the scalar field value at a world position for one
// state, computed with the same splatting pass the mesher uses. Intended
// for diagnostics and tests.
func FieldValueAt(f voxel.Field, s voxel.State, cfg mesher.Config, p mgl32.Vec3) float32 {
	var sf scalarField
	if !sf.build(f, s, cfg) {
		return 0
	}
	// Nearest sample to p.
	l := sf.tr.ToLattice(p)
	r := float32(sf.res)
	ix := clampIndex(int((l.X()+float32(sf.pad))*r+0.5), sf.size[0])
	iy := clampIndex(int((l.Y()+float32(sf.pad))*r+0.5), sf.size[1])
	iz := clampIndex(int((l.Z()+float32(sf.pad))*r+0.5), sf.size[2])
	return sf.at(ix, iy, iz)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
