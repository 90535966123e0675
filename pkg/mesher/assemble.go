package mesher

import (
	"github.com/chazu/voxmesh/pkg/geom"
	"github.com/chazu/voxmesh/pkg/voxel"
)

// Assembler groups quads and triangles by voxel state into per-state
// buffers. States that receive no geometry never appear in the output, so
// the caller sees either a complete mesh or nothing for each state.
type Assembler struct {
	buckets map[voxel.State]*Mesh
}

// NewAssembler returns an empty assembler.
func NewAssembler() *Assembler {
	return &Assembler{buckets: make(map[voxel.State]*Mesh)}
}

func (a *Assembler) bucket(s voxel.State) *Mesh {
	m, ok := a.buckets[s]
	if !ok {
		m = &Mesh{State: s}
		a.buckets[s] = m
	}
	return m
}

// AddQuad appends a merged face as four vertices and two triangles
// (0,1,2)(2,3,0), keeping the quad's winding.
func (a *Assembler) AddQuad(s voxel.State, q geom.Quad) {
	m := a.bucket(s)
	base := uint32(m.VertexCount())
	c := StateColor(s)
	for _, v := range q.Verts {
		m.Positions = append(m.Positions, v.X(), v.Y(), v.Z())
		m.Normals = append(m.Normals, q.Normal.X(), q.Normal.Y(), q.Normal.Z())
		m.Colors = append(m.Colors, c[0], c[1], c[2])
	}
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base+2, base+3, base,
	)
}

// AddTriangle appends one flat-shaded triangle as three vertices.
func (a *Assembler) AddTriangle(s voxel.State, t geom.Triangle) {
	m := a.bucket(s)
	base := uint32(m.VertexCount())
	n := t.Normal()
	c := StateColor(s)
	for _, v := range t.Verts {
		m.Positions = append(m.Positions, v.X(), v.Y(), v.Z())
		m.Normals = append(m.Normals, n.X(), n.Y(), n.Z())
		m.Colors = append(m.Colors, c[0], c[1], c[2])
	}
	m.Indices = append(m.Indices, base, base+1, base+2)
}

// Build returns the accumulated meshes in ascending state order and
// resets the assembler.
func (a *Assembler) Build() []*Mesh {
	var out []*Mesh
	for _, s := range voxel.States() {
		if m, ok := a.buckets[s]; ok && !m.IsEmpty() {
			out = append(out, m)
		}
	}
	a.buckets = make(map[voxel.State]*Mesh)
	return out
}
