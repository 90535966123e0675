// Package export writes assembled meshes to common 3D file formats so
// either render style can be inspected in external tools.
package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/voxmesh/pkg/mesher"
)

// Triangles flattens the indexed buffers of the given meshes into sdfx
// render triangles.
func Triangles(meshes []*mesher.Mesh) []*sdf.Triangle3 {
	var tris []*sdf.Triangle3
	for _, m := range meshes {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			t := &sdf.Triangle3{}
			for j := 0; j < 3; j++ {
				k := int(m.Indices[i+j]) * 3
				t[j] = v3.Vec{
					X: float64(m.Positions[k]),
					Y: float64(m.Positions[k+1]),
					Z: float64(m.Positions[k+2]),
				}
			}
			tris = append(tris, t)
		}
	}
	return tris
}

// SaveSTL writes all meshes into a single binary STL file.
func SaveSTL(path string, meshes []*mesher.Mesh) error {
	tris := Triangles(meshes)
	if len(tris) == 0 {
		return fmt.Errorf("export: no triangles to write to %s", path)
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("export: writing STL %s: %w", path, err)
	}
	return nil
}
