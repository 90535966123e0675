package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chazu/voxmesh/pkg/mesher"
)

// WriteOBJ writes the meshes as Wavefront OBJ, one group per voxel state.
// Vertices and normals are shared within a mesh; OBJ indices are 1-based
// and global across groups.
func WriteOBJ(w io.Writer, meshes []*mesher.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# voxmesh export")
	vertBase := 1
	for _, m := range meshes {
		fmt.Fprintf(bw, "g %s\n", m.State)
		for i := 0; i+2 < len(m.Positions); i += 3 {
			fmt.Fprintf(bw, "v %g %g %g\n", m.Positions[i], m.Positions[i+1], m.Positions[i+2])
		}
		for i := 0; i+2 < len(m.Normals); i += 3 {
			fmt.Fprintf(bw, "vn %g %g %g\n", m.Normals[i], m.Normals[i+1], m.Normals[i+2])
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a := vertBase + int(m.Indices[i])
			b := vertBase + int(m.Indices[i+1])
			c := vertBase + int(m.Indices[i+2])
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		vertBase += m.VertexCount()
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: writing OBJ: %w", err)
	}
	return nil
}

// SaveOBJ writes the meshes to an OBJ file at path.
func SaveOBJ(path string, meshes []*mesher.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteOBJ(f, meshes); err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return nil
}
