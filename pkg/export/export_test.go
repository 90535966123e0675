package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/voxmesh/pkg/geom"
	"github.com/chazu/voxmesh/pkg/mesher"
	"github.com/chazu/voxmesh/pkg/voxel"
)

func sampleMeshes(t *testing.T) []*mesher.Mesh {
	t.Helper()
	a := mesher.NewAssembler()
	a.AddQuad(voxel.Dirt, geom.Quad{
		Verts: [4]mgl32.Vec3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		},
		Normal: mgl32.Vec3{0, 0, 1},
	})
	a.AddTriangle(voxel.Stone, geom.Triangle{Verts: [3]mgl32.Vec3{
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1},
	}})
	meshes := a.Build()
	if len(meshes) != 2 {
		t.Fatalf("sample produced %d meshes", len(meshes))
	}
	return meshes
}

func TestTrianglesFlattensIndices(t *testing.T) {
	meshes := sampleMeshes(t)
	tris := Triangles(meshes)
	// One quad (two triangles) plus one triangle.
	if len(tris) != 3 {
		t.Fatalf("got %d triangles, want 3", len(tris))
	}
	// First triangle of the quad is (0,0,0) (1,0,0) (1,1,0).
	if tris[0][0].X != 0 || tris[0][1].X != 1 || tris[0][2].Y != 1 {
		t.Errorf("unexpected first triangle %v", tris[0])
	}
}

func TestWriteOBJ(t *testing.T) {
	var sb strings.Builder
	if err := WriteOBJ(&sb, sampleMeshes(t)); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"g dirt",
		"g stone",
		"v 0 0 0",
		"vn 0 0 1",
		"f 1//1 2//2 3//3",
		// The stone triangle indexes past the quad's four vertices.
		"f 5//5 6//6 7//7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("OBJ output missing %q:\n%s", want, out)
		}
	}

	if got := strings.Count(out, "\nv "); got != 7 {
		t.Errorf("OBJ holds %d vertices, want 7", got)
	}
	if got := strings.Count(out, "\nf "); got != 3 {
		t.Errorf("OBJ holds %d faces, want 3", got)
	}
}

func TestSaveOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.obj")
	if err := SaveOBJ(path, sampleMeshes(t)); err != nil {
		t.Fatalf("SaveOBJ failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.HasPrefix(string(data), "# voxmesh export") {
		t.Error("missing OBJ header")
	}
}

func TestSaveSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.stl")
	if err := SaveSTL(path, sampleMeshes(t)); err != nil {
		t.Fatalf("SaveSTL failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	// Binary STL: 80-byte header, 4-byte count, 50 bytes per triangle.
	if want := int64(80 + 4 + 3*50); info.Size() != want {
		t.Errorf("STL size = %d, want %d", info.Size(), want)
	}
}

func TestSaveSTLRejectsEmptyMeshes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.stl")
	if err := SaveSTL(path, nil); err == nil {
		t.Fatal("expected error for empty mesh list")
	}
}
