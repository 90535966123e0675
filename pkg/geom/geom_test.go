package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approxEq(a, b mgl32.Vec3) bool {
	const eps = 1e-5
	return math.Abs(float64(a.X()-b.X())) < eps &&
		math.Abs(float64(a.Y()-b.Y())) < eps &&
		math.Abs(float64(a.Z()-b.Z())) < eps
}

func TestTransformCentersGrid(t *testing.T) {
	tr := Transform{VoxelSize: 1, Dim: [3]int{8, 8, 8}}

	if got := tr.ToWorld(0, 0, 0); !approxEq(got, mgl32.Vec3{-4, -4, -4}) {
		t.Errorf("ToWorld(0,0,0) = %v, want (-4,-4,-4)", got)
	}
	if got := tr.ToWorld(8, 8, 8); !approxEq(got, mgl32.Vec3{4, 4, 4}) {
		t.Errorf("ToWorld(8,8,8) = %v, want (4,4,4)", got)
	}
	if got := tr.ToWorld(4, 4, 4); !approxEq(got, mgl32.Vec3{0, 0, 0}) {
		t.Errorf("lattice center should map to the world origin, got %v", got)
	}
}

func TestTransformScalesByVoxelSize(t *testing.T) {
	tr := Transform{VoxelSize: 0.5, Dim: [3]int{4, 4, 4}}
	if got := tr.ToWorld(4, 0, 0); !approxEq(got, mgl32.Vec3{1, -1, -1}) {
		t.Errorf("ToWorld(4,0,0) = %v, want (1,-1,-1)", got)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{VoxelSize: 0.25, Dim: [3]int{16, 12, 10}}
	pts := []mgl32.Vec3{
		{0, 0, 0},
		{1.5, 7.25, 3},
		{16, 12, 10},
	}
	for _, p := range pts {
		w := tr.ToWorld(p.X(), p.Y(), p.Z())
		back := tr.ToLattice(w)
		if !approxEq(back, p) {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestVoxelCenter(t *testing.T) {
	tr := Transform{VoxelSize: 1, Dim: [3]int{8, 8, 8}}
	if got := tr.VoxelCenter(3, 3, 3); !approxEq(got, mgl32.Vec3{-0.5, -0.5, -0.5}) {
		t.Errorf("VoxelCenter(3,3,3) = %v, want (-0.5,-0.5,-0.5)", got)
	}
}

func TestQuadArea(t *testing.T) {
	q := Quad{Verts: [4]mgl32.Vec3{
		{0, 0, 0}, {2, 0, 0}, {2, 3, 0}, {0, 3, 0},
	}}
	if got := q.Area(1); got != 6 {
		t.Errorf("Area = %v, want 6", got)
	}
	if got := q.Area(0.5); got != 24 {
		t.Errorf("Area with voxel size 0.5 = %v, want 24", got)
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := Triangle{Verts: [3]mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
	}}
	if got := tri.Normal(); !approxEq(got, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Normal = %v, want (0,0,1)", got)
	}
}

func TestDegenerateTriangleNormalIsZero(t *testing.T) {
	tri := Triangle{Verts: [3]mgl32.Vec3{
		{1, 1, 1}, {1, 1, 1}, {2, 2, 2},
	}}
	if got := tri.Normal(); got != (mgl32.Vec3{}) {
		t.Errorf("Normal = %v, want zero vector", got)
	}
}

func TestDirectionVectors(t *testing.T) {
	cases := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{East, mgl32.Vec3{1, 0, 0}},
		{West, mgl32.Vec3{-1, 0, 0}},
		{Up, mgl32.Vec3{0, 1, 0}},
		{Down, mgl32.Vec3{0, -1, 0}},
		{North, mgl32.Vec3{0, 0, 1}},
		{South, mgl32.Vec3{0, 0, -1}},
	}
	for _, c := range cases {
		if got := c.dir.Vector(); got != c.want {
			t.Errorf("%v.Vector() = %v, want %v", c.dir, got, c.want)
		}
	}
}

func TestAxisDirection(t *testing.T) {
	for axis := 0; axis < 3; axis++ {
		for _, sign := range []int{1, -1} {
			d := AxisDirection(axis, sign)
			v := d.Vector()
			if v[axis] != float32(sign) {
				t.Errorf("AxisDirection(%d, %d).Vector() = %v", axis, sign, v)
			}
		}
	}
}
