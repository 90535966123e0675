// Package metaball implements the organic meshing backend. Each solid
// voxel splats a bounded Gaussian falloff kernel into a padded,
// higher-resolution scalar field; marching cubes then extracts the
// isosurface of that field.
package metaball

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/voxmesh/pkg/geom"
	"github.com/chazu/voxmesh/pkg/mesher"
	"github.com/chazu/voxmesh/pkg/voxel"
)

// scalarField is the dense density grid sampled by marching cubes. It
// covers the voxel grid plus cfg.Padding voxels on every side, at
// cfg.Resolution samples per voxel per axis. The backing slice is reused
// across calls.
type scalarField struct {
	size [3]int
	res  int
	pad  int
	tr   geom.Transform
	vals []float32
}

func (sf *scalarField) index(x, y, z int) int {
	return (x*sf.size[1]+y)*sf.size[2] + z
}

func (sf *scalarField) at(x, y, z int) float32 {
	return sf.vals[sf.index(x, y, z)]
}

// samplePos returns the world position of a field sample.
func (sf *scalarField) samplePos(x, y, z int) mgl32.Vec3 {
	r := float32(sf.res)
	p := float32(sf.pad)
	return sf.tr.ToWorld(float32(x)/r-p, float32(y)/r-p, float32(z)/r-p)
}

// build recomputes the field for one target state from scratch and
// reports whether any voxel contributed. The computation is voxel-centric:
// it iterates solid voxels and touches only the field samples inside each
// kernel's influence window, instead of evaluating every sample against
// every voxel. Contributions are cut off where the squared distance
// reaches 4r² (kernel value ~e⁻⁴), which defines the window.
func (sf *scalarField) build(f voxel.Field, s voxel.State, cfg mesher.Config) bool {
	dim := [3]int{f.Width(), f.Height(), f.Depth()}
	sf.res = cfg.Resolution
	sf.pad = cfg.Padding
	sf.tr = geom.Transform{VoxelSize: cfg.VoxelSize, Dim: dim}
	for i := 0; i < 3; i++ {
		sf.size[i] = (dim[i] + 2*cfg.Padding) * cfg.Resolution
	}

	n := sf.size[0] * sf.size[1] * sf.size[2]
	if cap(sf.vals) < n {
		sf.vals = make([]float32, n)
	}
	sf.vals = sf.vals[:n]
	for i := range sf.vals {
		sf.vals[i] = 0
	}

	r := cfg.BlobRadius * cfg.VoxelSize
	r2 := r * r
	cutoff2 := 4 * r2

	// Influence window half-width in field samples: 2·blobRadius voxels.
	win := int(math.Ceil(float64(2 * cfg.BlobRadius * float32(cfg.Resolution))))

	active := false
	for x := 0; x < dim[0]; x++ {
		for y := 0; y < dim[1]; y++ {
			for z := 0; z < dim[2]; z++ {
				if f.At(x, y, z) != s {
					continue
				}
				active = true
				sf.splat(x, y, z, r2, cutoff2, win)
			}
		}
	}
	return active
}

// splat adds one voxel's kernel into the samples around its center.
func (sf *scalarField) splat(x, y, z int, r2, cutoff2 float32, win int) {
	center := sf.tr.VoxelCenter(x, y, z)

	// Field sample nearest the voxel center.
	cx := (x*2 + 1) * sf.res / 2
	cy := (y*2 + 1) * sf.res / 2
	cz := (z*2 + 1) * sf.res / 2
	cx += sf.pad * sf.res
	cy += sf.pad * sf.res
	cz += sf.pad * sf.res

	x0, x1 := max(cx-win, 0), min(cx+win, sf.size[0]-1)
	y0, y1 := max(cy-win, 0), min(cy+win, sf.size[1]-1)
	z0, z1 := max(cz-win, 0), min(cz+win, sf.size[2]-1)

	for ix := x0; ix <= x1; ix++ {
		for iy := y0; iy <= y1; iy++ {
			for iz := z0; iz <= z1; iz++ {
				d := sf.samplePos(ix, iy, iz).Sub(center)
				d2 := d.Dot(d)
				if d2 >= cutoff2 {
					continue
				}
				sf.vals[sf.index(ix, iy, iz)] += float32(math.Exp(float64(-d2 / r2)))
			}
		}
	}
}
