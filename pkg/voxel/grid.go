package voxel

import (
	"fmt"
	"math"
)

// Grid is the dense Field implementation. Cells are stored in a flat slice
// indexed x-major, then y, then z.
type Grid struct {
	w, h, d int
	cells   []State
}

// Compile-time interface check.
var _ Field = (*Grid)(nil)

// NewGrid creates an all-empty grid. Non-positive dimensions are a
// configuration error, the only fatal condition in the engine.
func NewGrid(w, h, d int) (*Grid, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, fmt.Errorf("voxel: grid dimensions must be positive, got %dx%dx%d", w, h, d)
	}
	return &Grid{
		w:     w,
		h:     h,
		d:     d,
		cells: make([]State, w*h*d),
	}, nil
}

// Width returns the grid extent along X.
func (g *Grid) Width() int { return g.w }

// Height returns the grid extent along Y.
func (g *Grid) Height() int { return g.h }

// Depth returns the grid extent along Z.
func (g *Grid) Depth() int { return g.d }

func (g *Grid) inBounds(x, y, z int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h && z >= 0 && z < g.d
}

func (g *Grid) index(x, y, z int) int {
	return (x*g.h+y)*g.d + z
}

// At returns the state at (x, y, z), or Empty when the coordinate is out
// of range.
func (g *Grid) At(x, y, z int) State {
	if !g.inBounds(x, y, z) {
		return Empty
	}
	return g.cells[g.index(x, y, z)]
}

// Set writes a state at (x, y, z). Out-of-range writes are ignored.
func (g *Grid) Set(x, y, z int, s State) {
	if !g.inBounds(x, y, z) {
		return
	}
	g.cells[g.index(x, y, z)] = s
}

// Fill sets every cell in the inclusive box [x0,x1]x[y0,y1]x[z0,z1],
// clipped to the grid.
func (g *Grid) Fill(x0, y0, z0, x1, y1, z1 int, s State) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if z1 < z0 {
		z0, z1 = z1, z0
	}
	for x := max(x0, 0); x <= min(x1, g.w-1); x++ {
		for y := max(y0, 0); y <= min(y1, g.h-1); y++ {
			for z := max(z0, 0); z <= min(z1, g.d-1); z++ {
				g.cells[g.index(x, y, z)] = s
			}
		}
	}
}

// Sphere sets every cell whose center lies within radius r of the center
// of cell (cx, cy, cz).
func (g *Grid) Sphere(cx, cy, cz int, r float64, s State) {
	ir := int(math.Ceil(r))
	for x := cx - ir; x <= cx+ir; x++ {
		for y := cy - ir; y <= cy+ir; y++ {
			for z := cz - ir; z <= cz+ir; z++ {
				if !g.inBounds(x, y, z) {
					continue
				}
				dx := float64(x - cx)
				dy := float64(y - cy)
				dz := float64(z - cz)
				if dx*dx+dy*dy+dz*dz <= r*r {
					g.cells[g.index(x, y, z)] = s
				}
			}
		}
	}
}

// Count returns the number of cells holding state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}
