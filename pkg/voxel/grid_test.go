package voxel

import "testing"

func TestNewGridRejectsBadDimensions(t *testing.T) {
	cases := [][3]int{
		{0, 4, 4},
		{4, -1, 4},
		{4, 4, 0},
		{-2, -2, -2},
	}
	for _, c := range cases {
		if _, err := NewGrid(c[0], c[1], c[2]); err == nil {
			t.Errorf("NewGrid(%d, %d, %d): expected error", c[0], c[1], c[2])
		}
	}
}

func TestGridStartsEmpty(t *testing.T) {
	g, err := NewGrid(3, 3, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if s := g.At(x, y, z); s != Empty {
					t.Fatalf("At(%d,%d,%d) = %v, want Empty", x, y, z, s)
				}
			}
		}
	}
}

func TestOutOfRangeReadsAreEmpty(t *testing.T) {
	g, _ := NewGrid(2, 2, 2)
	g.Fill(0, 0, 0, 1, 1, 1, Stone)

	probes := [][3]int{
		{-1, 0, 0}, {2, 0, 0},
		{0, -1, 0}, {0, 2, 0},
		{0, 0, -1}, {0, 0, 2},
		{100, 100, 100},
	}
	for _, p := range probes {
		if s := g.At(p[0], p[1], p[2]); s != Empty {
			t.Errorf("At(%d,%d,%d) = %v, want Empty", p[0], p[1], p[2], s)
		}
	}
}

func TestOutOfRangeWritesAreIgnored(t *testing.T) {
	g, _ := NewGrid(2, 2, 2)
	g.Set(-1, 0, 0, Dirt)
	g.Set(0, 5, 0, Dirt)
	if n := g.Count(Dirt); n != 0 {
		t.Errorf("out-of-range Set changed %d cells", n)
	}
}

func TestFillClipsToGrid(t *testing.T) {
	g, _ := NewGrid(4, 4, 4)
	g.Fill(-2, -2, -2, 10, 10, 10, Grass)
	if n := g.Count(Grass); n != 64 {
		t.Errorf("Count(Grass) = %d, want 64", n)
	}
}

func TestFillAcceptsSwappedCorners(t *testing.T) {
	g, _ := NewGrid(4, 4, 4)
	g.Fill(3, 3, 3, 1, 1, 1, Dirt)
	if n := g.Count(Dirt); n != 27 {
		t.Errorf("Count(Dirt) = %d, want 27", n)
	}
}

func TestSphere(t *testing.T) {
	g, _ := NewGrid(9, 9, 9)
	g.Sphere(4, 4, 4, 1, Stone)
	// Radius 1 covers the center and its six face neighbors.
	if n := g.Count(Stone); n != 7 {
		t.Errorf("Count(Stone) = %d, want 7", n)
	}
}

func TestStatesExcludesEmpty(t *testing.T) {
	for _, s := range States() {
		if s == Empty {
			t.Fatal("States() must not include Empty")
		}
		if !s.Solid() {
			t.Errorf("state %v should be solid", s)
		}
	}
	if len(States()) == 0 {
		t.Fatal("States() is empty")
	}
}
