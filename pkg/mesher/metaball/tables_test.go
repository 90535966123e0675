package metaball

import "testing"

func TestEdgeTableEndpoints(t *testing.T) {
	if edgeTable[0] != 0 {
		t.Error("all-outside cube must cross no edges")
	}
	if edgeTable[255] != 0 {
		t.Error("all-inside cube must cross no edges")
	}
}

func TestEdgeTableIsSymmetric(t *testing.T) {
	// Inverting which corners are inside flips nothing about which edges
	// are crossed.
	for i := 0; i < 256; i++ {
		if edgeTable[i] != edgeTable[255-i] {
			t.Fatalf("edgeTable[%d] = %#x, edgeTable[%d] = %#x", i, edgeTable[i], 255-i, edgeTable[255-i])
		}
	}
}

func TestTriTableMatchesEdgeTable(t *testing.T) {
	for ci := 0; ci < 256; ci++ {
		used := 0
		n := 0
		for _, e := range triTable[ci] {
			if e == -1 {
				break
			}
			if e < 0 || e > 11 {
				t.Fatalf("triTable[%d] references edge %d", ci, e)
			}
			used |= 1 << e
			n++
		}
		if n%3 != 0 {
			t.Fatalf("triTable[%d] holds %d indices, not a whole number of triangles", ci, n)
		}
		if used != edgeTable[ci] {
			t.Fatalf("triTable[%d] uses edges %#x, edgeTable says %#x", ci, used, edgeTable[ci])
		}
	}
}

func TestTriTableRowsTerminate(t *testing.T) {
	for ci := 0; ci < 256; ci++ {
		terminated := false
		for _, e := range triTable[ci] {
			if e == -1 {
				terminated = true
				break
			}
		}
		if !terminated {
			t.Fatalf("triTable[%d] has no terminator", ci)
		}
	}
}
