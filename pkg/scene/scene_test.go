package scene

import (
	"strings"
	"testing"

	"github.com/chazu/voxmesh/pkg/voxel"
)

func evalOK(t *testing.T, source string) *voxel.Grid {
	t.Helper()
	g, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal evaluation error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("evaluation errors: %v", evalErrs)
	}
	if g == nil {
		t.Fatal("no grid produced")
	}
	return g
}

func evalFail(t *testing.T, source string) []EvalError {
	t.Helper()
	g, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal evaluation error: %v", err)
	}
	if g != nil {
		t.Fatal("expected no grid")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected evaluation errors")
	}
	return evalErrs
}

func TestGridDeclaration(t *testing.T) {
	g := evalOK(t, `(grid 4 5 6)`)
	if g.Width() != 4 || g.Height() != 5 || g.Depth() != 6 {
		t.Errorf("grid is %dx%dx%d, want 4x5x6", g.Width(), g.Height(), g.Depth())
	}
}

func TestVoxelBuiltin(t *testing.T) {
	g := evalOK(t, `
(grid 4 4 4)
(voxel 1 2 3 :stone)
`)
	if s := g.At(1, 2, 3); s != voxel.Stone {
		t.Errorf("At(1,2,3) = %v, want Stone", s)
	}
	if n := g.Count(voxel.Stone); n != 1 {
		t.Errorf("Count(Stone) = %d, want 1", n)
	}
}

func TestFillBuiltin(t *testing.T) {
	g := evalOK(t, `
(grid 4 4 4)
(fill 0 0 0 3 1 3 :dirt)
`)
	if n := g.Count(voxel.Dirt); n != 32 {
		t.Errorf("Count(Dirt) = %d, want 32", n)
	}
}

func TestBoxBuiltinIsHollow(t *testing.T) {
	g := evalOK(t, `
(grid 5 5 5)
(box 0 0 0 4 4 4 :stone)
`)
	if s := g.At(2, 2, 2); s != voxel.Empty {
		t.Errorf("box interior is %v, want Empty", s)
	}
	// A 5x5x5 shell holds 125 - 27 interior cells.
	if n := g.Count(voxel.Stone); n != 98 {
		t.Errorf("Count(Stone) = %d, want 98", n)
	}
}

func TestSphereBuiltin(t *testing.T) {
	g := evalOK(t, `
(grid 9 9 9)
(sphere 4 4 4 1 :water)
`)
	if n := g.Count(voxel.Water); n != 7 {
		t.Errorf("Count(Water) = %d, want 7", n)
	}
}

func TestVoxelCanEraseWithEmpty(t *testing.T) {
	g := evalOK(t, `
(grid 3 3 3)
(fill 0 0 0 2 2 2 :grass)
(voxel 1 1 1 :empty)
`)
	if s := g.At(1, 1, 1); s != voxel.Empty {
		t.Errorf("At(1,1,1) = %v, want Empty", s)
	}
	if n := g.Count(voxel.Grass); n != 26 {
		t.Errorf("Count(Grass) = %d, want 26", n)
	}
}

func TestSemicolonComments(t *testing.T) {
	g := evalOK(t, `
; scene with a single voxel
(grid 3 3 3) ; the grid
(voxel 0 0 0 :dirt)
`)
	if s := g.At(0, 0, 0); s != voxel.Dirt {
		t.Errorf("At(0,0,0) = %v, want Dirt", s)
	}
}

func TestEmptySourceFails(t *testing.T) {
	errs := evalFail(t, "   \n\t  ")
	if !strings.Contains(errs[0].Message, "empty scene") {
		t.Errorf("unexpected message %q", errs[0].Message)
	}
}

func TestMissingGridDeclarationFails(t *testing.T) {
	evalFail(t, `(voxel 0 0 0 :dirt)`)
}

func TestScriptWithoutGridCallFails(t *testing.T) {
	errs := evalFail(t, `(+ 1 2)`)
	if !strings.Contains(errs[0].Message, "grid") {
		t.Errorf("unexpected message %q", errs[0].Message)
	}
}

func TestUnknownStateFails(t *testing.T) {
	errs := evalFail(t, `
(grid 3 3 3)
(voxel 0 0 0 :lava)
`)
	found := false
	for _, e := range errs {
		if strings.Contains(e.Message, "lava") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v never mention the bad state", errs)
	}
}

func TestBadGridDimensionsFail(t *testing.T) {
	evalFail(t, `(grid 0 4 4)`)
}

func TestParseErrorReported(t *testing.T) {
	evalFail(t, `(grid 3 3 3`)
}

func TestPreprocessKeywords(t *testing.T) {
	got := preprocessSource(`(voxel 0 0 0 :stone)`)
	want := `(voxel 0 0 0 "__kw_stone")`
	if got != want {
		t.Errorf("preprocessSource = %q, want %q", got, want)
	}
}

func TestPreprocessLeavesStringsAlone(t *testing.T) {
	src := `(def x ":stone ; not a comment")`
	if got := preprocessSource(src); got != src {
		t.Errorf("string literal was rewritten: %q", got)
	}
}

func TestPreprocessComments(t *testing.T) {
	got := preprocessSource(";; header\n(grid 1 1 1)")
	want := "// header\n(grid 1 1 1)"
	if got != want {
		t.Errorf("preprocessSource = %q, want %q", got, want)
	}
}

func TestEvalErrorFormatting(t *testing.T) {
	e := EvalError{Line: 3, Message: "boom"}
	if e.Error() != "line 3: boom" {
		t.Errorf("Error() = %q", e.Error())
	}
	e = EvalError{Message: "boom"}
	if e.Error() != "boom" {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestParseZygomysErrorExtractsLine(t *testing.T) {
	errs := parseZygomysError(errFor("Error on line 7: unbound symbol"))
	if len(errs) != 1 || errs[0].Line != 7 {
		t.Fatalf("got %v", errs)
	}
	if errs[0].Message != "unbound symbol" {
		t.Errorf("message = %q", errs[0].Message)
	}
}

type errFor string

func (e errFor) Error() string { return string(e) }
