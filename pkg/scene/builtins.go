package scene

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/voxmesh/pkg/voxel"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource transforms scene source before passing it to zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal),
//     so state keywords like :stone need no global symbol registration.
//  2. ; line comments become // comments, which is what zygomys parses.
//
// Both transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword". := stays untouched.
		if b[i] == ':' && i+1 < len(b) && b[i+1] != '=' && isLetter(b[i+1]) {
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			result = append(result, '"')
			result = append(result, []byte(kwPrefix)...)
			result = append(result, b[i+1:j]...)
			result = append(result, '"')
			i = j
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toState converts a state keyword (:dirt, :stone, :grass, :water, :empty)
// to a voxel.State.
func toState(s zygo.Sexp) (voxel.State, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return voxel.Empty, fmt.Errorf("expected state keyword, got %T (%s)", s, s.SexpString(nil))
	}
	name := strings.TrimPrefix(str.S, kwPrefix)
	switch name {
	case "empty":
		return voxel.Empty, nil
	case "dirt":
		return voxel.Dirt, nil
	case "stone":
		return voxel.Stone, nil
	case "grass":
		return voxel.Grass, nil
	case "water":
		return voxel.Water, nil
	}
	return voxel.Empty, fmt.Errorf("unknown state %q", name)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// sceneState holds the grid being authored by the current evaluation.
type sceneState struct {
	grid *voxel.Grid
}

func (st *sceneState) require(builtin string) (*voxel.Grid, error) {
	if st.grid == nil {
		return nil, fmt.Errorf("%s: no grid declared yet, call (grid w h d) first", builtin)
	}
	return st.grid, nil
}

// registerBuiltins installs the scene-authoring builtins into a zygomys
// environment. The builtins populate st.grid during evaluation.
//
// Source must be preprocessed with preprocessSource() first so that
// :keyword tokens arrive as recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, st *sceneState) {

	// -----------------------------------------------------------------------
	// (grid w h d)
	// -----------------------------------------------------------------------
	env.AddFunction("grid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("grid requires exactly 3 arguments, got %d", len(args))
		}
		var dims [3]int
		for i, a := range args {
			v, err := toInt(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("grid: dimension %d: %w", i, err)
			}
			dims[i] = v
		}
		g, err := voxel.NewGrid(dims[0], dims[1], dims[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("grid: %w", err)
		}
		st.grid = g
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (voxel x y z :state)
	// -----------------------------------------------------------------------
	env.AddFunction("voxel", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		g, err := st.require("voxel")
		if err != nil {
			return zygo.SexpNull, err
		}
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("voxel requires x y z :state, got %d arguments", len(args))
		}
		var p [3]int
		for i := 0; i < 3; i++ {
			v, err := toInt(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("voxel: coordinate %d: %w", i, err)
			}
			p[i] = v
		}
		s, err := toState(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("voxel: %w", err)
		}
		g.Set(p[0], p[1], p[2], s)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (fill x0 y0 z0 x1 y1 z1 :state), solid inclusive box
	// -----------------------------------------------------------------------
	env.AddFunction("fill", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		g, err := st.require("fill")
		if err != nil {
			return zygo.SexpNull, err
		}
		if len(args) != 7 {
			return zygo.SexpNull, fmt.Errorf("fill requires x0 y0 z0 x1 y1 z1 :state, got %d arguments", len(args))
		}
		var c [6]int
		for i := 0; i < 6; i++ {
			v, err := toInt(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fill: coordinate %d: %w", i, err)
			}
			c[i] = v
		}
		s, err := toState(args[6])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("fill: %w", err)
		}
		g.Fill(c[0], c[1], c[2], c[3], c[4], c[5], s)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (box x0 y0 z0 x1 y1 z1 :state), hollow shell one voxel thick
	// -----------------------------------------------------------------------
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		g, err := st.require("box")
		if err != nil {
			return zygo.SexpNull, err
		}
		if len(args) != 7 {
			return zygo.SexpNull, fmt.Errorf("box requires x0 y0 z0 x1 y1 z1 :state, got %d arguments", len(args))
		}
		var c [6]int
		for i := 0; i < 6; i++ {
			v, err := toInt(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("box: coordinate %d: %w", i, err)
			}
			c[i] = v
		}
		s, err := toState(args[6])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		x0, y0, z0, x1, y1, z1 := c[0], c[1], c[2], c[3], c[4], c[5]
		g.Fill(x0, y0, z0, x1, y1, z0, s)
		g.Fill(x0, y0, z1, x1, y1, z1, s)
		g.Fill(x0, y0, z0, x1, y0, z1, s)
		g.Fill(x0, y1, z0, x1, y1, z1, s)
		g.Fill(x0, y0, z0, x0, y1, z1, s)
		g.Fill(x1, y0, z0, x1, y1, z1, s)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (sphere cx cy cz r :state)
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		g, err := st.require("sphere")
		if err != nil {
			return zygo.SexpNull, err
		}
		if len(args) != 5 {
			return zygo.SexpNull, fmt.Errorf("sphere requires cx cy cz r :state, got %d arguments", len(args))
		}
		var c [3]int
		for i := 0; i < 3; i++ {
			v, err := toInt(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sphere: center %d: %w", i, err)
			}
			c[i] = v
		}
		r, err := toFloat64(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: radius: %w", err)
		}
		s, err := toState(args[4])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		g.Sphere(c[0], c[1], c[2], r, s)
		return zygo.SexpNull, nil
	})
}
