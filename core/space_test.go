package core_test

import (
	"errors"
	"testing"

	"github.com/karminau/unispace/core"
	"github.com/stretchr/testify/require"
)

// sierpinski builds the three-point space {a,b,c} with subbasis
// {a} and {a,b}: opens are ∅, {a}, {a,b}, {a,b,c}.
func sierpinski(t *testing.T) *core.Space[string] {
	t.Helper()
	sp, err := core.NewSpace(
		[]string{"a", "b", "c"},
		core.NewSet("a"),
		core.NewSet("a", "b"),
	)
	require.NoError(t, err)
	return sp
}

func TestNewSpace_RejectsForeignPoints(t *testing.T) {
	_, err := core.NewSpace([]string{"a"}, core.NewSet("z"))
	if !errors.Is(err, core.ErrPointOutsideSpace) {
		t.Errorf("want ErrPointOutsideSpace, got %v", err)
	}
}

func TestSpace_IsOpen(t *testing.T) {
	sp := sierpinski(t)
	require.True(t, sp.IsOpen(core.NewSet[string]()))
	require.True(t, sp.IsOpen(core.NewSet("a", "b", "c")))
	require.True(t, sp.IsOpen(core.NewSet("a")))
	require.True(t, sp.IsOpen(core.NewSet("a", "b")))
	require.False(t, sp.IsOpen(core.NewSet("b")))
	require.False(t, sp.IsOpen(core.NewSet("b", "c")))
	require.Len(t, sp.Opens(), 4)
}

func TestSpace_ClosureInterior(t *testing.T) {
	sp := sierpinski(t)
	// Interior of {b,c} is empty (no nonempty open avoids a).
	require.True(t, sp.Interior(core.NewSet("b", "c")).IsEmpty())
	// Closure of {a} is everything: every nonempty open contains a.
	require.True(t, sp.Closure(core.NewSet("a")).Equal(core.NewSet("a", "b", "c")))
	// Closure of {b} is {b,c}: {a} and {a,b} separate a, nothing separates c.
	require.True(t, sp.Closure(core.NewSet("b")).Equal(core.NewSet("b", "c")))
	// {b,c} is closed, {a,b} is not.
	require.True(t, sp.IsClosed(core.NewSet("b", "c")))
	require.False(t, sp.IsClosed(core.NewSet("a", "b")))
}

func TestSpace_DiscreteGeneration(t *testing.T) {
	// Singletons as subbasis generate the full powerset.
	sp, err := core.NewSpace(
		[]string{"x", "y"},
		core.NewSet("x"),
		core.NewSet("y"),
	)
	require.NoError(t, err)
	require.Len(t, sp.Opens(), 4)
	require.True(t, sp.IsOpen(core.NewSet("y")))
	// Discrete closure is the identity.
	require.True(t, sp.Closure(core.NewSet("x")).Equal(core.NewSet("x")))
	require.True(t, sp.Neighborhood("x", core.NewSet("x")))
}
