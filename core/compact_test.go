package core_test

import (
	"errors"
	"testing"

	"github.com/karminau/unispace/core"
	"github.com/stretchr/testify/require"
)

func TestCertifyCompact(t *testing.T) {
	sp := sierpinski(t)
	k, err := sp.CertifyCompact(core.NewSet("a", "b"))
	require.NoError(t, err)
	require.True(t, k.Set().Equal(core.NewSet("a", "b")))
	require.Same(t, sp, k.Space())

	_, err = sp.CertifyCompact(core.NewSet("nope"))
	require.ErrorIs(t, err, core.ErrNotSubset)

	require.True(t, sp.EmptyCompact().IsEmpty())
}

func TestFiniteSubcover_Greedy(t *testing.T) {
	sp := sierpinski(t)
	k, err := sp.CertifyCompact(core.NewSet("a", "b", "c"))
	require.NoError(t, err)

	cover := []*core.Set[string]{
		core.NewSet("a"),
		core.NewSet("a", "b"),
		core.NewSet("c"),
		core.NewSet("b", "c"),
	}
	picks, err := sp.FiniteSubcover(k, cover)
	require.NoError(t, err)
	// Greedy over points a,b,c: a→0, b→1, c→2.
	require.Equal(t, []int{0, 1, 2}, picks)

	// Verify the picks really cover K.
	covered := core.NewSet[string]()
	for _, j := range picks {
		covered = covered.Union(cover[j])
	}
	require.True(t, k.Set().SubsetOf(covered))
}

func TestFiniteSubcover_EmptyCompact(t *testing.T) {
	sp := sierpinski(t)
	picks, err := sp.FiniteSubcover(sp.EmptyCompact(), nil)
	require.NoError(t, err)
	require.Empty(t, picks)
}

func TestFiniteSubcover_NotCovered(t *testing.T) {
	sp := sierpinski(t)
	k, err := sp.CertifyCompact(core.NewSet("a", "c"))
	require.NoError(t, err)
	_, err = sp.FiniteSubcover(k, []*core.Set[string]{core.NewSet("a")})
	if !errors.Is(err, core.ErrNotCovered) {
		t.Errorf("want ErrNotCovered, got %v", err)
	}
}

func TestUnionCompacts(t *testing.T) {
	sp := sierpinski(t)
	k1, _ := sp.CertifyCompact(core.NewSet("a"))
	k2, _ := sp.CertifyCompact(core.NewSet("b"))
	u, err := core.UnionCompacts(k1, k2)
	require.NoError(t, err)
	require.True(t, u.Set().Equal(core.NewSet("a", "b")))

	other := sierpinski(t)
	k3, _ := other.CertifyCompact(core.NewSet("a"))
	_, err = core.UnionCompacts(k1, k3)
	require.ErrorIs(t, err, core.ErrSpaceMismatch)
}

func TestIntersectClosed(t *testing.T) {
	sp := sierpinski(t)
	k, _ := sp.CertifyCompact(core.NewSet("a", "b", "c"))

	got, err := sp.IntersectClosed(k, core.NewSet("b", "c"))
	require.NoError(t, err)
	require.True(t, got.Set().Equal(core.NewSet("b", "c")))

	_, err = sp.IntersectClosed(k, core.NewSet("a", "b"))
	require.ErrorIs(t, err, core.ErrNotClosed)
}
