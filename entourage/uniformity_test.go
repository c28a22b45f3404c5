package entourage_test

import (
	"errors"
	"testing"

	"github.com/karminau/unispace/entourage"
	"github.com/stretchr/testify/require"
)

func TestMetricUniformity_Basis(t *testing.T) {
	u, err := entourage.NewMetricUniformity(1.0, 4)
	require.NoError(t, err)

	basis := u.Basis()
	require.Len(t, basis, 4)
	want := []float64{1.0, 0.5, 0.25, 0.125}
	for i, v := range basis {
		iv, ok := v.(entourage.Interval)
		require.True(t, ok)
		require.InDelta(t, want[i], iv.Radius(), 1e-12)
	}
	require.InDelta(t, 0.125, u.FinestRadius(), 1e-12)
}

func TestMetricUniformity_Validation(t *testing.T) {
	if _, err := entourage.NewMetricUniformity(0, 3); !errors.Is(err, entourage.ErrBadRadius) {
		t.Errorf("zero base: want ErrBadRadius, got %v", err)
	}
	if _, err := entourage.NewMetricUniformity(1, 0); !errors.Is(err, entourage.ErrEmptyBasis) {
		t.Errorf("zero depth: want ErrEmptyBasis, got %v", err)
	}
}

func TestMetricUniformity_Member(t *testing.T) {
	u, _ := entourage.NewMetricUniformity(1.0, 4)
	v, _ := entourage.NewInterval(0.2)
	require.True(t, u.Member(v))
	fine, _ := entourage.NewInterval(0.01)
	require.False(t, u.Member(fine))
	// Non-interval operands are conservatively rejected.
	require.False(t, u.Member(entourage.Full[float64]()))
}

func TestMetricUniformity_SymmetricRefine(t *testing.T) {
	u, _ := entourage.NewMetricUniformity(1.0, 4)
	v, _ := entourage.NewInterval(0.1)
	ref, err := u.SymmetricRefine(v)
	require.NoError(t, err)
	iv := ref.(entourage.Interval)
	require.InDelta(t, 0.05, iv.Radius(), 1e-12)
	require.True(t, iv.SubsetOf(v))
	require.True(t, iv.Compose(iv).SubsetOf(v))

	_, err = u.SymmetricRefine(entourage.Full[float64]())
	require.ErrorIs(t, err, entourage.ErrNotEntourage)
}

// chainBasis builds a three-level basis on {a,b,c}: full, a "near" relation
// with one asymmetric extra pair, and the diagonal.
func chainBasis(t *testing.T) *entourage.FiniteUniformity[string] {
	t.Helper()
	near, err := entourage.Diagonal(abc).Union(mustRel(t, [2]string{"a", "b"}, [2]string{"b", "a"}, [2]string{"b", "c"}))
	require.NoError(t, err)
	u, err := entourage.NewFiniteUniformity(entourage.FullRel(abc), near, entourage.Diagonal(abc))
	require.NoError(t, err)
	return u
}

func mustRel(t *testing.T, pairs ...[2]string) *entourage.Rel[string] {
	t.Helper()
	r, err := entourage.NewRel(abc, pairs...)
	require.NoError(t, err)
	return r
}

func TestFiniteUniformity_Validation(t *testing.T) {
	if _, err := entourage.NewFiniteUniformity[string](); !errors.Is(err, entourage.ErrEmptyBasis) {
		t.Errorf("empty basis: want ErrEmptyBasis, got %v", err)
	}
	nonRefl := mustRel(t, [2]string{"a", "b"})
	if _, err := entourage.NewFiniteUniformity(nonRefl); !errors.Is(err, entourage.ErrNotReflexive) {
		t.Errorf("non-reflexive basis: want ErrNotReflexive, got %v", err)
	}
}

func TestFiniteUniformity_Member(t *testing.T) {
	u := chainBasis(t)
	require.True(t, u.Member(entourage.Full[string]()))
	require.True(t, u.Member(entourage.Diagonal(abc)))
	empty := mustRel(t)
	require.False(t, u.Member(empty))
}

func TestFiniteUniformity_SymmetricRefine(t *testing.T) {
	u := chainBasis(t)
	// Refining the "near" level: its symmetric part must qualify, or the
	// diagonal further down the chain.
	near := u.Basis()[1]
	ref, err := u.SymmetricRefine(near)
	require.NoError(t, err)
	rel := ref.(*entourage.Rel[string])
	require.True(t, rel.IsSymmetric())
	require.True(t, rel.IsReflexive())
	require.True(t, rel.SubsetOf(near))
	comp, err := rel.Compose(rel)
	require.NoError(t, err)
	require.True(t, comp.SubsetOf(near))

	// Nothing in the chain refines the empty relation.
	_, err = u.SymmetricRefine(mustRel(t))
	require.ErrorIs(t, err, entourage.ErrNoRefinement)
}
