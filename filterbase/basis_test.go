package filterbase_test

import (
	"errors"
	"math"
	"testing"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
	"github.com/karminau/unispace/filterbase"
	"github.com/karminau/unispace/uniformgen"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	space    *core.Space[float64]
	fs       *core.FuncSpace[float64, float64]
	unif     *entourage.MetricUniformity
	compacts []core.Compact[float64]
	zero     core.Fn[float64, float64]
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	pts := []float64{0, 0.5, 1}
	var singles []*core.Set[float64]
	for _, p := range pts {
		singles = append(singles, core.NewSet(p))
	}
	sp, err := core.NewSpace(pts, singles...)
	require.NoError(t, err)

	whole, err := sp.CertifyCompact(core.NewSet(pts...))
	require.NoError(t, err)
	left, err := sp.CertifyCompact(core.NewSet(0.0, 0.5))
	require.NoError(t, err)
	right, err := sp.CertifyCompact(core.NewSet(0.5, 1.0))
	require.NoError(t, err)

	zero, _ := core.NewFn("zero", func(float64) float64 { return 0 })
	sin, _ := core.NewFn("sin", func(x float64) float64 { return 0.05 * math.Sin(x) })
	half, _ := core.NewFn("half", func(float64) float64 { return 0.5 })
	fs, err := core.NewFuncSpace(zero, sin, half)
	require.NoError(t, err)

	unif, err := entourage.NewMetricUniformity(1.0, 4)
	require.NoError(t, err)

	return fixture{
		space:    sp,
		fs:       fs,
		unif:     unif,
		compacts: []core.Compact[float64]{whole, left, right},
		zero:     zero,
	}
}

func TestNew_Validation(t *testing.T) {
	fx := newFixture(t)
	if _, err := filterbase.New[float64, float64](nil, fx.fs, fx.compacts, fx.unif, fx.zero); !errors.Is(err, filterbase.ErrNilSpace) {
		t.Errorf("nil space: want ErrNilSpace, got %v", err)
	}
	if _, err := filterbase.New(fx.space, fx.fs, fx.compacts, nil, fx.zero); !errors.Is(err, filterbase.ErrNilUniformity) {
		t.Errorf("nil uniformity: want ErrNilUniformity, got %v", err)
	}
	stranger, _ := core.NewFn("stranger", func(float64) float64 { return 7 })
	if _, err := filterbase.New(fx.space, fx.fs, fx.compacts, fx.unif, stranger); !errors.Is(err, filterbase.ErrCenterNotFound) {
		t.Errorf("unknown center: want ErrCenterNotFound, got %v", err)
	}
}

func TestBasis_Enumeration(t *testing.T) {
	fx := newFixture(t)
	b, err := filterbase.New(fx.space, fx.fs, fx.compacts, fx.unif, fx.zero)
	require.NoError(t, err)
	// 1 leading (∅, full) index + 3 compacts × 4 basis entourages.
	require.Equal(t, 13, b.Len())
	require.Equal(t, "zero", b.Center().Name())

	// The leading index always yields the whole space: non-emptiness.
	whole, err := b.Neighborhood(0)
	require.NoError(t, err)
	require.True(t, whole.Equal(fx.fs.Universe()))

	_, err = b.Neighborhood(99)
	require.ErrorIs(t, err, filterbase.ErrIndexOutOfRange)
}

func TestBasis_MeetLaw(t *testing.T) {
	fx := newFixture(t)
	b, err := filterbase.New(fx.space, fx.fs, fx.compacts, fx.unif, fx.zero)
	require.NoError(t, err)

	// Indices 5 (left compact, coarsest) and 10 (right compact, radius 1/2).
	n1, err := b.Neighborhood(5)
	require.NoError(t, err)
	n2, err := b.Neighborhood(10)
	require.NoError(t, err)

	meet, err := b.Meet(5, 10)
	require.NoError(t, err)
	require.True(t, meet.K.Set().Equal(core.NewSet(0.0, 0.5, 1.0)))

	nm, err := b.NeighborhoodOf(meet)
	require.NoError(t, err)
	require.True(t, nm.SubsetOf(n1.Inter(n2)))
}

func TestBasis_Contains(t *testing.T) {
	fx := newFixture(t)
	b, err := filterbase.New(fx.space, fx.fs, fx.compacts, fx.unif, fx.zero)
	require.NoError(t, err)

	// The universe is trivially a filter member.
	ok, err := b.Contains(fx.fs.Universe())
	require.NoError(t, err)
	require.True(t, ok)

	// {zero, sin} absorbs the fine neighborhoods of zero: member.
	ok, err = b.Contains(core.NewSet("zero", "sin"))
	require.NoError(t, err)
	require.True(t, ok)

	// {sin, half} misses zero, yet every basic neighborhood contains the
	// center: not a member.
	ok, err = b.Contains(core.NewSet("sin", "half"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBasis_Validate(t *testing.T) {
	fx := newFixture(t)
	b, err := filterbase.New(fx.space, fx.fs, fx.compacts, fx.unif, fx.zero)
	require.NoError(t, err)
	require.NoError(t, b.Validate())
}

// TestBasis_MatchesUniformGen pins the Neighborhood accessor to the
// generator it wraps.
func TestBasis_MatchesUniformGen(t *testing.T) {
	fx := newFixture(t)
	b, err := filterbase.New(fx.space, fx.fs, fx.compacts, fx.unif, fx.zero)
	require.NoError(t, err)
	for i, idx := range b.Indices() {
		want, err := uniformgen.Gen(fx.fs, idx.K, idx.V, fx.zero)
		require.NoError(t, err)
		got, err := b.Neighborhood(i)
		require.NoError(t, err)
		require.True(t, got.Equal(want), "index %d", i)
	}
}
