package topoequiv_test

import (
	"testing"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
	"github.com/karminau/unispace/topoequiv"
	"github.com/karminau/unispace/uniformgen"
	"github.com/stretchr/testify/require"
)

// Direction A on the interval model: around zero inside gen(X, (−1,1))
// the coarsest basic radius already works as a Lebesgue entourage.
func TestLebesgueWitness_IntervalModel(t *testing.T) {
	m := intervalFixture(t)
	whole := m.Compacts[0]
	band := m.YOpens[0] // (−1, 1)
	zero, err := m.Funcs.ByName("zero")
	require.NoError(t, err)

	v, err := topoequiv.LebesgueWitness(m, whole, band, zero)
	require.NoError(t, err)

	iv, ok := v.(entourage.Interval)
	require.True(t, ok, "metric model returns an interval entourage")
	require.InDelta(t, 1.0, iv.Radius(), 1e-12)

	// The basic neighborhood it certifies is inside the target.
	nb, err := uniformgen.Gen(m.Funcs, whole, v, zero)
	require.NoError(t, err)
	require.True(t, nb.SubsetOf(topoequiv.CompactOpenGen(m.Funcs, whole, band)))
}

func TestLebesgueWitness_DiscreteModel(t *testing.T) {
	m := discreteFixture(t)
	whole := m.Compacts[0]
	loOpen := m.YOpens[0] // {lo}
	constLo, err := m.Funcs.ByName("const_lo")
	require.NoError(t, err)

	// full and near both leak mid into {lo}; only the diagonal survives
	// the sample screen.
	v, err := topoequiv.LebesgueWitness(m, whole, loOpen, constLo)
	require.NoError(t, err)
	require.True(t, v.Contains("lo", "lo"))
	require.False(t, v.Contains("lo", "mid"))
}

func TestLebesgueWitness_Errors(t *testing.T) {
	m := intervalFixture(t)
	whole := m.Compacts[0]

	big, err := m.Funcs.ByName("big")
	require.NoError(t, err)
	_, err = topoequiv.LebesgueWitness(m, whole, m.YOpens[0], big)
	require.ErrorIs(t, err, topoequiv.ErrNotMember)

	// near-zero is narrower than the finest basic radius, so the ball
	// screen rejects every candidate.
	zero, err := m.Funcs.ByName("zero")
	require.NoError(t, err)
	_, err = topoequiv.LebesgueWitness(m, whole, m.YOpens[1], zero)
	require.ErrorIs(t, err, topoequiv.ErrNoLebesgueNumber)

	stranger, err := core.NewFn("stranger", func(float64) float64 { return 0 })
	require.NoError(t, err)
	_, err = topoequiv.LebesgueWitness(m, whole, m.YOpens[0], stranger)
	require.ErrorIs(t, err, topoequiv.ErrCenterNotFound)
}

// Direction B on the interval model: a basic neighborhood of the zero
// function absorbs a finite intersection of compact-open pieces.
func TestSubcoverWitness_IntervalModel(t *testing.T) {
	m := intervalFixture(t)
	whole := m.Compacts[0]
	zero, err := m.Funcs.ByName("zero")
	require.NoError(t, err)
	v, err := entourage.NewInterval(0.1)
	require.NoError(t, err)

	fi, err := topoequiv.SubcoverWitness(m, whole, v, zero)
	require.NoError(t, err)

	// zero is constant, so one fine ball preimage already covers X.
	require.Len(t, fi.Pieces, 1)

	members, err := fi.Members(m)
	require.NoError(t, err)
	require.True(t, members.Equal(core.NewSet("zero", "sin+", "sin-")))

	require.NoError(t, fi.Verify(m, whole, v))
}

// The same argument around a non-constant center.
func TestSubcoverWitness_NonConstantCenter(t *testing.T) {
	m := intervalFixture(t)
	whole := m.Compacts[0]
	sinPlus, err := m.Funcs.ByName("sin+")
	require.NoError(t, err)
	v, err := entourage.NewInterval(0.1)
	require.NoError(t, err)

	fi, err := topoequiv.SubcoverWitness(m, whole, v, sinPlus)
	require.NoError(t, err)
	require.NoError(t, fi.Verify(m, whole, v))

	// The refined radius 0.025 is below the probe's 0.042 swing, so one
	// ball preimage no longer covers the grid and the greedy subcover
	// has to walk the domain.
	require.Len(t, fi.Pieces, 4)

	members, err := fi.Members(m)
	require.NoError(t, err)
	require.True(t, members.Contains("sin+"))
	require.False(t, members.Contains("mid"))
}

// On the discrete model the step center splits the domain into two
// genuine pieces, one per function level.
func TestSubcoverWitness_DiscreteModel(t *testing.T) {
	m := discreteFixture(t)
	whole := m.Compacts[0]
	step, err := m.Funcs.ByName("step")
	require.NoError(t, err)
	near := m.Unif.Basis()[1]

	fi, err := topoequiv.SubcoverWitness(m, whole, near, step)
	require.NoError(t, err)
	require.Len(t, fi.Pieces, 2)
	require.True(t, fi.Pieces[0].C.Set().Equal(core.NewSet("P0")))
	require.True(t, fi.Pieces[1].C.Set().Equal(core.NewSet("P1", "P2")))

	members, err := fi.Members(m)
	require.NoError(t, err)
	require.True(t, members.Equal(core.NewSet("step")))

	require.NoError(t, fi.Verify(m, whole, near))
}

func TestSubcoverWitness_Errors(t *testing.T) {
	m := intervalFixture(t)
	whole := m.Compacts[0]
	v, err := entourage.NewInterval(0.25)
	require.NoError(t, err)

	stranger, err := core.NewFn("stranger", func(float64) float64 { return 0 })
	require.NoError(t, err)
	_, err = topoequiv.SubcoverWitness(m, whole, v, stranger)
	require.ErrorIs(t, err, topoequiv.ErrCenterNotFound)
}
