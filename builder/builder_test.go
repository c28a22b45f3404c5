package builder_test

import (
	"errors"
	"testing"

	"github.com/karminau/unispace/builder"
	"github.com/karminau/unispace/core"
	"github.com/stretchr/testify/require"
)

func TestDiscreteModel_Shape(t *testing.T) {
	m, err := builder.DiscreteModel(3)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	require.Equal(t, 3, m.Space.Points().Len())
	require.Equal(t, []string{"const_lo", "const_mid", "const_hi", "step"}, m.Funcs.Names())
	// Whole domain plus one singleton per point.
	require.Len(t, m.Compacts, 4)
	require.Len(t, m.YOpens, 3)
	require.Len(t, m.Unif.Basis(), 3)

	// Discrete domain: every subset open, closure is the identity.
	require.True(t, m.Space.IsOpen(core.NewSet("P0", "P2")))
	require.True(t, m.Space.Closure(core.NewSet("P1")).Equal(core.NewSet("P1")))
}

func TestDiscreteModel_Validation(t *testing.T) {
	if _, err := builder.DiscreteModel(0); !errors.Is(err, builder.ErrTooFewPoints) {
		t.Errorf("n=0: want ErrTooFewPoints, got %v", err)
	}
}

func TestIntervalModel_Shape(t *testing.T) {
	m, err := builder.IntervalModel()
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	require.Equal(t, 9, m.Space.Points().Len())
	require.Equal(t, []string{"zero", "sin+", "sin-", "mid", "big"}, m.Funcs.Names())
	require.Len(t, m.Compacts, 3)
	require.True(t, m.Compacts[2].Set().Equal(core.NewSet(1.0)))
	require.NotEmpty(t, m.YSamples)

	// The dyadic topology is not discrete: 0.25 sits on a quarter
	// boundary, so its singleton is not open and closures pick it up.
	require.False(t, m.Space.IsOpen(core.NewSet(0.25)))
	closure := m.Space.Closure(core.NewSet(0.125))
	require.True(t, core.NewSet(0.125).SubsetOf(closure))
	require.True(t, closure.Contains(0.25))
}

func TestIntervalModel_Options(t *testing.T) {
	m, err := builder.IntervalModel(
		builder.WithGridResolution(17),
		builder.WithBasisDepth(4),
		builder.WithBaseRadius(2),
		builder.WithAmplitude(0.1),
		builder.WithMaxProbe(8),
	)
	require.NoError(t, err)
	require.Equal(t, 17, m.Space.Points().Len())
	require.Len(t, m.Unif.Basis(), 4)
	require.Equal(t, 8, m.MaxProbe)

	for _, bad := range []builder.Option{
		builder.WithGridResolution(1),
		builder.WithBasisDepth(0),
		builder.WithBaseRadius(0),
		builder.WithAmplitude(-1),
	} {
		if _, err := builder.IntervalModel(bad); err == nil {
			t.Error("invalid option accepted")
		}
	}
}

func TestIntervalModel_Deterministic(t *testing.T) {
	m1, err := builder.IntervalModel()
	require.NoError(t, err)
	m2, err := builder.IntervalModel()
	require.NoError(t, err)
	require.Equal(t, m1.Space.Points().Elems(), m2.Space.Points().Elems())
	require.Equal(t, m1.Funcs.Names(), m2.Funcs.Names())
	require.Equal(t, m1.YSamples, m2.YSamples)
}
