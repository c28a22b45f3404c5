// SPDX-License-Identifier: MIT
// Package: unispace/builder
//
// impl_interval.go — the sampled unit-interval verification model.
//
// AI-Hints:
//   • The grid is floats.Span(0,1): evenly spaced, endpoints included.
//   • The domain topology is generated by dyadic open intervals, so
//     closures genuinely add boundary points (the space is not discrete).
//   • Codomain opens are chosen to separate every probe pointwise at
//     x = 1, which keeps the compact-open topology in step with the
//     basis topology on the probe family.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
	"github.com/karminau/unispace/topoequiv"
)

// Interval model geometry (named, no magic numbers).
const (
	gridLo       = 0.0  // left endpoint of the domain grid
	gridHi       = 1.0  // right endpoint of the domain grid
	sampleLo     = -2.5 // left endpoint of the codomain sample range
	sampleHi     = 2.5  // right endpoint of the codomain sample range
	sampleCount  = 201  // codomain sample resolution
	gridTol      = 1e-9 // tolerance for locating named grid points
	midLevel     = 0.5  // mid constant probe level
	outBandLevel = 2.0  // out-of-band constant probe level
)

// IntervalModel builds the analytic verification model: X is the sampled
// unit interval, Y is ℝ with the metric radius-halving uniformity, and
// the probe family surrounds the zero function:
//
//	zero   x ↦ 0
//	sin+   x ↦ +a·sin(x)
//	sin-   x ↦ −a·sin(x)
//	mid    x ↦ 0.5
//	big    x ↦ 2.0
//
// with a the configured amplitude. Compacts: the whole grid, the left
// half, and the singleton {1}. Codomain opens: (−1,1) plus bands
// separating each probe at x = 1.
func IntervalModel(opts ...Option) (*topoequiv.Model[float64, float64], error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("IntervalModel: %w", cfg.err)
	}

	grid := floats.Span(make([]float64, cfg.gridResolution), gridLo, gridHi)
	space, err := intervalSpace(grid)
	if err != nil {
		return nil, fmt.Errorf("IntervalModel: %w", err)
	}

	unif, err := entourage.NewMetricUniformity(cfg.baseRadius, cfg.basisDepth)
	if err != nil {
		return nil, fmt.Errorf("IntervalModel: %w", err)
	}

	fns, err := intervalProbes(cfg.amplitude)
	if err != nil {
		return nil, fmt.Errorf("IntervalModel: %w", err)
	}
	fs, err := core.NewFuncSpace(fns...)
	if err != nil {
		return nil, fmt.Errorf("IntervalModel: %w", err)
	}

	compacts, err := intervalCompacts(space, grid)
	if err != nil {
		return nil, fmt.Errorf("IntervalModel: %w", err)
	}

	// Separation bands are stated in terms of the amplitude so the model
	// stays coherent under WithAmplitude.
	a := cfg.amplitude
	opens := []topoequiv.YOpen[float64]{
		band("(-1,1)", -1, 1),
		band("near-zero", -a/4, a/4),
		band("plus-band", a/4, 4*a),
		band("minus-band", -4*a, -a/4),
		band("mid-band", midLevel-0.1, midLevel+0.1),
		band("out-band", outBandLevel-0.5, outBandLevel+0.5),
	}

	return &topoequiv.Model[float64, float64]{
		Space:    space,
		Funcs:    fs,
		Unif:     unif,
		Compacts: compacts,
		YOpens:   opens,
		YSamples: floats.Span(make([]float64, sampleCount), sampleLo, sampleHi),
		MaxProbe: cfg.maxProbe,
	}, nil
}

// intervalSpace generates the dyadic open-interval topology on the grid:
// subbasic opens are the grid restrictions of (l, r) for dyadic halves
// and quarters of [0,1], exclusive at both endpoints.
func intervalSpace(grid []float64) (*core.Space[float64], error) {
	bounds := [][2]float64{
		{0, 1},
		{0, 0.5}, {0.5, 1},
		{0, 0.25}, {0.25, 0.5}, {0.5, 0.75}, {0.75, 1},
	}
	var subbasis []*core.Set[float64]
	for _, b := range bounds {
		s := core.NewSet[float64]()
		for _, x := range grid {
			if x > b[0] && x < b[1] {
				s.Add(x)
			}
		}
		subbasis = append(subbasis, s)
	}
	return core.NewSpace(grid, subbasis...)
}

// intervalProbes builds the probe family around the zero function.
func intervalProbes(amplitude float64) ([]core.Fn[float64, float64], error) {
	specs := []struct {
		name string
		eval func(float64) float64
	}{
		{"zero", func(float64) float64 { return 0 }},
		{"sin+", func(x float64) float64 { return amplitude * math.Sin(x) }},
		{"sin-", func(x float64) float64 { return -amplitude * math.Sin(x) }},
		{"mid", func(float64) float64 { return midLevel }},
		{"big", func(float64) float64 { return outBandLevel }},
	}
	var fns []core.Fn[float64, float64]
	for _, s := range specs {
		f, err := core.NewFn(s.name, s.eval)
		if err != nil {
			return nil, err
		}
		fns = append(fns, f)
	}
	return fns, nil
}

// intervalCompacts certifies the whole grid, the left half, and the
// right-endpoint singleton.
func intervalCompacts(space *core.Space[float64], grid []float64) ([]core.Compact[float64], error) {
	whole := core.NewSet(grid...)
	left := core.NewSet[float64]()
	endpoint := core.NewSet[float64]()
	for _, x := range grid {
		if x <= midLevel {
			left.Add(x)
		}
		if scalar.EqualWithinAbs(x, gridHi, gridTol) {
			endpoint.Add(x)
		}
	}

	var out []core.Compact[float64]
	for _, s := range []*core.Set[float64]{whole, left, endpoint} {
		k, err := space.CertifyCompact(s)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// band names the open interval (lo, hi) as a codomain open.
func band(name string, lo, hi float64) topoequiv.YOpen[float64] {
	return topoequiv.YOpen[float64]{
		Name:   name,
		Member: func(y float64) bool { return y > lo && y < hi },
	}
}
