// SPDX-License-Identifier: MIT
// Package: unispace/builder
//
// Package builder constructs deterministic verification models for the
// compact-convergence engine: ready-to-use topoequiv.Model values with
// their spaces, probe function families, uniformities, compacts, codomain
// opens, and codomain samples wired together.
//
// What
//
//   - DiscreteModel(n): a finite discrete domain of n points over a
//     three-token codomain with an explicit finite uniformity chain
//     (full ⊇ near ⊇ diagonal) and a probe family of constants plus a
//     step function.
//   - IntervalModel(): the sampled unit interval [0,1] with a dyadic
//     open-interval topology, the metric uniformity on ℝ (radius-halving
//     basis), and a probe family around the zero function (small
//     sinusoidal perturbations, a mid constant, an out-of-band constant).
//
// Why
//
//	Every checkable property of the construction needs a concrete model:
//	one degenerate-discrete and one analytic model exercise the engine on
//	genuinely different topologies while staying small enough for the
//	exhaustive materialization the checker performs.
//
// Determinism
//
//	No randomness anywhere: grids come from gonum's floats.Span, probe
//	families and uniformity chains are fixed by the resolved options, and
//	identical options produce identical models, point for point.
//
// Options
//
//   - WithGridResolution(n): sample count for the interval grid (default 9).
//   - WithBasisDepth(d):     uniformity basis chain length (default 6).
//   - WithBaseRadius(r):     coarsest metric entourage radius (default 1.0).
//   - WithAmplitude(a):      sinusoidal perturbation amplitude (default 0.05).
//   - WithMaxProbe(n):       probe-universe bound forwarded to the model.
//
// Errors
//
//   - ErrTooFewPoints   domain size below the constructor's minimum.
//   - ErrBadResolution  non-positive or oversized grid resolution.
//   - ErrBadRadius      non-positive base radius.
//   - ErrBadDepth       non-positive basis depth.
//   - ErrBadAmplitude   non-positive perturbation amplitude.
package builder
