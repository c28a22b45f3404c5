// SPDX-License-Identifier: MIT
// Package: unispace/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; invalid parameters surface
//     as sentinels when the model is built.

package builder

import "errors"

// ErrTooFewPoints indicates a domain size below the allowed minimum for
// the requested model constructor.
// Usage: if errors.Is(err, ErrTooFewPoints) { /* report invalid size */ }.
var ErrTooFewPoints = errors.New("builder: domain size too small")

// ErrBadResolution indicates a grid resolution outside the supported
// range for interval models.
// Usage: if errors.Is(err, ErrBadResolution) { /* adjust resolution */ }.
var ErrBadResolution = errors.New("builder: grid resolution out of range")

// ErrBadRadius indicates a non-positive base radius for the metric
// uniformity chain.
var ErrBadRadius = errors.New("builder: base radius must be positive")

// ErrBadDepth indicates a non-positive uniformity basis depth.
var ErrBadDepth = errors.New("builder: basis depth must be positive")

// ErrBadAmplitude indicates a non-positive sinusoidal perturbation
// amplitude for the interval probe family.
var ErrBadAmplitude = errors.New("builder: amplitude must be positive")
