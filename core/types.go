// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors shared by the core carriers.
// Policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via %w wrapping at call sites.
//   - Core never panics at runtime; invalid inputs surface as sentinels.

package core

import "errors"

// Sentinel errors for core carrier operations.
var (
	// ErrPointOutsideSpace indicates a declared set mentions a point that is
	// not part of the space's universe.
	ErrPointOutsideSpace = errors.New("core: point outside space")

	// ErrNotSubset indicates a compactness certificate was requested for a
	// set that is not contained in the space.
	ErrNotSubset = errors.New("core: set is not a subset of the space")

	// ErrNotCovered indicates the supplied cover misses at least one point
	// of the compact set, so no finite subcover exists.
	ErrNotCovered = errors.New("core: cover does not cover the compact set")

	// ErrNotClosed indicates IntersectClosed was given a set whose
	// complement is not open in the space.
	ErrNotClosed = errors.New("core: set is not closed")

	// ErrSpaceMismatch indicates two certified compacts from different
	// spaces were combined.
	ErrSpaceMismatch = errors.New("core: compacts belong to different spaces")

	// ErrEmptyName indicates a function value was constructed with an empty
	// name. Names identify functions inside a FuncSpace.
	ErrEmptyName = errors.New("core: function name is empty")

	// ErrNilEval indicates a function value was constructed without an
	// evaluation function.
	ErrNilEval = errors.New("core: evaluation function is nil")

	// ErrDuplicateFn indicates two functions with the same name were
	// registered in one FuncSpace.
	ErrDuplicateFn = errors.New("core: duplicate function name")

	// ErrFnNotFound indicates a lookup for an unregistered function name.
	ErrFnNotFound = errors.New("core: function not found")
)
