// Package topoequiv: model bundle, sentinel errors, and shared limits.
package topoequiv

import (
	"errors"
	"fmt"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
)

// Probe-space limits for topology materialization. The powerset scan is
// 2^n, so n is bounded deliberately.
const (
	// DefaultMaxProbe is the probe-universe bound applied when the model
	// does not set one.
	DefaultMaxProbe = 16

	// HardMaxProbe is the absolute probe-universe bound.
	HardMaxProbe = 20
)

// Sentinel errors for the equivalence engine.
var (
	// ErrNilModel is returned when a nil model is supplied.
	ErrNilModel = errors.New("topoequiv: model is nil")

	// ErrNilPart is returned when a required model collaborator is missing.
	ErrNilPart = errors.New("topoequiv: model part is nil")

	// ErrSpaceTooLarge is returned when the probe universe exceeds the
	// configured bound.
	ErrSpaceTooLarge = errors.New("topoequiv: probe function space too large")

	// ErrCenterNotFound is returned when the requested center is not in
	// the probe space.
	ErrCenterNotFound = errors.New("topoequiv: center not in function space")

	// ErrNotMember is returned when a witness is requested around a point
	// outside the target set.
	ErrNotMember = errors.New("topoequiv: center not in target set")

	// ErrNoLebesgueNumber is returned when no basis entourage keeps all
	// balls around f(K) inside the target open; the model's basis chain is
	// too shallow for the instance.
	ErrNoLebesgueNumber = errors.New("topoequiv: no Lebesgue entourage in basis")

	// ErrWitnessInvalid is returned when a constructed witness fails its
	// re-verification against the model.
	ErrWitnessInvalid = errors.New("topoequiv: witness verification failed")

	// ErrNotReflexive is returned when a basic function-space relation
	// misses the diagonal.
	ErrNotReflexive = errors.New("topoequiv: uniformity relation not reflexive")

	// ErrNotSymmetrizable is returned when no symmetric refinement maps
	// into a basic function-space relation.
	ErrNotSymmetrizable = errors.New("topoequiv: uniformity relation not symmetrizable")

	// ErrNotComposable is returned when no refinement composes into a
	// basic function-space relation.
	ErrNotComposable = errors.New("topoequiv: uniformity relation not composable")

	// ErrCarrierMismatch is returned when two topologies or structures
	// range over different probe universes.
	ErrCarrierMismatch = errors.New("topoequiv: probe universes differ")

	// ErrIndexOutOfRange is returned for a basic-relation position outside
	// the enumerated family.
	ErrIndexOutOfRange = errors.New("topoequiv: index out of range")
)

// YOpen is a named open subset of the codomain, given by its membership
// predicate. The model vouches for openness.
type YOpen[Y comparable] struct {
	// Name identifies the open in diagnostics and keeps enumeration
	// deterministic.
	Name string

	// Member reports membership of a codomain point.
	Member func(Y) bool
}

// Model bundles the external collaborators of the construction. All parts
// are trusted inputs in the sense of the construction's contract: the
// space certifies compacts, the uniformity certifies entourages, and
// function values carry continuity certificates.
type Model[X, Y comparable] struct {
	// Space is the finite domain X.
	Space *core.Space[X]

	// Funcs is the probe universe C(X, Y) being topologized.
	Funcs *core.FuncSpace[X, Y]

	// Unif is the ambient uniformity on Y.
	Unif entourage.Uniformity[Y]

	// Compacts are the certified compacts indexing the construction.
	Compacts []core.Compact[X]

	// YOpens are the codomain opens generating the compact-open subbasis.
	YOpens []YOpen[Y]

	// YSamples are codomain sample points used for ball-containment
	// screening in the Lebesgue search. May be empty; screening then
	// degenerates to the exact probe-level check alone.
	YSamples []Y

	// MaxProbe overrides DefaultMaxProbe when positive. Values above
	// HardMaxProbe are rejected.
	MaxProbe int
}

// maxProbe resolves the effective probe bound.
func (m *Model[X, Y]) maxProbe() int {
	if m.MaxProbe > 0 {
		return m.MaxProbe
	}
	return DefaultMaxProbe
}

// Validate checks the model's structural preconditions: collaborators
// present and the probe universe within bounds.
func (m *Model[X, Y]) Validate() error {
	if m == nil {
		return ErrNilModel
	}
	if m.Space == nil {
		return fmt.Errorf("space: %w", ErrNilPart)
	}
	if m.Funcs == nil {
		return fmt.Errorf("function space: %w", ErrNilPart)
	}
	if m.Unif == nil {
		return fmt.Errorf("uniformity: %w", ErrNilPart)
	}
	bound := m.maxProbe()
	if bound > HardMaxProbe {
		bound = HardMaxProbe
	}
	if n := m.Funcs.Len(); n > bound {
		return fmt.Errorf("%d functions, bound %d: %w", n, bound, ErrSpaceTooLarge)
	}
	return nil
}
