// Package uniformgen provides the basic neighborhood generator of the
// compact-convergence construction.
package uniformgen

import (
	"errors"
	"fmt"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
)

// Sentinel errors for neighborhood generation.
var (
	// ErrNilSpace is returned if the probe function space is nil.
	ErrNilSpace = errors.New("uniformgen: function space is nil")

	// ErrNilEntourage is returned if the entourage is nil.
	ErrNilEntourage = errors.New("uniformgen: entourage is nil")

	// ErrCenterNotFound is returned when the center function is not
	// registered in the probe space.
	ErrCenterNotFound = errors.New("uniformgen: center not in function space")
)

// Gen materializes the basic neighborhood
//
//	{ g ∈ fs : ∀x ∈ K, (f(x), g(x)) ∈ V }
//
// as a name-set over fs. K is a certified compact (compactness itself is
// evidence held by the caller; only K's points are consumed here), V any
// entourage, f the center. An empty K yields the whole probe universe.
func Gen[X, Y comparable](
	fs *core.FuncSpace[X, Y],
	k core.Compact[X],
	v entourage.Entourage[Y],
	f core.Fn[X, Y],
) (*core.Set[string], error) {
	if fs == nil {
		return nil, ErrNilSpace
	}
	if v == nil {
		return nil, ErrNilEntourage
	}
	if !fs.Has(f.Name()) {
		return nil, fmt.Errorf("%q: %w", f.Name(), ErrCenterNotFound)
	}

	within := GenPred(k, v, f)
	out := core.NewSet[string]()
	for _, g := range fs.All() {
		if within(g) {
			out.Add(g.Name())
		}
	}
	return out, nil
}

// GenPred returns the membership predicate of the basic neighborhood,
// usable against functions outside any registered probe space.
// The nil checks of Gen are the caller's responsibility here.
func GenPred[X, Y comparable](
	k core.Compact[X],
	v entourage.Entourage[Y],
	f core.Fn[X, Y],
) func(core.Fn[X, Y]) bool {
	points := k.Set().Elems()
	return func(g core.Fn[X, Y]) bool {
		for _, x := range points {
			if !v.Contains(f.At(x), g.At(x)) {
				return false
			}
		}
		return true
	}
}
