// Package topoequiv: direction A — compact-open basic sets are open in
// the neighborhood-basis topology.
package topoequiv

import (
	"fmt"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
	"github.com/karminau/unispace/uniformgen"
)

// LebesgueWitness proves one instance of direction A constructively:
// given a compact-open basic set gen(K, U) containing the center f, it
// finds an entourage V from the uniformity basis such that every V-ball
// around a point of f(K) stays inside U — the Lebesgue-number argument —
// and therefore Gen(K, V, f) ⊆ gen(K, U).
//
// The search screens candidates against the model's codomain samples and
// then confirms the containment exactly over the probe space before
// returning. Returns ErrNotMember if f ∉ gen(K, U), ErrNoLebesgueNumber
// if the basis chain is exhausted.
func LebesgueWitness[X, Y comparable](
	m *Model[X, Y],
	k core.Compact[X],
	u YOpen[Y],
	f core.Fn[X, Y],
) (entourage.Entourage[Y], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !m.Funcs.Has(f.Name()) {
		return nil, fmt.Errorf("%q: %w", f.Name(), ErrCenterNotFound)
	}

	points := k.Set().Elems()
	for _, x := range points {
		if !u.Member(f.At(x)) {
			return nil, fmt.Errorf("f(%v) outside %s: %w", x, u.Name, ErrNotMember)
		}
	}

	target := CompactOpenGen(m.Funcs, k, u)
	for _, v := range m.Unif.Basis() {
		if !ballsInside(m, points, f, v, u) {
			continue
		}
		nb, err := uniformgen.Gen(m.Funcs, k, v, f)
		if err != nil {
			return nil, err
		}
		if nb.SubsetOf(target) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("gen(K,%s) around %q: %w", u.Name, f.Name(), ErrNoLebesgueNumber)
}

// ballsInside screens a candidate entourage: over the codomain samples,
// every V-ball centered on f(K) must stay inside U.
func ballsInside[X, Y comparable](
	m *Model[X, Y],
	points []X,
	f core.Fn[X, Y],
	v entourage.Entourage[Y],
	u YOpen[Y],
) bool {
	for _, x := range points {
		ball := entourage.Ball(f.At(x), v)
		for _, y := range m.YSamples {
			if ball(y) && !u.Member(y) {
				return false
			}
		}
	}
	return true
}
