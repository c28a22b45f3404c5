// SPDX-License-Identifier: MIT
//
// File: space.go
// Role: Finite topological space generated from a declared subbasis.
// Policy:
//   - The topology is materialized once at construction: close the
//     subbasis under finite intersection (a basis), then under union.
//   - ∅ and the universe are always open.
//   - All queries are read-only; a Space never mutates after NewSpace.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Space is a finite topological space: an ordered point universe plus the
// topology generated by a declared subbasis. Construct with NewSpace.
type Space[T comparable] struct {
	points *Set[T]
	index  map[T]int // point -> position in the universe order
	opens  []*Set[T] // materialized topology, generation order
	keys   map[string]struct{}
}

// NewSpace builds a space over the given points with the topology generated
// by subbasis. Every subbasis set must be contained in the universe;
// otherwise ErrPointOutsideSpace is returned.
//
// Complexity: O(F² · n) per closure round, where F is the family size and
// n the universe size. Intended for small verification models.
func NewSpace[T comparable](points []T, subbasis ...*Set[T]) (*Space[T], error) {
	sp := &Space[T]{
		points: NewSet(points...),
		index:  make(map[T]int, len(points)),
		keys:   make(map[string]struct{}),
	}
	for i, p := range sp.points.Elems() {
		sp.index[p] = i
	}

	// Seed with ∅ and the universe, then the declared subbasis.
	sp.addOpen(NewSet[T]())
	sp.addOpen(sp.points.Clone())
	for i, b := range subbasis {
		if !b.SubsetOf(sp.points) {
			return nil, fmt.Errorf("subbasis set %d: %w", i, ErrPointOutsideSpace)
		}
		sp.addOpen(b.Clone())
	}

	// Close under pairwise intersection: the resulting family is a basis.
	sp.closeUnder(func(a, b *Set[T]) *Set[T] { return a.Inter(b) })
	// Close under pairwise union: the resulting family is the topology.
	// (Intersections of unions reduce to unions of basis intersections,
	// so no further intersection round is needed.)
	sp.closeUnder(func(a, b *Set[T]) *Set[T] { return a.Union(b) })

	return sp, nil
}

// keyOf renders a canonical identity for a subset of the universe:
// sorted point indices. Insertion history does not influence the key.
func (sp *Space[T]) keyOf(s *Set[T]) string {
	present := make([]bool, sp.points.Len())
	for _, e := range s.Elems() {
		present[sp.index[e]] = true
	}
	var b strings.Builder
	for i, ok := range present {
		if ok {
			b.WriteString(strconv.Itoa(i))
			b.WriteByte(',')
		}
	}
	return b.String()
}

// addOpen records s as open if an equal set is not already present.
func (sp *Space[T]) addOpen(s *Set[T]) {
	k := sp.keyOf(s)
	if _, ok := sp.keys[k]; ok {
		return
	}
	sp.keys[k] = struct{}{}
	sp.opens = append(sp.opens, s)
}

// closeUnder grows the open family to a fixpoint of the binary combiner.
func (sp *Space[T]) closeUnder(combine func(a, b *Set[T]) *Set[T]) {
	for changed := true; changed; {
		changed = false
		n := len(sp.opens)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				c := combine(sp.opens[i], sp.opens[j])
				before := len(sp.opens)
				sp.addOpen(c)
				if len(sp.opens) != before {
					changed = true
				}
			}
		}
	}
}

// Points returns the universe in its canonical order.
func (sp *Space[T]) Points() *Set[T] { return sp.points.Clone() }

// Opens returns every open set of the materialized topology.
func (sp *Space[T]) Opens() []*Set[T] {
	out := make([]*Set[T], len(sp.opens))
	for i, o := range sp.opens {
		out[i] = o.Clone()
	}
	return out
}

// IsOpen reports whether s is open in the space.
func (sp *Space[T]) IsOpen(s *Set[T]) bool {
	_, ok := sp.keys[sp.keyOf(s)]
	return ok && s.SubsetOf(sp.points)
}

// Interior returns the largest open set contained in s.
func (sp *Space[T]) Interior(s *Set[T]) *Set[T] {
	out := NewSet[T]()
	for _, o := range sp.opens {
		if o.SubsetOf(s) {
			out = out.Union(o)
		}
	}
	return out
}

// Closure returns the smallest closed set containing s, computed as the
// complement of the interior of the complement.
func (sp *Space[T]) Closure(s *Set[T]) *Set[T] {
	return sp.points.Diff(sp.Interior(sp.points.Diff(s)))
}

// IsClosed reports whether the complement of s is open.
func (sp *Space[T]) IsClosed(s *Set[T]) bool {
	return sp.IsOpen(sp.points.Diff(s))
}

// Neighborhood reports whether s contains an open set containing x.
func (sp *Space[T]) Neighborhood(x T, s *Set[T]) bool {
	return sp.Interior(s).Contains(x)
}
