// SPDX-License-Identifier: MIT
//
// File: compact.go
// Role: Compactness oracle — certified compact subsets and the operations
//       the construction consumes them through.
// Policy:
//   - Compact values are created only by Space.CertifyCompact (or derived
//     by the compactness-preserving combinators below). Holding a Compact
//     is holding the evidence.
//   - In a finite space every subset is compact; certification checks the
//     one falsifiable condition (containment in the universe) and pins the
//     set to its space.

package core

import "fmt"

// Compact is a certified-compact subset of a Space. The zero value carries
// no certificate; obtain instances from Space.CertifyCompact,
// Space.EmptyCompact, UnionCompacts, or Space.IntersectClosed.
type Compact[T comparable] struct {
	set   *Set[T]
	space *Space[T]
}

// CertifyCompact certifies s as a compact subset of the space.
// Returns ErrNotSubset if s reaches outside the universe.
func (sp *Space[T]) CertifyCompact(s *Set[T]) (Compact[T], error) {
	if !s.SubsetOf(sp.points) {
		return Compact[T]{}, ErrNotSubset
	}
	return Compact[T]{set: s.Clone(), space: sp}, nil
}

// EmptyCompact returns the certified empty compact of the space.
// The empty set is compact in every space.
func (sp *Space[T]) EmptyCompact() Compact[T] {
	return Compact[T]{set: NewSet[T](), space: sp}
}

// Set returns the underlying point set (a copy).
func (k Compact[T]) Set() *Set[T] { return k.set.Clone() }

// Space returns the space the certificate is pinned to.
func (k Compact[T]) Space() *Space[T] { return k.space }

// IsEmpty reports whether the compact set has no points.
func (k Compact[T]) IsEmpty() bool { return k.set.IsEmpty() }

// FiniteSubcover extracts indices of a finite subfamily of cover that still
// covers K, scanning K's points in order and greedily taking the first
// cover set containing each uncovered point. Cover sets are supplied by
// callers holding the relevant openness/continuity evidence; openness is
// not re-checked here.
//
// Returns ErrNotCovered if some point of K lies in no cover set.
// Complexity: O(|K| · len(cover) · n).
func (sp *Space[T]) FiniteSubcover(k Compact[T], cover []*Set[T]) ([]int, error) {
	if k.space != sp {
		return nil, ErrSpaceMismatch
	}
	covered := NewSet[T]()
	taken := make(map[int]struct{})
	var picks []int
	for _, x := range k.set.Elems() {
		if covered.Contains(x) {
			continue
		}
		found := false
		for j, c := range cover {
			if c.Contains(x) {
				if _, dup := taken[j]; !dup {
					taken[j] = struct{}{}
					picks = append(picks, j)
				}
				covered = covered.Union(c)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("point %v: %w", x, ErrNotCovered)
		}
	}
	return picks, nil
}

// UnionCompacts certifies the union of two compacts of the same space.
// The union of two compact sets is compact.
func UnionCompacts[T comparable](a, b Compact[T]) (Compact[T], error) {
	if a.space != b.space {
		return Compact[T]{}, ErrSpaceMismatch
	}
	return Compact[T]{set: a.set.Union(b.set), space: a.space}, nil
}

// IntersectClosed certifies K ∩ C where C is closed in the space.
// Intersecting a compact with a closed set preserves compactness.
// Returns ErrNotClosed if C's complement is not open.
func (sp *Space[T]) IntersectClosed(k Compact[T], c *Set[T]) (Compact[T], error) {
	if k.space != sp {
		return Compact[T]{}, ErrSpaceMismatch
	}
	if !sp.IsClosed(c) {
		return Compact[T]{}, ErrNotClosed
	}
	return Compact[T]{set: k.set.Inter(c), space: sp}, nil
}
