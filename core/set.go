// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: Finite set with deterministic iteration order.
// Policy:
//   - Insertion order is the iteration order; equal contents with different
//     histories are still Equal.
//   - Mutating methods exist only on the builder side (Add); all set
//     algebra returns fresh sets and never aliases internal state.

package core

// Set is a finite set of comparable elements with deterministic
// (insertion-ordered) iteration. The zero value is not usable; construct
// with NewSet.
type Set[T comparable] struct {
	items map[T]struct{}
	order []T
}

// NewSet constructs a set with the provided elements.
// Duplicates are collapsed; first occurrence fixes the position.
func NewSet[T comparable](elems ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(elems))}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts e into the set. Re-adding an element is a no-op.
func (s *Set[T]) Add(e T) {
	if _, ok := s.items[e]; ok {
		return
	}
	s.items[e] = struct{}{}
	s.order = append(s.order, e)
}

// Contains reports whether e is a member of the set.
func (s *Set[T]) Contains(e T) bool {
	_, ok := s.items[e]
	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return len(s.order) }

// Elems returns the elements in insertion order. The slice is a copy.
func (s *Set[T]) Elems() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// Clone returns an independent copy preserving iteration order.
func (s *Set[T]) Clone() *Set[T] {
	return NewSet(s.order...)
}

// Union returns a new set containing the elements of s followed by the
// elements of o that are not already present.
func (s *Set[T]) Union(o *Set[T]) *Set[T] {
	out := s.Clone()
	for _, e := range o.order {
		out.Add(e)
	}
	return out
}

// Inter returns a new set with the elements present in both s and o,
// ordered as in s.
func (s *Set[T]) Inter(o *Set[T]) *Set[T] {
	out := NewSet[T]()
	for _, e := range s.order {
		if o.Contains(e) {
			out.Add(e)
		}
	}
	return out
}

// Diff returns a new set with the elements of s absent from o.
func (s *Set[T]) Diff(o *Set[T]) *Set[T] {
	out := NewSet[T]()
	for _, e := range s.order {
		if !o.Contains(e) {
			out.Add(e)
		}
	}
	return out
}

// SubsetOf reports whether every element of s belongs to o.
func (s *Set[T]) SubsetOf(o *Set[T]) bool {
	for _, e := range s.order {
		if !o.Contains(e) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o have exactly the same members,
// regardless of insertion history.
func (s *Set[T]) Equal(o *Set[T]) bool {
	return len(s.order) == len(o.order) && s.SubsetOf(o)
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool { return len(s.order) == 0 }
