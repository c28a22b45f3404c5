// Package entourage: explicit finite relations.
package entourage

import "fmt"

// Rel is an explicit binary relation over an ordered finite carrier.
// Construct with NewRel, Diagonal, or FullRel; combine with the relational
// algebra below. Pair iteration follows carrier order (a-major), so every
// derived relation is deterministic.
type Rel[Y comparable] struct {
	carrier []Y
	inCar   map[Y]struct{}
	pairs   map[[2]Y]struct{}
}

// newEmptyRel allocates an empty relation over carrier.
func newEmptyRel[Y comparable](carrier []Y) *Rel[Y] {
	r := &Rel[Y]{
		carrier: append([]Y(nil), carrier...),
		inCar:   make(map[Y]struct{}, len(carrier)),
		pairs:   make(map[[2]Y]struct{}),
	}
	for _, y := range carrier {
		r.inCar[y] = struct{}{}
	}
	return r
}

// add records a pair; elements are assumed inside the carrier.
func (r *Rel[Y]) add(a, b Y) { r.pairs[[2]Y{a, b}] = struct{}{} }

// NewRel builds a relation over carrier from the given pairs.
// Returns ErrPairOutsideCarrier if a pair mentions a foreign element.
func NewRel[Y comparable](carrier []Y, pairs ...[2]Y) (*Rel[Y], error) {
	r := newEmptyRel(carrier)
	for _, p := range pairs {
		if _, ok := r.inCar[p[0]]; !ok {
			return nil, fmt.Errorf("%v: %w", p[0], ErrPairOutsideCarrier)
		}
		if _, ok := r.inCar[p[1]]; !ok {
			return nil, fmt.Errorf("%v: %w", p[1], ErrPairOutsideCarrier)
		}
		r.add(p[0], p[1])
	}
	return r, nil
}

// Diagonal returns the identity relation {(y,y)} over carrier.
func Diagonal[Y comparable](carrier []Y) *Rel[Y] {
	r := newEmptyRel(carrier)
	for _, y := range carrier {
		r.add(y, y)
	}
	return r
}

// FullRel returns the complete relation carrier × carrier.
func FullRel[Y comparable](carrier []Y) *Rel[Y] {
	r := newEmptyRel(carrier)
	for _, a := range carrier {
		for _, b := range carrier {
			r.add(a, b)
		}
	}
	return r
}

// Contains reports whether (a,b) is in the relation.
func (r *Rel[Y]) Contains(a, b Y) bool {
	_, ok := r.pairs[[2]Y{a, b}]
	return ok
}

// Carrier returns the carrier in its canonical order.
func (r *Rel[Y]) Carrier() []Y {
	return append([]Y(nil), r.carrier...)
}

// Pairs returns the member pairs in carrier order (first component major).
func (r *Rel[Y]) Pairs() [][2]Y {
	var out [][2]Y
	for _, a := range r.carrier {
		for _, b := range r.carrier {
			if r.Contains(a, b) {
				out = append(out, [2]Y{a, b})
			}
		}
	}
	return out
}

// Len returns the number of pairs.
func (r *Rel[Y]) Len() int { return len(r.pairs) }

// IsReflexive reports whether the relation contains the diagonal.
func (r *Rel[Y]) IsReflexive() bool {
	for _, y := range r.carrier {
		if !r.Contains(y, y) {
			return false
		}
	}
	return true
}

// IsSymmetric reports whether the relation equals its inverse.
func (r *Rel[Y]) IsSymmetric() bool {
	for p := range r.pairs {
		if !r.Contains(p[1], p[0]) {
			return false
		}
	}
	return true
}

// Inverse returns the relation with all pairs flipped.
func (r *Rel[Y]) Inverse() *Rel[Y] {
	out := newEmptyRel(r.carrier)
	for p := range r.pairs {
		out.add(p[1], p[0])
	}
	return out
}

// sameCarrier reports whether o ranges over the same carrier in the same
// order.
func (r *Rel[Y]) sameCarrier(o *Rel[Y]) bool {
	if len(r.carrier) != len(o.carrier) {
		return false
	}
	for i, y := range r.carrier {
		if o.carrier[i] != y {
			return false
		}
	}
	return true
}

// Compose returns the relational composition r ∘ o =
// {(a,c) | ∃b: (a,b)∈r ∧ (b,c)∈o}.
// Returns ErrCarrierMismatch for relations over different carriers.
func (r *Rel[Y]) Compose(o *Rel[Y]) (*Rel[Y], error) {
	if !r.sameCarrier(o) {
		return nil, ErrCarrierMismatch
	}
	return ComposeOn(r.carrier, Entourage[Y](r), Entourage[Y](o)), nil
}

// Intersect returns the relation with the pairs present in both r and o.
func (r *Rel[Y]) Intersect(o *Rel[Y]) (*Rel[Y], error) {
	if !r.sameCarrier(o) {
		return nil, ErrCarrierMismatch
	}
	out := newEmptyRel(r.carrier)
	for p := range r.pairs {
		if o.Contains(p[0], p[1]) {
			out.add(p[0], p[1])
		}
	}
	return out, nil
}

// Union returns the relation with the pairs of either r or o.
func (r *Rel[Y]) Union(o *Rel[Y]) (*Rel[Y], error) {
	if !r.sameCarrier(o) {
		return nil, ErrCarrierMismatch
	}
	out := newEmptyRel(r.carrier)
	for p := range r.pairs {
		out.add(p[0], p[1])
	}
	for p := range o.pairs {
		out.add(p[0], p[1])
	}
	return out, nil
}

// SubsetOf reports whether every pair of r belongs to v. The right side
// may be any entourage predicate, not only an explicit relation.
func (r *Rel[Y]) SubsetOf(v Entourage[Y]) bool {
	for p := range r.pairs {
		if !v.Contains(p[0], p[1]) {
			return false
		}
	}
	return true
}

// BallSet returns ball(y, r) = {y' : (y,y') ∈ r} in carrier order.
func (r *Rel[Y]) BallSet(y Y) []Y {
	var out []Y
	for _, b := range r.carrier {
		if r.Contains(y, b) {
			out = append(out, b)
		}
	}
	return out
}
