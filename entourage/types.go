// Package entourage: shared interface, sentinel errors, and
// carrier-agnostic combinators.
package entourage

import "errors"

// Sentinel errors for entourage algebra and uniformity filters.
var (
	// ErrCarrierMismatch is returned when two explicit relations over
	// different carriers are combined.
	ErrCarrierMismatch = errors.New("entourage: carriers differ")

	// ErrPairOutsideCarrier is returned when a declared pair mentions an
	// element outside the carrier.
	ErrPairOutsideCarrier = errors.New("entourage: pair outside carrier")

	// ErrBadRadius is returned for a non-positive metric radius.
	ErrBadRadius = errors.New("entourage: radius must be positive")

	// ErrEmptyBasis is returned when a uniformity is declared without
	// basis entourages.
	ErrEmptyBasis = errors.New("entourage: uniformity basis is empty")

	// ErrNotReflexive is returned when a uniformity basis entourage does
	// not contain the diagonal.
	ErrNotReflexive = errors.New("entourage: basis entourage not reflexive")

	// ErrNoRefinement is returned when no basis entourage yields a valid
	// symmetric refinement of the operand.
	ErrNoRefinement = errors.New("entourage: no symmetric refinement in basis")

	// ErrNotEntourage is returned when an operand is not in the form the
	// uniformity operates on (e.g. a non-interval passed to a metric
	// uniformity's refinement).
	ErrNotEntourage = errors.New("entourage: operand is not a valid entourage here")
)

// Entourage is a closeness relation on Y: Contains(a, b) reports whether
// a and b are "close enough" in the sense of this entourage.
type Entourage[Y comparable] interface {
	Contains(a, b Y) bool
}

// pred adapts a bare predicate to the Entourage interface.
type pred[Y comparable] struct {
	contains func(a, b Y) bool
}

func (p pred[Y]) Contains(a, b Y) bool { return p.contains(a, b) }

// FromPred wraps a membership predicate as an Entourage.
func FromPred[Y comparable](contains func(a, b Y) bool) Entourage[Y] {
	return pred[Y]{contains: contains}
}

// Full returns the coarsest entourage Y×Y.
func Full[Y comparable]() Entourage[Y] {
	return pred[Y]{contains: func(Y, Y) bool { return true }}
}

// Intersect returns V₁ ∩ V₂. When both operands carry an explicit form
// (two Rels over one carrier, or two Intervals) the result keeps that
// form, so it stays refinable by the matching uniformity.
func Intersect[Y comparable](v1, v2 Entourage[Y]) Entourage[Y] {
	if a, ok := any(v1).(Interval); ok {
		if b, ok2 := any(v2).(Interval); ok2 {
			return any(a.Intersect(b)).(Entourage[Y])
		}
	}
	if a, ok := v1.(*Rel[Y]); ok {
		if b, ok2 := v2.(*Rel[Y]); ok2 {
			if r, err := a.Intersect(b); err == nil {
				return r
			}
		}
	}
	return pred[Y]{contains: func(a, b Y) bool {
		return v1.Contains(a, b) && v2.Contains(a, b)
	}}
}

// Invert returns the relational inverse V⁻¹.
func Invert[Y comparable](v Entourage[Y]) Entourage[Y] {
	return pred[Y]{contains: func(a, b Y) bool { return v.Contains(b, a) }}
}

// Ball returns the membership predicate of ball(y, V) = {y' : (y,y') ∈ V}.
func Ball[Y comparable](y Y, v Entourage[Y]) func(Y) bool {
	return func(yp Y) bool { return v.Contains(y, yp) }
}

// IsReflexiveOn reports whether V contains the diagonal of the carrier.
func IsReflexiveOn[Y comparable](carrier []Y, v Entourage[Y]) bool {
	for _, y := range carrier {
		if !v.Contains(y, y) {
			return false
		}
	}
	return true
}

// IsSymmetricOn reports whether V equals its inverse on the carrier.
func IsSymmetricOn[Y comparable](carrier []Y, v Entourage[Y]) bool {
	for _, a := range carrier {
		for _, b := range carrier {
			if v.Contains(a, b) != v.Contains(b, a) {
				return false
			}
		}
	}
	return true
}

// SubsetOn reports whether V₁ ⊆ V₂ over the carrier.
func SubsetOn[Y comparable](carrier []Y, v1, v2 Entourage[Y]) bool {
	for _, a := range carrier {
		for _, b := range carrier {
			if v1.Contains(a, b) && !v2.Contains(a, b) {
				return false
			}
		}
	}
	return true
}

// ComposeOn materializes the relational composition V₁ ∘ V₂ =
// {(a,c) | ∃b: (a,b)∈V₁ ∧ (b,c)∈V₂} of two entourage predicates over a
// finite carrier. Complexity: O(n³).
func ComposeOn[Y comparable](carrier []Y, v1, v2 Entourage[Y]) *Rel[Y] {
	out := newEmptyRel(carrier)
	for _, a := range carrier {
		for _, c := range carrier {
			for _, b := range carrier {
				if v1.Contains(a, b) && v2.Contains(b, c) {
					out.add(a, c)
					break
				}
			}
		}
	}
	return out
}
