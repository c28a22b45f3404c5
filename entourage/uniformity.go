// Package entourage: uniformity filters with symmetric refinement.
package entourage

import "fmt"

// Uniformity is the ambient uniformity filter on Y, supplied by the model
// as a trusted collaborator. It is presented operationally: a finite
// decreasing chain of basic entourages (coarsest first), a filter
// membership query, and symmetric refinement.
type Uniformity[Y comparable] interface {
	// Basis returns the basic entourages, coarsest first. Every basis
	// entourage is reflexive; later entries refine earlier ones.
	Basis() []Entourage[Y]

	// Member reports whether V belongs to the filter, i.e. whether V
	// contains some basic entourage.
	Member(v Entourage[Y]) bool

	// SymmetricRefine returns V' with V' ⊆ V, V' symmetric, and
	// V'∘V' ⊆ V. Returns ErrNoRefinement when the basis chain is too
	// shallow, or ErrNotEntourage when V is outside the form this
	// uniformity operates on.
	SymmetricRefine(v Entourage[Y]) (Entourage[Y], error)
}

// MetricUniformity is the metric-derived uniformity on float64: basic
// entourages are intervals of radius base, base/2, base/4, ... and
// symmetric refinement is radius halving (always succeeds).
type MetricUniformity struct {
	base  float64
	depth int
}

// NewMetricUniformity builds the uniformity with depth basic entourages
// starting at the given base radius. Returns ErrBadRadius for base ≤ 0,
// ErrEmptyBasis for depth < 1.
func NewMetricUniformity(base float64, depth int) (*MetricUniformity, error) {
	if _, err := NewInterval(base); err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, ErrEmptyBasis
	}
	return &MetricUniformity{base: base, depth: depth}, nil
}

// Basis returns intervals of radius base/2ⁱ for i = 0..depth-1.
func (u *MetricUniformity) Basis() []Entourage[float64] {
	out := make([]Entourage[float64], u.depth)
	v := Interval{radius: u.base}
	for i := 0; i < u.depth; i++ {
		out[i] = v
		v = v.Half()
	}
	return out
}

// FinestRadius returns the radius of the finest basic entourage.
func (u *MetricUniformity) FinestRadius() float64 {
	r := u.base
	for i := 1; i < u.depth; i++ {
		r /= 2
	}
	return r
}

// Member reports filter membership: V contains some basic interval.
// Decidable for Interval operands; any other entourage form is
// conservatively rejected.
func (u *MetricUniformity) Member(v Entourage[float64]) bool {
	iv, ok := v.(Interval)
	if !ok {
		return false
	}
	return iv.radius >= u.FinestRadius()
}

// SymmetricRefine halves the radius. Intervals are already symmetric and
// Half(V)∘Half(V) has radius exactly r, which the strict inequality keeps
// inside V.
func (u *MetricUniformity) SymmetricRefine(v Entourage[float64]) (Entourage[float64], error) {
	iv, ok := v.(Interval)
	if !ok {
		return nil, fmt.Errorf("metric uniformity: %w", ErrNotEntourage)
	}
	return iv.Half(), nil
}

// FiniteUniformity is a uniformity on a finite carrier, declared by an
// explicit chain of basic relations. Refinement is found by scanning the
// chain for a symmetrized basis entourage that composes into the operand.
type FiniteUniformity[Y comparable] struct {
	basis []*Rel[Y]
}

// NewFiniteUniformity validates and wraps a basis chain: it must be
// non-empty and every basic relation reflexive (ErrNotReflexive otherwise).
func NewFiniteUniformity[Y comparable](basis ...*Rel[Y]) (*FiniteUniformity[Y], error) {
	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}
	for i, b := range basis {
		if !b.IsReflexive() {
			return nil, fmt.Errorf("basis entourage %d: %w", i, ErrNotReflexive)
		}
	}
	return &FiniteUniformity[Y]{basis: basis}, nil
}

// Basis returns the basic relations, coarsest first.
func (u *FiniteUniformity[Y]) Basis() []Entourage[Y] {
	out := make([]Entourage[Y], len(u.basis))
	for i, b := range u.basis {
		out[i] = b
	}
	return out
}

// Member reports whether V contains some basic relation. Each basic
// relation is finite, so this is decidable for any entourage predicate.
func (u *FiniteUniformity[Y]) Member(v Entourage[Y]) bool {
	for _, b := range u.basis {
		if b.SubsetOf(v) {
			return true
		}
	}
	return false
}

// SymmetricRefine scans the chain for a basic relation whose symmetric
// part s = b ∩ b⁻¹ satisfies s ⊆ V and s∘s ⊆ V. The symmetric part keeps
// the diagonal (b is reflexive), so s is itself a valid entourage.
func (u *FiniteUniformity[Y]) SymmetricRefine(v Entourage[Y]) (Entourage[Y], error) {
	for _, b := range u.basis {
		s, err := b.Intersect(b.Inverse())
		if err != nil {
			return nil, err
		}
		if !s.SubsetOf(v) {
			continue
		}
		ss, err := s.Compose(s)
		if err != nil {
			return nil, err
		}
		if ss.SubsetOf(v) {
			return s, nil
		}
	}
	return nil, ErrNoRefinement
}
