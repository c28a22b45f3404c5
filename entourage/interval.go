// Package entourage: metric entourages on the real line.
package entourage

import "math"

// Interval is the metric entourage {(a,b) : |a-b| < r} on float64.
// It is symmetric and reflexive by construction, and its algebra is
// computed on radii: composition adds, intersection takes the minimum,
// halving refines. Construct with NewInterval.
type Interval struct {
	radius float64
}

// NewInterval builds the entourage of radius r.
// Returns ErrBadRadius unless r > 0.
func NewInterval(r float64) (Interval, error) {
	if r <= 0 || math.IsNaN(r) {
		return Interval{}, ErrBadRadius
	}
	return Interval{radius: r}, nil
}

// Radius returns the strict closeness threshold.
func (i Interval) Radius() float64 { return i.radius }

// Contains reports whether |a-b| < r.
func (i Interval) Contains(a, b float64) bool {
	return math.Abs(a-b) < i.radius
}

// Compose returns the entourage of radius r₁+r₂.
// |a-b| < r₁ and |b-c| < r₂ give |a-c| < r₁+r₂, and the bound is tight,
// so this is exactly the relational composition.
func (i Interval) Compose(o Interval) Interval {
	return Interval{radius: i.radius + o.radius}
}

// Intersect returns the entourage of radius min(r₁, r₂).
func (i Interval) Intersect(o Interval) Interval {
	return Interval{radius: math.Min(i.radius, o.radius)}
}

// Inverse returns the entourage itself: intervals are symmetric.
func (i Interval) Inverse() Interval { return i }

// Half returns the entourage of radius r/2. Half(V)∘Half(V) ⊆ V, which is
// the standard symmetric refinement for metric uniformities.
func (i Interval) Half() Interval {
	return Interval{radius: i.radius / 2}
}

// SubsetOf reports whether i ⊆ o, i.e. r₁ ≤ r₂.
func (i Interval) SubsetOf(o Interval) bool {
	return i.radius <= o.radius
}
