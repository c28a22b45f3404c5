// Package entourage provides the closeness-relation algebra underlying the
// compact-convergence construction: entourages, their combinators, and
// uniformity filters with symmetric refinement.
//
// What
//
//   - Entourage[Y]: a binary "close enough" relation on Y, exposed as a
//     membership predicate.
//   - Rel[Y]: an explicit finite relation over an ordered carrier, with the
//     full relational algebra (inverse, composition, intersection, union,
//     subset, balls, diagonal/full constructors).
//   - Interval: the metric entourage {(a,b) : |a-b| < r} on float64, whose
//     algebra is computed on radii (composition adds, intersection takes
//     the minimum, halving refines).
//   - Uniformity[Y]: the ambient uniformity filter, supplied by the model
//     as a finite decreasing basis chain. It answers filter membership and
//     produces symmetric refinements: given V, an entourage V' ⊆ V with
//     V' symmetric and V'∘V' ⊆ V.
//
// Why
//
//	Every step of the compact-convergence construction consumes entourages
//	through exactly three capabilities: reflexivity (to place a function in
//	its own neighborhood), symmetric refinement (to halve "distances"), and
//	composition (to chain triangle-inequality-style estimates). Packaging
//	those capabilities once keeps the higher layers free of metric or
//	carrier-specific reasoning.
//
// Required algebra (relied upon, not re-proven per call)
//
//   - Composition is monotone: V₁'⊆V₁ ∧ V₂'⊆V₂ ⟹ V₁'∘V₂' ⊆ V₁∘V₂.
//   - Every basis entourage of a Uniformity is reflexive.
//   - SymmetricRefine postconditions: V'⊆V, V' = V'⁻¹, V'∘V' ⊆ V.
//
// Errors
//
//   - ErrCarrierMismatch  combining explicit relations over different carriers.
//   - ErrPairOutsideCarrier  declaring a pair outside the carrier.
//   - ErrBadRadius        non-positive metric radius.
//   - ErrEmptyBasis       a uniformity declared with no basis entourages.
//   - ErrNotReflexive     a uniformity basis entourage missing the diagonal.
//   - ErrNoRefinement     the basis chain is too shallow to refine V.
//   - ErrNotEntourage     an operand outside the uniformity's entourage form.
package entourage
