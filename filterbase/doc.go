// Package filterbase assembles, for a fixed center function f, the family
// of all basic neighborhoods Gen(K, V, f) — K ranging over certified
// compacts, V over the uniformity basis — and certifies it as a filter
// basis.
//
// What
//
//   - Index: a (compact, entourage) pair naming one basic neighborhood.
//   - Basis: the enumerated family at a center. The (∅, Y×Y) index is
//     always present, so the family is never empty.
//   - Meet(i, j): the index (K₁∪K₂, V₁∩V₂), whose neighborhood sits inside
//     the intersection of the two operands' neighborhoods — the
//     directedness identity membership constraints on a union split into
//     constraints on each part, and membership in an intersection of
//     entourages implies membership in each factor.
//   - Contains(N): the filter membership query — does some enumerated
//     neighborhood sit inside N?
//   - Validate: re-checks non-emptiness and the pairwise meet law over the
//     enumerated family; a checkable certificate rather than an assumed
//     proof.
//
// Why
//
//	Declaring, at each center f, this family as the neighborhood filter of
//	f is exactly how the compact-convergence topology is generated. The
//	basis is generated lazily per query and never mutated.
//
// Determinism
//
//	Indices enumerate as: the (∅, full) index first, then compacts in
//	supplied order crossed with basis entourages coarsest-first.
//
// Errors
//
//   - ErrNilSpace, ErrNilUniformity for missing collaborators.
//   - ErrCenterNotFound if the center is not in the probe space.
//   - ErrIndexOutOfRange for a bad index position.
//   - ErrNotDirected if Validate finds a meet-law violation.
package filterbase
