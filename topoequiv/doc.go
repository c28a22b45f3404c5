// Package topoequiv is the central engine of unispace: it builds the
// neighborhood-basis topology and the compact-open topology on a probe
// function space, produces constructive witnesses for both inclusions,
// and assembles a function-space uniformity whose axioms it verifies.
//
// What
//
//   - Model bundles the trusted collaborators: a finite domain space, the
//     probe function space, the codomain uniformity, certified compacts,
//     named codomain opens, and codomain sample points.
//   - BuildFilterBasisTopology declares, at each probe function f, the
//     family Gen(K, V, f) as its neighborhood filter and materializes the
//     induced topology (a set is open iff it absorbs a basic neighborhood
//     around each of its points).
//   - BuildCompactOpenTopology generates the reference topology from the
//     subbasis gen(K, U) = { f : f(K) ⊆ U }.
//   - LebesgueWitness (direction A): given gen(K, U) ∋ f, finds an
//     entourage V with every V-ball around f(K) inside U, so that
//     Gen(K, V, f) ⊆ gen(K, U).
//   - SubcoverWitness (direction B): given Gen(K, V, f), refines V twice,
//     covers K by preimages of fine balls, extracts a greedy finite
//     subcover, and returns the finite intersection of compact-open sets
//     ⋂ᵢ gen(Kᵢ ∩ closure(Uᵢ), ball(f(xᵢ), W)) squeezed between f and
//     Gen(K, V, f). The witness re-verifies both containments.
//   - BuildUniformity assembles the entourage filter on C(X, Y) from the
//     relations { (g₁,g₂) : ∀x∈K, (g₁(x),g₂(x)) ∈ V } and verifies
//     reflexivity, symmetry, and composition. UniformityInduces closes the
//     loop: the uniform topology equals a given topology.
//   - TopologiesEqual compares two materialized topologies open-for-open.
//
// Why
//
//	The point of the construction is that two independently defined
//	structures — uniform convergence on compacts, and the compact-open
//	topology — describe the same space of continuous functions. Here that
//	equality is not asserted but rebuilt: each direction produces a
//	concrete witness that is then checked against the model.
//
// Failure semantics
//
//	Nothing here fails at runtime in a recoverable sense. Errors signal
//	precondition violations (malformed models, oversized probe spaces,
//	centers outside the probe universe) or a model too coarse to carry the
//	construction (no Lebesgue number in the basis chain, refinement
//	exhausted, witness verification failure). Such results are meaningless
//	and must not be accepted; they are never silently repaired.
//
// Complexity
//
//	Topology materialization scans the powerset of the probe universe, so
//	models are capped (DefaultMaxProbe, hard limit HardMaxProbe). This is
//	a reference/verification construction, not a hot path.
package topoequiv
