// Package uniformgen computes the basic neighborhoods of the
// compact-convergence structure: the sets of functions V-close to a
// center f on a compact set K.
//
// What
//
//   - Gen(fs, K, V, f) materializes
//     { g ∈ fs : ∀x ∈ K, (f(x), g(x)) ∈ V }
//     as a name-set over the probe function space fs.
//   - GenPred(K, V, f) is the same set as a predicate over arbitrary
//     function values (the conceptual, non-materialized view).
//
// Why
//
//	These sets are the raw material of everything downstream: filter bases
//	collect them per center, the basis topology declares a set open when it
//	absorbs one of them around each point, and the function-space
//	uniformity is generated by their two-sided analogues.
//
// Laws (verified by the test suite, relied upon by callers)
//
//   - Reflexivity: f ∈ Gen(K, V, f) whenever V is reflexive, which holds
//     for every member of a uniformity filter.
//   - Monotonicity: V' ⊆ V implies Gen(K, V', f) ⊆ Gen(K, V, f).
//   - Chaining: g ∈ Gen(K, V, f) and h ∈ Gen(K, V', g) imply
//     h ∈ Gen(K, V∘V', f) — the triangle-inequality mechanism.
//   - Empty K: Gen(∅, V, f) is the whole probe universe (vacuous
//     quantification), never an error.
//
// Complexity
//
//   - Time:   O(|fs| · |K|) membership tests per call.
//   - Memory: O(|fs|) for the result set.
//
// Errors
//
//   - ErrNilSpace        if the probe function space is nil.
//   - ErrNilEntourage    if the entourage is nil.
//   - ErrCenterNotFound  if the center is not registered in fs.
package uniformgen
