// Package core defines the central finite carriers of unispace:
// ordered sets, finite topological spaces, certified compact subsets,
// and continuous-map values forming a probe function space.
//
// What
//
//   - Set[T]: a finite set with deterministic (insertion-ordered) iteration.
//   - Space[T]: a finite topological space materialized from a declared
//     subbasis, with IsOpen / Closure / Interior queries.
//   - Compact[T]: a certified-compact subset, produced only by
//     Space.CertifyCompact. The compactness oracle supports greedy finite
//     subcover extraction, union of two compacts, and intersection with a
//     closed set (all compactness-preserving).
//   - Fn[X, Y]: an immutable continuous-map value — a unique name plus an
//     evaluation function. Continuity is a trusted certificate supplied by
//     the caller, not re-verified here.
//   - FuncSpace[X, Y]: the ordered probe universe of functions being
//     topologized; subsets of the function space are Set[string] over
//     function names.
//
// Why
//
//	Constructions over function spaces consume compactness and continuity
//	as evidence. Representing that evidence as validated wrapper values
//	(smart constructors that check what is checkable, once) lets the
//	higher-level packages state their contracts in terms of certified
//	inputs instead of re-deriving structure on every call.
//
// Determinism
//
//	Sets iterate in insertion order, spaces enumerate opens in generation
//	order, and function spaces keep registration order. Identical inputs
//	produce identical structures, element for element.
//
// Errors
//
//   - ErrPointOutsideSpace  if a declared set reaches outside the universe.
//   - ErrNotSubset          if a compactness certificate is requested for
//     a set not contained in the space.
//   - ErrNotCovered         if a finite subcover does not exist for the
//     supplied cover.
//   - ErrNotClosed          if IntersectClosed is given a non-closed set.
//   - ErrSpaceMismatch      if compacts from different spaces are combined.
//   - ErrEmptyName, ErrNilEval, ErrDuplicateFn, ErrFnNotFound for
//     function-space construction and lookup.
package core
