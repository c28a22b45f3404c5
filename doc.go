// Package unispace builds the compact-convergence uniform structure on a
// space of continuous functions and checks, on small finite models, that
// it induces exactly the compact-open topology.
//
// 🚀 What is unispace?
//
//	A deterministic, pure-Go construction engine that brings together:
//		• Core carriers: finite sets, finite topological spaces, certified
//		  compacts, continuous-map values
//		• Entourage algebra: closeness relations, symmetric refinement,
//		  relational composition, metric intervals
//		• Neighborhood generator: the basic "V-close to f on K" sets
//		• Filter bases: per-center neighborhood families with a checkable
//		  directedness certificate
//		• Topology equivalence: the neighborhood-basis topology, the
//		  compact-open topology, constructive witnesses for both
//		  inclusions, and a function-space uniformity with verified axioms
//
// ✨ Why choose unispace?
//
//   - Evidence, not proofs – compactness and continuity arrive as certified
//     values (smart constructors), and every construction is re-checkable
//     on the model it was built from
//   - Rock-solid determinism – insertion-ordered sets, name-ordered
//     function spaces, identical inputs ⇒ identical structures
//   - Pure Go – no I/O, no goroutines, no hidden state
//   - Constructive – finite subcovers are extracted greedily and entourage
//     refinements are computed, never assumed
//
// Under the hood, everything is organized into focused subpackages:
//
//	core/       — finite sets, spaces, compactness oracle, function spaces
//	entourage/  — closeness relations and uniformity filters
//	uniformgen/ — the basic neighborhood generator Gen(K, V, f)
//	filterbase/ — per-center filter bases over (compact, entourage) indices
//	topoequiv/  — topology builders, equivalence witnesses, uniformity axioms
//	builder/    — deterministic test models (discrete, sampled interval)
//
// Quick sketch:
//
//	    Gen(K, V, f) = { g | ∀x ∈ K, (f(x), g(x)) ∈ V }
//
//	neighborhoods of f, as K ranges over compacts and V over entourages,
//	generate the same topology as the sets { f | f(K) ⊆ U }.
//
// Dive into each package's doc.go for contracts, complexity notes, and
// worked examples.
//
//	go get github.com/karminau/unispace
package unispace
