// Package topoequiv: the uniform structure on the probe function space.
package topoequiv

import (
	"fmt"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
)

// FuncEntourage materializes the basic function-space relation
//
//	{ (g₁, g₂) : ∀x ∈ K, (g₁(x), g₂(x)) ∈ V }
//
// as an explicit relation over the probe function names.
func FuncEntourage[X, Y comparable](
	m *Model[X, Y],
	k core.Compact[X],
	v entourage.Entourage[Y],
) *entourage.Rel[string] {
	names := m.Funcs.Names()
	points := k.Set().Elems()
	var pairs [][2]string
	fns := m.Funcs.All()
	for i, g1 := range fns {
		for j, g2 := range fns {
			near := true
			for _, x := range points {
				if !v.Contains(g1.At(x), g2.At(x)) {
					near = false
					break
				}
			}
			if near {
				pairs = append(pairs, [2]string{names[i], names[j]})
			}
		}
	}
	// Pairs were built inside the carrier; NewRel cannot fail here.
	rel, _ := entourage.NewRel(names, pairs...)
	return rel
}

// funcIndex names one basic function-space relation.
type funcIndex[X, Y comparable] struct {
	k core.Compact[X]
	v entourage.Entourage[Y]
}

// FuncUniformity is the entourage filter on C(X, Y): the filter generated
// by the basic relations over all (compact, entourage) index pairs,
// directed by the componentwise (K₁∪K₂, V₁∩V₂) meet. Construct with
// BuildUniformity.
type FuncUniformity[X, Y comparable] struct {
	m       *Model[X, Y]
	indices []funcIndex[X, Y]
	rels    []*entourage.Rel[string]
}

// BuildUniformity assembles the function-space uniformity from the
// model: the always-present (∅, Y×Y) index followed by compacts crossed
// with the uniformity basis, each materialized as an explicit relation.
func BuildUniformity[X, Y comparable](m *Model[X, Y]) (*FuncUniformity[X, Y], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	u := &FuncUniformity[X, Y]{m: m}
	u.indices = append(u.indices, funcIndex[X, Y]{k: m.Space.EmptyCompact(), v: entourage.Full[Y]()})
	for _, k := range m.Compacts {
		for _, v := range m.Unif.Basis() {
			u.indices = append(u.indices, funcIndex[X, Y]{k: k, v: v})
		}
	}
	for _, idx := range u.indices {
		u.rels = append(u.rels, FuncEntourage(u.m, idx.k, idx.v))
	}
	return u, nil
}

// Len returns the number of basic relations.
func (u *FuncUniformity[X, Y]) Len() int { return len(u.rels) }

// Basic returns the i-th basic relation.
func (u *FuncUniformity[X, Y]) Basic(i int) (*entourage.Rel[string], error) {
	if i < 0 || i >= len(u.rels) {
		return nil, fmt.Errorf("%d: %w", i, ErrIndexOutOfRange)
	}
	return u.rels[i], nil
}

// Member answers the filter membership query: whether e contains some
// basic relation. This is the operational reading of the infimum filter —
// a membership test against the generating family, not a materialized
// intersection.
func (u *FuncUniformity[X, Y]) Member(e entourage.Entourage[string]) bool {
	for _, r := range u.rels {
		if r.SubsetOf(e) {
			return true
		}
	}
	return false
}

// Meet materializes the relation of the componentwise meet
// (Kᵢ∪Kⱼ, Vᵢ∩Vⱼ) of two basic indices: the directedness witness.
func (u *FuncUniformity[X, Y]) Meet(i, j int) (*entourage.Rel[string], error) {
	if i < 0 || i >= len(u.indices) || j < 0 || j >= len(u.indices) {
		return nil, fmt.Errorf("(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	k, err := core.UnionCompacts(u.indices[i].k, u.indices[j].k)
	if err != nil {
		return nil, err
	}
	return FuncEntourage(u.m, k, entourage.Intersect(u.indices[i].v, u.indices[j].v)), nil
}

// VerifyAxioms checks the three uniform-space axioms on every basic
// relation:
//
//   - reflexivity: the relation contains the diagonal (every V does);
//   - symmetry: a symmetric refinement V' of V yields a self-inverse
//     relation mapping into the original;
//   - composition: the refined relation composed with itself lands inside
//     the original — the pointwise chaining argument.
//
// Relations that are already symmetric and idempotent under composition
// (such as the leading full relation) need no refinement.
func (u *FuncUniformity[X, Y]) VerifyAxioms() error {
	for i, rel := range u.rels {
		if !rel.IsReflexive() {
			return fmt.Errorf("relation %d: %w", i, ErrNotReflexive)
		}

		if rel.IsSymmetric() {
			comp, err := rel.Compose(rel)
			if err != nil {
				return err
			}
			if comp.SubsetOf(rel) {
				continue
			}
		}

		refined, err := u.m.Unif.SymmetricRefine(u.indices[i].v)
		if err != nil {
			return fmt.Errorf("relation %d: %w: %w", i, ErrNotSymmetrizable, err)
		}
		erel := FuncEntourage(u.m, u.indices[i].k, refined)
		if !erel.IsSymmetric() || !erel.SubsetOf(rel) {
			return fmt.Errorf("relation %d: %w", i, ErrNotSymmetrizable)
		}
		comp, err := erel.Compose(erel)
		if err != nil {
			return err
		}
		if !comp.SubsetOf(rel) {
			return fmt.Errorf("relation %d: %w", i, ErrNotComposable)
		}
	}
	return nil
}

// UniformityInduces checks the is_open_uniformity characterization: a set
// is open in the uniform topology iff some basic relation's section
// around each of its points stays inside it. The uniform topology is
// materialized by that rule and compared to t open-for-open.
func UniformityInduces[X, Y comparable](u *FuncUniformity[X, Y], t *Topology) (bool, error) {
	if u == nil || t == nil {
		return false, ErrNilModel
	}
	ut := newTopology(u.m.Funcs.Names())
	if !ut.sameCarrier(t) {
		return false, ErrCarrierMismatch
	}
	n := u.m.Funcs.Len()
	names := u.m.Funcs.Names()

	// Sections of the basic relations are the basic neighborhoods.
	sections := make([][]uint64, n)
	for i, name := range names {
		for _, rel := range u.rels {
			sec := core.NewSet(rel.BallSet(name)...)
			mask, _ := ut.maskOf(sec)
			sections[i] = append(sections[i], mask)
		}
	}

	for s := uint64(0); s < 1<<uint(n); s++ {
		open := true
		for i := 0; i < n && open; i++ {
			if s&(1<<uint(i)) == 0 {
				continue
			}
			absorbed := false
			for _, sec := range sections[i] {
				if sec&^s == 0 {
					absorbed = true
					break
				}
			}
			open = absorbed
		}
		if open {
			ut.addMask(s)
		}
	}
	return ut.Equal(t), nil
}
