// Package topoequiv: direction B — basic neighborhoods absorb finite
// intersections of compact-open sets.
package topoequiv

import (
	"fmt"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
	"github.com/karminau/unispace/uniformgen"
)

// Piece is one factor of a direction-B witness: the compact part
// K ∩ closure(Uᵢ) paired with the codomain ball it must map into.
type Piece[X, Y comparable] struct {
	// At is the covering center xᵢ chosen from K.
	At X

	// C is the certified compact K ∩ closure(f⁻¹(ball(f(xᵢ), Z))).
	C core.Compact[X]

	// B is ball(f(xᵢ), W) as a named codomain open predicate.
	B YOpen[Y]
}

// FiniteIntersection is a direction-B witness: a finite intersection of
// compact-open subbasic sets squeezed between the center and a basic
// neighborhood Gen(K, V, f). The concrete piece list replaces the
// source's dependent finite-subcover indexing.
type FiniteIntersection[X, Y comparable] struct {
	// Center is the function the witness surrounds.
	Center core.Fn[X, Y]

	// Pieces are the intersection factors, in subcover extraction order.
	Pieces []Piece[X, Y]
}

// SubcoverWitness proves one instance of direction B constructively.
// Given a basic neighborhood Gen(K, V, f):
//
//  1. refine V twice: W = refine(V), Z = refine(W), so W is symmetric
//     with W∘W ⊆ V and Z likewise under W;
//  2. cover K by the preimages Uₓ = f⁻¹(ball(f(x), Z));
//  3. extract a greedy finite subcover (consuming K's compactness);
//  4. for each chosen center xᵢ build the piece
//     (K ∩ closure(Uᵢ), ball(f(xᵢ), W)).
//
// The returned intersection contains f and is contained in Gen(K, V, f);
// call Verify to re-check both containments against the model.
func SubcoverWitness[X, Y comparable](
	m *Model[X, Y],
	k core.Compact[X],
	v entourage.Entourage[Y],
	f core.Fn[X, Y],
) (*FiniteIntersection[X, Y], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !m.Funcs.Has(f.Name()) {
		return nil, fmt.Errorf("%q: %w", f.Name(), ErrCenterNotFound)
	}

	w, err := m.Unif.SymmetricRefine(v)
	if err != nil {
		return nil, fmt.Errorf("refining V: %w", err)
	}
	z, err := m.Unif.SymmetricRefine(w)
	if err != nil {
		return nil, fmt.Errorf("refining W: %w", err)
	}

	// Cover K by preimages of fine balls around the image of each point.
	points := k.Set().Elems()
	cover := make([]*core.Set[X], len(points))
	for i, x := range points {
		ball := entourage.Ball(f.At(x), z)
		u := core.NewSet[X]()
		for _, xp := range m.Space.Points().Elems() {
			if ball(f.At(xp)) {
				u.Add(xp)
			}
		}
		cover[i] = u
	}

	picks, err := m.Space.FiniteSubcover(k, cover)
	if err != nil {
		return nil, fmt.Errorf("finite subcover: %w", err)
	}

	fi := &FiniteIntersection[X, Y]{Center: f}
	for _, i := range picks {
		c, err := m.Space.IntersectClosed(k, m.Space.Closure(cover[i]))
		if err != nil {
			return nil, fmt.Errorf("piece at %v: %w", points[i], err)
		}
		center := f.At(points[i])
		fi.Pieces = append(fi.Pieces, Piece[X, Y]{
			At: points[i],
			C:  c,
			B: YOpen[Y]{
				Name:   fmt.Sprintf("ball(%v,W)", center),
				Member: entourage.Ball(center, w),
			},
		})
	}
	return fi, nil
}

// Members materializes the finite intersection ⋂ᵢ gen(Cᵢ, Bᵢ) over the
// probe space. With no pieces the intersection is the whole universe.
func (fi *FiniteIntersection[X, Y]) Members(m *Model[X, Y]) (*core.Set[string], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	out := m.Funcs.Universe()
	for _, p := range fi.Pieces {
		out = out.Inter(CompactOpenGen(m.Funcs, p.C, p.B))
	}
	return out, nil
}

// Verify re-checks the witness against the model: the center belongs to
// the intersection, and the intersection is contained in Gen(K, V, f).
// A failed check returns ErrWitnessInvalid; the witness must then be
// discarded, not repaired.
func (fi *FiniteIntersection[X, Y]) Verify(
	m *Model[X, Y],
	k core.Compact[X],
	v entourage.Entourage[Y],
) error {
	members, err := fi.Members(m)
	if err != nil {
		return err
	}
	if !members.Contains(fi.Center.Name()) {
		return fmt.Errorf("center %q outside its witness: %w", fi.Center.Name(), ErrWitnessInvalid)
	}
	target, err := uniformgen.Gen(m.Funcs, k, v, fi.Center)
	if err != nil {
		return err
	}
	if !members.SubsetOf(target) {
		return fmt.Errorf("witness escapes Gen(K,V,%q): %w", fi.Center.Name(), ErrWitnessInvalid)
	}
	return nil
}
