// Package filterbase builds per-center neighborhood filter bases for the
// compact-convergence construction.
package filterbase

import (
	"errors"
	"fmt"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
	"github.com/karminau/unispace/uniformgen"
)

// Sentinel errors for filter-basis construction and queries.
var (
	// ErrNilSpace is returned if the probe function space is nil.
	ErrNilSpace = errors.New("filterbase: function space is nil")

	// ErrNilUniformity is returned if the uniformity is nil.
	ErrNilUniformity = errors.New("filterbase: uniformity is nil")

	// ErrCenterNotFound is returned when the center function is not
	// registered in the probe space.
	ErrCenterNotFound = errors.New("filterbase: center not in function space")

	// ErrIndexOutOfRange is returned for an index position outside the
	// enumerated family.
	ErrIndexOutOfRange = errors.New("filterbase: index out of range")

	// ErrNotDirected is returned by Validate when a pairwise meet fails to
	// sit inside the intersection of its operands.
	ErrNotDirected = errors.New("filterbase: meet law violated")
)

// Index names one basic neighborhood: a certified compact K and an
// entourage V drawn from the uniformity.
type Index[X, Y comparable] struct {
	K core.Compact[X]
	V entourage.Entourage[Y]
}

// Basis is the enumerated neighborhood family at a fixed center.
// Construct with New; a Basis is immutable after construction.
type Basis[X, Y comparable] struct {
	fs      *core.FuncSpace[X, Y]
	center  core.Fn[X, Y]
	indices []Index[X, Y]
}

// New enumerates the filter basis at center f: the always-present
// (∅, Y×Y) index followed by compacts × basis entourages. The space
// parameter supplies the certified empty compact for the leading index.
func New[X, Y comparable](
	space *core.Space[X],
	fs *core.FuncSpace[X, Y],
	compacts []core.Compact[X],
	unif entourage.Uniformity[Y],
	f core.Fn[X, Y],
) (*Basis[X, Y], error) {
	if space == nil || fs == nil {
		return nil, ErrNilSpace
	}
	if unif == nil {
		return nil, ErrNilUniformity
	}
	if !fs.Has(f.Name()) {
		return nil, fmt.Errorf("%q: %w", f.Name(), ErrCenterNotFound)
	}

	b := &Basis[X, Y]{fs: fs, center: f}
	// Non-emptiness witness: the whole function space is always a basic
	// neighborhood, via the empty compact and the full entourage.
	b.indices = append(b.indices, Index[X, Y]{K: space.EmptyCompact(), V: entourage.Full[Y]()})
	for _, k := range compacts {
		for _, v := range unif.Basis() {
			b.indices = append(b.indices, Index[X, Y]{K: k, V: v})
		}
	}
	return b, nil
}

// Center returns the basis center.
func (b *Basis[X, Y]) Center() core.Fn[X, Y] { return b.center }

// Len returns the number of enumerated indices.
func (b *Basis[X, Y]) Len() int { return len(b.indices) }

// Indices returns the enumerated indices in canonical order.
func (b *Basis[X, Y]) Indices() []Index[X, Y] {
	out := make([]Index[X, Y], len(b.indices))
	copy(out, b.indices)
	return out
}

// Neighborhood materializes the basic neighborhood at position i.
func (b *Basis[X, Y]) Neighborhood(i int) (*core.Set[string], error) {
	if i < 0 || i >= len(b.indices) {
		return nil, fmt.Errorf("%d: %w", i, ErrIndexOutOfRange)
	}
	return uniformgen.Gen(b.fs, b.indices[i].K, b.indices[i].V, b.center)
}

// Meet combines two indices into (K₁∪K₂, V₁∩V₂): the canonical witness
// that the family is directed downward under intersection.
func (b *Basis[X, Y]) Meet(i, j int) (Index[X, Y], error) {
	if i < 0 || i >= len(b.indices) || j < 0 || j >= len(b.indices) {
		return Index[X, Y]{}, fmt.Errorf("(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	k, err := core.UnionCompacts(b.indices[i].K, b.indices[j].K)
	if err != nil {
		return Index[X, Y]{}, err
	}
	return Index[X, Y]{
		K: k,
		V: entourage.Intersect(b.indices[i].V, b.indices[j].V),
	}, nil
}

// NeighborhoodOf materializes the basic neighborhood of an arbitrary
// index (such as one produced by Meet).
func (b *Basis[X, Y]) NeighborhoodOf(idx Index[X, Y]) (*core.Set[string], error) {
	return uniformgen.Gen(b.fs, idx.K, idx.V, b.center)
}

// Contains answers the filter membership query: whether some enumerated
// basic neighborhood is a subset of n.
func (b *Basis[X, Y]) Contains(n *core.Set[string]) (bool, error) {
	for i := range b.indices {
		nb, err := b.Neighborhood(i)
		if err != nil {
			return false, err
		}
		if nb.SubsetOf(n) {
			return true, nil
		}
	}
	return false, nil
}

// Validate re-checks the filter-basis certificate: the family is
// non-empty, and for every pair of indices the meet's neighborhood sits
// inside the intersection of the operands' neighborhoods.
func (b *Basis[X, Y]) Validate() error {
	if len(b.indices) == 0 {
		return ErrNotDirected
	}
	for i := 0; i < len(b.indices); i++ {
		ni, err := b.Neighborhood(i)
		if err != nil {
			return err
		}
		for j := i; j < len(b.indices); j++ {
			nj, err := b.Neighborhood(j)
			if err != nil {
				return err
			}
			meet, err := b.Meet(i, j)
			if err != nil {
				return err
			}
			nm, err := b.NeighborhoodOf(meet)
			if err != nil {
				return err
			}
			if !nm.SubsetOf(ni.Inter(nj)) {
				return fmt.Errorf("indices (%d,%d): %w", i, j, ErrNotDirected)
			}
		}
	}
	return nil
}
