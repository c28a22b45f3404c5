// Package topoequiv: the neighborhood-basis topology.
package topoequiv

import (
	"fmt"

	"github.com/karminau/unispace/filterbase"
)

// BuildFilterBasisTopology materializes the topology generated by
// declaring, at each probe function f, the family Gen(K, V, f) as its
// neighborhood filter: a set S is open iff every f ∈ S has some basic
// neighborhood contained in S.
//
// Complexity: O(2ⁿ · n · |indices|) for n probe functions — the model
// cap keeps this a verification-scale scan.
func BuildFilterBasisTopology[X, Y comparable](m *Model[X, Y]) (*Topology, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	t := newTopology(m.Funcs.Names())
	n := m.Funcs.Len()

	// Materialize every function's basic neighborhoods as bitmasks once.
	nbhds := make([][]uint64, n)
	for i, f := range m.Funcs.All() {
		basis, err := filterbase.New(m.Space, m.Funcs, m.Compacts, m.Unif, f)
		if err != nil {
			return nil, fmt.Errorf("basis at %q: %w", f.Name(), err)
		}
		for j := 0; j < basis.Len(); j++ {
			nb, err := basis.Neighborhood(j)
			if err != nil {
				return nil, fmt.Errorf("basis at %q: %w", f.Name(), err)
			}
			mask, _ := t.maskOf(nb)
			nbhds[i] = append(nbhds[i], mask)
		}
	}

	// Powerset scan: S is open iff each member point absorbs one of its
	// basic neighborhoods.
	for s := uint64(0); s < 1<<uint(n); s++ {
		open := true
		for i := 0; i < n && open; i++ {
			if s&(1<<uint(i)) == 0 {
				continue
			}
			absorbed := false
			for _, nb := range nbhds[i] {
				if nb&^s == 0 {
					absorbed = true
					break
				}
			}
			open = absorbed
		}
		if open {
			t.addMask(s)
		}
	}
	return t, nil
}
