// Package topoequiv: the reference compact-open topology.
package topoequiv

import (
	"github.com/karminau/unispace/core"
)

// CompactOpenGen materializes the subbasic compact-open set
//
//	gen(K, U) = { f ∈ fs : f(K) ⊆ U }
//
// over the probe space. An empty K yields the whole universe.
func CompactOpenGen[X, Y comparable](
	fs *core.FuncSpace[X, Y],
	k core.Compact[X],
	u YOpen[Y],
) *core.Set[string] {
	points := k.Set().Elems()
	out := core.NewSet[string]()
	for _, f := range fs.All() {
		inside := true
		for _, x := range points {
			if !u.Member(f.At(x)) {
				inside = false
				break
			}
		}
		if inside {
			out.Add(f.Name())
		}
	}
	return out
}

// BuildCompactOpenTopology materializes the topology generated by the
// subbasis gen(K, U), K ranging over the model's compacts and U over its
// codomain opens: close the subbasic sets under finite intersection (a
// basis), then under union.
func BuildCompactOpenTopology[X, Y comparable](m *Model[X, Y]) (*Topology, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	t := newTopology(m.Funcs.Names())
	full := uint64(1)<<uint(m.Funcs.Len()) - 1

	// Subbasis, plus ∅ and the universe.
	family := []uint64{0, full}
	seen := map[uint64]struct{}{0: {}, full: {}}
	push := func(mask uint64) bool {
		if _, ok := seen[mask]; ok {
			return false
		}
		seen[mask] = struct{}{}
		family = append(family, mask)
		return true
	}
	for _, k := range m.Compacts {
		for _, u := range m.YOpens {
			mask, _ := t.maskOf(CompactOpenGen(m.Funcs, k, u))
			push(mask)
		}
	}

	// Close under pairwise intersection, then pairwise union.
	for _, combine := range []func(a, b uint64) uint64{
		func(a, b uint64) uint64 { return a & b },
		func(a, b uint64) uint64 { return a | b },
	} {
		for changed := true; changed; {
			changed = false
			n := len(family)
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if push(combine(family[i], family[j])) {
						changed = true
					}
				}
			}
		}
	}

	for _, mask := range family {
		t.addMask(mask)
	}
	return t, nil
}
