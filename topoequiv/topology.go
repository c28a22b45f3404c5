// Package topoequiv: materialized topologies over the probe universe.
package topoequiv

import (
	"sort"

	"github.com/karminau/unispace/core"
)

// Topology is a materialized topology on the probe function space: the
// carrier (function names in canonical order) and the family of open
// name-sets, represented internally as bitmasks over the carrier.
type Topology struct {
	carrier []string
	index   map[string]int
	masks   []uint64
	seen    map[uint64]struct{}
}

// newTopology allocates an empty topology over the carrier.
func newTopology(carrier []string) *Topology {
	t := &Topology{
		carrier: append([]string(nil), carrier...),
		index:   make(map[string]int, len(carrier)),
		seen:    make(map[uint64]struct{}),
	}
	for i, n := range carrier {
		t.index[n] = i
	}
	return t
}

// addMask records an open set unless an equal one is present.
func (t *Topology) addMask(m uint64) {
	if _, ok := t.seen[m]; ok {
		return
	}
	t.seen[m] = struct{}{}
	t.masks = append(t.masks, m)
}

// maskOf converts a name-set to a bitmask. The second result is false if
// the set mentions a name outside the carrier.
func (t *Topology) maskOf(s *core.Set[string]) (uint64, bool) {
	var m uint64
	for _, n := range s.Elems() {
		i, ok := t.index[n]
		if !ok {
			return 0, false
		}
		m |= 1 << uint(i)
	}
	return m, true
}

// setOf converts a bitmask back to a name-set in carrier order.
func (t *Topology) setOf(m uint64) *core.Set[string] {
	out := core.NewSet[string]()
	for i, n := range t.carrier {
		if m&(1<<uint(i)) != 0 {
			out.Add(n)
		}
	}
	return out
}

// Carrier returns the probe universe names in canonical order.
func (t *Topology) Carrier() []string {
	return append([]string(nil), t.carrier...)
}

// Len returns the number of open sets.
func (t *Topology) Len() int { return len(t.masks) }

// IsOpen reports whether s is open. Sets mentioning names outside the
// carrier are never open.
func (t *Topology) IsOpen(s *core.Set[string]) bool {
	m, ok := t.maskOf(s)
	if !ok {
		return false
	}
	_, open := t.seen[m]
	return open
}

// Opens returns every open set, ordered by ascending bitmask value so the
// enumeration is reproducible regardless of construction history.
func (t *Topology) Opens() []*core.Set[string] {
	masks := append([]uint64(nil), t.masks...)
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })
	out := make([]*core.Set[string], len(masks))
	for i, m := range masks {
		out[i] = t.setOf(m)
	}
	return out
}

// sameCarrier reports whether o ranges over the same universe (as a set).
func (t *Topology) sameCarrier(o *Topology) bool {
	if len(t.carrier) != len(o.carrier) {
		return false
	}
	for _, n := range t.carrier {
		if _, ok := o.index[n]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether the two topologies have the same carrier and
// exactly the same open sets.
func (t *Topology) Equal(o *Topology) bool {
	if !t.sameCarrier(o) {
		return false
	}
	if len(t.masks) != len(o.masks) {
		return false
	}
	for m := range t.seen {
		om, ok := o.maskOf(t.setOf(m))
		if !ok {
			return false
		}
		if _, open := o.seen[om]; !open {
			return false
		}
	}
	return true
}

// TopologiesEqual reports whether t1 and t2 agree open-for-open.
// This is the topologies_equal check of the construction's contract.
func TopologiesEqual(t1, t2 *Topology) bool {
	if t1 == nil || t2 == nil {
		return t1 == t2
	}
	return t1.Equal(t2)
}
