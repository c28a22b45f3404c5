// SPDX-License-Identifier: MIT
// Package: unispace/builder
//
// impl_discrete.go — the finite discrete verification model.
//
// AI-Hints:
//   • The codomain chain full ⊇ near ⊇ diagonal exercises the finite
//     uniformity's refinement scan: near is symmetric but not
//     transitive, so refinement must fall through to the diagonal.
//   • Compacts include every singleton, so the compact-open subbasis can
//     pin probe functions down pointwise.

package builder

import (
	"fmt"

	"github.com/karminau/unispace/core"
	"github.com/karminau/unispace/entourage"
	"github.com/karminau/unispace/topoequiv"
)

// Codomain tokens of the discrete model.
const (
	tokenLo  = "lo"
	tokenMid = "mid"
	tokenHi  = "hi"
)

// DiscreteModel builds a model over n discrete domain points "P0".."Pn-1"
// and the three-token codomain {lo, mid, hi}:
//
//   - domain topology: discrete (singleton subbasis);
//   - uniformity: the chain full ⊇ near ⊇ diagonal, where near relates
//     adjacent tokens (lo↔mid, mid↔hi) symmetrically;
//   - probes: the three constant functions plus a step function that is
//     lo on P0 and hi elsewhere;
//   - compacts: the whole domain and every singleton;
//   - codomain opens: the three token singletons.
//
// Returns ErrTooFewPoints for n < 1, or the first invalid option.
func DiscreteModel(n int, opts ...Option) (*topoequiv.Model[string, string], error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("DiscreteModel: %w", cfg.err)
	}
	if n < 1 {
		return nil, fmt.Errorf("DiscreteModel: n=%d: %w", n, ErrTooFewPoints)
	}

	points := make([]string, n)
	subbasis := make([]*core.Set[string], n)
	for i := range points {
		points[i] = fmt.Sprintf("P%d", i)
		subbasis[i] = core.NewSet(points[i])
	}
	space, err := core.NewSpace(points, subbasis...)
	if err != nil {
		return nil, fmt.Errorf("DiscreteModel: %w", err)
	}

	carrier := []string{tokenLo, tokenMid, tokenHi}
	near, err := entourage.Diagonal(carrier).Union(mustPairs(carrier,
		[2]string{tokenLo, tokenMid}, [2]string{tokenMid, tokenLo},
		[2]string{tokenMid, tokenHi}, [2]string{tokenHi, tokenMid},
	))
	if err != nil {
		return nil, fmt.Errorf("DiscreteModel: %w", err)
	}
	unif, err := entourage.NewFiniteUniformity(
		entourage.FullRel(carrier), near, entourage.Diagonal(carrier))
	if err != nil {
		return nil, fmt.Errorf("DiscreteModel: %w", err)
	}

	fns, err := discreteProbes(points[0])
	if err != nil {
		return nil, fmt.Errorf("DiscreteModel: %w", err)
	}
	fs, err := core.NewFuncSpace(fns...)
	if err != nil {
		return nil, fmt.Errorf("DiscreteModel: %w", err)
	}

	whole, err := space.CertifyCompact(core.NewSet(points...))
	if err != nil {
		return nil, fmt.Errorf("DiscreteModel: %w", err)
	}
	compacts := []core.Compact[string]{whole}
	for _, p := range points {
		k, cErr := space.CertifyCompact(core.NewSet(p))
		if cErr != nil {
			return nil, fmt.Errorf("DiscreteModel: %w", cErr)
		}
		compacts = append(compacts, k)
	}

	var opens []topoequiv.YOpen[string]
	for _, tok := range carrier {
		tok := tok
		opens = append(opens, topoequiv.YOpen[string]{
			Name:   "{" + tok + "}",
			Member: func(y string) bool { return y == tok },
		})
	}

	return &topoequiv.Model[string, string]{
		Space:    space,
		Funcs:    fs,
		Unif:     unif,
		Compacts: compacts,
		YOpens:   opens,
		YSamples: carrier,
		MaxProbe: cfg.maxProbe,
	}, nil
}

// discreteProbes builds the constant probes and the step probe.
func discreteProbes(first string) ([]core.Fn[string, string], error) {
	var fns []core.Fn[string, string]
	for _, tok := range []string{tokenLo, tokenMid, tokenHi} {
		tok := tok
		f, err := core.NewFn("const_"+tok, func(string) string { return tok })
		if err != nil {
			return nil, err
		}
		fns = append(fns, f)
	}
	step, err := core.NewFn("step", func(x string) string {
		if x == first {
			return tokenLo
		}
		return tokenHi
	})
	if err != nil {
		return nil, err
	}
	return append(fns, step), nil
}

// mustPairs builds a relation from pairs known to lie in the carrier.
func mustPairs(carrier []string, pairs ...[2]string) *entourage.Rel[string] {
	r, err := entourage.NewRel(carrier, pairs...)
	if err != nil {
		// The carrier and pairs are compile-time constants of this
		// package; reaching here is a programming error.
		panic(err)
	}
	return r
}
