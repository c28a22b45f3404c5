// SPDX-License-Identifier: MIT
//
// File: funcspace.go
// Role: Continuous-map values and the ordered probe universe they form.
// Policy:
//   - Continuity is a trusted certificate: NewFn validates what is
//     checkable (non-empty name, non-nil eval) and the caller vouches for
//     the rest, exactly as compactness is vouched for by CertifyCompact.
//   - Function names are the identity of a function inside a FuncSpace;
//     subsets of the function space are Set[string] over names.

package core

import "fmt"

// Fn is an immutable continuous-map value: a unique name plus an
// evaluation function X → Y. Construct with NewFn.
type Fn[X, Y comparable] struct {
	name string
	eval func(X) Y
}

// NewFn constructs a continuous-map value. The continuity of eval with
// respect to the ambient structures is certified by the caller.
// Returns ErrEmptyName or ErrNilEval on malformed input.
func NewFn[X, Y comparable](name string, eval func(X) Y) (Fn[X, Y], error) {
	if name == "" {
		return Fn[X, Y]{}, ErrEmptyName
	}
	if eval == nil {
		return Fn[X, Y]{}, fmt.Errorf("function %q: %w", name, ErrNilEval)
	}
	return Fn[X, Y]{name: name, eval: eval}, nil
}

// Name returns the function's identity within its FuncSpace.
func (f Fn[X, Y]) Name() string { return f.name }

// At evaluates the function at x.
func (f Fn[X, Y]) At(x X) Y { return f.eval(x) }

// FuncSpace is the ordered, finite probe universe of functions being
// topologized. Registration order is the canonical order.
type FuncSpace[X, Y comparable] struct {
	fns    []Fn[X, Y]
	byName map[string]int
}

// NewFuncSpace registers the given functions under their names.
// Returns ErrDuplicateFn if two functions share a name, and ErrNilEval if
// an uninitialized Fn value is supplied.
func NewFuncSpace[X, Y comparable](fns ...Fn[X, Y]) (*FuncSpace[X, Y], error) {
	fs := &FuncSpace[X, Y]{byName: make(map[string]int, len(fns))}
	for _, f := range fns {
		if f.name == "" || f.eval == nil {
			return nil, fmt.Errorf("function %d: %w", len(fs.fns), ErrNilEval)
		}
		if _, ok := fs.byName[f.name]; ok {
			return nil, fmt.Errorf("function %q: %w", f.name, ErrDuplicateFn)
		}
		fs.byName[f.name] = len(fs.fns)
		fs.fns = append(fs.fns, f)
	}
	return fs, nil
}

// Len returns the number of registered functions.
func (fs *FuncSpace[X, Y]) Len() int { return len(fs.fns) }

// All returns the registered functions in canonical order.
func (fs *FuncSpace[X, Y]) All() []Fn[X, Y] {
	out := make([]Fn[X, Y], len(fs.fns))
	copy(out, fs.fns)
	return out
}

// Names returns the function names in canonical order.
func (fs *FuncSpace[X, Y]) Names() []string {
	out := make([]string, len(fs.fns))
	for i, f := range fs.fns {
		out[i] = f.name
	}
	return out
}

// ByName looks up a registered function.
// Returns ErrFnNotFound for unknown names.
func (fs *FuncSpace[X, Y]) ByName(name string) (Fn[X, Y], error) {
	i, ok := fs.byName[name]
	if !ok {
		return Fn[X, Y]{}, fmt.Errorf("%q: %w", name, ErrFnNotFound)
	}
	return fs.fns[i], nil
}

// Has reports whether a function with the given name is registered.
func (fs *FuncSpace[X, Y]) Has(name string) bool {
	_, ok := fs.byName[name]
	return ok
}

// Universe returns the name-set of all registered functions.
func (fs *FuncSpace[X, Y]) Universe() *Set[string] {
	return NewSet(fs.Names()...)
}
