// SPDX-License-Identifier: MIT
//
// File: policy.go
// Role: trait resolution (select-on-copy, propagate-on-assign, identity) and
// the WithPolicy decorator.

package alloc

import "reflect"

// SelectOnCopy returns the instance a container copy-constructed from a
// container using a must receive. Strategies without a CopySelector are shared.
func SelectOnCopy(a Allocator) Allocator {
	if s, ok := a.(CopySelector); ok {
		return s.SelectOnCopy()
	}

	return a
}

// PropagatesOnCopyAssignment reports whether copy assignment into a container
// using a adopts the source container's allocator.
func PropagatesOnCopyAssignment(a Allocator) bool {
	if p, ok := a.(Propagator); ok {
		return p.PropagateOnCopyAssignment()
	}

	return false
}

// Equal reports whether a and b are interchangeable instances.
//
// Strategies implementing Equaler decide for themselves; others compare with ==,
// so pointer strategies are equal only to themselves.
func Equal(a, b Allocator) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	if e, ok := b.(Equaler); ok {
		return e.Equal(a)
	}

	return identical(a, b)
}

// Base strips every decorator around a and returns the innermost strategy.
func Base(a Allocator) Allocator {
	for {
		u, ok := a.(Unwrapper)
		if !ok {
			return a
		}
		a = u.Unwrap()
	}
}

// WithPolicy attaches explicit copy policies to a.
//
// When p.FreshOnCopy is set, SelectOnCopy builds the copy's instance with fresh
// (nil fresh falls back to sharing a). Equality is decided by the wrapped
// strategies.
func WithPolicy(a Allocator, p Policy, fresh func() Allocator) Allocator {
	if a == nil {
		panic(panicNilBase)
	}

	return &policied{base: a, policy: p, fresh: fresh}
}

type policied struct {
	base   Allocator
	policy Policy
	fresh  func() Allocator
}

func (p *policied) Allocate(n int, size uintptr) (Block, error) { return p.base.Allocate(n, size) }
func (p *policied) Deallocate(b Block)                          { p.base.Deallocate(b) }
func (p *policied) Construct(b Block, ctor func() error) error  { return p.base.Construct(b, ctor) }
func (p *policied) Destroy(b Block, dtor func())                { p.base.Destroy(b, dtor) }
func (p *policied) Unwrap() Allocator                           { return p.base }

// SelectOnCopy to satisfy CopySelector.
func (p *policied) SelectOnCopy() Allocator {
	if !p.policy.FreshOnCopy || p.fresh == nil {
		return p
	}

	return &policied{base: p.fresh(), policy: p.policy, fresh: p.fresh}
}

// PropagateOnCopyAssignment to satisfy Propagator.
func (p *policied) PropagateOnCopyAssignment() bool { return p.policy.PropagateOnAssign }

// Equal to satisfy Equaler.
func (p *policied) Equal(other Allocator) bool {
	return Equal(p.base, Base(other))
}

// reselect returns the instance a copy of a decorator over base must wrap and
// whether it differs from base.
func reselect(base Allocator) (Allocator, bool) {
	s, ok := base.(CopySelector)
	if !ok {
		return base, false
	}
	sel := s.SelectOnCopy()

	return sel, !identical(sel, base)
}

// identical reports whether a and b hold the same comparable value. Values of
// incomparable dynamic types, such as structs with slice fields, are never
// identical.
func identical(a, b Allocator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(a).Comparable() {
		return false
	}

	return a == b
}

const (
	panicNilBase       = "alloc: nil base allocator"
	panicNegativeLimit = "alloc: negative limit"
	panicNilLogger     = "alloc: nil logger"
)
