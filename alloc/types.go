// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Allocator contract, Block handle, optional capability interfaces.
//
//go:generate mockgen -package=allocmock -destination=allocmock/allocator.go . Allocator

package alloc

// Block identifies storage granted by a single Allocate call.
//
// ID is unique per strategy lineage and never zero for a granted block.
// Count is the number of objects requested, Size the size of one object.
type Block struct {
	ID    uint64
	Count int
	Size  uintptr
}

// Bytes returns the number of bytes the block accounts for.
func (b Block) Bytes() uintptr { return uintptr(b.Count) * b.Size }

// Valid reports whether b was produced by a successful Allocate.
func (b Block) Valid() bool { return b.ID != 0 }

// Allocator is the storage strategy of a container.
//
// Allocate and Construct may fail; Destroy and Deallocate must not. Construct
// must return the constructor's error unchanged so that callers observe the
// element's own failure payload.
type Allocator interface {
	// Allocate grants storage for n objects of the given size.
	Allocate(n int, size uintptr) (Block, error)
	// Deallocate releases storage granted by Allocate.
	Deallocate(b Block)
	// Construct runs ctor to build an object inside b.
	Construct(b Block, ctor func() error) error
	// Destroy runs dtor to tear down the object inside b.
	Destroy(b Block, dtor func())
}

// CopySelector is implemented by strategies that choose the instance a
// copy-constructed container receives.
type CopySelector interface {
	SelectOnCopy() Allocator
}

// Propagator is implemented by strategies whose instance travels with copy
// assignment.
type Propagator interface {
	PropagateOnCopyAssignment() bool
}

// Equaler is implemented by strategies with identity-bearing state.
type Equaler interface {
	Equal(other Allocator) bool
}

// Unwrapper is implemented by decorators; Unwrap returns the wrapped strategy.
type Unwrapper interface {
	Unwrap() Allocator
}

// Policy holds the two copy policies as explicit flags.
type Policy struct {
	// FreshOnCopy gives a copy-constructed container a brand-new instance.
	FreshOnCopy bool
	// PropagateOnAssign makes copy assignment adopt the source's instance.
	PropagateOnAssign bool
}
