// SPDX-License-Identifier: MIT
//
// File: tagged.go
// Role: identity-bearing strategy with explicit copy policies.

package alloc

import "github.com/google/uuid"

// Tagged is an identity-bearing strategy: two instances are interchangeable in
// implementation but compare unequal unless they share an identity.
//
// Its Policy decides whether copies get a new identity and whether copy
// assignment adopts the source's instance.
type Tagged struct {
	id     uuid.UUID
	policy Policy
}

// NewTagged returns a Tagged strategy with a fresh identity.
func NewTagged(p Policy) *Tagged {
	return &Tagged{id: uuid.New(), policy: p}
}

// ID returns the identity of t.
func (t *Tagged) ID() uuid.UUID { return t.id }

// Policy returns the copy policies of t.
func (t *Tagged) Policy() Policy { return t.policy }

// Allocate grants a block through Heap.
func (t *Tagged) Allocate(n int, size uintptr) (Block, error) { return Heap{}.Allocate(n, size) }

// Deallocate is a no-op.
func (t *Tagged) Deallocate(Block) {}

// Construct calls ctor.
func (t *Tagged) Construct(_ Block, ctor func() error) error { return ctor() }

// Destroy calls dtor.
func (t *Tagged) Destroy(_ Block, dtor func()) { dtor() }

// SelectOnCopy to satisfy CopySelector.
func (t *Tagged) SelectOnCopy() Allocator {
	if t.policy.FreshOnCopy {
		return NewTagged(t.policy)
	}

	return t
}

// PropagateOnCopyAssignment to satisfy Propagator.
func (t *Tagged) PropagateOnCopyAssignment() bool { return t.policy.PropagateOnAssign }

// Equal to satisfy Equaler.
func (t *Tagged) Equal(other Allocator) bool {
	o, ok := Base(other).(*Tagged)
	return ok && o.id == t.id
}
