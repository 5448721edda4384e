// SPDX-License-Identifier: MIT
//
// File: bounded.go
// Role: decorator capping the number of live objects of a wrapped strategy.

package alloc

import "github.com/sirkon/errors"

// Bounded caps the number of objects a strategy may have allocated at once.
// Requests beyond the cap fail with ErrExhausted.
type Bounded struct {
	base  Allocator
	limit int
	live  int
}

// NewBounded wraps base with a cap of limit live objects. A negative limit
// panics.
func NewBounded(base Allocator, limit int) *Bounded {
	if base == nil {
		panic(panicNilBase)
	}
	if limit < 0 {
		panic(panicNegativeLimit)
	}

	return &Bounded{base: base, limit: limit}
}

// Live returns the number of objects currently allocated.
func (b *Bounded) Live() int { return b.live }

// Limit returns the cap.
func (b *Bounded) Limit() int { return b.limit }

// Allocate grants the block if it fits under the cap.
func (b *Bounded) Allocate(n int, size uintptr) (Block, error) {
	if n > 0 && b.live+n > b.limit {
		return Block{}, errors.Wrap(ErrExhausted, "allocate bounded storage").
			Int("requested-count", n).
			Int("live-count", b.live).
			Int("limit", b.limit)
	}

	blk, err := b.base.Allocate(n, size)
	if err != nil {
		return Block{}, err
	}
	b.live += blk.Count

	return blk, nil
}

// Deallocate releases the block and frees its share of the cap.
func (b *Bounded) Deallocate(blk Block) {
	b.live -= blk.Count
	b.base.Deallocate(blk)
}

// Construct forwards to the wrapped strategy.
func (b *Bounded) Construct(blk Block, ctor func() error) error { return b.base.Construct(blk, ctor) }

// Destroy forwards to the wrapped strategy.
func (b *Bounded) Destroy(blk Block, dtor func()) { b.base.Destroy(blk, dtor) }

// Unwrap to satisfy Unwrapper.
func (b *Bounded) Unwrap() Allocator { return b.base }

// SelectOnCopy to satisfy CopySelector. A fresh wrapped instance gets a fresh
// cap of the same size.
func (b *Bounded) SelectOnCopy() Allocator {
	sel, fresh := reselect(b.base)
	if !fresh {
		return b
	}

	return NewBounded(sel, b.limit)
}

// PropagateOnCopyAssignment to satisfy Propagator.
func (b *Bounded) PropagateOnCopyAssignment() bool { return PropagatesOnCopyAssignment(b.base) }

// Equal to satisfy Equaler.
func (b *Bounded) Equal(other Allocator) bool { return Equal(b.base, Base(other)) }
