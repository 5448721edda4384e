// SPDX-License-Identifier: MIT
//
// File: counting.go
// Role: instrumented strategy. Counts bytes and construct/destroy calls on its
// own Ledger and, optionally, on a Ledger shared with other instances.

package alloc

import "go.uber.org/atomic"

// Stats is a point-in-time copy of a Ledger.
type Stats struct {
	AllocatedBytes   uint64
	DeallocatedBytes uint64
	// Constructed counts construction attempts, failed ones included.
	Constructed      uint64
	// FailedConstructs counts the attempts whose constructor returned an
	// error. Such an element is never destroyed.
	FailedConstructs uint64
	Destroyed        uint64
}

// Live returns the number of bytes allocated and not yet released.
func (s Stats) Live() uint64 { return s.AllocatedBytes - s.DeallocatedBytes }

// Balanced reports whether every allocation was released and every
// successfully constructed element was destroyed.
func (s Stats) Balanced() bool {
	return s.AllocatedBytes == s.DeallocatedBytes && s.Constructed == s.Destroyed+s.FailedConstructs
}

// Ledger accumulates allocator traffic. The zero value is ready to use and
// safe for concurrent use.
type Ledger struct {
	allocated   atomic.Uint64
	deallocated atomic.Uint64
	constructed atomic.Uint64
	failed      atomic.Uint64
	destroyed   atomic.Uint64
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Snapshot returns the current counters.
func (l *Ledger) Snapshot() Stats {
	return Stats{
		AllocatedBytes:   l.allocated.Load(),
		DeallocatedBytes: l.deallocated.Load(),
		Constructed:      l.constructed.Load(),
		FailedConstructs: l.failed.Load(),
		Destroyed:        l.destroyed.Load(),
	}
}

// Reset zeroes all counters.
func (l *Ledger) Reset() {
	l.allocated.Store(0)
	l.deallocated.Store(0)
	l.constructed.Store(0)
	l.failed.Store(0)
	l.destroyed.Store(0)
}

// Counting forwards to a base strategy and records every step.
type Counting struct {
	base   Allocator
	own    Ledger
	shared *Ledger
}

// NewCounting returns a Counting strategy over Heap. shared may be nil.
func NewCounting(shared *Ledger) *Counting {
	return NewCountingOver(Heap{}, shared)
}

// NewCountingOver returns a Counting strategy over base. shared may be nil.
func NewCountingOver(base Allocator, shared *Ledger) *Counting {
	if base == nil {
		panic(panicNilBase)
	}

	return &Counting{base: base, shared: shared}
}

// Allocate records the granted bytes; failed requests are not counted.
func (c *Counting) Allocate(n int, size uintptr) (Block, error) {
	b, err := c.base.Allocate(n, size)
	if err != nil {
		return Block{}, err
	}
	c.record(func(l *Ledger) { l.allocated.Add(uint64(b.Bytes())) })

	return b, nil
}

// Deallocate records the released bytes.
func (c *Counting) Deallocate(b Block) {
	c.record(func(l *Ledger) { l.deallocated.Add(uint64(b.Bytes())) })
	c.base.Deallocate(b)
}

// Construct records the attempt before running ctor and, if ctor fails, the
// failure as well.
func (c *Counting) Construct(b Block, ctor func() error) error {
	c.record(func(l *Ledger) { l.constructed.Inc() })
	if err := c.base.Construct(b, ctor); err != nil {
		c.record(func(l *Ledger) { l.failed.Inc() })
		return err
	}

	return nil
}

// Destroy records the call.
func (c *Counting) Destroy(b Block, dtor func()) {
	c.record(func(l *Ledger) { l.destroyed.Inc() })
	c.base.Destroy(b, dtor)
}

// Snapshot returns this instance's own counters.
func (c *Counting) Snapshot() Stats { return c.own.Snapshot() }

// Shared returns the shared ledger, nil if none.
func (c *Counting) Shared() *Ledger { return c.shared }

// Equal to satisfy Equaler: two counting strategies are equal when their own
// counters match.
func (c *Counting) Equal(other Allocator) bool {
	o, ok := Base(other).(*Counting)
	if !ok {
		return false
	}

	return c.own.Snapshot() == o.own.Snapshot()
}

func (c *Counting) record(fn func(l *Ledger)) {
	fn(&c.own)
	if c.shared != nil {
		fn(c.shared)
	}
}
