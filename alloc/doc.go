// SPDX-License-Identifier: MIT

// Package alloc defines the storage strategy consumed by lvlist containers and
// ships a small set of ready-made strategies.
//
// A container never owns a fixed allocation policy. Every node it needs is
// requested from an Allocator, and the lifetime of a node is split into four
// independent steps:
//
//	Allocate(n, size)    // may fail: storage exhausted, bad request
//	Construct(b, ctor)   // may fail: the element constructor reports an error
//	Destroy(b, dtor)     // never fails
//	Deallocate(b)        // never fails
//
// Copy behavior is governed by two policies, resolved through optional
// capability interfaces in the spirit of io.WriterTo:
//
//   - CopySelector: which instance a copy-constructed container uses
//     (SelectOnCopy). Without it, the copy shares the source instance.
//   - Propagator: whether copy assignment adopts the right-hand side's
//     allocator (PropagateOnCopyAssignment). Without it, the left-hand side
//     keeps its own.
//
// Strategies:
//
//   - Heap: the default. Stateless, all values are equal, fails only on an
//     invalid request.
//   - Counting: counts bytes and construct/destroy calls, optionally into a
//     shared Ledger.
//   - Tagged: identity-bearing strategy with explicit Policy flags.
//   - Bounded: caps the number of live blocks (ErrExhausted beyond it).
//   - Metered: publishes Prometheus counters.
//   - Logged: logs every step through zap.
//   - WithPolicy: attaches explicit Policy flags to any strategy.
//
// Decorators (Bounded, Metered, Logged, WithPolicy) forward the capability
// interfaces of the strategy they wrap, so wrapping never changes how a
// container propagates its allocator.
//
// None of the strategies are required to be safe for concurrent use unless
// stated otherwise; Counting and Ledger counters are atomic so that a single
// Ledger may be shared freely.
package alloc
