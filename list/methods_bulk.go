// SPDX-License-Identifier: MIT
//
// File: methods_bulk.go
// Role: construction, copy construction and copy assignment with rollback.
//
// Every bulk path counts what it has committed and, on failure, undoes exactly
// that before returning the original error.

package list

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlist/alloc"
)

// New returns an empty list. No storage is requested until the first insertion.
func New[T any](opts ...Option) *List[T] {
	o := gatherOptions(opts)

	return &List[T]{allocator: o.allocator, log: o.logger}
}

// NewSized returns a list of count default-constructed elements.
//
// If any construction fails, the elements built so far are destroyed and
// released and NewSized returns a nil list with that error. A negative count
// panics.
func NewSized[T any](count int, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if err := l.fill("new-sized", count, func(int) func(*T) error { return defaultValue[T] }); err != nil {
		return nil, err
	}

	return l, nil
}

// NewFilled returns a list of count copies of value, with the same rollback
// contract as NewSized.
func NewFilled[T any](count int, value T, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if err := l.fill("new-filled", count, func(int) func(*T) error { return copyOf(&value) }); err != nil {
		return nil, err
	}

	return l, nil
}

// NewFrom returns a list holding copies of values in order, with the same
// rollback contract as NewSized.
func NewFrom[T any](values []T, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if err := l.fill("new-from", len(values), func(i int) func(*T) error { return copyOf(&values[i]) }); err != nil {
		return nil, err
	}

	return l, nil
}

// Clone returns a copy of l.
//
// The copy's allocator is chosen by alloc.SelectOnCopy: either a fresh instance
// or the one l uses. If any element copy fails, the partial copy is destroyed
// and Clone returns a nil list with that error; l is never modified.
func (l *List[T]) Clone() (*List[T], error) {
	c := &List[T]{allocator: alloc.SelectOnCopy(l.Allocator()), log: l.log}
	if err := c.appendCopies(l); err != nil {
		c.rollback("clone", 0, err)
		return nil, err
	}

	return c, nil
}

// Assign replaces the content of l with copies of the elements of src.
//
// When l's allocator propagates on copy assignment, the copies are built in a
// temporary list on src's allocator and swapped in only once complete: on
// failure l is untouched, on success l adopts src's allocator.
//
// Otherwise l keeps its allocator: the copies are appended after the current
// elements, which are then removed from the front. On failure the appended
// copies are removed from the back, so l ends with its original content.
//
// Assigning a list to itself is a no-op.
func (l *List[T]) Assign(src *List[T]) error {
	if l == src {
		return nil
	}

	if alloc.PropagatesOnCopyAssignment(l.Allocator()) {
		tmp := &List[T]{allocator: src.Allocator(), log: l.log}
		if err := tmp.appendCopies(src); err != nil {
			tmp.rollback("assign-propagate", 0, err)
			return err
		}
		l.swap(tmp)
		tmp.Clear()

		return nil
	}

	prev := l.size
	if err := l.appendCopies(src); err != nil {
		l.rollback("assign", prev, err)
		return err
	}
	for ; prev > 0; prev-- {
		l.PopFront()
	}

	return nil
}

// fill appends count elements built by build(i); on failure it rolls back to
// empty.
func (l *List[T]) fill(op string, count int, build func(i int) func(*T) error) error {
	if count < 0 {
		panic(panicNegativeCount)
	}

	for i := 0; i < count; i++ {
		if _, err := l.insertBefore(l.sentinel, build(i)); err != nil {
			l.rollback(op, 0, err)
			return err
		}
	}

	return nil
}

// appendCopies appends copies of src's elements in iteration order and stops at
// the first failure without undoing anything.
func (l *List[T]) appendCopies(src *List[T]) error {
	for it, end := src.CBegin(), src.CEnd(); !it.Equal(end); it = it.Next() {
		if _, err := l.insertBefore(l.sentinel, copyOf(&it.c.node().value)); err != nil {
			return err
		}
	}

	return nil
}

// rollback pops elements from the back until keep remain.
func (l *List[T]) rollback(op string, keep int, err error) {
	committed := l.size - keep
	for l.size > keep {
		l.PopBack()
	}

	l.logger().Debug("rolled back partial operation",
		zap.String("op", op),
		zap.Int("committed", committed),
		zap.Error(err),
	)
}

// swap exchanges storage, allocator and size with other. It never fails.
func (l *List[T]) swap(other *List[T]) {
	l.allocator, other.allocator = other.allocator, l.allocator
	l.nodes, other.nodes = other.nodes, l.nodes
	l.free, other.free = other.free, l.free
	l.sentinel, other.sentinel = other.sentinel, l.sentinel
	l.size, other.size = other.size, l.size
}
