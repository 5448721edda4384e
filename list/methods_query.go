// SPDX-License-Identifier: MIT
//
// File: methods_query.go
// Role: read-only queries, range-over-func sequences and list equality.
// Complexity: O(1) except All, Backward, Values and Equal, which are O(n).

package list

import (
	"iter"
	"slices"
)

// Size returns the number of elements.
func (l *List[T]) Size() int { return l.size }

// Empty reports whether l has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the first element.
func (l *List[T]) Front() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}

	return l.slot(l.slot(l.sentinel).next).value, true
}

// Back returns the last element.
func (l *List[T]) Back() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}

	return l.slot(l.slot(l.sentinel).prev).value, true
}

// All yields the elements front to back. l must not be modified during the
// iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := l.CBegin(), l.CEnd(); !it.Equal(end); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := l.CRBegin(), l.CREnd(); !it.Equal(end); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Values returns the elements front to back as a new slice.
func (l *List[T]) Values() []T {
	return slices.Collect(l.All())
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Size() != b.Size() {
		return false
	}

	ia, ib := a.CBegin(), b.CBegin()
	for ; !ia.Equal(a.CEnd()); ia, ib = ia.Next(), ib.Next() {
		if !eq(ia.Value(), ib.Value()) {
			return false
		}
	}

	return true
}
