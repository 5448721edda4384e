// SPDX-License-Identifier: MIT
//
// File: reverse.go
// Role: reverse iterator views wrapping the forward iterators one step ahead.

package list

// ReverseIterator walks the list from back to front. It wraps a base Iterator
// one past the element it refers to, so RBegin wraps End and REnd wraps Begin.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Base returns the underlying forward position.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

// Value returns a copy of the referenced element.
func (r ReverseIterator[T]) Value() T { return r.base.Prev().Value() }

// Ptr returns a pointer to the referenced element.
func (r ReverseIterator[T]) Ptr() *T { return r.base.Prev().Ptr() }

// Next moves toward the front.
func (r ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{base: r.base.Prev()} }

// Prev moves toward the back.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{base: r.base.Next()} }

// Equal reports whether r and o wrap the same position.
func (r ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return r.base.Equal(o.base) }

// ConstReverseIterator is the read-only ReverseIterator.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

// Base returns the underlying forward position.
func (r ConstReverseIterator[T]) Base() ConstIterator[T] { return r.base }

// Value returns a copy of the referenced element.
func (r ConstReverseIterator[T]) Value() T { return r.base.Prev().Value() }

// Next moves toward the front.
func (r ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Prev()}
}

// Prev moves toward the back.
func (r ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: r.base.Next()}
}

// Equal reports whether r and o wrap the same position.
func (r ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool { return r.base.Equal(o.base) }

// RBegin returns the reverse position of the last element.
func (l *List[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{base: l.End()} }

// REnd returns the reverse past-the-end position.
func (l *List[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{base: l.Begin()} }

// CRBegin is the read-only RBegin.
func (l *List[T]) CRBegin() ConstReverseIterator[T] { return ConstReverseIterator[T]{base: l.CEnd()} }

// CREnd is the read-only REnd.
func (l *List[T]) CREnd() ConstReverseIterator[T] { return ConstReverseIterator[T]{base: l.CBegin()} }
