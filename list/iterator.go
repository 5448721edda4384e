// SPDX-License-Identifier: MIT
//
// File: iterator.go
// Role: bidirectional cursors over the node ring. Iterator grants write access,
// ConstIterator is a read-only view of the same positions; both compare with
// each other through Position.

package list

// cursor is the shared state of every iterator flavour: the list that owns the
// node and the node's handle. It never owns the node.
type cursor[T any] struct {
	owner *List[T]
	at    handle
}

func (c cursor[T]) node() *node[T] {
	if c.at == none {
		panic(panicDetachedIterator)
	}

	return c.owner.slot(c.at)
}

func (c cursor[T]) next() cursor[T] { return cursor[T]{owner: c.owner, at: c.node().next} }
func (c cursor[T]) prev() cursor[T] { return cursor[T]{owner: c.owner, at: c.node().prev} }

// Position is implemented by Iterator and ConstIterator.
type Position[T any] interface {
	position() cursor[T]
}

// Iterator is a mutable cursor. It stays valid until the node it refers to is
// erased; inserting or erasing other nodes does not invalidate it.
type Iterator[T any] struct {
	c cursor[T]
}

func (it Iterator[T]) position() cursor[T] { return it.c }

// Value returns a copy of the referenced element.
func (it Iterator[T]) Value() T { return it.c.node().value }

// Ptr returns a pointer to the referenced element. The pointer is valid until
// the next insertion into the list.
func (it Iterator[T]) Ptr() *T { return &it.c.node().value }

// Set overwrites the referenced element with plain assignment.
func (it Iterator[T]) Set(v T) { it.c.node().value = v }

// Next returns the following position (pre-increment).
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{c: it.c.next()} }

// Prev returns the preceding position (pre-decrement).
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{c: it.c.prev()} }

// Inc advances it and returns its previous position (post-increment).
func (it *Iterator[T]) Inc() Iterator[T] {
	old := *it
	*it = it.Next()
	return old
}

// Dec moves it back and returns its previous position (post-decrement).
func (it *Iterator[T]) Dec() Iterator[T] {
	old := *it
	*it = it.Prev()
	return old
}

// Equal reports whether it and p refer to the same node of the same list.
func (it Iterator[T]) Equal(p Position[T]) bool { return it.c == p.position() }

// Const returns the read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{c: it.c} }

// ConstIterator is a read-only cursor with the same traversal and comparison
// semantics as Iterator.
type ConstIterator[T any] struct {
	c cursor[T]
}

func (it ConstIterator[T]) position() cursor[T] { return it.c }

// Value returns a copy of the referenced element.
func (it ConstIterator[T]) Value() T { return it.c.node().value }

// Next returns the following position.
func (it ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{c: it.c.next()} }

// Prev returns the preceding position.
func (it ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{c: it.c.prev()} }

// Inc advances it and returns its previous position.
func (it *ConstIterator[T]) Inc() ConstIterator[T] {
	old := *it
	*it = it.Next()
	return old
}

// Dec moves it back and returns its previous position.
func (it *ConstIterator[T]) Dec() ConstIterator[T] {
	old := *it
	*it = it.Prev()
	return old
}

// Equal reports whether it and p refer to the same node of the same list.
func (it ConstIterator[T]) Equal(p Position[T]) bool { return it.c == p.position() }

// Begin returns the position of the first element, End() when l is empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{c: l.begin()} }

// End returns the past-the-end position (the sentinel).
func (l *List[T]) End() Iterator[T] { return Iterator[T]{c: l.end()} }

// CBegin is the read-only Begin.
func (l *List[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{c: l.begin()} }

// CEnd is the read-only End.
func (l *List[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{c: l.end()} }

func (l *List[T]) begin() cursor[T] {
	if l.sentinel == none {
		return cursor[T]{owner: l}
	}

	return cursor[T]{owner: l, at: l.slot(l.sentinel).next}
}

func (l *List[T]) end() cursor[T] {
	return cursor[T]{owner: l, at: l.sentinel}
}

// own panics unless p is a position of l and returns its handle.
func (l *List[T]) own(p Position[T]) handle {
	c := p.position()
	if c.owner != l {
		panic(panicForeignIterator)
	}

	return c.at
}
