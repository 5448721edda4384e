// SPDX-License-Identifier: MIT
//
// File: methods_modify.go
// Role: single-element insertion and removal.
// Complexity: O(1) per call; Clear is O(n).

package list

// PushBack appends a copy of v.
func (l *List[T]) PushBack(v T) error {
	_, err := l.insertBefore(l.sentinel, copyOf(&v))
	return err
}

// PushFront prepends a copy of v.
func (l *List[T]) PushFront(v T) error {
	_, err := l.insertBefore(l.begin().at, copyOf(&v))
	return err
}

// EmplaceBack appends a default-constructed element.
func (l *List[T]) EmplaceBack() error {
	_, err := l.insertBefore(l.sentinel, defaultValue[T])
	return err
}

// EmplaceFront prepends a default-constructed element.
func (l *List[T]) EmplaceFront() error {
	_, err := l.insertBefore(l.begin().at, defaultValue[T])
	return err
}

// Insert places a copy of v immediately before pos and returns the position of
// the new element. pos must be a position of l, End() included.
//
// On failure l is unchanged and the returned iterator is End().
func (l *List[T]) Insert(pos Position[T], v T) (Iterator[T], error) {
	return l.insert(pos, copyOf(&v))
}

// Emplace places a default-constructed element immediately before pos.
func (l *List[T]) Emplace(pos Position[T]) (Iterator[T], error) {
	return l.insert(pos, defaultValue[T])
}

func (l *List[T]) insert(pos Position[T], build func(*T) error) (Iterator[T], error) {
	at := l.own(pos)

	h, err := l.insertBefore(at, build)
	if err != nil {
		return l.End(), err
	}

	return Iterator[T]{c: cursor[T]{owner: l, at: h}}, nil
}

// Erase destroys the element at pos and returns the position that followed it.
// pos must be a dereferenceable position of l; erasing End() panics.
func (l *List[T]) Erase(pos Position[T]) Iterator[T] {
	at := l.own(pos)
	if at == none || at == l.sentinel {
		panic(panicEraseEnd)
	}

	next := l.slot(at).next
	l.unlinkAndDestroy(at)
	if l.sentinel == none {
		return l.End()
	}

	return Iterator[T]{c: cursor[T]{owner: l, at: next}}
}

// PopBack destroys the last element. Popping an empty list panics.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		panic(panicPopEmpty)
	}
	l.unlinkAndDestroy(l.slot(l.sentinel).prev)
}

// PopFront destroys the first element. Popping an empty list panics.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		panic(panicPopEmpty)
	}
	l.unlinkAndDestroy(l.slot(l.sentinel).next)
}

// Clear destroys every element front to back, leaving l empty with its
// sentinel released.
func (l *List[T]) Clear() {
	for l.size > 0 {
		l.PopFront()
	}
}

// Reverse reverses the order of the elements in place by relinking nodes.
// No element is copied, constructed or destroyed; iterators keep referring to
// the same elements.
func (l *List[T]) Reverse() {
	if l.size < 2 {
		return
	}

	h := l.sentinel
	for {
		n := l.slot(h)
		n.prev, n.next = n.next, n.prev
		h = n.prev
		if h == l.sentinel {
			return
		}
	}
}
