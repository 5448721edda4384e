// SPDX-License-Identifier: MIT
//
// File: primitives.go
// Role: node-level primitives. Every public mutator funnels through
// insertBefore (allocate, construct, link) and unlinkAndDestroy.

package list

import "github.com/katalvlaran/lvlist/alloc"

// Allocator returns the storage strategy of l.
func (l *List[T]) Allocator() alloc.Allocator {
	if l.allocator == nil {
		return alloc.Heap{}
	}

	return l.allocator
}

// acquire takes a zeroed arena slot for blk, reusing the free-list first.
func (l *List[T]) acquire(blk alloc.Block) handle {
	if l.free != none {
		h := l.free
		s := l.slot(h)
		l.free = s.next
		*s = node[T]{block: blk}
		return h
	}

	l.nodes = append(l.nodes, node[T]{block: blk})
	return handle(len(l.nodes))
}

// release zeroes the slot and pushes it onto the free-list.
func (l *List[T]) release(h handle) {
	*l.slot(h) = node[T]{next: l.free}
	l.free = h
}

// allocateSentinel obtains storage for the sentinel and self-links it.
func (l *List[T]) allocateSentinel() error {
	blk, err := l.Allocator().Allocate(1, l.nodeSize())
	if err != nil {
		return err
	}

	h := l.acquire(blk)
	s := l.slot(h)
	s.prev, s.next = h, h
	l.sentinel = h

	return nil
}

// releaseSentinel returns the sentinel's storage. It is only called once every
// data node is gone, so the whole arena is free and is reset.
func (l *List[T]) releaseSentinel() {
	blk := l.slot(l.sentinel).block
	l.sentinel = none
	l.nodes = l.nodes[:0]
	l.free = none
	l.Allocator().Deallocate(blk)
}

// constructNode allocates a node and builds its element in place. On a
// construction failure the block is released before the error is returned.
func (l *List[T]) constructNode(build func(*T) error) (handle, error) {
	a := l.Allocator()

	blk, err := a.Allocate(1, l.nodeSize())
	if err != nil {
		return none, err
	}

	h := l.acquire(blk)
	if err = a.Construct(blk, func() error { return build(&l.slot(h).value) }); err != nil {
		l.release(h)
		a.Deallocate(blk)
		return none, err
	}

	return h, nil
}

// link splices the constructed node h immediately before `before`.
func (l *List[T]) link(h, before handle) {
	prev := l.slot(before).prev

	n := l.slot(h)
	n.prev, n.next = prev, before
	l.slot(prev).next = h
	l.slot(before).prev = h

	l.size++
}

// insertBefore constructs a node with build and links it before pos. A none
// position denotes End(). When the list is empty the sentinel is allocated
// first, and released again if construction fails.
func (l *List[T]) insertBefore(pos handle, build func(*T) error) (handle, error) {
	fresh := false
	if l.sentinel == none {
		if err := l.allocateSentinel(); err != nil {
			return none, err
		}
		fresh = true
	}
	if pos == none {
		pos = l.sentinel
	}

	h, err := l.constructNode(build)
	if err != nil {
		if fresh {
			l.releaseSentinel()
		}
		return none, err
	}
	l.link(h, pos)

	return h, nil
}

// unlinkAndDestroy detaches h from its neighbours, destroys its element and
// releases its storage; the sentinel goes with the last element.
func (l *List[T]) unlinkAndDestroy(h handle) {
	n := l.slot(h)
	l.slot(n.prev).next = n.next
	l.slot(n.next).prev = n.prev

	a := l.Allocator()
	blk := n.block
	a.Destroy(blk, func() { destroyValue(&l.slot(h).value) })
	l.release(h)
	a.Deallocate(blk)

	l.size--
	if l.size == 0 {
		l.releaseSentinel()
	}
}
