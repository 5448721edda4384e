// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: List, arena node and handle declarations, contract-violation messages.

package list

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlist/alloc"
)

// handle addresses an arena slot; slot i lives at handle i+1 so that the zero
// handle means "no node".
type handle int32

const none handle = 0

// node is one arena slot: an element plus its two ring links and the block
// that pays for it. The sentinel is a node whose value is never constructed.
type node[T any] struct {
	value T
	prev  handle
	next  handle
	block alloc.Block
}

// List is a doubly-linked sequence of T backed by an alloc.Allocator.
//
// The zero value is an empty list using alloc.Heap.
type List[T any] struct {
	allocator alloc.Allocator
	log       *zap.Logger

	nodes    []node[T] // arena
	free     handle    // free-list head, chained through node.next
	sentinel handle    // none iff size == 0
	size     int
}

// Messages of contract-violation panics.
const (
	panicEraseEnd         = "list: erase at end position"
	panicPopEmpty         = "list: pop from empty list"
	panicForeignIterator  = "list: iterator does not belong to this list"
	panicNilAllocator     = "list: nil allocator"
	panicNegativeCount    = "list: negative element count"
	panicDetachedIterator = "list: dereference of detached iterator"
)

func (l *List[T]) slot(h handle) *node[T] {
	return &l.nodes[h-1]
}

func (l *List[T]) nodeSize() uintptr {
	var n node[T]
	return unsafe.Sizeof(n)
}

func (l *List[T]) logger() *zap.Logger {
	if l.log == nil {
		return zap.NewNop()
	}

	return l.log
}
