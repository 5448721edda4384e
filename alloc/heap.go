// SPDX-License-Identifier: MIT

package alloc

import "go.uber.org/atomic"

// blockSeq hands out block IDs for every Heap in the process.
var blockSeq = atomic.NewUint64(0)

// Heap is the default strategy: storage comes from the Go heap through the
// container's own arena, so Allocate only validates and accounts the request.
//
// Heap is stateless; all Heap values are equal and it never propagates.
type Heap struct{}

// Allocate grants a block; it fails only on an invalid request.
func (Heap) Allocate(n int, size uintptr) (Block, error) {
	if err := validateRequest(n, size); err != nil {
		return Block{}, err
	}

	return Block{ID: blockSeq.Inc(), Count: n, Size: size}, nil
}

// Deallocate is a no-op: the Go runtime reclaims the memory.
func (Heap) Deallocate(Block) {}

// Construct calls ctor.
func (Heap) Construct(_ Block, ctor func() error) error { return ctor() }

// Destroy calls dtor.
func (Heap) Destroy(_ Block, dtor func()) { dtor() }

// Equal to satisfy Equaler.
func (Heap) Equal(other Allocator) bool {
	_, ok := Base(other).(Heap)
	return ok
}
