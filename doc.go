// Package lvlist is a doubly-linked list for Go whose storage is paid for by a
// pluggable allocator strategy, with strong rollback guarantees when element
// construction or allocation fails.
//
// 🚀 What is lvlist?
//
//	A small generic container library built around two packages:
//		• list/   List[T] on a sentinel ring, with const and reverse iterators
//		• alloc/  Allocator strategies: Heap, Counting, Tagged, Bounded, Metered, Logged
//
// ✨ Why choose lvlist?
//
//   - Failable construction: element constructors and allocators return errors,
//     and every bulk operation undoes exactly what it built before returning one
//   - Allocator policies: copies may get a fresh allocator, assignments may adopt
//     the source's allocator, just like allocator-aware containers elsewhere
//   - Observable: storage traffic can be counted, logged with zap or exported
//     to Prometheus without touching the list
//
// Quick example:
//
//	ledger := alloc.NewLedger()
//	l, err := list.NewFrom([]int{1, 2, 3}, list.WithAllocator(alloc.NewCounting(ledger)))
//	if err != nil {
//		return err
//	}
//	l.Reverse()              // 3 2 1
//	l.Clear()
//	ledger.Snapshot().Balanced() // true
//
// The examples/ directory holds a runnable program wiring the Metered and
// Logged allocators together.
//
//	go get github.com/katalvlaran/lvlist
package lvlist
