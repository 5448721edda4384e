// Package list provides List, a generic doubly-linked sequence whose storage
// is delegated to a caller-supplied alloc.Allocator, with strong rollback
// guarantees for every mutating operation.
//
// Topology:
//
//	          ┌──────────────────────────────────────────┐
//	          ▼                                          │
//	   [sentinel] ⇄ [e1] ⇄ [e2] ⇄ … ⇄ [eN] ─────────────────┘
//
//   - Nodes live in a per-list arena and link to each other by integer handles;
//     released slots are recycled through a free-list, so link and unlink stay O(1).
//   - The sentinel closes the ring and denotes End(). It exists iff the list is
//     non-empty: it is allocated (never constructed) on the first insertion and
//     released together with the last element.
//   - Every node, sentinel included, is paid for by one Allocate call; every
//     element is built inside Construct and torn down inside Destroy.
//
// Element lifecycle:
//
// Element types opt into failable construction through optional interfaces on
// their pointer type:
//
//	Defaulter  { InitDefault() error }      // NewSized, EmplaceBack, Emplace
//	Copier[T]  { CopyFrom(src *T) error }   // PushBack, Insert, NewFilled, Clone, Assign
//	Destroyer  { Destroy() }                // every removal
//
// Types that implement none of them use the zero value, plain assignment and
// no teardown.
//
// Failure guarantees:
//
//   - Single insertion: a failed Allocate leaves nothing behind; a failed
//     construction releases its block before the error is returned. A failed
//     first insertion also releases the sentinel it had allocated.
//   - Bulk construction (NewSized, NewFilled, NewFrom, Clone): every element
//     constructed so far is destroyed and released, and the constructor returns
//     a nil list with the original error.
//   - Assign with a propagating allocator: the copy is built in a temporary
//     list on the source's allocator and swapped in only on success; on failure
//     the receiver is untouched.
//   - Assign with a non-propagating allocator: copies are appended, then the
//     original elements are popped from the front; on failure the appended
//     copies are popped from the back, restoring the original content.
//
// Errors from allocators and element constructors are returned unchanged; the
// list adds no wrapping, so errors.Is and errors.As work on the caller's side.
//
// Contract violations (erasing End(), popping an empty list, using an iterator
// of another list) are programmer errors and panic.
//
// Iteration:
//
//	for it, end := l.Begin(), l.End(); !it.Equal(end); it = it.Next() {
//		fmt.Println(it.Value())
//	}
//
//	for v := range l.All() { … }       // front to back
//	for v := range l.Backward() { … }  // back to front
//
// On a non-empty list, stepping past End() lands on Begin(): there is no bounds checking beyond the
// ring itself. On an empty list Begin() equals End().
//
// Concurrency: List is not safe for concurrent use.
package list
