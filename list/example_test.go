package list_test

import (
	"fmt"

	"github.com/katalvlaran/lvlist/alloc"
	"github.com/katalvlaran/lvlist/list"
)

// ExampleList shows the basic sequence operations.
func ExampleList() {
	l := list.New[int]()
	_ = l.PushBack(3)
	_ = l.PushBack(4)
	_ = l.PushFront(2)
	_ = l.PushBack(5)
	_ = l.PushFront(1)
	l.Reverse()

	fmt.Println(l.Size(), l.Values())
	// Output: 5 [5 4 3 2 1]
}

// ExampleNewSized shows storage accounting through a counting allocator.
func ExampleNewSized() {
	ledger := alloc.NewLedger()
	l, err := list.NewSized[string](4, list.WithAllocator(alloc.NewCounting(ledger)))
	if err != nil {
		fmt.Println(err)
		return
	}
	l.Clear()

	st := ledger.Snapshot()
	fmt.Println(st.Constructed, st.Destroyed, st.Balanced())
	// Output: 4 4 true
}

// ExampleList_Assign shows an assignment that adopts the source allocator.
func ExampleList_Assign() {
	policy := alloc.Policy{PropagateOnAssign: true}
	dst := list.New[int](list.WithAllocator(alloc.NewTagged(policy)))
	src, _ := list.NewFrom([]int{1, 2, 3}, list.WithAllocator(alloc.NewTagged(policy)))

	_ = dst.Assign(src)
	fmt.Println(dst.Values(), alloc.Equal(dst.Allocator(), src.Allocator()))
	// Output: [1 2 3] true
}

// ExampleList_RBegin walks the list backwards.
func ExampleList_RBegin() {
	l, _ := list.NewFrom([]string{"a", "b", "c"})
	for r := l.RBegin(); !r.Equal(l.REnd()); r = r.Next() {
		fmt.Print(r.Value())
	}
	fmt.Println()
	// Output: cba
}
