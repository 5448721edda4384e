package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/alloc"
	"github.com/katalvlaran/lvlist/list"
)

func TestNewIsLazy(t *testing.T) {
	ledger := alloc.NewLedger()
	l := list.New[int](list.WithAllocator(alloc.NewCounting(ledger)))

	require.True(t, l.Empty())
	require.Equal(t, alloc.Stats{}, ledger.Snapshot(), "an empty list must not touch its allocator")
}

func TestNewSized(t *testing.T) {
	const size = 10
	ledger := alloc.NewLedger()

	l, err := list.NewSized[int](size, list.WithAllocator(alloc.NewCounting(ledger)))
	require.NoError(t, err)
	require.Equal(t, size, l.Size())
	require.Equal(t, make([]int, size), l.Values())

	st := ledger.Snapshot()
	require.NotZero(t, st.AllocatedBytes)
	require.EqualValues(t, size, st.Constructed)
	require.Zero(t, st.Destroyed)

	l.Clear()
	st = ledger.Snapshot()
	require.EqualValues(t, size, st.Destroyed)
	require.True(t, st.Balanced(), "storage leaked: %+v", st)
}

func TestNewSizedNegative(t *testing.T) {
	require.PanicsWithValue(t, "list: negative element count", func() {
		_, _ = list.NewSized[int](-1)
	})
}

func TestNewSizedZero(t *testing.T) {
	ledger := alloc.NewLedger()
	l, err := list.NewSized[int](0, list.WithAllocator(alloc.NewCounting(ledger)))
	require.NoError(t, err)
	require.True(t, l.Empty())
	require.Equal(t, alloc.Stats{}, ledger.Snapshot())
}

func TestNewFilled(t *testing.T) {
	const size = 10
	ledger := alloc.NewLedger()

	l, err := list.NewFilled(size, 1, list.WithAllocator(alloc.NewCounting(ledger)))
	require.NoError(t, err)
	require.Equal(t, size, l.Size())
	for v := range l.All() {
		require.Equal(t, 1, v)
	}
	require.EqualValues(t, size, ledger.Snapshot().Constructed)
}

func TestNewFrom(t *testing.T) {
	ledger := alloc.NewLedger()

	l, err := list.NewFrom([]int{1, 2, 3, 4, 5}, list.WithAllocator(alloc.NewCounting(ledger)))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, l.Values())
	require.EqualValues(t, 5, ledger.Snapshot().Constructed)
}

func TestCloneCopiesEachElementOnce(t *testing.T) {
	const size = 5
	ledger := alloc.NewLedger()

	src := make([]Counted, size)
	for i := range src {
		src[i] = newCounted(i + 1)
	}
	l1, err := list.NewFrom(src, list.WithAllocator(alloc.NewCounting(ledger)))
	require.NoError(t, err)

	l2, err := l1.Clone()
	require.NoError(t, err)
	require.Equal(t, size, l2.Size())
	require.EqualValues(t, 2*size, ledger.Snapshot().Constructed)
	require.True(t, list.Equal(l1, l2))

	for v := range l1.All() {
		require.Equal(t, 2, *v.copies)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l1, err := list.NewFrom([]int{1, 2, 3})
	require.NoError(t, err)
	l2, err := l1.Clone()
	require.NoError(t, err)

	l2.Begin().Set(100)
	l2.PopBack()
	require.Equal(t, []int{1, 2, 3}, l1.Values())
	require.Equal(t, []int{100, 2}, l2.Values())
}

func TestCloneEmpty(t *testing.T) {
	l := list.New[int]()
	c, err := l.Clone()
	require.NoError(t, err)
	require.True(t, c.Empty())
}

func TestAssign(t *testing.T) {
	const size = 5
	src := make([]Counted, size)
	for i := range src {
		src[i] = newCounted(i + 1)
	}
	l1, err := list.NewFrom(src)
	require.NoError(t, err)

	l2 := list.New[Counted]()
	require.NoError(t, l2.Assign(l1))
	require.Equal(t, size, l2.Size())
	require.True(t, list.Equal(l1, l2))
	for v := range l1.All() {
		require.Equal(t, 2, *v.copies)
	}
}

func TestAssignReplacesContent(t *testing.T) {
	l1, err := list.NewFrom([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	l2, err := list.NewFrom([]int{7, 8})
	require.NoError(t, err)

	require.NoError(t, l1.Assign(l2))
	require.Equal(t, []int{7, 8}, l1.Values())

	require.NoError(t, l1.Assign(list.New[int]()))
	require.True(t, l1.Empty())
}

func TestAssignSelf(t *testing.T) {
	resetAccountant()
	l, err := list.NewSized[Accountant](3)
	require.NoError(t, err)

	require.NoError(t, l.Assign(l))
	require.Equal(t, 3, l.Size())
	require.Equal(t, 3, ctorCalls)
	require.Zero(t, dtorCalls)
}

func TestNewSizedUsesDefaulter(t *testing.T) {
	l, err := list.NewSized[Counted](3)
	require.NoError(t, err)

	for v := range l.All() {
		require.Equal(t, 1, *v.defaults)
		require.Zero(t, *v.copies)
	}
}

func TestAssignIsIndependent(t *testing.T) {
	a, err := list.NewFrom([]int{1, 2, 3})
	require.NoError(t, err)
	b, err := list.NewFrom([]int{9})
	require.NoError(t, err)

	require.NoError(t, b.Assign(a))
	require.True(t, list.Equal(a, b))

	a.Begin().Set(100)
	a.PopBack()
	require.NoError(t, a.PushFront(0))
	require.Equal(t, []int{0, 100, 2}, a.Values())
	require.Equal(t, []int{1, 2, 3}, b.Values())
}
