package alloc_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/alloc"
)

// sliceStrategy is a valid strategy whose dynamic type cannot be compared
// with ==.
type sliceStrategy struct {
	tags []string
}

func (s sliceStrategy) Allocate(n int, size uintptr) (alloc.Block, error) {
	return alloc.Heap{}.Allocate(n, size)
}
func (s sliceStrategy) Deallocate(alloc.Block)                           {}
func (s sliceStrategy) Construct(_ alloc.Block, ctor func() error) error { return ctor() }
func (s sliceStrategy) Destroy(_ alloc.Block, dtor func())               { dtor() }

// selectingSliceStrategy hands every copy a new incomparable instance.
type selectingSliceStrategy struct {
	sliceStrategy
}

func (s selectingSliceStrategy) SelectOnCopy() alloc.Allocator {
	return selectingSliceStrategy{sliceStrategy{tags: append([]string{"copy"}, s.tags...)}}
}

func TestEqual_IncomparableStrategies(t *testing.T) {
	a := sliceStrategy{tags: []string{"a"}}

	require.NotPanics(t, func() {
		require.False(t, alloc.Equal(a, a))
		require.False(t, alloc.Equal(a, sliceStrategy{}))
		require.False(t, alloc.Equal(alloc.Heap{}, a))
		require.False(t, alloc.Equal(a, alloc.NewCounting(nil)))
	})
}

func TestDecorators_IncomparableBase(t *testing.T) {
	decorators := []struct {
		name string
		wrap func(t *testing.T, base alloc.Allocator) alloc.Allocator
	}{
		{"logged", func(_ *testing.T, base alloc.Allocator) alloc.Allocator {
			return alloc.NewLogged(base, zapNop())
		}},
		{"bounded", func(_ *testing.T, base alloc.Allocator) alloc.Allocator {
			return alloc.NewBounded(base, 8)
		}},
		{"metered", func(t *testing.T, base alloc.Allocator) alloc.Allocator {
			m, err := alloc.NewMetered(base, "lvlist", prometheus.NewRegistry())
			require.NoError(t, err)
			return m
		}},
	}

	for _, d := range decorators {
		t.Run(d.name+"/shared", func(t *testing.T) {
			a := d.wrap(t, sliceStrategy{tags: []string{"x"}})
			var cp alloc.Allocator
			require.NotPanics(t, func() { cp = alloc.SelectOnCopy(a) })
			require.Same(t, a, cp)
		})

		t.Run(d.name+"/fresh", func(t *testing.T) {
			a := d.wrap(t, selectingSliceStrategy{sliceStrategy{tags: []string{"x"}}})
			var cp alloc.Allocator
			require.NotPanics(t, func() { cp = alloc.SelectOnCopy(a) })
			require.NotSame(t, a, cp)
			require.IsType(t, a, cp)
			require.IsType(t, selectingSliceStrategy{}, alloc.Base(cp))
		})
	}
}
