package kuzco_test

import (
	"testing"

	"github.com/kuzco-go/kuzco"
	"github.com/stretchr/testify/require"
)

func TestVectorCloneIsCOW(t *testing.T) {
	v := kuzco.NewVector([]int{1, 2, 3})
	c := v.Clone()

	v.PushBack(4)

	require.Equal(t, 4, v.Len())
	require.Equal(t, 3, c.Len(), "pushing onto v must not affect a clone taken beforehand")
	require.Equal(t, 1, c.At(0))
}

func TestVectorPushPopRoundTrip(t *testing.T) {
	v := kuzco.NewVector([]int{})
	v.PushBack(1)
	v.PushBack(2)
	require.Equal(t, 2, v.Len())
	require.Equal(t, 2, v.Back())

	v.PopBack()
	require.Equal(t, 1, v.Len())
	require.Equal(t, 1, v.Front())
}

func TestVectorPopBackEmptyPanics(t *testing.T) {
	v := kuzco.NewVector([]int{})
	require.Panics(t, func() { v.PopBack() })
}

func TestVectorAtOutOfRangePanics(t *testing.T) {
	v := kuzco.NewVector([]int{1})
	require.Panics(t, func() { v.At(5) })
}

func TestVectorReserveNoOpWhenCapacitySuffices(t *testing.T) {
	v := kuzco.NewVector(make([]int, 0, 10))
	before := v.Detach()

	v.Reserve(5)

	require.True(t, before.Equal(v.Detach()), "Reserve must preserve identity when capacity already suffices")
}

func TestVectorInsertAndErase(t *testing.T) {
	v := kuzco.NewVector([]int{1, 2, 5})
	v.Insert(2, 3)
	v.Insert(3, 4)

	got := []int{}
	v.Items(func(_ int, val int) bool {
		got = append(got, val)
		return true
	})
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)

	v.Erase(1, 3)
	got = nil
	v.Items(func(_ int, val int) bool {
		got = append(got, val)
		return true
	})
	require.Equal(t, []int{1, 4, 5}, got)
}

func TestVectorResizeGrowsWithZeroValue(t *testing.T) {
	v := kuzco.NewVector([]int{1, 2})
	v.Resize(4)
	require.Equal(t, 4, v.Len())
	require.Equal(t, 0, v.At(3))

	v.Resize(1)
	require.Equal(t, 1, v.Len())
	require.Equal(t, 1, v.At(0))
}

func TestVectorModifyAtClonesWhenShared(t *testing.T) {
	v := kuzco.NewVector([]int{1, 2, 3})
	c := v.Clone()

	*v.ModifyAt(0) = 100

	require.Equal(t, 100, v.At(0))
	require.Equal(t, 1, c.At(0), "modifying v's storage must not affect a shared clone")
}

func TestVectorModifyAtDoesNotAliasUntouchedElements(t *testing.T) {
	src := kuzco.NewVector([]int{1, 2, 3})
	c := src.Clone()

	*c.ModifyAt(0) = 999

	require.Equal(t, 1, src.At(0), "writing through a clone must not alias src's backing array")
	require.Equal(t, 2, src.At(1))
	require.Equal(t, 3, src.At(2))
}

func TestVectorOfNodeRejected(t *testing.T) {
	require.Panics(t, func() {
		kuzco.NewVector([]kuzco.Node[int]{kuzco.NewNode(1)})
	})
}

func TestVectorAssign(t *testing.T) {
	v := kuzco.NewVector([]int{1, 2, 3})
	v.Assign([]int{9, 9})
	require.Equal(t, 2, v.Len())
	require.Equal(t, 9, v.At(1))
}
