package orderedmap

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int {
	return cmp.Compare(a, b)
}

func TestTree_PutGetContains(t *testing.T) {
	tree := New[int, string](intCmp)
	assert.True(t, tree.Empty())

	tree.Put(3, "three")
	tree.Put(1, "one")
	tree.Put(2, "two")

	assert.Equal(t, 3, tree.Len())
	assert.False(t, tree.Empty())

	v, found := tree.Get(2)
	require.True(t, found)
	assert.Equal(t, "two", v)

	assert.True(t, tree.Contains(1))
	assert.False(t, tree.Contains(99))
}

func TestTree_TryAdd_IdempotentOnPresence(t *testing.T) {
	tree := New[int, string](intCmp)

	node, inserted := tree.TryAdd(1, "first")
	assert.True(t, inserted)
	assert.Equal(t, "first", node.Value())

	node2, inserted2 := tree.TryAdd(1, "second")
	assert.False(t, inserted2)
	assert.Equal(t, "first", node2.Value(), "existing value is untouched")
	assert.Equal(t, 1, tree.Len())
}

func TestTree_KeysAscending(t *testing.T) {
	tree := New[int, struct{}](intCmp)
	for _, k := range []int{5, 1, 4, 2, 3} {
		tree.Put(k, struct{}{})
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.Keys())
}

func TestTree_MinMax(t *testing.T) {
	tree := New[int, struct{}](intCmp)
	for _, k := range []int{5, 1, 4, 2, 3} {
		tree.Put(k, struct{}{})
	}
	assert.Equal(t, 1, tree.Min().Key())
	assert.Equal(t, 5, tree.Max().Key())
}

func TestTree_FloorCeiling(t *testing.T) {
	tree := New[int, struct{}](intCmp)
	for _, k := range []int{10, 20, 30} {
		tree.Put(k, struct{}{})
	}

	assert.Equal(t, 20, tree.Floor(25).Key())
	assert.Equal(t, 20, tree.Floor(20).Key())
	assert.Nil(t, tree.Floor(5))

	assert.Equal(t, 20, tree.Ceiling(15).Key())
	assert.Equal(t, 20, tree.Ceiling(20).Key())
	assert.Nil(t, tree.Ceiling(35))
}

func TestNode_NextPrev(t *testing.T) {
	tree := New[int, struct{}](intCmp)
	for _, k := range []int{10, 20, 30} {
		tree.Put(k, struct{}{})
	}

	mid := tree.NodeAt(20)
	require.NotNil(t, mid)

	next := mid.Next()
	require.NotNil(t, next)
	assert.Equal(t, 30, next.Key())
	assert.Nil(t, next.Next())

	prev := mid.Prev()
	require.NotNil(t, prev)
	assert.Equal(t, 10, prev.Key())
	assert.Nil(t, prev.Prev())
}

func TestTree_Remove(t *testing.T) {
	tree := New[int, struct{}](intCmp)
	tree.Put(1, struct{}{})
	tree.Put(2, struct{}{})

	tree.Remove(1)
	assert.False(t, tree.Contains(1))
	assert.Equal(t, 1, tree.Len())
}

func TestNode_SetValue(t *testing.T) {
	tree := New[int, string](intCmp)
	node, _ := tree.TryAdd(1, "old")
	node.SetValue("new")

	v, _ := tree.Get(1)
	assert.Equal(t, "new", v)
}

// TestTree_StatefulComparator grounds the requirement that the tree never
// caches a comparison: every insertion evaluates the comparator against
// its current external state, not whatever that state was the last time a
// comparison happened to run.
func TestTree_StatefulComparator(t *testing.T) {
	position := map[int]float64{1: 10, 2: 20, 3: 30}
	cmp := func(a, b int) int {
		switch {
		case position[a] < position[b]:
			return -1
		case position[a] > position[b]:
			return 1
		default:
			return 0
		}
	}

	tree := New[int, struct{}](cmp)
	tree.Put(1, struct{}{})
	tree.Put(2, struct{}{})
	tree.Put(3, struct{}{})
	assert.Equal(t, []int{1, 2, 3}, tree.Keys())

	// A key inserted after external state changes is placed according to
	// the new state, not the state in effect for the keys already resident.
	position[4] = 15
	tree.Put(4, struct{}{})
	assert.Equal(t, []int{1, 4, 2, 3}, tree.Keys())
}
