package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapExtractsInRankOrder(t *testing.T) {
	for _, d := range []int{2, 4} {
		h := NewdAryHeap[int](d)
		rd := rand.New(rand.NewSource(7))
		ranks := make([]float64, 200)
		for i := range ranks {
			ranks[i] = rd.Float64() * 1000
			h.Insert(NewPriorityQueueNode(ranks[i], i))
		}
		sort.Float64s(ranks)

		for _, want := range ranks {
			node, err := h.ExtractMin()
			require.NoError(t, err)
			assert.Equal(t, want, node.GetRank())
		}
		assert.True(t, h.IsEmpty())
	}
}

func TestMinHeapTiesPopInInsertionOrder(t *testing.T) {
	h := NewFourAryHeap[string]()
	for _, item := range []string{"c", "a", "d", "b", "e"} {
		h.Insert(NewPriorityQueueNode(10.0, item))
	}
	h.Insert(NewPriorityQueueNode(5.0, "first"))

	got := make([]string, 0, 6)
	for !h.IsEmpty() {
		node, err := h.ExtractMin()
		require.NoError(t, err)
		got = append(got, node.GetItem())
	}
	assert.Equal(t, []string{"first", "c", "a", "d", "b", "e"}, got)
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[int]()
	nodes := make([]*PriorityQueueNode[int], 5)
	for i := range nodes {
		nodes[i] = NewPriorityQueueNode(float64(10+i), i)
		h.Insert(nodes[i])
	}

	require.NoError(t, h.DecreaseKey(nodes[4], 1))
	assert.Equal(t, 1.0, h.GetMinrank())

	minNode, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, 4, minNode.GetItem())

	assert.Error(t, h.DecreaseKey(nodes[0], 100))

	_, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Error(t, h.DecreaseKey(nodes[4], 0))
}

func TestMinHeapEmpty(t *testing.T) {
	h := NewBinaryHeap[int]()
	_, err := h.ExtractMin()
	assert.Error(t, err)
	_, err = h.GetMin()
	assert.Error(t, err)
	assert.Greater(t, h.GetMinrank(), 1e15)

	h.Insert(NewPriorityQueueNode(1.0, 1))
	h.Clear()
	assert.Equal(t, 0, h.Size())
}
