package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_InsertPopMinOrdered(t *testing.T) {
	q := New[string](0)
	q.Insert(5, "five")
	q.Insert(1, "one")
	q.Insert(3, "three")
	q.Insert(2, "two")
	q.Insert(4, "four")

	require.Equal(t, 5, q.Len())
	var got []string
	for !q.IsEmpty() {
		got = append(got, q.PopMin())
	}
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, got)
}

func TestQueue_PeekValueDoesNotRemove(t *testing.T) {
	q := New[int](0)
	q.Insert(10, 100)
	q.Insert(2, 200)
	assert.Equal(t, 2.0, q.PeekValue())
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 200, q.PopMin())
}

func TestQueue_RemoveArbitraryHandle(t *testing.T) {
	q := New[int](0)
	ha := q.Insert(1, 1)
	hb := q.Insert(2, 2)
	hc := q.Insert(3, 3)

	assert.Equal(t, 2, q.Remove(hb))
	assert.Equal(t, 2, q.Len())

	var rest []int
	rest = append(rest, q.Remove(ha))
	rest = append(rest, q.Remove(hc))
	assert.ElementsMatch(t, []int{1, 3}, rest)
	assert.True(t, q.IsEmpty())
}

func TestQueue_RandomizedMatchesSortedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	q := New[int](0)
	values := make([]float64, 200)
	for i := range values {
		v := rng.Float64() * 1000
		values[i] = v
		q.Insert(v, i)
	}

	last := -1.0
	for !q.IsEmpty() {
		idx := q.PopMin()
		v := values[idx]
		require.GreaterOrEqual(t, v, last)
		last = v
	}
}

func TestQueue_RemoveThenReinsertKeepsHeapValid(t *testing.T) {
	q := New[int](0)
	handles := make([]Handle[int], 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, q.Insert(float64(10-i), i))
	}
	// remove a few from the middle
	q.Remove(handles[3])
	q.Remove(handles[7])

	q.Insert(-1, 999)

	assert.Equal(t, -1.0, q.PeekValue())
	assert.Equal(t, 999, q.PopMin())

	last := -1.0
	for !q.IsEmpty() {
		v := q.PeekValue()
		require.GreaterOrEqual(t, v, last)
		last = v
		q.PopMin()
	}
}

func TestQueue_Drain(t *testing.T) {
	q := New[int](0)
	q.Insert(1, 1)
	q.Insert(2, 2)
	q.Insert(3, 3)

	var drained []int
	q.Drain(func(v int) { drained = append(drained, v) })
	assert.ElementsMatch(t, []int{1, 2, 3}, drained)
	assert.True(t, q.IsEmpty())
}
