package pqueue

// entry is a pooled heap node. Its index field tracks its current slot in
// Queue.items so Handle lookups never need a linear scan.
type entry[T any] struct {
	value   float64
	payload T
	index   int
}

// Handle identifies a live entry in a Queue. It is only valid until the
// entry it names is popped or removed.
type Handle[T any] struct {
	e *entry[T]
}

// Queue is a binary min-heap keyed on a float64 priority, carrying an
// arbitrary payload of type T per entry. The zero value is ready to use.
type Queue[T any] struct {
	items []*entry[T]
}

// New returns an empty queue, optionally pre-sizing its backing storage
// (mirrors HEAP_new(tot_reserve)).
func New[T any](capacityHint int) *Queue[T] {
	return &Queue[T]{items: make([]*entry[T], 0, capacityHint)}
}

// Len returns the number of entries currently queued.
func (q *Queue[T]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

// PeekValue returns the minimum key currently in the queue. Panics if empty.
func (q *Queue[T]) PeekValue() float64 { return q.items[0].value }

// Insert adds payload with the given priority and returns a handle that
// remains valid until the entry is popped or removed.
func (q *Queue[T]) Insert(value float64, payload T) Handle[T] {
	e := &entry[T]{value: value, payload: payload, index: len(q.items)}
	q.items = append(q.items, e)
	q.siftUp(e.index)
	return Handle[T]{e: e}
}

// PopMin removes and returns the payload with the smallest key. Panics if
// the queue is empty.
func (q *Queue[T]) PopMin() T {
	root := q.items[0]
	q.removeAt(0)
	return root.payload
}

// Remove pulls an arbitrary in-flight entry out of the queue and returns
// its payload. The handle must not be reused afterwards.
func (q *Queue[T]) Remove(h Handle[T]) T {
	payload := h.e.payload
	q.removeAt(h.e.index)
	return payload
}

// removeAt bubbles the node at i to the root via unconditional parent
// swaps, then performs a standard heap-pop from the root, rather than the
// more common "swap with last, sift in either direction" decrease/
// increase-key fix used by e.g. container/heap.Fix.
func (q *Queue[T]) removeAt(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		q.swap(parent, i)
		i = parent
	}

	last := len(q.items) - 1
	q.swap(0, last)
	q.items = q.items[:last]
	if last > 0 {
		q.siftDown(0)
	}
}

func (q *Queue[T]) less(i, j int) bool {
	return q.items[i].value < q.items[j].value
}

func (q *Queue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(parent, i)
		i = parent
	}
}

func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && q.less(right, left) {
			smallest = right
		}
		if !q.less(smallest, i) {
			break
		}
		q.swap(i, smallest)
		i = smallest
	}
}

// Drain calls fn once per remaining entry, in unspecified order, and empties
// the queue. It is the equivalent of HEAP_free(heap, ptrfreefp): the C
// source needs it to release payload memory; this package keeps the hook
// purely so callers have one place to assert no work is silently dropped.
func (q *Queue[T]) Drain(fn func(T)) {
	for _, e := range q.items {
		fn(e.payload)
	}
	q.items = q.items[:0]
}
