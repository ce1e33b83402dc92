package pqueue

import (
	"container/heap"
	"fmt"
)

// entry pairs an item with its current priority.
type entry[T comparable] struct {
	item     T
	priority float64
}

// indexedHeap implements heap.Interface on top of an entry slice while
// mirroring every element's slot in pos. Keeping pos current inside Swap is
// what turns heap.Fix into a decrease-key.
type indexedHeap[T comparable] struct {
	entries []entry[T]
	pos     map[T]int
}

func (h *indexedHeap[T]) Len() int { return len(h.entries) }

func (h *indexedHeap[T]) Less(i, j int) bool {
	return h.entries[i].priority < h.entries[j].priority
}

func (h *indexedHeap[T]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.pos[h.entries[i].item] = i
	h.pos[h.entries[j].item] = j
}

func (h *indexedHeap[T]) Push(x any) {
	e := x.(entry[T])
	h.pos[e.item] = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *indexedHeap[T]) Pop() any {
	last := len(h.entries) - 1
	e := h.entries[last]
	h.entries = h.entries[:last]
	delete(h.pos, e.item)

	return e
}

// Queue is an indexed binary min-heap over comparable items. The zero value
// is not usable; construct with New. A Queue is owned by a single search at
// a time and is not safe for concurrent use.
type Queue[T comparable] struct {
	h indexedHeap[T]
}

// New constructs an empty Queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{h: indexedHeap[T]{pos: make(map[T]int)}}
}

// Len returns the number of enqueued items.
// Complexity: O(1).
func (q *Queue[T]) Len() int { return q.h.Len() }

// Contains reports whether item is currently enqueued.
// Complexity: O(1).
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.h.pos[item]

	return ok
}

// Enqueue inserts item with the given priority.
// Returns ErrDuplicateItem if the item is already enqueued.
// Complexity: amortized O(log n).
func (q *Queue[T]) Enqueue(item T, priority float64) error {
	if q.Contains(item) {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	heap.Push(&q.h, entry[T]{item: item, priority: priority})

	return nil
}

// Dequeue removes and returns the minimum-priority item.
// Returns ErrEmptyQueue when nothing is enqueued.
// Complexity: amortized O(log n).
func (q *Queue[T]) Dequeue() (T, error) {
	if q.h.Len() == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, nil
}

// UpdatePriority replaces the priority of an enqueued item and restores heap
// order, raising or lowering the item as needed.
// Returns ErrItemNotFound if the item is not enqueued.
// Complexity: amortized O(log n).
func (q *Queue[T]) UpdatePriority(item T, priority float64) error {
	i, ok := q.h.pos[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	q.h.entries[i].priority = priority
	heap.Fix(&q.h, i)

	return nil
}

// Reset empties the queue while retaining its backing storage, so a reused
// queue does not reallocate between searches.
// Complexity: O(n) to clear the index map.
func (q *Queue[T]) Reset() {
	q.h.entries = q.h.entries[:0]
	clear(q.h.pos)
}
