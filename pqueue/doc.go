// Package pqueue implements an indexed binary min-heap with true
// decrease-key, the queue discipline A* relaxation depends on.
//
// What:
//
//   - Queue[T] orders comparable items by a float64 priority.
//   - Enqueue, Dequeue, Contains and UpdatePriority all run in amortized
//     O(log n), backed by an item→index map kept consistent across every
//     heap swap.
//   - Reset empties the queue while keeping its backing storage, so one
//     queue can be reused across many searches.
//
// Why:
//
//   - container/heap alone offers no handle to an arbitrary element, so a
//     plain heap cannot lower the priority of an item already enqueued.
//     The index map turns heap.Fix into a real decrease-key.
//   - Search loops treat "operate on an absent item" as a programming error;
//     the sentinel errors below let callers abort instead of corrupting
//     state.
//
// Errors:
//
//   - ErrEmptyQueue: Dequeue on an empty queue.
//   - ErrDuplicateItem: Enqueue of an item already present.
//   - ErrItemNotFound: UpdatePriority of an item not present.
package pqueue
