// Package pqueue defines the sentinel errors of the indexed priority queue.
package pqueue

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue indicates a Dequeue on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")
	// ErrDuplicateItem indicates an Enqueue of an item already enqueued.
	ErrDuplicateItem = errors.New("pqueue: item already enqueued")
	// ErrItemNotFound indicates an UpdatePriority of an item not enqueued.
	ErrItemNotFound = errors.New("pqueue: item not enqueued")
)
