// Package pqueue_test provides runnable examples for the indexed queue.
package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/dungen/pqueue"
)

// ExampleQueue_UpdatePriority demonstrates decrease-key: item A enters with
// priority 5 but is promoted to 1, so it dequeues first.
func ExampleQueue_UpdatePriority() {
	q := pqueue.New[string]()
	// 1) Enqueue three items with distinct priorities.
	_ = q.Enqueue("A", 5)
	_ = q.Enqueue("B", 3)
	_ = q.Enqueue("C", 8)

	// 2) Promote A ahead of B.
	_ = q.UpdatePriority("A", 1)

	// 3) Drain the queue; A now leads.
	for q.Len() > 0 {
		item, _ := q.Dequeue()
		fmt.Print(item, " ")
	}
	// Output: A B C
}
