package playlytics

import (
	"container/list"
	"sync"
)

// eventQueue is a thread-safe unbounded FIFO queue of Events.
// Enqueue never blocks and never fails; DrainUpTo is atomic per call, so
// two concurrent drains always receive disjoint slices of the queue.
type eventQueue struct {
	mu   sync.Mutex
	list *list.List
}

func newEventQueue() *eventQueue {
	return &eventQueue{list: list.New()}
}

// Enqueue adds an event to the tail of the queue.
func (q *eventQueue) Enqueue(event Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.list.PushBack(event)
}

// DrainUpTo removes and returns at most n events from the front of the
// queue in FIFO order. It returns fewer (possibly none) if the queue holds
// fewer, and never blocks.
func (q *eventQueue) DrainUpTo(n int) []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n <= 0 || q.list.Len() == 0 {
		return nil
	}
	if n > q.list.Len() {
		n = q.list.Len()
	}

	events := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		front := q.list.Front()
		q.list.Remove(front)
		events = append(events, front.Value.(Event))
	}
	return events
}

// RequeueFront re-inserts a failed batch as a contiguous run at the head of
// the queue, preserving the batch's original order. Events drained again on
// the next flush therefore come out in strict FIFO order, ahead of anything
// enqueued while the batch was in flight.
func (q *eventQueue) RequeueFront(events []Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := len(events) - 1; i >= 0; i-- {
		q.list.PushFront(events[i])
	}
}

// Len returns the number of queued events. The value is advisory: it may be
// stale by the time the caller acts on it.
func (q *eventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.Len()
}

// IsEmpty reports whether the queue has no elements.
func (q *eventQueue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.Len() == 0
}
