package event

// Queue is an unbounded first-in-first-out event queue. Any component may
// enqueue; the driving loop is the only dequeuer. Ordering is pure arrival
// order: no priority, no deduplication.
//
// The backtest loop is single-threaded and turn-based, so the queue carries
// no locking. A concurrent rewrite must keep dispatch order equal to enqueue
// order, since portfolio transitions are order-sensitive.
type Queue struct {
	events []*Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Put appends an event to the tail of the queue.
func (q *Queue) Put(e *Event) {
	q.events = append(q.events, e)
}

// Get removes and returns the event at the head of the queue.
// The second return value is false when the queue is empty.
func (q *Queue) Get() (*Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}
