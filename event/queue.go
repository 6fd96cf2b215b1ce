package event

// Queue buffers events produced during a tick
// Single writer, single consumer: the simulation owns it, no locking
type Queue struct {
	events []GameEvent
}

func NewQueue(capacity int) *Queue {
	return &Queue{
		events: make([]GameEvent, 0, capacity),
	}
}

// Push appends an event in emission order
func (q *Queue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is owned by the caller
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	result := make([]GameEvent, len(q.events))
	copy(result, q.events)
	q.events = q.events[:0]
	return result
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return len(q.events)
}
