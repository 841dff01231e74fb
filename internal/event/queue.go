package event

// MaxQueued bounds the number of events retained by a Queue. Once full, the
// oldest event is dropped to make room.
const MaxQueued = 65535

// Queue is a FIFO event store for a single window. It is not safe for
// concurrent use; windows are driven from one goroutine.
type Queue struct {
	events  []Event
	dropped int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev to the tail of the queue.
func (q *Queue) Push(ev Event) {
	if ev == nil {
		return
	}
	if len(q.events) >= MaxQueued {
		q.events = q.events[1:]
		q.dropped++
	}
	q.events = append(q.events, ev)
}

// Poll removes and returns the head of the queue.
func (q *Queue) Poll() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return ev, true
}

// Drain removes and returns every queued event in order.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len reports the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Dropped reports how many events were discarded because the queue was full.
func (q *Queue) Dropped() int {
	return q.dropped
}
