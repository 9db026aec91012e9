package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventBounce = "bounce"

// Axis names the velocity component a bounce flipped.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// BounceEvent is emitted when the ball reflects off an arena wall.
type BounceEvent struct {
	Entity Entity
	Axis   Axis
}

// EventQueue is a simple FIFO queue. Anything still queued when the
// scheduler finishes a frame is dropped.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
