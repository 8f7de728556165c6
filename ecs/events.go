package ecs

// EventType names an event kind.
type EventType string

const (
	EventPainted  EventType = "painted"
	EventCaptured EventType = "captured"
	EventReloaded EventType = "reloaded"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// PaintedEvent is pushed when squares were recolored this frame.
type PaintedEvent struct {
	Count int
}

// CapturedEvent is pushed after a frame was exported.
type CapturedEvent struct {
	Path      string
	Clipboard bool
}

// EventQueue is a simple FIFO queue.
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
