package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventMouseWheel carries a MouseWheelEvent.
const EventMouseWheel = "mouse_wheel"

// MouseScrollUnit tells how a wheel delta should be interpreted.
type MouseScrollUnit int

const (
	// MouseScrollLine deltas count notches or lines.
	MouseScrollLine MouseScrollUnit = iota
	// MouseScrollPixel deltas are already in pixels.
	MouseScrollPixel
)

func (u MouseScrollUnit) String() string {
	switch u {
	case MouseScrollLine:
		return "line"
	case MouseScrollPixel:
		return "pixel"
	default:
		return "unknown"
	}
}

// MouseWheelEvent is emitted once per frame in which the wheel moved.
type MouseWheelEvent struct {
	Unit MouseScrollUnit
	X    float64
	Y    float64
}

// EventQueue is a simple FIFO queue. It is emptied after every world update.
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

// Read returns the queued events of the given type without consuming them,
// so several systems can observe the same frame's events.
func (q *EventQueue) Read(typ string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
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

// Len reports how many events are queued.
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
