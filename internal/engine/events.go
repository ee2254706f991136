// Package engine provides the collaborators the runner plays on top of:
// an arcade physics world, a timer clock, an animator, tiled scrolling
// layers, an asset loader and a world-to-screen viewport.
//
// Physics contacts and timer firings are not delivered through callbacks.
// They are pushed onto a Queue that the game drains once per tick, so game
// logic can be driven in tests by pushing events directly.
package engine

// EventKind identifies what produced an event.
type EventKind int

const (
	EventCollide EventKind = iota // two bodies touched under a collider rule
	EventOverlap                  // two bodies overlapped under an overlap rule
	EventTimer                    // a repeating timer fired
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventCollide:
		return "collide"
	case EventOverlap:
		return "overlap"
	case EventTimer:
		return "timer"
	default:
		return "unknown"
	}
}

// Event is a single message from the physics world or the clock.
type Event struct {
	Kind EventKind

	// Contact pair. A carries the rule's first tag, B the second.
	A, B BodyID

	// Timer name for EventTimer.
	Timer string
}

// Queue is a FIFO of events. It is not safe for concurrent use; the whole
// simulation runs on one goroutine.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Reset discards pending events.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}
