package engine

import "testing"

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Kind: EventTimer, Timer: "obstacle"})
	q.Push(Event{Kind: EventCollide, A: 1, B: 2})

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("Drain() returned %d events, expected 2", len(events))
	}
	if events[0].Timer != "obstacle" || events[1].Kind != EventCollide {
		t.Errorf("events out of order: %+v", events)
	}
	if q.Len() != 0 {
		t.Error("queue should be empty after Drain")
	}
	if q.Drain() != nil {
		t.Error("Drain() of empty queue should return nil")
	}
}

func TestQueueDrainIsACopy(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Timer: "a"})
	events := q.Drain()
	q.Push(Event{Timer: "b"})

	if events[0].Timer != "a" {
		t.Error("pushing after Drain should not alter drained events")
	}
}
