package engine

import "time"

// Clock runs repeating timers on simulated time.
// Each firing is pushed onto the queue as an EventTimer.
type Clock struct {
	queue  *Queue
	timers []*timer
	paused bool
}

type timer struct {
	name    string
	period  time.Duration
	elapsed time.Duration
}

// NewClock creates a clock that reports firings to q.
func NewClock(q *Queue) *Clock {
	return &Clock{queue: q}
}

// Every schedules a repeating timer. Non-positive periods are ignored.
// Timers that fire on the same tick are reported in registration order.
func (c *Clock) Every(name string, period time.Duration) {
	if period <= 0 {
		return
	}
	c.timers = append(c.timers, &timer{name: name, period: period})
}

// Advance moves simulated time forward by dt, firing due timers.
// A timer whose period elapsed more than once fires once per period.
func (c *Clock) Advance(dt time.Duration) {
	if c.paused || dt <= 0 {
		return
	}
	for _, t := range c.timers {
		t.elapsed += dt
		for t.elapsed >= t.period {
			t.elapsed -= t.period
			c.queue.Push(Event{Kind: EventTimer, Timer: t.name})
		}
	}
}

// Period returns the period of the named timer.
func (c *Clock) Period(name string) (time.Duration, bool) {
	for _, t := range c.timers {
		if t.name == name {
			return t.period, true
		}
	}
	return 0, false
}

// Len returns the number of scheduled timers.
func (c *Clock) Len() int {
	return len(c.timers)
}

// Pause stops time from advancing.
func (c *Clock) Pause() { c.paused = true }

// Resume lets time advance again.
func (c *Clock) Resume() { c.paused = false }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Reset cancels every timer and resumes the clock.
func (c *Clock) Reset() {
	c.timers = nil
	c.paused = false
}
