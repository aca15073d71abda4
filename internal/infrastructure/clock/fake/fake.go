package fake

import (
	"sort"
	"sync"
	"time"

	"cloud_checkout/internal/infrastructure/clock"
)

var _ clock.Clock = (*Clock)(nil)

// Clock is a deterministic clock for testing. Scheduled callbacks only run
// inside Advance, on the goroutine that calls it, in due-time order.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers map[int]*timer
}

type timer struct {
	c      *Clock
	id     int
	due    time.Time
	period time.Duration
	f      func()
}

// NewClock creates a Clock starting at the given time.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start, timers: map[int]*timer{}}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, f func()) clock.Timer {
	return c.schedule(d, 0, f)
}

func (c *Clock) TickFunc(d time.Duration, f func()) clock.Timer {
	if d <= 0 {
		panic("fake clock: non-positive tick interval")
	}
	return c.schedule(d, d, f)
}

func (c *Clock) schedule(d, period time.Duration, f func()) *timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &timer{c: c, id: c.seq, due: c.now.Add(d), period: period, f: f}
	c.timers[t.id] = t
	return t
}

func (t *timer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if _, ok := t.c.timers[t.id]; !ok {
		return false
	}
	delete(t.c.timers, t.id)
	return true
}

// Advance moves the clock forward by d, firing every callback that falls due
// on the way. The clock reads the callback's due time while it runs.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.due
		if next.period > 0 {
			next.due = next.due.Add(next.period)
		} else {
			delete(c.timers, next.id)
		}
		f := next.f
		c.mu.Unlock()

		f()
	}
}

// Pending returns the number of scheduled, not yet stopped timers.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *Clock) nextDueLocked(target time.Time) *timer {
	due := make([]*timer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.due.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})
	return due[0]
}
