// Package clock abstracts wall time and timers so timing-driven code can run
// against a controllable clock in tests.
package clock

import (
	"sync"
	"time"
)

// Timer is a scheduled callback. Stop is safe to call more than once and
// reports whether the call prevented a future run.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Callbacks never run synchronously from
// AfterFunc or TickFunc.
type Clock interface {
	Now() time.Time
	// AfterFunc runs f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// TickFunc runs f every d until the returned timer is stopped.
	TickFunc(d time.Duration, f func()) Timer
}

// Real implements Clock with the runtime timers.
type Real struct{}

var _ Clock = Real{}

func (Real) Now() time.Time { return time.Now() }

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (Real) TickFunc(d time.Duration, f func()) Timer {
	t := &realTicker{ticker: time.NewTicker(d), done: make(chan struct{})}
	go t.loop(f)
	return t
}

type realTicker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *realTicker) loop(f func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// Stop may race with a delivered tick.
			select {
			case <-t.done:
				return
			default:
			}
			f()
		}
	}
}

func (t *realTicker) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}
