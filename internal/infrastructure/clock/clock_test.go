package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReal_TickerStoppedFromItsOwnCallback(t *testing.T) {
	var (
		n    atomic.Int32
		tick Timer
		done = make(chan struct{})
	)
	ready := make(chan struct{})
	tick = Real{}.TickFunc(time.Millisecond, func() {
		<-ready
		if n.Add(1) == 3 {
			assert.True(t, tick.Stop())
			close(done)
		}
	})
	close(ready)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker did not reach three ticks")
	}

	time.Sleep(20 * time.Millisecond)
	assert.EqualValues(t, 3, n.Load())
	assert.False(t, tick.Stop())
}

func TestReal_TickerStopBeforeFirstTick(t *testing.T) {
	var n atomic.Int32
	tick := Real{}.TickFunc(10*time.Millisecond, func() { n.Add(1) })

	require.True(t, tick.Stop())
	time.Sleep(30 * time.Millisecond)

	assert.Zero(t, n.Load())
	assert.False(t, tick.Stop())
}

func TestReal_AfterFunc(t *testing.T) {
	fired := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("AfterFunc callback never ran")
	}

	stopped := Real{}.AfterFunc(time.Hour, func() { t.Errorf("stopped timer ran") })
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())
}
