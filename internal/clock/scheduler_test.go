package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T) (*Scheduler, *Manual) {
	t.Helper()
	c := NewManual(epoch)
	s := NewScheduler(c, zaptest.NewLogger(t))
	s.Start()
	return s, c
}

func TestAfterFiresInDeadlineOrder(t *testing.T) {
	s, c := newTestScheduler(t)

	var got []string
	s.After(30*time.Millisecond, func() { got = append(got, "c") })
	s.After(10*time.Millisecond, func() { got = append(got, "a") })
	s.After(10*time.Millisecond, func() { got = append(got, "b") })

	s.Tick()
	assert.Empty(t, got)

	c.Advance(10 * time.Millisecond)
	s.Tick()
	assert.Equal(t, []string{"a", "b"}, got)

	c.Advance(25 * time.Millisecond)
	s.Tick()
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, s.Pending())
}

func TestChainedTimersCatchUpInOneTick(t *testing.T) {
	s, c := newTestScheduler(t)

	count := 0
	var step func()
	step = func() {
		count++
		s.After(100*time.Millisecond, step)
	}
	s.After(100*time.Millisecond, step)

	c.Advance(time.Second)
	s.Tick()
	assert.Equal(t, 10, count, "each link is measured from its parent's deadline")
}

func TestCancel(t *testing.T) {
	s, c := newTestScheduler(t)

	fired := false
	cancel := s.After(time.Millisecond, func() { fired = true })
	cancel()
	cancel()

	frames := 0
	stop := s.OnFrame(func(time.Time) { frames++ })
	s.Tick()
	stop()
	c.Advance(time.Second)
	s.Tick()

	assert.False(t, fired)
	assert.Equal(t, 1, frames)
}

func TestFrameCallbacksSeeSchedulerTime(t *testing.T) {
	s, c := newTestScheduler(t)

	var seen []time.Time
	s.OnFrame(func(now time.Time) { seen = append(seen, now) })

	c.Advance(16 * time.Millisecond)
	s.Tick()
	require.Len(t, seen, 1)
	assert.Equal(t, epoch.Add(16*time.Millisecond), seen[0])
}

func TestPauseFreezesTime(t *testing.T) {
	s, c := newTestScheduler(t)

	fired := false
	s.After(100*time.Millisecond, func() { fired = true })

	c.Advance(50 * time.Millisecond)
	s.Pause()
	assert.Equal(t, Paused, s.State())
	frozen := s.Now()

	c.Advance(10 * time.Second)
	s.Tick()
	assert.False(t, fired)
	assert.Equal(t, frozen, s.Now())

	s.Resume()
	s.Tick()
	assert.False(t, fired, "paused interval must not count toward the delay")

	c.Advance(50 * time.Millisecond)
	s.Tick()
	assert.True(t, fired)
}

func TestStartResumesPaused(t *testing.T) {
	s, _ := newTestScheduler(t)
	s.Pause()
	s.Start()
	assert.Equal(t, Running, s.State())
}

func TestStopDropsEverything(t *testing.T) {
	s, c := newTestScheduler(t)

	calls := 0
	s.After(time.Millisecond, func() { calls++ })
	s.OnFrame(func(time.Time) { calls++ })
	s.Stop()

	s.After(time.Millisecond, func() { calls++ })
	s.OnFrame(func(time.Time) { calls++ })
	s.Start()
	c.Advance(time.Second)
	s.Tick()

	assert.Equal(t, Stopped, s.State())
	assert.Zero(t, calls)
	assert.Zero(t, s.Pending())
}

func TestStopFromCallbackHaltsTick(t *testing.T) {
	s, c := newTestScheduler(t)

	later := false
	s.After(time.Millisecond, func() { s.Stop() })
	s.After(2*time.Millisecond, func() { later = true })
	s.OnFrame(func(time.Time) { later = true })

	c.Advance(time.Second)
	s.Tick()
	assert.False(t, later)
}

func TestIdleSchedulerDoesNotTick(t *testing.T) {
	s := NewScheduler(NewManual(epoch), nil)
	frames := 0
	s.OnFrame(func(time.Time) { frames++ })
	s.Tick()
	assert.Zero(t, frames)
	assert.Equal(t, "idle", s.State().String())
}
