package clock

import (
	"container/heap"
	"time"

	"go.uber.org/zap"
)

// State is the lifecycle position of a Scheduler.
type State int

const (
	Idle State = iota
	Running
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Cancel removes a previously registered callback. Calling it more than once
// is harmless.
type Cancel func()

// Scheduler multiplexes per-frame callbacks and delayed callbacks onto the
// host's frame loop. It is not safe for concurrent use: the host calls Tick
// from its update loop and every callback runs on that same goroutine.
//
// Scheduler time excludes paused intervals, so a delay or a tween deadline
// never elapses while the scheduler is paused.
type Scheduler struct {
	clock Clock
	log   *zap.Logger

	state    State
	pausedAt time.Time
	offset   time.Duration

	timers timerQueue
	seq    uint64

	frames  []*frameEntry
	firing  bool
	firedAt time.Time
}

type frameEntry struct {
	fn   func(now time.Time)
	dead bool
}

type timer struct {
	due  time.Time
	seq  uint64
	fn   func()
	dead bool
}

func NewScheduler(c Clock, log *zap.Logger) *Scheduler {
	if c == nil {
		c = Real{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{clock: c, log: log}
}

func (s *Scheduler) State() State { return s.state }

// Now returns scheduler time. It is frozen while paused.
func (s *Scheduler) Now() time.Time {
	if s.state == Paused {
		return s.pausedAt.Add(-s.offset)
	}
	return s.clock.Now().Add(-s.offset)
}

// After runs fn once, d after now. A timer registered from inside another
// timer's callback is measured from that timer's deadline rather than from
// the moment it actually fired, so chains do not drift with frame jitter.
func (s *Scheduler) After(d time.Duration, fn func()) Cancel {
	if s.state == Stopped || fn == nil {
		return func() {}
	}
	if d < 0 {
		d = 0
	}
	base := s.Now()
	if s.firing {
		base = s.firedAt
	}
	s.seq++
	t := &timer{due: base.Add(d), seq: s.seq, fn: fn}
	heap.Push(&s.timers, t)
	return func() { t.dead = true }
}

// OnFrame registers fn to run on every tick while the scheduler is running.
func (s *Scheduler) OnFrame(fn func(now time.Time)) Cancel {
	if s.state == Stopped || fn == nil {
		return func() {}
	}
	e := &frameEntry{fn: fn}
	s.frames = append(s.frames, e)
	return func() { e.dead = true }
}

// Tick fires every due timer in deadline order, then every frame callback.
// It does nothing unless the scheduler is running.
func (s *Scheduler) Tick() {
	if s.state != Running {
		return
	}
	now := s.Now()

	for s.timers.Len() > 0 {
		next := s.timers[0]
		if next.due.After(now) {
			break
		}
		heap.Pop(&s.timers)
		if next.dead {
			continue
		}
		s.firing, s.firedAt = true, next.due
		next.fn()
		s.firing = false
		if s.state != Running {
			return
		}
	}

	live := s.frames[:0]
	for _, e := range s.frames {
		if !e.dead {
			live = append(live, e)
		}
	}
	clear(s.frames[len(live):])
	s.frames = live

	// Callbacks registered during this loop start on the next tick.
	for _, e := range live {
		if e.dead {
			continue
		}
		e.fn(now)
		if s.state != Running {
			return
		}
	}
}

// Pending reports the number of live timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.dead {
			n++
		}
	}
	return n
}

// Start begins ticking. Starting a paused scheduler resumes it.
func (s *Scheduler) Start() {
	switch s.state {
	case Idle:
		s.state = Running
		s.log.Debug("scheduler started")
	case Paused:
		s.Resume()
	}
}

// Pause freezes scheduler time and suspends all callbacks.
func (s *Scheduler) Pause() {
	if s.state != Running {
		return
	}
	s.pausedAt = s.clock.Now()
	s.state = Paused
	s.log.Debug("scheduler paused")
}

// Resume continues from the instant Pause was called.
func (s *Scheduler) Resume() {
	if s.state != Paused {
		return
	}
	gap := s.clock.Now().Sub(s.pausedAt)
	if gap > 0 {
		s.offset += gap
	}
	s.state = Running
	s.log.Debug("scheduler resumed", zap.Duration("paused_for", gap))
}

// Stop drops every callback. A stopped scheduler cannot be restarted.
func (s *Scheduler) Stop() {
	if s.state == Stopped {
		return
	}
	s.state = Stopped
	s.timers = nil
	s.frames = nil
	s.log.Debug("scheduler stopped")
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
