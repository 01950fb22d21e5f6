// Package tween interpolates a value toward a target over a wall-clock
// duration.
package tween

import "time"

// Tween eases from From to To over Duration. Its clock starts on the first
// call to Start; later calls are ignored.
type Tween struct {
	From, To float64
	Duration time.Duration
	Ease     Ease

	started bool
	start   time.Time
}

func New(from, to float64, d time.Duration, ease Ease) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{From: from, To: to, Duration: d, Ease: ease}
}

// Start records now as the start instant. It reports whether this call
// actually started the tween.
func (tw *Tween) Start(now time.Time) bool {
	if tw.started {
		return false
	}
	tw.started = true
	tw.start = now
	return true
}

func (tw *Tween) Started() bool { return tw.started }

// Progress is the linear progress in [0, 1] at now. An unstarted tween is at 0
// and a non-positive duration completes immediately.
func (tw *Tween) Progress(now time.Time) float64 {
	if !tw.started {
		return 0
	}
	if tw.Duration <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(tw.start)) / float64(tw.Duration))
}

// Value returns the eased value at now. At completion it returns To exactly.
func (tw *Tween) Value(now time.Time) float64 {
	p := tw.Progress(now)
	if p >= 1 {
		return tw.To
	}
	return Lerp(tw.From, tw.To, tw.Ease(p))
}

// Done reports whether the tween has started and reached its end.
func (tw *Tween) Done(now time.Time) bool {
	return tw.started && tw.Progress(now) >= 1
}
