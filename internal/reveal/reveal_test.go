package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/iburimskiy/page-motion/internal/clock"
	"github.com/iburimskiy/page-motion/internal/counter"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var viewport = Rect{X: 0, Y: 0, W: 1000, H: 600}

func newScheduler(t *testing.T) (*clock.Scheduler, *clock.Manual) {
	t.Helper()
	c := clock.NewManual(epoch)
	s := clock.NewScheduler(c, zaptest.NewLogger(t))
	s.Start()
	return s, c
}

func TestRectIntersect(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	assert.Equal(t, Rect{5, 5, 5, 5}, a.Intersect(Rect{5, 5, 10, 10}))
	assert.Equal(t, Rect{}, a.Intersect(Rect{10, 0, 5, 5}), "touching edges do not overlap")
	assert.Zero(t, Rect{0, 0, -1, 4}.Area())
}

func TestObserverThresholdAndMargin(t *testing.T) {
	o := NewObserver(0.15, Margin{Bottom: -50})

	tests := []struct {
		name   string
		bounds Rect
		want   bool
	}{
		{"fully inside", Rect{0, 100, 200, 100}, true},
		{"below the fold", Rect{0, 700, 200, 100}, false},
		{"peeking only into the bottom margin", Rect{0, 560, 200, 100}, false},
		{"just past the threshold", Rect{0, 534, 200, 100}, true},
		{"just short of the threshold", Rect{0, 536, 200, 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := o.Ratio(viewport, tt.bounds)
			assert.Equal(t, tt.want, o.intersecting(r), "ratio %v", r)
		})
	}
}

func TestObserverReportsOnlyChanges(t *testing.T) {
	o := NewObserver(0.15, Margin{})
	o.Observe("a", Rect{0, 100, 100, 100})
	o.Observe("b", Rect{0, 900, 100, 100})

	first := o.Check(viewport)
	require.Len(t, first, 2)
	assert.True(t, first[0].Intersecting)
	assert.False(t, first[1].Intersecting)

	assert.Empty(t, o.Check(viewport))

	scrolled := Rect{X: 0, Y: 500, W: 1000, H: 600}
	changed := o.Check(scrolled)
	require.Len(t, changed, 2)
	assert.Equal(t, Entry{ID: "a", Ratio: 0, Intersecting: false}, changed[0])
	assert.Equal(t, "b", changed[1].ID)
	assert.True(t, changed[1].Intersecting)

	o.Unobserve("a")
	o.Unobserve("missing")
	assert.False(t, o.Watching("a"))
	assert.Equal(t, 1, o.Len())
}

func TestRevealFiresOnceUnderDuplicateNotifications(t *testing.T) {
	s, _ := newScheduler(t)
	d := NewDispatcher(s, NewObserver(0.15, Margin{Bottom: -50}), zaptest.NewLogger(t))

	fired := 0
	d.OnReveal = func(*Target) { fired++ }

	target := NewTarget("about", 600*time.Millisecond)
	d.Watch(target, Rect{0, 2000, 400, 200})

	for i := 0; i < 100; i++ {
		d.Notify([]Entry{{ID: "about", Ratio: 1, Intersecting: true}})
	}
	assert.Equal(t, 1, fired)
	assert.True(t, target.Revealed())
	assert.False(t, d.obs.Watching("about"), "revealed targets are no longer watched")
}

func TestRevealIsDrivenByScroll(t *testing.T) {
	s, c := newScheduler(t)
	d := NewDispatcher(s, NewObserver(0.15, Margin{Bottom: -50}), zaptest.NewLogger(t))

	target := NewTarget("skills", 600*time.Millisecond)
	d.Watch(target, Rect{0, 1200, 400, 200})

	d.Check(viewport)
	assert.False(t, target.Revealed())

	d.Check(Rect{0, 800, 1000, 600})
	assert.True(t, target.Revealed())
	assert.Zero(t, target.Visibility(s.Now()))

	c.Advance(600 * time.Millisecond)
	assert.Equal(t, 1.0, target.Visibility(s.Now()))

	// Scrolling away and back never reverses the reveal.
	d.Check(viewport)
	d.Check(Rect{0, 800, 1000, 600})
	assert.True(t, target.Revealed())
}

func TestRevealCascadesIntoCountersAndBars(t *testing.T) {
	s, c := newScheduler(t)
	d := NewDispatcher(s, NewObserver(0.15, Margin{}), zaptest.NewLogger(t))

	shared := counter.New("Projects", "40", "+", 2*time.Second)
	nested := counter.New("Uptime", "99.9", "%", 2*time.Second)
	bar := NewBar("Go", 90, time.Second)

	stats := NewTarget("stats", 0)
	stats.Counters = []*counter.Counter{shared, nested}
	stats.Bars = []*Bar{bar}

	standalone := NewTarget("projects-count", 0)
	standalone.Counters = []*counter.Counter{shared}

	d.Watch(stats, Rect{0, 100, 400, 100})
	d.Check(viewport)
	require.True(t, shared.Started())
	require.True(t, nested.Started())
	require.True(t, bar.Started())

	c.Advance(time.Second)
	d.Watch(standalone, Rect{0, 300, 100, 50})
	d.Check(viewport)
	assert.True(t, standalone.Revealed())

	c.Advance(time.Second)
	s.Tick()
	assert.Equal(t, "40+", shared.Display(), "second reveal did not restart the shared counter")
	assert.Equal(t, "99.9", nested.Text())
	assert.Equal(t, 90.0, bar.Fill(s.Now()))
}

func TestNilObserverRevealsImmediately(t *testing.T) {
	s, _ := newScheduler(t)
	d := NewDispatcher(s, nil, nil)

	ctr := counter.New("", "5", "", time.Second)
	target := NewTarget("hero", time.Second)
	target.Counters = []*counter.Counter{ctr}

	d.Watch(target, Rect{0, 5000, 10, 10})
	d.Check(viewport)
	assert.True(t, target.Revealed())
	assert.True(t, ctr.Started())
	assert.Same(t, target, d.Target("hero"))
}

func TestRevealAll(t *testing.T) {
	s, _ := newScheduler(t)
	d := NewDispatcher(s, NewObserver(0.15, Margin{}), nil)

	fired := 0
	d.OnReveal = func(*Target) { fired++ }
	a, b := NewTarget("a", 0), NewTarget("b", 0)
	d.Watch(a, Rect{0, 5000, 10, 10})
	d.Watch(b, Rect{0, 6000, 10, 10})

	d.RevealAll()
	d.RevealAll()
	assert.True(t, a.Revealed())
	assert.True(t, b.Revealed())
	assert.Equal(t, 2, fired)
}

func TestNotifyIgnoresUnknownAndLeaving(t *testing.T) {
	s, _ := newScheduler(t)
	d := NewDispatcher(s, NewObserver(0.15, Margin{}), nil)
	target := NewTarget("a", 0)
	d.Watch(target, Rect{0, 5000, 10, 10})

	d.Notify([]Entry{{ID: "zzz", Intersecting: true}, {ID: "a", Intersecting: false}})
	assert.False(t, target.Revealed())
}

func TestBarClampsPercent(t *testing.T) {
	assert.Equal(t, 100.0, NewBar("x", 140, time.Second).Percent)
	assert.Zero(t, NewBar("x", -3, time.Second).Percent)
}
