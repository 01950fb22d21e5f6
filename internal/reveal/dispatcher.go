package reveal

import (
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/page-motion/internal/counter"
	"github.com/iburimskiy/page-motion/internal/tween"
)

// Bar is a progress-style fill that animates to Percent when its card is
// revealed.
type Bar struct {
	Label   string
	Percent float64
	tw      *tween.Tween
}

func NewBar(label string, percent float64, d time.Duration) *Bar {
	percent = min(max(percent, 0), 100)
	return &Bar{Label: label, Percent: percent, tw: tween.New(0, percent, d, tween.EaseOutQuad)}
}

func (b *Bar) Start(now time.Time) bool { return b.tw.Start(now) }
func (b *Bar) Started() bool            { return b.tw.Started() }

// Fill is the current fill in percent.
func (b *Bar) Fill(now time.Time) float64 { return b.tw.Value(now) }

// Target is a watched element. Counters and Bars nested inside it start when
// it is revealed.
type Target struct {
	ID       string
	Counters []*counter.Counter
	Bars     []*Bar

	revealed bool
	fade     *tween.Tween
}

func NewTarget(id string, fade time.Duration) *Target {
	return &Target{ID: id, fade: tween.New(0, 1, fade, tween.EaseOutCubic)}
}

func (t *Target) Revealed() bool { return t.revealed }

// Visibility is the eased reveal progress in [0, 1].
func (t *Target) Visibility(now time.Time) float64 { return t.fade.Value(now) }

// Dispatcher turns intersection entries into one-shot reveals.
type Dispatcher struct {
	frames  counter.Frames
	obs     *Observer
	log     *zap.Logger
	targets map[string]*Target
	started map[*counter.Counter]bool

	// OnReveal is called once per revealed target.
	OnReveal func(t *Target)
}

// NewDispatcher creates a dispatcher fed by obs. With a nil observer there is
// no way to learn about visibility, so every target is revealed as soon as it
// is watched.
func NewDispatcher(frames counter.Frames, obs *Observer, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		frames:  frames,
		obs:     obs,
		log:     log,
		targets: map[string]*Target{},
		started: map[*counter.Counter]bool{},
	}
}

// Watch registers t at bounds.
func (d *Dispatcher) Watch(t *Target, bounds Rect) {
	if t == nil {
		return
	}
	d.targets[t.ID] = t
	if t.revealed {
		return
	}
	if d.obs == nil {
		d.reveal(t)
		return
	}
	d.obs.Observe(t.ID, bounds)
}

func (d *Dispatcher) Target(id string) *Target { return d.targets[id] }

// Check runs the observer against viewport and dispatches its entries.
func (d *Dispatcher) Check(viewport Rect) {
	if d.obs == nil {
		return
	}
	d.Notify(d.obs.Check(viewport))
}

// Notify handles intersection entries. Entries for already revealed or
// unknown targets are ignored, so duplicates are harmless.
func (d *Dispatcher) Notify(entries []Entry) {
	for _, e := range entries {
		if !e.Intersecting {
			continue
		}
		t, ok := d.targets[e.ID]
		if !ok || t.revealed {
			continue
		}
		d.reveal(t)
	}
}

// RevealAll reveals every target still waiting.
func (d *Dispatcher) RevealAll() {
	for _, t := range d.targets {
		if !t.revealed {
			d.reveal(t)
		}
	}
}

func (d *Dispatcher) now() time.Time {
	if d.frames == nil {
		return time.Now()
	}
	return d.frames.Now()
}

func (d *Dispatcher) reveal(t *Target) {
	now := d.now()
	t.revealed = true
	t.fade.Start(now)
	if d.obs != nil {
		d.obs.Unobserve(t.ID)
	}

	for _, c := range t.Counters {
		if d.started[c] {
			continue
		}
		d.started[c] = true
		c.Start(d.frames)
	}
	for _, b := range t.Bars {
		b.Start(now)
	}

	d.log.Debug("revealed",
		zap.String("target", t.ID),
		zap.Int("counters", len(t.Counters)),
		zap.Int("bars", len(t.Bars)))
	if d.OnReveal != nil {
		d.OnReveal(t)
	}
}
