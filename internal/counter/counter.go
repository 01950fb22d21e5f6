// Package counter animates a numeric stat from zero up to its target once it
// becomes visible.
package counter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/iburimskiy/page-motion/internal/clock"
	"github.com/iburimskiy/page-motion/internal/tween"
)

// Format selects how a counter value is printed.
type Format int

const (
	Integer Format = iota
	Decimal        // one fixed decimal place
)

// Frames is the part of the scheduler a counter needs to animate.
type Frames interface {
	Now() time.Time
	OnFrame(fn func(now time.Time)) clock.Cancel
}

// Counter is a one-shot eased count from 0 to Target.
type Counter struct {
	Label  string
	Suffix string
	Target float64
	Format Format

	tw      *tween.Tween
	display string
	stop    clock.Cancel
}

// Parse reads a target literal. A literal whose value has a fractional part
// is Decimal. Anything unparseable yields NaN, which is displayed as-is.
func Parse(literal string) (float64, Format) {
	v, err := strconv.ParseFloat(strings.TrimSpace(literal), 64)
	if err != nil {
		return math.NaN(), Integer
	}
	if !math.IsInf(v, 0) && v != math.Trunc(v) {
		return v, Decimal
	}
	return v, Integer
}

func New(label, literal, suffix string, d time.Duration) *Counter {
	target, format := Parse(literal)
	c := &Counter{
		Label:  label,
		Suffix: suffix,
		Target: target,
		Format: format,
		tw:     tween.New(0, target, d, tween.EaseOutCubic),
	}
	c.display = FormatValue(0, format)
	return c
}

// FormatValue renders v the way a counter of format f displays it.
func FormatValue(v float64, f Format) string {
	if f == Decimal {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}

// Start begins the animation on the first call and registers a per-frame
// update that unregisters itself at completion. Later calls are no-ops.
func (c *Counter) Start(f Frames) bool {
	if f == nil || !c.tw.Start(f.Now()) {
		return false
	}
	c.stop = f.OnFrame(c.update)
	return true
}

func (c *Counter) Started() bool { return c.tw.Started() }

func (c *Counter) update(now time.Time) {
	c.display = c.TextAt(now)
	if c.tw.Done(now) && c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

// Animating reports whether the per-frame update is still registered.
func (c *Counter) Animating() bool { return c.stop != nil }

// ValueAt is the numeric value shown at now. It is exactly Target once the
// duration has elapsed.
func (c *Counter) ValueAt(now time.Time) float64 {
	return c.tw.Value(now)
}

// TextAt formats ValueAt(now) without the suffix.
func (c *Counter) TextAt(now time.Time) string {
	if c.tw.Done(now) {
		return FormatValue(c.Target, c.Format)
	}
	return FormatValue(c.ValueAt(now), c.Format)
}

// Text is the value most recently produced by the frame update.
func (c *Counter) Text() string { return c.display }

// Display is Text with the suffix appended.
func (c *Counter) Display() string { return c.display + c.Suffix }
