package typewriter

import (
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/page-motion/internal/clock"
)

// Timers is the part of the scheduler the runner needs.
type Timers interface {
	After(d time.Duration, fn func()) clock.Cancel
}

// Runner drives a Machine from delayed callbacks, rescheduling itself after
// every step for as long as it is running.
type Runner struct {
	m      *Machine
	timers Timers
	log    *zap.Logger

	// OnChange is called after a step that changed the visible text.
	OnChange func(text string, mode Mode)

	cancel clock.Cancel
}

func NewRunner(m *Machine, timers Timers, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{m: m, timers: timers, log: log}
}

func (r *Runner) Machine() *Machine { return r.m }

// Start schedules the first step after the machine's boot delay. It does
// nothing without timers or phrases, or when already started.
func (r *Runner) Start() {
	if r.timers == nil || r.m == nil || r.m.PhraseCount() == 0 || r.cancel != nil {
		return
	}
	r.log.Debug("typewriter starting",
		zap.Int("phrases", r.m.PhraseCount()),
		zap.Duration("boot", r.m.Timing().Boot))
	r.cancel = r.timers.After(r.m.Timing().Boot, r.tick)
}

// Stop cancels the pending step. The machine keeps its state.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Runner) tick() {
	before := r.m.Cursor()
	prevIndex := r.m.Index()
	delay, ok := r.m.Step()
	if !ok {
		r.cancel = nil
		return
	}
	if r.m.Index() != prevIndex {
		r.log.Debug("typewriter next phrase", zap.Int("index", r.m.Index()))
	}
	if r.m.Cursor() != before && r.OnChange != nil {
		r.OnChange(r.m.Text(), r.m.Mode())
	}
	r.cancel = r.timers.After(delay, r.tick)
}
