// Package page assembles the animated page: the hero particle field, the
// typewriter headline and the reveal-on-scroll blocks below it, all running on
// one scheduler. It does no drawing of its own.
package page

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/page-motion/internal/clock"
	"github.com/iburimskiy/page-motion/internal/config"
	"github.com/iburimskiy/page-motion/internal/content"
	"github.com/iburimskiy/page-motion/internal/particles"
	"github.com/iburimskiy/page-motion/internal/reveal"
	"github.com/iburimskiy/page-motion/internal/typewriter"
)

type Options struct {
	Width, Height int
	Seed          int64
	Clock         clock.Clock
	Log           *zap.Logger

	// OnType is called whenever the typewriter types a character.
	OnType func(text string)
}

// Scene is the page model. Call Update once per frame.
type Scene struct {
	Doc        *content.Document
	Sched      *clock.Scheduler
	Field      *particles.Field
	Typer      *typewriter.Runner
	Dispatcher *reveal.Dispatcher
	Elements   []*Element

	log           *zap.Logger
	width, height int
	scroll        float64
	pageHeight    float64
}

func New(doc *content.Document, opts Options) *Scene {
	if doc == nil {
		doc = content.Default()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Scene{
		Doc:   doc,
		Sched: clock.NewScheduler(opts.Clock, log.Named("scheduler")),
		log:   log,
	}

	s.Field = particles.New(0, 0, particles.DefaultConfig(), rand.New(rand.NewSource(seed)))
	s.Sched.OnFrame(func(time.Time) { s.Field.Step() })

	m := typewriter.New(doc.Phrases, typewriter.Timing{
		Type:    config.TypeSpeed,
		Delete:  config.DeleteSpeed,
		Full:    config.PauseFull,
		Between: config.PauseBetween,
		Boot:    config.TypewriterBoot,
	})
	s.Typer = typewriter.NewRunner(m, s.Sched, log.Named("typewriter"))
	if opts.OnType != nil {
		s.Typer.OnChange = func(text string, mode typewriter.Mode) {
			if mode == typewriter.Typing || mode == typewriter.PausedFull {
				opts.OnType(text)
			}
		}
	}

	obs := reveal.NewObserver(config.RevealThreshold, reveal.Margin{Bottom: config.RevealMarginBottom})
	s.Dispatcher = reveal.NewDispatcher(s.Sched, obs, log.Named("reveal"))
	s.Elements = build(doc)

	s.Sched.Start()
	s.Typer.Start()
	s.Resize(opts.Width, opts.Height)

	log.Info("page ready",
		zap.Int("particles", len(s.Field.Particles)),
		zap.Int("phrases", len(doc.Phrases)),
		zap.Int("elements", len(s.Elements)))
	return s
}

// Resize lays the page out for a new window size and rebuilds the particle
// field for the new hero extent.
func (s *Scene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = max(width, 0), max(height, 0)
	s.Field.Resize(s.width, min(config.HeroHeight, s.height))
	s.pageHeight = layout(s.Elements, s.width)
	for _, el := range s.Elements {
		s.Dispatcher.Watch(el.Target, el.Rect)
	}
	s.scroll = min(s.scroll, s.MaxScroll())
	s.log.Debug("resized",
		zap.Int("width", s.width),
		zap.Int("height", s.height),
		zap.Int("particles", len(s.Field.Particles)))
}

func (s *Scene) Size() (int, int) { return s.width, s.height }

func (s *Scene) PageHeight() float64 { return s.pageHeight }

// Hero is the particle canvas in page coordinates.
func (s *Scene) Hero() reveal.Rect {
	return reveal.Rect{W: float64(s.Field.Width), H: float64(s.Field.Height)}
}

func (s *Scene) Scroll() float64 { return s.scroll }

func (s *Scene) MaxScroll() float64 {
	return max(0, s.pageHeight-float64(s.height))
}

// ScrollBy moves the viewport down by dy page units, clamped to the page.
func (s *Scene) ScrollBy(dy float64) {
	s.scroll = min(max(s.scroll+dy, 0), s.MaxScroll())
}

// Viewport is the visible part of the page.
func (s *Scene) Viewport() reveal.Rect {
	return reveal.Rect{Y: s.scroll, W: float64(s.width), H: float64(s.height)}
}

// Pointer records the cursor at window coordinates (x, y). Outside the hero
// the field sees no pointer.
func (s *Scene) Pointer(x, y float64, inWindow bool) {
	py := y + s.scroll
	hero := s.Hero()
	if !inWindow || x < 0 || py < 0 || x > hero.W || py > hero.H {
		s.Field.ClearPointer()
		return
	}
	s.Field.SetPointer(x, py)
}

// Update advances every animation by one frame and dispatches reveals for the
// current viewport.
func (s *Scene) Update() {
	s.Sched.Tick()
	if s.Sched.State() == clock.Running {
		s.Dispatcher.Check(s.Viewport())
	}
}

// Now is scheduler time, which stands still while paused.
func (s *Scene) Now() time.Time { return s.Sched.Now() }

func (s *Scene) Headline() string { return s.Typer.Machine().Text() }

func (s *Scene) Pause()  { s.Sched.Pause() }
func (s *Scene) Resume() { s.Sched.Resume() }
func (s *Scene) Paused() bool {
	return s.Sched.State() == clock.Paused
}

// Close stops every animation. The scene cannot be restarted.
func (s *Scene) Close() {
	s.Typer.Stop()
	s.Sched.Stop()
}
