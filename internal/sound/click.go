// Package sound plays the typewriter's keystroke click.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

const (
	SampleRate    = beep.SampleRate(44100)
	clickLength   = 18 * time.Millisecond
	clickVolume   = -1.5 // in powers of two, see effects.Volume
	speakerBuffer = time.Second / 20
)

// click is a short burst of exponentially decaying noise.
type click struct {
	samples [][2]float64
	pos     int
}

func newClick(sr beep.SampleRate, d time.Duration, seed int64) *click {
	n := sr.N(d)
	rng := rand.New(rand.NewSource(seed))
	c := &click{samples: make([][2]float64, n)}
	decay := float64(n) * 0.15
	for i := range c.samples {
		v := (rng.Float64()*2 - 1) * math.Exp(-float64(i)/decay)
		c.samples[i] = [2]float64{v, v}
	}
	return c
}

func (c *click) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= len(c.samples) {
		return 0, false
	}
	n := copy(samples, c.samples[c.pos:])
	c.pos += n
	return n, true
}

func (c *click) Err() error { return nil }

// Clicker plays a pre-rendered click through the speaker. Until Init succeeds
// Click does nothing, so a machine without audio simply stays silent.
type Clicker struct {
	buf   *beep.Buffer
	ready bool
	muted bool
	log   *zap.Logger
}

func NewClicker(log *zap.Logger) *Clicker {
	if log == nil {
		log = zap.NewNop()
	}
	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(&effects.Volume{
		Streamer: newClick(SampleRate, clickLength, 1),
		Base:     2,
		Volume:   clickVolume,
	})
	return &Clicker{buf: buf, log: log}
}

// Init opens the audio device. Failure is logged and leaves the clicker silent.
func (c *Clicker) Init() error {
	if c.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(speakerBuffer)); err != nil {
		c.log.Warn("audio unavailable, typing will be silent", zap.Error(err))
		return err
	}
	c.ready = true
	return nil
}

func (c *Clicker) SetMuted(m bool) { c.muted = m }
func (c *Clicker) Muted() bool     { return c.muted }

// Len is the click length in samples.
func (c *Clicker) Len() int { return c.buf.Len() }

// Stream returns a fresh streamer over the click.
func (c *Clicker) Stream() beep.StreamSeeker {
	return c.buf.Streamer(0, c.buf.Len())
}

// Click plays one keystroke.
func (c *Clicker) Click() {
	if !c.ready || c.muted {
		return
	}
	speaker.Play(c.Stream())
}
