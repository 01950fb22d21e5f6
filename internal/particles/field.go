// Package particles simulates the hero background: slowly drifting dots that
// bounce off the canvas edges and shy away from the pointer.
//
// The simulation knows nothing about drawing. Render takes any Surface.
package particles

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/page-motion/internal/config"
)

// Config tunes the field. DefaultConfig mirrors the constants in the config
// package.
type Config struct {
	Density          int // one particle per Density pixels of width
	MobileBreakpoint int // below this width density is halved
	MinCount         int
	MaxCount         int

	Speed        float64 // full spread of each velocity component
	MinRadius    float64
	RadiusSpread float64

	PointerRadius float64
	PointerForce  float64
	Damping       float64 // applied to the deviation from cruise velocity

	Palette []color.NRGBA // alpha is the particle opacity
}

var DefaultPalette = []color.NRGBA{
	{R: 99, G: 102, B: 241, A: 89},  // indigo
	{R: 236, G: 72, B: 153, A: 64},  // fuchsia
	{R: 20, G: 184, B: 166, A: 51},  // teal
	{R: 255, G: 255, B: 255, A: 31}, // white
}

func DefaultConfig() Config {
	return Config{
		Density:          config.ParticleDensity,
		MobileBreakpoint: config.MobileBreakpoint,
		MinCount:         config.MinParticles,
		MaxCount:         config.MaxParticles,
		Speed:            config.ParticleSpeed,
		MinRadius:        config.ParticleMinRadius,
		RadiusSpread:     config.ParticleRadiusSpread,
		PointerRadius:    config.PointerRadius,
		PointerForce:     config.PointerForce,
		Damping:          config.Damping,
		Palette:          DefaultPalette,
	}
}

// Particle is a single dot. CruiseX/CruiseY is the drift velocity it relaxes
// back to after being pushed.
type Particle struct {
	X, Y             float64
	VX, VY           float64
	CruiseX, CruiseY float64
	Radius           float64
	Opacity          float64
	Color            int
}

// Speed is the magnitude of the particle's velocity.
func (p Particle) Speed() float64 { return math.Hypot(p.VX, p.VY) }

// Field is the particle set plus canvas extent and pointer state.
type Field struct {
	Particles     []Particle
	Width, Height int

	pointerX, pointerY float64
	hasPointer         bool

	cfg Config
	rng *rand.Rand
}

// Count is the particle count for a canvas width. It never decreases as width
// grows and is zero for a zero-width canvas.
func Count(width int, cfg Config) int {
	if width <= 0 || cfg.Density <= 0 {
		return 0
	}
	n := width / cfg.Density
	if width < cfg.MobileBreakpoint {
		n = width / (cfg.Density * 2)
	}
	if n < cfg.MinCount {
		n = cfg.MinCount
	}
	if cfg.MaxCount > 0 && n > cfg.MaxCount {
		n = cfg.MaxCount
	}
	return n
}

// New creates a field seeded from rng. A zero-area canvas gets no particles.
func New(width, height int, cfg Config, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	f := &Field{cfg: cfg, rng: rng}
	f.Resize(width, height)
	return f
}

func (f *Field) Config() Config { return f.cfg }

// Resize adopts the new extent and rebuilds the particle set for it.
func (f *Field) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.Width, f.Height = width, height
	f.Particles = f.Particles[:0]
	if width == 0 || height == 0 {
		return
	}
	n := Count(width, f.cfg)
	for i := 0; i < n; i++ {
		f.Particles = append(f.Particles, f.spawn())
	}
}

func (f *Field) spawn() Particle {
	vx := (f.rng.Float64() - 0.5) * f.cfg.Speed
	vy := (f.rng.Float64() - 0.5) * f.cfg.Speed
	ci := f.rng.Intn(len(f.cfg.Palette))
	return Particle{
		X:       f.rng.Float64() * float64(f.Width),
		Y:       f.rng.Float64() * float64(f.Height),
		VX:      vx,
		VY:      vy,
		CruiseX: vx,
		CruiseY: vy,
		Radius:  f.cfg.MinRadius + f.rng.Float64()*f.cfg.RadiusSpread,
		Opacity: float64(f.cfg.Palette[ci].A) / 255,
		Color:   ci,
	}
}

// SetPointer records the pointer position in canvas coordinates. The push is
// applied on the next Step.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY, f.hasPointer = x, y, true
}

// ClearPointer marks the pointer as outside the canvas.
func (f *Field) ClearPointer() { f.hasPointer = false }

func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

// Step advances every particle by one frame: integrate, reflect off the
// edges, push away from the pointer, then damp the push.
func (f *Field) Step() {
	w, h := float64(f.Width), float64(f.Height)
	for i := range f.Particles {
		p := &f.Particles[i]

		p.X += p.VX
		p.Y += p.VY
		p.X, p.VX, p.CruiseX = reflect(p.X, p.VX, p.CruiseX, w)
		p.Y, p.VY, p.CruiseY = reflect(p.Y, p.VY, p.CruiseY, h)

		if f.hasPointer {
			f.repel(p)
		}

		p.VX = p.CruiseX + (p.VX-p.CruiseX)*f.cfg.Damping
		p.VY = p.CruiseY + (p.VY-p.CruiseY)*f.cfg.Damping
	}
}

func (f *Field) repel(p *Particle) {
	r := f.cfg.PointerRadius
	if r <= 0 {
		return
	}
	dx, dy := p.X-f.pointerX, p.Y-f.pointerY
	d := math.Hypot(dx, dy)
	if d == 0 || d >= r {
		return
	}
	s := f.cfg.PointerForce * (1 - d/r)
	p.VX += dx / d * s
	p.VY += dy / d * s
}

// reflect mirrors a coordinate that left [0, limit] back inside and turns the
// velocity (and the cruise velocity with it) around.
func reflect(pos, v, cruise, limit float64) (float64, float64, float64) {
	switch {
	case pos < 0:
		pos, v, cruise = -pos, -v, -cruise
	case pos > limit:
		pos, v, cruise = 2*limit-pos, -v, -cruise
	}
	return min(max(pos, 0), limit), v, cruise
}
