package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Page layout
	HeroHeight    = 360
	SectionGap    = 48
	PagePadding   = 40
	ScrollStep    = 48
	CardHeight    = 96
	StatCardWidth = 200

	// Particle field
	ParticleDensity      = 16  // one particle per N pixels of width
	MobileBreakpoint     = 768 // narrower canvases get half the density
	MinParticles         = 12
	MaxParticles         = 80
	ParticleSpeed        = 0.25 // full spread of a velocity component, centred on 0
	ParticleMinRadius    = 0.5
	ParticleRadiusSpread = 1.5
	ConnectionDistance   = 120.0
	ConnectionMaxAlpha   = 0.06
	ConnectionWidth      = 0.5
	PointerRadius        = 100.0
	PointerForce         = 0.05
	Damping              = 0.95

	// Typewriter
	TypeSpeed      = 65 * time.Millisecond
	DeleteSpeed    = 35 * time.Millisecond
	PauseFull      = 2000 * time.Millisecond
	PauseBetween   = 500 * time.Millisecond
	TypewriterBoot = 1200 * time.Millisecond

	// Counters and reveals
	CounterDuration    = 2000 * time.Millisecond
	BarDuration        = 1200 * time.Millisecond
	RevealDuration     = 600 * time.Millisecond
	RevealThreshold    = 0.15
	RevealMarginBottom = -50.0
	RevealSlide        = 24.0
)
