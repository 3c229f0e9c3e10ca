// Package config holds the window and visual constants, the runtime settings
// read from the environment, and the portfolio content document.
package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Particle field
	MaxParticles       = 150
	ParticleSpacing    = 10
	LinkDistance       = 100.0
	PointerForce       = 0.001
	LinkMaxAlpha       = 0.1
	ParticleSpeedRange = 0.5

	// Navigation
	RetireDelay  = 400 * time.Millisecond
	SettleDelay  = 800 * time.Millisecond
	SlideSeconds = 0.4

	// Intro
	LoadingDuration     = 3500 * time.Millisecond
	LoadingFade         = 1000 * time.Millisecond
	TerminalLineStagger = 800 * time.Millisecond
	TerminalAutoProceed = 8000 * time.Millisecond
	TerminalFade        = 1000 * time.Millisecond
	TerminalSkipFade    = 500 * time.Millisecond
	TypeSpeed           = 100 * time.Millisecond

	// Main experience
	SkillBarsDelay   = 1000 * time.Millisecond
	SkillBarStagger  = 200 * time.Millisecond
	TypingStartDelay = 2000 * time.Millisecond
	TypingHold       = 3000 * time.Millisecond
	TypingGap        = 1000 * time.Millisecond
	CounterSteps     = 50
	CounterInterval  = 50 * time.Millisecond

	// Toasts and form
	ToastEnter       = 100 * time.Millisecond
	ToastLifetime    = 5000 * time.Millisecond
	ToastExit        = 300 * time.Millisecond
	SubmitDelay      = 2000 * time.Millisecond
	SubmitResetDelay = 3000 * time.Millisecond

	// Audio
	SampleRate      = 44100
	SmoothingFactor = 0.6
	VisualRingSize  = 8192
)
