// Package particles simulates the background particle field: a fixed set of
// drifting points that are pulled gently toward the pointer, bounce off the
// canvas edges and are linked to their near neighbours.
package particles

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/portfolio/internal/config"
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64 // 0..1
	Hue     float64 // degrees
}

// Pointer is the last known pointer position in canvas coordinates.
type Pointer struct {
	X, Y float64
}

// Field owns the particles, the canvas extent and the pointer state. It is
// driven from a single update loop.
type Field struct {
	Particles []Particle
	Pointer   Pointer

	width, height float64
	rng           *rand.Rand
	running       bool
}

// NewField returns an empty field. rng may be nil.
func NewField(rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Field{rng: rng}
}

// Count returns the particle count for a viewport width: one particle per
// started ParticleSpacing pixels, capped at MaxParticles.
func Count(viewportWidth float64) int {
	n := int(math.Ceil(viewportWidth / config.ParticleSpacing))
	if n > config.MaxParticles {
		n = config.MaxParticles
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Initialize populates the field for a viewport and starts it. Any previous
// particles are discarded.
func (f *Field) Initialize(width, height float64) {
	f.width, f.height = width, height
	n := Count(width)
	f.Particles = make([]Particle, n)
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:       f.rng.Float64() * width,
			Y:       f.rng.Float64() * height,
			VX:      (f.rng.Float64() - 0.5) * config.ParticleSpeedRange,
			VY:      (f.rng.Float64() - 0.5) * config.ParticleSpeedRange,
			Radius:  f.rng.Float64()*2 + 0.5,
			Opacity: f.rng.Float64()*0.5 + 0.2,
			Hue:     f.rng.Float64()*60 + 180,
		}
	}
	f.running = true
}

// Resize changes the canvas extent. Particles keep their positions.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
}

// Size returns the canvas extent.
func (f *Field) Size() (float64, float64) { return f.width, f.height }

// Running reports whether the field is between Initialize and Teardown.
func (f *Field) Running() bool { return f.running }

// MovePointer records a pointer position.
func (f *Field) MovePointer(x, y float64) {
	f.Pointer = Pointer{X: x, Y: y}
}

// Tick advances the simulation by one frame.
func (f *Field) Tick() {
	if !f.running {
		return
	}
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		dx := f.Pointer.X - p.X
		dy := f.Pointer.Y - p.Y
		dist := math.Hypot(dx, dy)
		if dist < config.LinkDistance {
			force := (config.LinkDistance - dist) / config.LinkDistance
			p.VX += dx * force * config.PointerForce
			p.VY += dy * force * config.PointerForce
		}

		// Reflect toward the inside so a particle left outside by a resize
		// does not flip back and forth in place.
		if p.X < 0 {
			p.VX = math.Abs(p.VX)
		} else if p.X > f.width {
			p.VX = -math.Abs(p.VX)
		}
		if p.Y < 0 {
			p.VY = math.Abs(p.VY)
		} else if p.Y > f.height {
			p.VY = -math.Abs(p.VY)
		}
	}
}

// Teardown stops the field and drops all particles.
func (f *Field) Teardown() {
	f.Particles = nil
	f.running = false
}

// LinkAlpha is the opacity of the line joining two particles at distance d.
// It falls linearly from LinkMaxAlpha at 0 to 0 at LinkDistance.
func LinkAlpha(d float64) float64 {
	if d >= config.LinkDistance || d < 0 {
		return 0
	}
	return config.LinkMaxAlpha * (1 - d/config.LinkDistance)
}

// Link joins particle I to a later particle J.
type Link struct {
	I, J  int
	Alpha float64
}

// EachLink calls fn for every pair i < j closer than LinkDistance.
func (f *Field) EachLink(fn func(Link)) {
	ps := f.Particles
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if d < config.LinkDistance {
				fn(Link{I: i, J: j, Alpha: LinkAlpha(d)})
			}
		}
	}
}
