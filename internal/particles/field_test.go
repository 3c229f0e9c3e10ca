package particles

import (
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/portfolio/internal/config"
)

func newTestField(seed int64) *Field {
	return NewField(rand.New(rand.NewSource(seed)))
}

func TestCount(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{-20, 0},
		{0, 0},
		{95, 10},
		{800, 80},
		{1005, 101},
		{1491, 150},
		{1500, 150},
		{3840, 150},
	}
	for _, tt := range tests {
		if got := Count(tt.width); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestInitializeRanges(t *testing.T) {
	f := newTestField(1)
	f.Initialize(1000, 600)

	if len(f.Particles) != 100 {
		t.Fatalf("expected 100 particles, got %d", len(f.Particles))
	}
	for i, p := range f.Particles {
		if p.X < 0 || p.X > 1000 || p.Y < 0 || p.Y > 600 {
			t.Errorf("particle %d outside canvas: (%v, %v)", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > 0.25 || math.Abs(p.VY) > 0.25 {
			t.Errorf("particle %d velocity too large: (%v, %v)", i, p.VX, p.VY)
		}
		if p.Radius < 0.5 || p.Radius >= 2.5 {
			t.Errorf("particle %d radius %v", i, p.Radius)
		}
		if p.Opacity < 0.2 || p.Opacity >= 0.7 {
			t.Errorf("particle %d opacity %v", i, p.Opacity)
		}
		if p.Hue < 180 || p.Hue >= 240 {
			t.Errorf("particle %d hue %v", i, p.Hue)
		}
	}
	if !f.Running() {
		t.Error("field should be running after Initialize")
	}
}

func TestResizeKeepsPositions(t *testing.T) {
	f := newTestField(2)
	f.Initialize(500, 500)
	before := append([]Particle(nil), f.Particles...)

	f.Resize(300, 200)

	if w, h := f.Size(); w != 300 || h != 200 {
		t.Errorf("Size() = %v, %v", w, h)
	}
	for i := range before {
		if before[i] != f.Particles[i] {
			t.Fatalf("particle %d changed on resize", i)
		}
	}
}

func TestTickMovesByVelocity(t *testing.T) {
	f := newTestField(3)
	f.Resize(1000, 1000)
	f.running = true
	f.Pointer = Pointer{X: -1000, Y: -1000}
	f.Particles = []Particle{{X: 500, Y: 500, VX: 0.2, VY: -0.1}}

	f.Tick()

	p := f.Particles[0]
	if math.Abs(p.X-500.2) > 1e-9 || math.Abs(p.Y-499.9) > 1e-9 {
		t.Errorf("position = (%v, %v)", p.X, p.Y)
	}
	if p.VX != 0.2 || p.VY != -0.1 {
		t.Errorf("velocity changed without pointer: (%v, %v)", p.VX, p.VY)
	}
}

func TestPointerAttraction(t *testing.T) {
	f := newTestField(4)
	f.Resize(1000, 1000)
	f.running = true
	f.Particles = []Particle{{X: 500, Y: 500}}
	f.MovePointer(550, 500)

	f.Tick()

	// dx = 50, force = (100-50)/100 = 0.5, impulse = 50 * 0.5 * 0.001
	want := 0.025
	if got := f.Particles[0].VX; math.Abs(got-want) > 1e-12 {
		t.Errorf("VX = %v, want %v", got, want)
	}
	if f.Particles[0].VY != 0 {
		t.Errorf("VY = %v, want 0", f.Particles[0].VY)
	}

	// Outside the threshold nothing happens.
	f.Particles = []Particle{{X: 500, Y: 500}}
	f.MovePointer(600, 500)
	f.Tick()
	if f.Particles[0].VX != 0 {
		t.Errorf("VX = %v beyond threshold", f.Particles[0].VX)
	}
}

func TestBoundaryReflection(t *testing.T) {
	f := newTestField(5)
	f.Resize(100, 100)
	f.running = true
	f.Pointer = Pointer{X: -1000, Y: -1000}
	f.Particles = []Particle{
		{X: 99.9, Y: 50, VX: 0.3},
		{X: 50, Y: 0.1, VY: -0.3},
	}

	f.Tick()
	if f.Particles[0].VX >= 0 {
		t.Errorf("right edge: VX = %v, want negative", f.Particles[0].VX)
	}
	if f.Particles[1].VY <= 0 {
		t.Errorf("top edge: VY = %v, want positive", f.Particles[1].VY)
	}

	f.Tick()
	if x := f.Particles[0].X; x < 0 || x > 100 {
		t.Errorf("particle escaped horizontally: x = %v", x)
	}
	if y := f.Particles[1].Y; y < 0 || y > 100 {
		t.Errorf("particle escaped vertically: y = %v", y)
	}
}

func TestParticlesStayInBounds(t *testing.T) {
	f := newTestField(6)
	f.Initialize(400, 300)
	f.MovePointer(200, 150)
	const slack = 3.0 // at most one frame of travel past an edge
	for frame := 0; frame < 2000; frame++ {
		f.Tick()
		for i, p := range f.Particles {
			if p.X < -slack || p.X > 400+slack || p.Y < -slack || p.Y > 300+slack {
				t.Fatalf("frame %d: particle %d escaped to (%v, %v)", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestShrinkResizeReturnsParticles(t *testing.T) {
	f := newTestField(7)
	f.Resize(100, 100)
	f.running = true
	f.Pointer = Pointer{X: -1000, Y: -1000}
	f.Particles = []Particle{{X: 150, Y: 50, VX: 0.5}}

	for i := 0; i < 200; i++ {
		f.Tick()
	}
	if x := f.Particles[0].X; x > 100 {
		t.Errorf("particle did not come back inside after shrink: x = %v", x)
	}
}

func TestLinkAlpha(t *testing.T) {
	if got := LinkAlpha(0); got != config.LinkMaxAlpha {
		t.Errorf("LinkAlpha(0) = %v", got)
	}
	if got := LinkAlpha(config.LinkDistance); got != 0 {
		t.Errorf("LinkAlpha(threshold) = %v, want 0", got)
	}
	if got := LinkAlpha(150); got != 0 {
		t.Errorf("LinkAlpha(150) = %v, want 0", got)
	}
	prev := LinkAlpha(0)
	for d := 1.0; d < config.LinkDistance; d++ {
		a := LinkAlpha(d)
		if a >= prev {
			t.Fatalf("LinkAlpha not decreasing at %v: %v >= %v", d, a, prev)
		}
		prev = a
	}
}

func TestEachLink(t *testing.T) {
	f := newTestField(8)
	f.Particles = []Particle{
		{X: 0, Y: 0},
		{X: 50, Y: 0},
		{X: 300, Y: 0},
		{X: 0, Y: 99.9},
	}
	var links []Link
	f.EachLink(func(l Link) { links = append(links, l) })

	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d: %+v", len(links), links)
	}
	if links[0].I != 0 || links[0].J != 1 {
		t.Errorf("first link = %+v", links[0])
	}
	if math.Abs(links[0].Alpha-0.05) > 1e-12 {
		t.Errorf("alpha at 50 = %v, want 0.05", links[0].Alpha)
	}
	for _, l := range links {
		if l.I >= l.J {
			t.Errorf("link not ordered: %+v", l)
		}
	}
}

func TestTeardown(t *testing.T) {
	f := newTestField(9)
	f.Initialize(800, 600)
	f.Teardown()
	if len(f.Particles) != 0 || f.Running() {
		t.Error("teardown should clear particles and stop the field")
	}
	f.Tick()
}

func TestHSLA(t *testing.T) {
	c := HSLA(240, 1)
	if c.R != 0 || c.G != 0 || c.B != 255 || c.A != 255 {
		t.Errorf("HSLA(240, 1) = %+v", c)
	}
	if c := HSLA(180, 0.5); c.A != 128 {
		t.Errorf("alpha = %d, want 128", c.A)
	}
}
