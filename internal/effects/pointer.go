package effects

import (
	"time"

	"github.com/iburimskiy/portfolio/internal/schedule"
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Cursor is the ring that follows the pointer. Hover grows it over
// interactive elements.
type Cursor struct {
	X, Y  float64
	Hover bool
}

func (c *Cursor) Move(x, y float64) {
	c.X, c.Y = x, y
}

const tiltLift = 10

// Tilt is the hover tilt of a card, in degrees, plus a lift in pixels.
type Tilt struct {
	RotateX, RotateY float64
	Lift             float64
}

// Track updates the tilt for a pointer at (x, y) over card r. Outside the
// card the tilt resets.
func (t *Tilt) Track(r Rect, x, y float64) bool {
	if !r.Contains(x, y) {
		*t = Tilt{}
		return false
	}
	lx, ly := x-r.X, y-r.Y
	t.RotateX = (ly - r.H/2) / 10
	t.RotateY = (r.W/2 - lx) / 10
	t.Lift = tiltLift
	return true
}

const (
	pulseScale = 1.1
	pulseHold  = 300 * time.Millisecond
)

// Pulse briefly scales an element up after a click.
type Pulse struct {
	Scale float64
	id    schedule.TaskID
}

func (p *Pulse) Trigger(sched *schedule.Scheduler) {
	if p.id != 0 {
		sched.Cancel(p.id)
	}
	p.Scale = pulseScale
	p.id = sched.After(pulseHold, func() {
		p.Scale = 1
		p.id = 0
	})
}

// Factor returns the scale to draw with.
func (p *Pulse) Factor() float64 {
	if p.Scale == 0 {
		return 1
	}
	return p.Scale
}
