package effects

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// settleFactor is omega*t at which a critically damped spring has closed
// 99% of the distance to its target.
const settleFactor = 6.6

const settleEpsilon = 1e-3

// SettleFrequency returns the angular frequency of a critically damped
// spring that settles in about d.
func SettleFrequency(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return settleFactor / d.Seconds()
}

// Follower moves Value toward a target on a critically damped spring. The
// spring is rebuilt when the frame delta changes.
type Follower struct {
	Value float64
	Freq  float64 // angular frequency; zero snaps to the target

	target float64
	vel    float64
	spring harmonica.Spring
	dt     time.Duration
}

func NewFollower(settle time.Duration) Follower {
	return Follower{Freq: SettleFrequency(settle)}
}

// Target returns the value being followed.
func (f *Follower) Target() float64 { return f.target }

// SetTarget starts following v from the current value and velocity.
func (f *Follower) SetTarget(v float64) { f.target = v }

// Snap jumps to v and stops.
func (f *Follower) Snap(v float64) {
	f.Value, f.target, f.vel = v, v, 0
}

// Settled reports whether the value rests on its target.
func (f *Follower) Settled() bool { return f.Value == f.target && f.vel == 0 }

func (f *Follower) Update(dt time.Duration) {
	if dt <= 0 || f.Settled() {
		return
	}
	if f.Freq <= 0 {
		f.Snap(f.target)
		return
	}
	if dt != f.dt {
		f.spring = harmonica.NewSpring(dt.Seconds(), f.Freq, 1)
		f.dt = dt
	}
	f.Value, f.vel = f.spring.Update(f.Value, f.vel, f.target)
	if math.Abs(f.Value-f.target) < settleEpsilon && math.Abs(f.vel) < settleEpsilon {
		f.Snap(f.target)
	}
}
