// Package effects implements the small timed animations around the
// portfolio: fades, typed text, counters, skill bars, staggered reveals,
// hover tilt, the cursor follower and toast notifications. All of them are
// driven by a schedule.Scheduler and an Update(dt) call from the game loop.
package effects

import (
	"math"
	"time"
)

// Fade moves Value linearly toward a target over a fixed duration.
type Fade struct {
	Value  float64
	target float64
	rate   float64 // units per second
}

// To starts moving toward target, arriving after d.
func (f *Fade) To(target float64, d time.Duration) {
	f.target = target
	if d <= 0 {
		f.Value = target
		f.rate = 0
		return
	}
	f.rate = math.Abs(target-f.Value) / d.Seconds()
}

// Set jumps to v and stops any movement.
func (f *Fade) Set(v float64) {
	f.Value, f.target, f.rate = v, v, 0
}

// Moving reports whether the fade has not reached its target.
func (f *Fade) Moving() bool { return f.rate > 0 && f.Value != f.target }

func (f *Fade) Update(dt time.Duration) {
	if f.rate == 0 {
		return
	}
	step := f.rate * dt.Seconds()
	if f.Value < f.target {
		f.Value = math.Min(f.Value+step, f.target)
	} else {
		f.Value = math.Max(f.Value-step, f.target)
	}
	if f.Value == f.target {
		f.rate = 0
	}
}
