package effects

import (
	"time"

	"github.com/iburimskiy/portfolio/internal/schedule"
)

const barFill = 1500 * time.Millisecond

// Bars are skill level bars. Animate sets each bar to its level in turn and
// the drawn width follows on a spring.
type Bars struct {
	Levels []float64 // percent
	widths []Follower
}

func NewBars(levels []float64) *Bars {
	b := &Bars{
		Levels: levels,
		widths: make([]Follower, len(levels)),
	}
	for i := range b.widths {
		b.widths[i] = NewFollower(barFill)
	}
	return b
}

// Animate sets bar i to its level after i*stagger.
func (b *Bars) Animate(sched *schedule.Scheduler, stagger time.Duration) {
	for i := range b.Levels {
		i := i
		sched.After(time.Duration(i)*stagger, func() {
			b.widths[i].SetTarget(b.Levels[i])
		})
	}
}

func (b *Bars) Update(dt time.Duration) {
	for i := range b.widths {
		b.widths[i].Update(dt)
	}
}

// Width returns the drawn width of bar i in percent.
func (b *Bars) Width(i int) float64 { return b.widths[i].Value }

// Len returns the number of bars.
func (b *Bars) Len() int { return len(b.Levels) }
