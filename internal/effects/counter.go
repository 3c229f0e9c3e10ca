package effects

import (
	"math"
	"time"

	"github.com/iburimskiy/portfolio/internal/schedule"
)

// Counter counts up to Target in a fixed number of steps.
type Counter struct {
	Label   string
	Target  int
	current float64
	id      schedule.TaskID
}

// Start resets the counter and counts up to Target in steps ticks spaced by
// interval.
func (c *Counter) Start(sched *schedule.Scheduler, steps int, interval time.Duration) {
	if c.id != 0 {
		sched.Cancel(c.id)
	}
	if steps <= 0 {
		steps = 1
	}
	c.current = 0
	inc := float64(c.Target) / float64(steps)
	c.id = sched.Every(interval, func() bool {
		c.current += inc
		if c.current >= float64(c.Target) {
			c.current = float64(c.Target)
			c.id = 0
			return false
		}
		return true
	})
}

// Value is the displayed number.
func (c *Counter) Value() int { return int(math.Floor(c.current)) }

// Finished reports whether the counter reached its target.
func (c *Counter) Finished() bool { return c.current >= float64(c.Target) }
