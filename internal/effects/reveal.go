package effects

import (
	"time"

	"github.com/iburimskiy/portfolio/internal/schedule"
)

// Item is one element of a reveal group.
type Item struct {
	Opacity Fade
	DX, DY  Fade
}

// Group reveals its items one after another by fading them in and sliding
// them back into place.
type Group struct {
	Items    []Item
	Duration time.Duration
	ids      []schedule.TaskID
}

func NewGroup(n int, d time.Duration) *Group {
	return &Group{Items: make([]Item, n), Duration: d}
}

// Hide puts every item at zero opacity, offset by (dx, dy).
func (g *Group) Hide(dx, dy float64) {
	for i := range g.Items {
		it := &g.Items[i]
		it.Opacity.Set(0)
		it.DX.Set(dx)
		it.DY.Set(dy)
	}
}

// Reveal hides the items and brings item i back start + i*stagger from now.
func (g *Group) Reveal(sched *schedule.Scheduler, start, stagger time.Duration, dx, dy float64) {
	sched.Cancel(g.ids...)
	g.ids = g.ids[:0]
	g.Hide(dx, dy)
	for i := range g.Items {
		it := &g.Items[i]
		g.ids = append(g.ids, sched.After(start+time.Duration(i)*stagger, func() {
			it.Opacity.To(1, g.Duration)
			it.DX.To(0, g.Duration)
			it.DY.To(0, g.Duration)
		}))
	}
}

func (g *Group) Update(dt time.Duration) {
	for i := range g.Items {
		it := &g.Items[i]
		it.Opacity.Update(dt)
		it.DX.Update(dt)
		it.DY.Update(dt)
	}
}
