// Package nav switches between the portfolio sections. One section is shown
// at a time; a switch retires the current section, activates the target after
// a short delay and blocks further switches until the transition settles.
package nav

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/effects"
	"github.com/iburimskiy/portfolio/internal/schedule"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrEmptyOrder     = errors.New("section order is empty")
)

// View is the on-screen state of one section. Offset is measured in screen
// widths: 0 is in place, -1 is fully off to the left.
type View struct {
	Active  bool
	Offset  float64
	Opacity float64

	offset  effects.Follower
	opacity effects.Follower
}

func newView() *View {
	slide := time.Duration(config.SlideSeconds * float64(time.Second))
	return &View{
		offset:  effects.NewFollower(slide),
		opacity: effects.NewFollower(slide),
	}
}

// place shows or hides the view at once.
func (v *View) place(active bool, offset, opacity float64) {
	v.Active = active
	v.offset.Snap(offset)
	v.opacity.Snap(opacity)
	v.Offset, v.Opacity = offset, opacity
}

type animation struct {
	delay time.Duration
	fn    func()
}

// Navigator is owned by the update loop and is not safe for concurrent use.
type Navigator struct {
	order         []string
	index         map[string]int
	current       string
	transitioning bool
	views         map[string]*View
	animations    map[string]animation
	sched         *schedule.Scheduler

	// OnSwitch is called when a switch is accepted, before any delay.
	OnSwitch func(from, to string)
}

// New returns a navigator showing the first section of order.
func New(order []string, sched *schedule.Scheduler) (*Navigator, error) {
	if len(order) == 0 {
		return nil, ErrEmptyOrder
	}
	n := &Navigator{
		order:      append([]string(nil), order...),
		index:      make(map[string]int, len(order)),
		views:      make(map[string]*View, len(order)),
		animations: make(map[string]animation),
		sched:      sched,
	}
	for i, s := range n.order {
		if _, dup := n.index[s]; dup {
			return nil, fmt.Errorf("duplicate section %q", s)
		}
		n.index[s] = i
		n.views[s] = newView()
	}
	n.current = n.order[0]
	n.views[n.current].place(true, 0, 1)
	return n, nil
}

// Current returns the selected section. It changes as soon as a switch is
// accepted, not when the transition finishes.
func (n *Navigator) Current() string { return n.current }

// Transitioning reports whether a switch is in flight.
func (n *Navigator) Transitioning() bool { return n.transitioning }

// Order returns the section order.
func (n *Navigator) Order() []string { return append([]string(nil), n.order...) }

// View returns the view state of a section, or nil for an unknown name.
func (n *Navigator) View(section string) *View { return n.views[section] }

// Register sets the animation run delay after section becomes active,
// replacing any previous one.
func (n *Navigator) Register(section string, delay time.Duration, fn func()) error {
	if _, ok := n.index[section]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if fn == nil {
		delete(n.animations, section)
		return nil
	}
	n.animations[section] = animation{delay: delay, fn: fn}
	return nil
}

// RequestSwitch starts a transition to target. It returns false without
// error when target is already current or another transition is running.
func (n *Navigator) RequestSwitch(target string) (bool, error) {
	if _, ok := n.index[target]; !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, target)
	}
	if n.transitioning || target == n.current {
		return false, nil
	}

	from := n.current
	n.transitioning = true
	n.current = target
	log.Printf("[Nav] %s -> %s", from, target)

	if n.OnSwitch != nil {
		n.OnSwitch(from, target)
	}

	out := n.views[from]
	out.offset.SetTarget(-1)
	out.opacity.SetTarget(0)

	n.sched.Run(schedule.Sequence{
		{Delay: config.RetireDelay, Action: func() { n.activate(from, target) }},
		{Delay: config.SettleDelay, Action: func() { n.transitioning = false }},
	})
	return true, nil
}

func (n *Navigator) activate(from, target string) {
	n.views[from].place(false, 0, 0)
	n.views[target].place(true, 0, 1)

	if a, ok := n.animations[target]; ok {
		n.sched.After(a.delay, a.fn)
	}
}

// Jump shows section at once, without a transition or its animation. It
// fails while a transition is running.
func (n *Navigator) Jump(section string) error {
	if _, ok := n.index[section]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if n.transitioning {
		return errors.New("transition in progress")
	}
	for name, v := range n.views {
		if name == section {
			v.place(true, 0, 1)
		} else {
			v.place(false, 0, 0)
		}
	}
	n.current = section
	return nil
}

// Next switches to the section after the current one, wrapping to the first.
func (n *Navigator) Next() (bool, error) {
	return n.step(1)
}

// Prev switches to the section before the current one, wrapping to the last.
func (n *Navigator) Prev() (bool, error) {
	return n.step(-1)
}

func (n *Navigator) step(delta int) (bool, error) {
	if n.transitioning {
		return false, nil
	}
	l := len(n.order)
	i := (n.index[n.current] + delta%l + l) % l
	return n.RequestSwitch(n.order[i])
}

// Update moves every view toward its target by dt.
func (n *Navigator) Update(dt time.Duration) {
	for _, v := range n.views {
		v.offset.Update(dt)
		v.opacity.Update(dt)
		v.Offset, v.Opacity = v.offset.Value, v.opacity.Value
	}
}
