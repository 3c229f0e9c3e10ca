package effects

import (
	"time"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/schedule"
)

type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Toast is a transient notification. Slide is 1 when fully off screen and 0
// when fully shown.
type Toast struct {
	Message string
	Kind    Kind
	Slide   Fade
}

// Toaster shows toasts and removes them when they expire.
type Toaster struct {
	sched  *schedule.Scheduler
	toasts []*Toast

	// OnShow is called for every toast as it is created.
	OnShow func(*Toast)
}

func NewToaster(sched *schedule.Scheduler) *Toaster {
	return &Toaster{sched: sched}
}

func (t *Toaster) Show(message string, kind Kind) *Toast {
	n := &Toast{Message: message, Kind: kind}
	n.Slide.Set(1)
	t.toasts = append(t.toasts, n)

	t.sched.After(config.ToastEnter, func() { n.Slide.To(0, config.ToastExit) })
	t.sched.Run(schedule.Sequence{
		{Delay: config.ToastLifetime, Action: func() { n.Slide.To(1, config.ToastExit) }},
		{Delay: config.ToastExit, Action: func() { t.remove(n) }},
	})
	if t.OnShow != nil {
		t.OnShow(n)
	}
	return n
}

func (t *Toaster) remove(n *Toast) {
	for i, o := range t.toasts {
		if o == n {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the toasts on screen, oldest first.
func (t *Toaster) Active() []*Toast { return t.toasts }

func (t *Toaster) Update(dt time.Duration) {
	for _, n := range t.toasts {
		n.Slide.Update(dt)
	}
}
