package effects

import (
	"time"

	"github.com/iburimskiy/portfolio/internal/schedule"
)

// Typewriter reveals a string one rune at a time. The first rune shows
// immediately.
type Typewriter struct {
	full  []rune
	n     int
	sched *schedule.Scheduler
	id    schedule.TaskID
}

func NewTypewriter(sched *schedule.Scheduler, text string, speed time.Duration) *Typewriter {
	tw := &Typewriter{full: []rune(text), sched: sched}
	if len(tw.full) == 0 {
		return tw
	}
	tw.n = 1
	if len(tw.full) > 1 {
		tw.id = sched.Every(speed, func() bool {
			tw.n++
			return tw.n < len(tw.full)
		})
	}
	return tw
}

func (tw *Typewriter) Text() string { return string(tw.full[:tw.n]) }

func (tw *Typewriter) Done() bool { return tw.n == len(tw.full) }

// Stop freezes the typewriter at its current text.
func (tw *Typewriter) Stop() {
	if tw.id != 0 {
		tw.sched.Cancel(tw.id)
	}
}

// Rotator types each message in turn, holds it, then starts the next one,
// cycling forever.
type Rotator struct {
	Messages []string
	Speed    time.Duration
	Hold     time.Duration
	Gap      time.Duration

	sched *schedule.Scheduler
	index int
	text  []rune
	n     int
	ids   []schedule.TaskID
}

func NewRotator(sched *schedule.Scheduler, messages []string, speed, hold, gap time.Duration) *Rotator {
	return &Rotator{
		Messages: messages,
		Speed:    speed,
		Hold:     hold,
		Gap:      gap,
		sched:    sched,
	}
}

// Start begins typing the first message after delay.
func (r *Rotator) Start(delay time.Duration) {
	if len(r.Messages) == 0 {
		return
	}
	r.Stop()
	r.index = 0
	r.ids = append(r.ids, r.sched.After(delay, r.typeMessage))
}

// Stop cancels any pending typing.
func (r *Rotator) Stop() {
	r.sched.Cancel(r.ids...)
	r.ids = r.ids[:0]
}

func (r *Rotator) typeMessage() {
	r.text = []rune(r.Messages[r.index])
	r.n = 0
	r.ids = append(r.ids[:0], r.sched.Every(r.Speed, func() bool {
		r.n++
		if r.n < len(r.text) {
			return true
		}
		r.ids = append(r.ids[:0], r.sched.Run(schedule.Sequence{
			{Delay: r.Hold, Action: func() { r.index = (r.index + 1) % len(r.Messages) }},
			{Delay: r.Gap, Action: r.typeMessage},
		})...)
		return false
	}))
}

// Text returns the currently typed part of the message.
func (r *Rotator) Text() string {
	if r.n > len(r.text) {
		return string(r.text)
	}
	return string(r.text[:r.n])
}

// Index returns the index of the message being shown.
func (r *Rotator) Index() int { return r.index }
