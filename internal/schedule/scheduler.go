// Package schedule runs delayed and repeating actions against a clock that
// only moves when the game loop advances it. Sequences of timed steps are
// described as data and handed to the scheduler instead of being chained
// through nested callbacks.
package schedule

import (
	"sort"
	"time"
)

// TaskID identifies a scheduled task so it can be cancelled.
type TaskID uint64

// Step is one entry of a Sequence. Delay is measured from the previous step.
type Step struct {
	Delay  time.Duration
	Action func()
}

// Sequence is an ordered list of steps.
type Sequence []Step

// Total returns the time from start to the last step.
func (s Sequence) Total() time.Duration {
	var d time.Duration
	for _, st := range s {
		d += st.Delay
	}
	return d
}

type task struct {
	id       TaskID
	due      time.Duration
	interval time.Duration
	once     func()
	repeat   func() bool
}

// Scheduler is not safe for concurrent use; it is owned by the update loop.
type Scheduler struct {
	now    time.Duration
	nextID TaskID
	tasks  []*task
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending reports how many tasks are waiting to fire.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	if d < 0 {
		d = 0
	}
	return s.add(&task{due: s.now + d, once: fn})
}

// Every runs fn each interval until it returns false. The first call happens
// one interval from now.
func (s *Scheduler) Every(interval time.Duration, fn func() bool) TaskID {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(&task{due: s.now + interval, interval: interval, repeat: fn})
}

// Run schedules every step of seq, each relative to the one before it, and
// returns the ids in step order.
func (s *Scheduler) Run(seq Sequence) []TaskID {
	ids := make([]TaskID, 0, len(seq))
	at := time.Duration(0)
	for _, st := range seq {
		at += st.Delay
		ids = append(ids, s.After(at, st.Action))
	}
	return ids
}

// Cancel removes a pending task. Cancelling a fired or unknown task is a no-op.
func (s *Scheduler) Cancel(ids ...TaskID) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[TaskID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if _, ok := drop[t.id]; !ok {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// Clear drops every pending task.
func (s *Scheduler) Clear() {
	s.tasks = nil
}

// Advance moves the clock forward by dt and fires every task that became due,
// earliest first. Tasks with equal due times fire in the order they were
// scheduled. Tasks scheduled by a firing action are considered in the same
// call if they are already due.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
	for {
		t := s.popDue()
		if t == nil {
			return
		}
		if t.once != nil {
			t.once()
			continue
		}
		if t.repeat() {
			t.due += t.interval
			s.insert(t)
		}
	}
}

func (s *Scheduler) add(t *task) TaskID {
	s.nextID++
	t.id = s.nextID
	s.insert(t)
	return t.id
}

func (s *Scheduler) insert(t *task) {
	i := sort.Search(len(s.tasks), func(i int) bool {
		o := s.tasks[i]
		if o.due != t.due {
			return o.due > t.due
		}
		return o.id > t.id
	})
	s.tasks = append(s.tasks, nil)
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
}

func (s *Scheduler) popDue() *task {
	if len(s.tasks) == 0 || s.tasks[0].due > s.now {
		return nil
	}
	t := s.tasks[0]
	s.tasks[0] = nil
	s.tasks = s.tasks[1:]
	return t
}
