// Package intro runs the one-shot start-up sequence: a loading bar, then a
// terminal that prints a few lines before handing over to the portfolio.
package intro

import (
	"log"
	"time"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/effects"
	"github.com/iburimskiy/portfolio/internal/schedule"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseTerminal
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseTerminal:
		return "terminal"
	default:
		return "done"
	}
}

// Line is a terminal line as currently displayed.
type Line struct {
	Visible bool
	Text    string
}

// Sequence is the intro state machine. Interaction with the rest of the
// application is gated until it reaches PhaseDone.
type Sequence struct {
	sched *schedule.Scheduler
	lines []config.TerminalLine
	shown []Line
	typer []*effects.Typewriter

	phase       Phase
	elapsed     time.Duration
	loadingFade effects.Fade
	termFade    effects.Fade
	exiting     bool
	autoIDs     []schedule.TaskID

	// OnComplete runs once when the intro ends, by timeout or skip.
	OnComplete func()
}

func New(sched *schedule.Scheduler, lines []config.TerminalLine) *Sequence {
	return &Sequence{
		sched:       sched,
		lines:       lines,
		shown:       make([]Line, len(lines)),
		typer:       make([]*effects.Typewriter, len(lines)),
		loadingFade: effects.Fade{Value: 1},
	}
}

// Start schedules the loading phase.
func (s *Sequence) Start() {
	s.sched.Run(schedule.Sequence{
		{Delay: config.LoadingDuration, Action: func() {
			s.loadingFade.To(0, config.LoadingFade)
		}},
		{Delay: config.LoadingFade, Action: s.startTerminal},
	})
}

func (s *Sequence) startTerminal() {
	s.phase = PhaseTerminal
	s.termFade = effects.Fade{Value: 1}
	log.Printf("[Intro] terminal")

	for i := range s.lines {
		i := i
		s.sched.After(time.Duration(i)*config.TerminalLineStagger, func() { s.showLine(i) })
	}
	s.autoIDs = s.sched.Run(schedule.Sequence{
		{Delay: config.TerminalAutoProceed, Action: func() { s.exit(config.TerminalFade) }},
	})
}

func (s *Sequence) showLine(i int) {
	if s.phase != PhaseTerminal {
		return
	}
	s.shown[i].Visible = true
	if !s.lines[i].Prompt {
		s.shown[i].Text = s.lines[i].Text
		return
	}
	s.typer[i] = effects.NewTypewriter(s.sched, s.lines[i].Text, config.TypeSpeed)
}

// Skip ends the terminal phase early. It only applies while the terminal is
// showing and before an exit has started.
func (s *Sequence) Skip() bool {
	if s.phase != PhaseTerminal || s.exiting {
		return false
	}
	log.Printf("[Intro] skipped")
	s.exit(config.TerminalSkipFade)
	return true
}

func (s *Sequence) exit(fade time.Duration) {
	if s.exiting {
		return
	}
	s.exiting = true
	s.sched.Cancel(s.autoIDs...)
	s.termFade.To(0, fade)
	s.sched.After(fade, s.finish)
}

func (s *Sequence) finish() {
	s.phase = PhaseDone
	log.Printf("[Intro] done")
	if s.OnComplete != nil {
		s.OnComplete()
	}
}

// Update advances the fades and the loading bar.
func (s *Sequence) Update(dt time.Duration) {
	if s.phase == PhaseLoading {
		s.elapsed += dt
	}
	s.loadingFade.Update(dt)
	s.termFade.Update(dt)
}

func (s *Sequence) Phase() Phase { return s.phase }

// Done reports whether interaction is unlocked.
func (s *Sequence) Done() bool { return s.phase == PhaseDone }

// LoadingProgress is the loading bar fill, 0..1.
func (s *Sequence) LoadingProgress() float64 {
	p := float64(s.elapsed) / float64(config.LoadingDuration)
	if p > 1 {
		p = 1
	}
	return p
}

// LoadingOpacity is the loading screen opacity.
func (s *Sequence) LoadingOpacity() float64 { return s.loadingFade.Value }

// TerminalOpacity is the terminal opacity; 0 before the terminal phase.
func (s *Sequence) TerminalOpacity() float64 {
	if s.phase == PhaseLoading {
		return 0
	}
	return s.termFade.Value
}

// Lines returns the terminal lines with typed prompts resolved.
func (s *Sequence) Lines() []Line {
	out := make([]Line, len(s.shown))
	for i, l := range s.shown {
		out[i] = l
		if tw := s.typer[i]; tw != nil {
			out[i].Text = tw.Text()
		}
	}
	return out
}
