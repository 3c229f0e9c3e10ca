package intro

import (
	"testing"
	"time"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/schedule"
)

var testLines = []config.TerminalLine{
	{Text: "booting"},
	{Text: "$ whoami", Prompt: true},
	{Text: "dev"},
}

type harness struct {
	s         *schedule.Scheduler
	seq       *Sequence
	completed int
}

func newHarness() *harness {
	h := &harness{s: schedule.New()}
	h.seq = New(h.s, testLines)
	h.seq.OnComplete = func() { h.completed++ }
	h.seq.Start()
	return h
}

func (h *harness) run(d time.Duration) {
	const step = 10 * time.Millisecond
	for t := time.Duration(0); t < d; t += step {
		h.s.Advance(step)
		h.seq.Update(step)
	}
}

func TestLoadingPhase(t *testing.T) {
	h := newHarness()
	if h.seq.Phase() != PhaseLoading || h.seq.Done() {
		t.Fatal("should start loading")
	}
	if h.seq.TerminalOpacity() != 0 {
		t.Error("terminal hidden during loading")
	}

	h.run(1750 * time.Millisecond)
	if p := h.seq.LoadingProgress(); p < 0.49 || p > 0.51 {
		t.Errorf("progress at half time = %v", p)
	}
	if h.seq.Skip() {
		t.Error("skip must not apply during loading")
	}

	h.run(1750 * time.Millisecond)
	if h.seq.LoadingProgress() != 1 {
		t.Errorf("progress = %v", h.seq.LoadingProgress())
	}
	h.run(500 * time.Millisecond)
	if o := h.seq.LoadingOpacity(); o > 0.55 || o < 0.45 {
		t.Errorf("loading fade halfway = %v", o)
	}
	h.run(500 * time.Millisecond)
	if h.seq.Phase() != PhaseTerminal {
		t.Errorf("phase after loading = %v", h.seq.Phase())
	}
}

func TestTerminalLinesAndAutoProceed(t *testing.T) {
	h := newHarness()
	h.run(config.LoadingDuration + config.LoadingFade)

	lines := h.seq.Lines()
	if !lines[0].Visible || lines[0].Text != "booting" {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[1].Visible {
		t.Error("second line should wait 800ms")
	}

	h.run(800 * time.Millisecond)
	if l := h.seq.Lines()[1]; !l.Visible || l.Text != "$" {
		t.Errorf("prompt should start typing, got %+v", l)
	}
	h.run(time.Second)
	if l := h.seq.Lines()[1]; l.Text != "$ whoami" {
		t.Errorf("prompt typed = %q", l.Text)
	}

	h.run(config.TerminalAutoProceed - 1800*time.Millisecond)
	if h.seq.Done() {
		t.Fatal("done before fade")
	}
	h.run(config.TerminalFade)
	if !h.seq.Done() || h.completed != 1 {
		t.Errorf("done = %v, completed = %d", h.seq.Done(), h.completed)
	}
}

func TestSkip(t *testing.T) {
	h := newHarness()
	h.run(config.LoadingDuration + config.LoadingFade + 100*time.Millisecond)

	if !h.seq.Skip() {
		t.Fatal("skip rejected during terminal")
	}
	if h.seq.Skip() {
		t.Error("second skip should be ignored")
	}
	h.run(config.TerminalSkipFade)
	if !h.seq.Done() || h.completed != 1 {
		t.Fatalf("done = %v, completed = %d", h.seq.Done(), h.completed)
	}

	// The auto-proceed timer was cancelled, so completion happens once.
	h.run(10 * time.Second)
	if h.completed != 1 {
		t.Errorf("OnComplete ran %d times", h.completed)
	}
	if h.seq.Skip() {
		t.Error("skip after done should be ignored")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseLoading.String() != "loading" || PhaseTerminal.String() != "terminal" || PhaseDone.String() != "done" {
		t.Error("unexpected phase names")
	}
}
