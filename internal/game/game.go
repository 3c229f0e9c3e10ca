// Package game is the ebiten.Game of the portfolio. It owns every piece of
// mutable state and is the only place where that state changes.
package game

import (
	"log"
	"math/rand"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/effects"
	"github.com/iburimskiy/portfolio/internal/form"
	"github.com/iburimskiy/portfolio/internal/intro"
	"github.com/iburimskiy/portfolio/internal/nav"
	"github.com/iburimskiy/portfolio/internal/particles"
	"github.com/iburimskiy/portfolio/internal/schedule"
	"github.com/iburimskiy/portfolio/internal/sound"
)

// Options configure a Game.
type Options struct {
	Settings config.Settings
	Content  *config.Content
	Watcher  *config.ContentWatcher // optional
	Rand     *rand.Rand             // optional
}

type Game struct {
	settings config.Settings
	content  *config.Content
	watcher  *config.ContentWatcher

	sched  *schedule.Scheduler
	field  *particles.Field
	nav    *nav.Navigator
	intro  *intro.Sequence
	form   *form.Form
	toasts *effects.Toaster
	sound  *sound.Output
	cursor effects.Cursor

	// main experience
	started      bool
	heroCode     *effects.Group
	counters     []*effects.Counter
	rotator      *effects.Rotator
	bars         *effects.Bars
	skillPulses  []effects.Pulse
	achievements *effects.Group
	hoverScale   []effects.Follower
	timeline     *effects.Group
	timelineSeen bool
	projects     *effects.Group
	tilts        []effects.Tilt
	highlights   *effects.Group
	actions      *effects.Group

	width, height int
	time          float64
	pulse         float64
	lastErr       error

	// notify mirrors success toasts on the desktop; openTrack asks for an
	// ambient track. Both are replaced in tests.
	notify    func(string)
	openTrack func() error
}

// New builds the game and starts the intro.
func New(opts Options) (*Game, error) {
	content := opts.Content
	if content == nil {
		content = config.DefaultContent()
	}
	w, h := opts.Settings.Width, opts.Settings.Height
	if w <= 0 || h <= 0 {
		w, h = config.WindowWidth, config.WindowHeight
	}

	g := &Game{
		settings: opts.Settings,
		content:  content,
		watcher:  opts.Watcher,
		sched:    schedule.New(),
		field:    particles.NewField(opts.Rand),
		sound:    sound.NewOutput(opts.Settings.Sound),
		width:    w,
		height:   h,
		pulse:    1,
	}
	g.notify = notifyDesktop
	g.openTrack = g.chooseTrack

	g.toasts = effects.NewToaster(g.sched)
	g.toasts.OnShow = func(t *effects.Toast) {
		if t.Kind == effects.KindSuccess && g.settings.DesktopNotify {
			g.notify(t.Message)
		}
	}
	g.form = form.New(g.sched, g.toasts)
	g.form.OnSubmit = func(name, email string) {
		log.Printf("[Form] message from %s <%s>", name, email)
		g.sound.Click()
	}

	if err := g.buildNavigator(""); err != nil {
		return nil, err
	}
	g.buildEffects()

	g.intro = intro.New(g.sched, content.Terminal)
	g.intro.OnComplete = g.startMainExperience
	g.intro.Start()

	g.field.Initialize(float64(w), float64(h))

	if opts.Settings.TrackPath != "" {
		if err := g.sound.PlayTrack(opts.Settings.TrackPath); err != nil {
			log.Printf("[Sound] ambient track: %v", err)
			g.lastErr = err
		}
	}
	return g, nil
}

// buildNavigator creates the navigator for the current content, starting at
// keep when it is still a section.
func (g *Game) buildNavigator(keep string) error {
	n, err := nav.New(g.content.Sections, g.sched)
	if err != nil {
		return err
	}
	n.OnSwitch = func(from, to string) {
		switch from {
		case "contact":
			g.form.Focus(-1)
		case "journey":
			for i := range g.hoverScale {
				g.hoverScale[i].SetTarget(1)
			}
		}
	}
	register := func(section string, delay time.Duration, fn func()) {
		if !slices.Contains(g.content.Sections, section) {
			return
		}
		if err := n.Register(section, delay, fn); err != nil {
			log.Printf("[Nav] register %s: %v", section, err)
		}
	}
	register("skills", 500*time.Millisecond, func() { g.bars.Animate(g.sched, config.SkillBarStagger) })
	register("journey", 0, g.revealJourney)
	register("projects", 400*time.Millisecond, func() { g.projects.Reveal(g.sched, 0, 200*time.Millisecond, 0, 50) })
	register("resume", 300*time.Millisecond, g.revealResume)

	if keep != "" && slices.Contains(g.content.Sections, keep) {
		if err := n.Jump(keep); err != nil {
			return err
		}
	}
	g.nav = n
	return nil
}

func (g *Game) buildEffects() {
	c := g.content
	g.heroCode = effects.NewGroup(len(c.HeroCode), 400*time.Millisecond)

	g.counters = make([]*effects.Counter, len(c.Stats))
	for i, s := range c.Stats {
		g.counters[i] = &effects.Counter{Label: s.Label, Target: s.Target}
	}

	if g.rotator != nil {
		g.rotator.Stop()
	}
	g.rotator = effects.NewRotator(g.sched, c.Messages, config.TypeSpeed, config.TypingHold, config.TypingGap)

	levels := make([]float64, len(c.Skills))
	for i, s := range c.Skills {
		levels[i] = float64(s.Level)
	}
	g.bars = effects.NewBars(levels)
	g.skillPulses = make([]effects.Pulse, len(c.Skills))

	g.achievements = effects.NewGroup(len(c.Achievements), 400*time.Millisecond)
	g.achievements.Hide(-50, 0)
	g.hoverScale = make([]effects.Follower, len(c.Achievements))
	for i := range g.hoverScale {
		g.hoverScale[i] = effects.NewFollower(300 * time.Millisecond)
		g.hoverScale[i].Snap(1)
	}
	g.timeline = effects.NewGroup(len(c.Timeline), 600*time.Millisecond)
	g.timeline.Hide(0, 30)
	g.timelineSeen = false
	g.projects = effects.NewGroup(len(c.Projects), 600*time.Millisecond)
	g.projects.Hide(0, 50)
	g.tilts = make([]effects.Tilt, len(c.Projects))
	g.highlights = effects.NewGroup(len(c.Highlights), 500*time.Millisecond)
	g.highlights.Hide(-30, 0)
	g.actions = effects.NewGroup(len(c.ResumeActions), 600*time.Millisecond)
	g.actions.Hide(0, 30)
}

// revealJourney shows the timeline the first time the section comes into
// view; achievements replay on every visit.
func (g *Game) revealJourney() {
	if !g.timelineSeen {
		g.timelineSeen = true
		g.timeline.Reveal(g.sched, 0, 100*time.Millisecond, 0, 30)
	}
	g.achievements.Reveal(g.sched, 300*time.Millisecond, 200*time.Millisecond, -50, 0)
}

func (g *Game) revealResume() {
	g.highlights.Reveal(g.sched, 0, 150*time.Millisecond, -30, 0)
	g.actions.Reveal(g.sched, 200*time.Millisecond, 200*time.Millisecond, 0, 30)
}

// startMainExperience runs once, when the intro hands over.
func (g *Game) startMainExperience() {
	if g.started {
		return
	}
	g.started = true
	log.Printf("[Game] main experience")

	g.heroCode.Reveal(g.sched, 0, 100*time.Millisecond, 0, 12)
	for _, c := range g.counters {
		c.Start(g.sched, config.CounterSteps, config.CounterInterval)
	}
	g.rotator.Start(config.TypingStartDelay)
	g.sched.After(config.SkillBarsDelay, func() { g.bars.Animate(g.sched, config.SkillBarStagger) })
}

// applyContent swaps in reloaded content. The current section is kept when
// it still exists; a reload during a transition waits for the next one.
func (g *Game) applyContent(c *config.Content) {
	if g.nav.Transitioning() {
		g.sched.After(config.SettleDelay, func() { g.applyContent(c) })
		return
	}
	current := g.nav.Current()
	g.content = c
	if err := g.buildNavigator(current); err != nil {
		log.Printf("[Config] rejected content: %v", err)
		g.lastErr = err
		return
	}
	g.buildEffects()
	if g.started {
		g.started = false
		g.startMainExperience()
	}
	g.toasts.Show("Content reloaded", effects.KindInfo)
}

// step advances every timed piece of state by dt.
func (g *Game) step(dt time.Duration) {
	g.time += dt.Seconds()
	g.sched.Advance(dt)
	g.intro.Update(dt)
	g.nav.Update(dt)
	g.toasts.Update(dt)
	g.heroCode.Update(dt)
	g.bars.Update(dt)
	g.achievements.Update(dt)
	for i := range g.hoverScale {
		g.hoverScale[i].Update(dt)
	}
	g.timeline.Update(dt)
	g.projects.Update(dt)
	g.highlights.Update(dt)
	g.actions.Update(dt)

	g.pulse = 1 + 1.5*g.sound.Level()
	g.field.Tick()
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case c, ok := <-g.watcher.Updates:
		if ok {
			g.applyContent(c)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("[Config] %v", err)
			g.lastErr = err
		}
	default:
	}
}

func (g *Game) Update() error {
	g.pollWatcher()
	if err := g.handleInput(); err != nil {
		return err
	}
	g.step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Layout follows the window so a resize reaches the particle field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.field.Resize(float64(w), float64(h))
}

// Close tears the game down.
func (g *Game) Close() error {
	g.sched.Clear()
	g.field.Teardown()
	g.sound.Close()
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
