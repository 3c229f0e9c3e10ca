package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio/internal/effects"
)

// handleInput reads this frame's input and routes it.
func (g *Game) handleInput() error {
	mx, my := ebiten.CursorPosition()
	g.pointerMoved(float64(mx), float64(my))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.form.Focused() != nil {
		g.form.Type(ebiten.AppendInputChars(nil))
		if repeatPressed(ebiten.KeyBackspace) {
			g.form.Backspace()
		}
	}

	for _, k := range []ebiten.Key{
		ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace, ebiten.KeyTab,
		ebiten.KeyArrowRight, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowUp,
		ebiten.KeyM, ebiten.KeyT,
	} {
		if inpututil.IsKeyJustPressed(k) {
			g.keyPressed(k)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(float64(mx), float64(my))
	}
	return nil
}

func repeatPressed(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 30 && d%3 == 0)
}

func (g *Game) pointerMoved(x, y float64) {
	g.cursor.Move(x, y)
	g.field.MovePointer(x, y)
	g.cursor.Hover = g.intro.Done() && g.overInteractive(x, y)

	switch g.nav.Current() {
	case "projects":
		for i, r := range projectCardRects(float64(g.width), len(g.tilts)) {
			g.tilts[i].Track(r, x, y)
		}
	case "journey":
		for i, a := range g.content.Achievements {
			scale := 1.0
			if a.Unlocked && achievementRect(float64(g.width), i).Contains(x, y) {
				scale = achievementHover
			}
			g.hoverScale[i].SetTarget(scale)
		}
	}
}

func (g *Game) keyPressed(k ebiten.Key) {
	if !g.intro.Done() {
		if k == ebiten.KeyEnter || k == ebiten.KeyNumpadEnter || k == ebiten.KeySpace {
			g.intro.Skip()
		}
		return
	}

	if f := g.form.Focused(); f != nil {
		switch k {
		case ebiten.KeyTab:
			g.form.FocusNext()
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			if f.Multiline {
				g.form.Type([]rune{'\n'})
			} else {
				g.form.Submit()
			}
		}
		// Typing owns the keyboard while a field is focused.
		return
	}

	var err error
	switch k {
	case ebiten.KeyArrowRight, ebiten.KeyArrowDown:
		_, err = g.nav.Next()
	case ebiten.KeyArrowLeft, ebiten.KeyArrowUp:
		_, err = g.nav.Prev()
	case ebiten.KeyTab:
		if g.nav.Current() == "contact" {
			g.form.Focus(0)
		}
	case ebiten.KeyM:
		on := g.sound.Toggle()
		log.Printf("[Sound] enabled=%v", on)
	case ebiten.KeyT:
		err = g.openTrack()
	}
	if err != nil {
		g.lastErr = err
	}
}

func (g *Game) click(x, y float64) {
	if !g.intro.Done() {
		g.intro.Skip()
		return
	}

	w, h := float64(g.width), float64(g.height)
	for i, r := range orbRects(w, h, len(g.nav.Order())) {
		if r.Contains(x, y) {
			g.switchTo(g.nav.Order()[i])
			return
		}
	}

	switch g.nav.Current() {
	case "skills":
		for i := range g.skillPulses {
			if skillNodeRect(i).Contains(x, y) {
				g.skillPulses[i].Trigger(g.sched)
				g.sound.Click()
				return
			}
		}
	case "contact":
		fields := formFieldRects(w, g.multiline())
		for i, r := range fields {
			if r.Contains(x, y) {
				g.form.Focus(i)
				return
			}
		}
		if submitRect(w, fields).Contains(x, y) {
			g.form.Focus(-1)
			g.form.Submit()
			return
		}
		g.form.Focus(-1)
	case "resume":
		top := g.resumeActionsTop()
		for i, r := range actionCardRects(w, top, len(g.content.ResumeActions)) {
			if r.Contains(x, y) {
				g.resumeAction(i)
				return
			}
		}
	}
}

// switchTo handles a nav orb click.
func (g *Game) switchTo(section string) {
	ok, err := g.nav.RequestSwitch(section)
	if err != nil {
		g.lastErr = err
		return
	}
	if ok {
		g.sound.Click()
	}
}

func (g *Game) resumeAction(i int) {
	g.sound.Click()
	if i == len(g.content.ResumeActions)-1 && g.nav.View("contact") != nil {
		g.switchTo("contact")
		return
	}
	g.toasts.Show(g.content.Owner.Name+" · "+g.content.Owner.Title+" · "+g.content.Owner.Email, effects.KindInfo)
}

func (g *Game) multiline() []bool {
	out := make([]bool, len(g.form.Fields))
	for i, f := range g.form.Fields {
		out[i] = f.Multiline
	}
	return out
}

func (g *Game) resumeActionsTop() float64 {
	return contentTop + float64(len(g.content.Highlights))*40 + 40
}

func (g *Game) overInteractive(x, y float64) bool {
	w, h := float64(g.width), float64(g.height)
	for _, r := range orbRects(w, h, len(g.nav.Order())) {
		if r.Contains(x, y) {
			return true
		}
	}
	switch g.nav.Current() {
	case "skills":
		for i := range g.skillPulses {
			if skillNodeRect(i).Contains(x, y) {
				return true
			}
		}
	case "projects":
		for _, r := range projectCardRects(w, len(g.content.Projects)) {
			if r.Contains(x, y) {
				return true
			}
		}
	case "journey":
		for i, a := range g.content.Achievements {
			if a.Unlocked && achievementRect(w, i).Contains(x, y) {
				return true
			}
		}
	case "contact":
		fields := formFieldRects(w, g.multiline())
		for _, r := range fields {
			if r.Contains(x, y) {
				return true
			}
		}
		return submitRect(w, fields).Contains(x, y)
	case "resume":
		for _, r := range actionCardRects(w, g.resumeActionsTop(), len(g.content.ResumeActions)) {
			if r.Contains(x, y) {
				return true
			}
		}
	}
	return false
}
