package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/iburimskiy/portfolio/internal/effects"
	"github.com/iburimskiy/portfolio/internal/form"
)

var (
	accent     = colornames.Deepskyblue
	accentAlt  = colornames.Mediumorchid
	textColor  = colornames.Whitesmoke
	mutedColor = colornames.Lightslategray
	panelColor = color.RGBA{R: 20, G: 25, B: 35, A: 200}
	borderCol  = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	validColor = colornames.Mediumseagreen
	errorColor = colornames.Tomato
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.field.Draw(screen, g.pulse)

	for _, name := range g.nav.Order() {
		v := g.nav.View(name)
		if v == nil || v.Opacity <= 0 {
			continue
		}
		g.drawSection(screen, name, v.Offset*float64(g.width), v.Opacity)
	}
	g.drawOrbs(screen)

	g.drawToasts(screen)
	g.drawIntro(screen)
	g.drawCursor(screen)

	status := "Arrows: sections | Tab: form | M: sound | T: track | Esc: quit"
	if !g.intro.Done() {
		status = "Enter / Space / click to skip"
	}
	status += " | " + formatDuration(time.Duration(g.time*float64(time.Second)))
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	h := float32(g.height)
	for y := float32(0); y < h; y += 4 {
		ratio := float64(y / h)
		r := uint8(8 + 10*math.Sin(g.time*0.2+ratio*math.Pi))
		gv := uint8(10 + 8*math.Cos(g.time*0.15+ratio*math.Pi))
		b := uint8(22 + 14*math.Sin(g.time*0.25+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, y, float32(g.width), 4, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawSection(screen *ebiten.Image, name string, dx, alpha float64) {
	switch name {
	case "hero":
		g.drawHero(screen, dx, alpha)
	case "about":
		g.drawAbout(screen, dx, alpha)
	case "skills":
		g.drawSkills(screen, dx, alpha)
	case "journey":
		g.drawJourney(screen, dx, alpha)
	case "projects":
		g.drawProjects(screen, dx, alpha)
	case "resume":
		g.drawResume(screen, dx, alpha)
	case "contact":
		g.drawContact(screen, dx, alpha)
	default:
		drawText(screen, strings.ToUpper(name), regular(40), contentLeft+dx, 80, textColor, alpha)
	}
}

func (g *Game) heading(screen *ebiten.Image, title string, dx, alpha float64) {
	drawText(screen, title, regular(40), contentLeft+dx, 70, textColor, alpha)
	vector.StrokeLine(screen, float32(contentLeft+dx), 124, float32(contentLeft+dx+80), 124, 3, withAlpha(accent, alpha), true)
}

func (g *Game) drawHero(screen *ebiten.Image, dx, alpha float64) {
	c := g.content
	drawText(screen, c.Owner.Name, regular(52), contentLeft+dx, 120, textColor, alpha)
	drawText(screen, c.Owner.Title, regular(24), contentLeft+dx, 190, mutedColor, alpha)

	typed := g.rotator.Text()
	if math.Mod(g.time, 1) < 0.5 {
		typed += "|"
	}
	drawText(screen, typed, mono(20), contentLeft+dx, 240, accent, alpha)

	codeX := float64(g.width)/2 + 60 + dx
	for i, line := range c.HeroCode {
		it := g.heroCode.Items[i]
		drawText(screen, line, mono(16), codeX+it.DX.Value, 130+float64(i)*24+it.DY.Value, validColor, alpha*it.Opacity.Value)
	}

	for i, ctr := range g.counters {
		x := contentLeft + dx + float64(i)*200
		drawText(screen, fmt.Sprintf("%d+", ctr.Value()), regular(40), x, 330, accent, alpha)
		drawText(screen, ctr.Label, regular(16), x, 385, mutedColor, alpha)
	}
}

func (g *Game) drawAbout(screen *ebiten.Image, dx, alpha float64) {
	g.heading(screen, "About", dx, alpha)
	y := float64(contentTop)
	for _, p := range g.content.About {
		drawText(screen, p, regular(20), contentLeft+dx, y, textColor, alpha)
		y += 40
	}
}

func (g *Game) drawSkills(screen *ebiten.Image, dx, alpha float64) {
	g.heading(screen, "Skills", dx, alpha)
	w := float64(g.width)
	for i, s := range g.content.Skills {
		n := skillNodeRect(i)
		size := 20 * g.skillPulses[i].Factor()
		drawText(screen, s.Name, regular(size), n.X+dx, n.Y, textColor, alpha)

		b := skillBarRect(w, i)
		vector.DrawFilledRect(screen, float32(b.X+dx), float32(b.Y), float32(b.W), float32(b.H), withAlpha(panelColor, alpha), false)
		fill := b.W * g.bars.Width(i) / 100
		vector.DrawFilledRect(screen, float32(b.X+dx), float32(b.Y), float32(fill), float32(b.H), withAlpha(accent, alpha), false)
		drawText(screen, fmt.Sprintf("%d%%", s.Level), regular(14), b.X+b.W+dx+8, b.Y-1, mutedColor, alpha)
	}
}

func (g *Game) drawJourney(screen *ebiten.Image, dx, alpha float64) {
	g.heading(screen, "Journey", dx, alpha)
	w := float64(g.width)
	for i, a := range g.content.Achievements {
		it := g.achievements.Items[i]
		r := achievementRect(w, i)
		o := alpha * it.Opacity.Value

		// Scale about the card centre.
		sc := g.hoverScale[i].Value
		sw, sh := r.W*sc, r.H*sc
		x := r.X + dx + it.DX.Value - (sw-r.W)/2
		y := r.Y + it.DY.Value - (sh-r.H)/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(sw), float32(sh), withAlpha(panelColor, o), false)
		border, title := color.Color(borderCol), color.Color(mutedColor)
		if a.Unlocked {
			border, title = accentAlt, textColor
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(sw), float32(sh), 2, withAlpha(border, o), false)
		drawText(screen, a.Title, regular(18*sc), x+16, y+6, title, o)
		drawText(screen, a.Detail, regular(14*sc), x+16, y+32*sc, mutedColor, o)
	}

	for i, item := range g.content.Timeline {
		it := g.timeline.Items[i]
		r := timelineRect(w, i)
		o := alpha * it.Opacity.Value
		x, y := r.X+dx+it.DX.Value, r.Y+it.DY.Value

		cx := float32(x + 8)
		if i < len(g.content.Timeline)-1 {
			vector.StrokeLine(screen, cx, float32(y+14), cx, float32(y+journeyRowH+6), 2, withAlpha(borderCol, o), true)
		}
		vector.DrawFilledCircle(screen, cx, float32(y+8), 6, withAlpha(accent, o), true)
		drawText(screen, item.Period, mono(13), x+26, y, accent, o)
		drawText(screen, item.Title, regular(17), x+80, y-2, textColor, o)
		drawText(screen, item.Detail, regular(13), x+26, y+24, mutedColor, o)
	}
}

func (g *Game) drawProjects(screen *ebiten.Image, dx, alpha float64) {
	g.heading(screen, "Projects", dx, alpha)
	rects := projectCardRects(float64(g.width), len(g.content.Projects))
	for i, p := range g.content.Projects {
		it := g.projects.Items[i]
		t := g.tilts[i]
		r := rects[i]
		// Tilt is approximated by a shear of the card outline.
		x := r.X + dx + it.DX.Value
		y := r.Y + it.DY.Value - t.Lift
		o := alpha * it.Opacity.Value
		skew := float32(t.RotateY)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), withAlpha(panelColor, o), false)
		top := float32(y) + float32(t.RotateX)
		vector.StrokeLine(screen, float32(x)+skew, top, float32(x+r.W)+skew, float32(y)-float32(t.RotateX), 2, withAlpha(accent, o), true)
		vector.StrokeRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), 1, withAlpha(borderCol, o), false)

		drawText(screen, p.Name, regular(20), x+16, y+14, textColor, o)
		drawText(screen, p.Description, regular(14), x+16, y+50, mutedColor, o)
		drawText(screen, strings.Join(p.Tags, " · "), mono(12), x+16, y+r.H-30, accentAlt, o)
	}
}

func (g *Game) drawResume(screen *ebiten.Image, dx, alpha float64) {
	g.heading(screen, "Resume", dx, alpha)
	for i, h := range g.content.Highlights {
		it := g.highlights.Items[i]
		o := alpha * it.Opacity.Value
		y := contentTop + float64(i)*40 + it.DY.Value
		x := contentLeft + dx + it.DX.Value
		vector.DrawFilledCircle(screen, float32(x+6), float32(y+12), 4, withAlpha(accent, o), true)
		drawText(screen, h, regular(18), x+20, y, textColor, o)
	}

	rects := actionCardRects(float64(g.width), g.resumeActionsTop(), len(g.content.ResumeActions))
	for i, label := range g.content.ResumeActions {
		it := g.actions.Items[i]
		r := rects[i]
		o := alpha * it.Opacity.Value
		x, y := r.X+dx+it.DX.Value, r.Y+it.DY.Value
		fill := color.Color(panelColor)
		if r.Contains(g.cursor.X, g.cursor.Y) {
			fill = color.RGBA{R: 40, G: 55, B: 80, A: 220}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), withAlpha(fill, o), false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), 2, withAlpha(accent, o), false)
		drawCentered(screen, label, regular(18), x+r.W/2, y+r.H/2-12, textColor, o)
	}
}

func (g *Game) drawContact(screen *ebiten.Image, dx, alpha float64) {
	g.heading(screen, "Contact", dx, alpha)
	rects := formFieldRects(float64(g.width), g.multiline())
	focused := g.form.Focused()
	for i, f := range g.form.Fields {
		r := rects[i]
		x := r.X + dx
		drawText(screen, f.Label, regular(13), x, r.Y-18, mutedColor, alpha)
		vector.DrawFilledRect(screen, float32(x), float32(r.Y), float32(r.W), float32(r.H), withAlpha(panelColor, alpha), false)

		border := color.Color(borderCol)
		switch {
		case f == focused:
			border = accent
		case f.Status == form.StatusValid:
			border = validColor
		case f.Status == form.StatusError:
			border = errorColor
		}
		vector.StrokeRect(screen, float32(x), float32(r.Y), float32(r.W), float32(r.H), 2, withAlpha(border, alpha), false)

		value := f.Value
		if f == focused && math.Mod(g.time, 1) < 0.5 {
			value += "|"
		}
		drawText(screen, value, regular(16), x+10, r.Y+10, textColor, alpha)
		if f.Error != "" {
			drawText(screen, f.Error, regular(12), x+r.W+10, r.Y+12, errorColor, alpha)
		}
	}

	s := submitRect(float64(g.width), rects)
	fill := color.Color(accent)
	switch {
	case g.form.Sent:
		fill = validColor
	case g.form.Busy:
		fill = mutedColor
	}
	vector.DrawFilledRect(screen, float32(s.X+dx), float32(s.Y), float32(s.W), float32(s.H), withAlpha(fill, alpha), false)
	drawCentered(screen, g.form.Button, regular(18), s.X+dx+s.W/2, s.Y+s.H/2-12, color.White, alpha)
}

func (g *Game) drawOrbs(screen *ebiten.Image) {
	order := g.nav.Order()
	for i, r := range orbRects(float64(g.width), float64(g.height), len(order)) {
		cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
		if order[i] == g.nav.Current() {
			vector.DrawFilledCircle(screen, cx, cy, orbRadius, accent, true)
			continue
		}
		vector.StrokeCircle(screen, cx, cy, orbRadius, 2, withAlpha(accent, 0.6), true)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	r := float32(10)
	if g.cursor.Hover {
		r *= 1.5
	}
	vector.StrokeCircle(screen, float32(g.cursor.X), float32(g.cursor.Y), r, 2, withAlpha(accent, 0.8), true)
	vector.DrawFilledCircle(screen, float32(g.cursor.X), float32(g.cursor.Y), 2, accent, true)
}

func (g *Game) drawToasts(screen *ebiten.Image) {
	const w, h = 340, 48
	for i, t := range g.toasts.Active() {
		x := float64(g.width) - w - 20 + t.Slide.Value*(w+40)
		y := 40 + float64(i)*(h+10)
		var edge color.Color = accent
		switch t.Kind {
		case effects.KindSuccess:
			edge = validColor
		case effects.KindError:
			edge = errorColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), w, h, color.RGBA{R: 15, G: 18, B: 28, A: 235}, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), 4, h, edge, false)
		drawText(screen, t.Message, regular(14), x+16, y+15, textColor, 1)
	}
}

func (g *Game) drawIntro(screen *ebiten.Image) {
	w, h := float32(g.width), float32(g.height)

	if o := g.intro.LoadingOpacity(); o > 0 {
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{R: 5, G: 6, B: 12, A: uint8(clamp01(o) * 255)}, false)
		drawCentered(screen, "Loading", regular(28), float64(w)/2, float64(h)/2-60, textColor, o)
		bw := float32(360)
		bx, by := w/2-bw/2, h/2
		vector.DrawFilledRect(screen, bx, by, bw, 6, withAlpha(panelColor, o), false)
		vector.DrawFilledRect(screen, bx, by, bw*float32(g.intro.LoadingProgress()), 6, withAlpha(accent, o), false)
	}

	o := g.intro.TerminalOpacity()
	if o <= 0 || g.intro.Done() {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{R: 0, G: 0, B: 0, A: uint8(clamp01(o) * 220)}, false)
	px, py, pw, ph := w/2-320, h/2-180, float32(640), float32(360)
	vector.DrawFilledRect(screen, px, py, pw, ph, withAlpha(color.RGBA{R: 12, G: 14, B: 20, A: 255}, o), false)
	vector.StrokeRect(screen, px, py, pw, ph, 1, withAlpha(borderCol, o), false)
	for i, c := range []color.Color{colornames.Tomato, colornames.Gold, colornames.Mediumseagreen} {
		vector.DrawFilledCircle(screen, px+18+float32(i)*18, py+16, 5, withAlpha(c, o), true)
	}

	y := float64(py) + 40
	for _, l := range g.intro.Lines() {
		if !l.Visible {
			continue
		}
		drawText(screen, l.Text, mono(15), float64(px)+20, y, validColor, o)
		y += 26
	}
	if math.Mod(g.time, 1) < 0.5 {
		vector.DrawFilledRect(screen, px+20, float32(y)+2, 9, 16, withAlpha(validColor, o), false)
	}
}
