package game

import "github.com/iburimskiy/portfolio/internal/effects"

// Hit areas, in screen coordinates. Drawing and input share them.

const (
	orbRadius  = 9
	orbSpacing = 40
	orbBottom  = 48

	contentLeft = 120
	contentTop  = 150

	skillRowHeight = 56
	skillLabelW    = 180

	cardW   = 300
	cardH   = 170
	cardGap = 30

	fieldW      = 520
	fieldH      = 40
	messageH    = 110
	fieldGap    = 26
	submitW     = 200
	submitH     = 44
	actionCardW = 220
	actionCardH = 60
)

func orbRects(w, h float64, n int) []effects.Rect {
	total := float64(n-1) * orbSpacing
	x0 := w/2 - total/2
	y := h - orbBottom
	out := make([]effects.Rect, n)
	for i := range out {
		cx := x0 + float64(i)*orbSpacing
		out[i] = effects.Rect{X: cx - orbRadius, Y: y - orbRadius, W: 2 * orbRadius, H: 2 * orbRadius}
	}
	return out
}

func skillNodeRect(i int) effects.Rect {
	return effects.Rect{X: contentLeft, Y: contentTop + float64(i)*skillRowHeight, W: skillLabelW, H: 28}
}

func skillBarRect(w float64, i int) effects.Rect {
	x := float64(contentLeft + skillLabelW + 20)
	return effects.Rect{X: x, Y: contentTop + float64(i)*skillRowHeight + 6, W: w - x - contentLeft, H: 16}
}

func projectCardRects(w float64, n int) []effects.Rect {
	perRow := int((w - 2*contentLeft + cardGap) / (cardW + cardGap))
	if perRow < 1 {
		perRow = 1
	}
	out := make([]effects.Rect, n)
	for i := range out {
		col, row := i%perRow, i/perRow
		out[i] = effects.Rect{
			X: contentLeft + float64(col)*(cardW+cardGap),
			Y: contentTop + float64(row)*(cardH+cardGap),
			W: cardW,
			H: cardH,
		}
	}
	return out
}

func formFieldRects(w float64, multiline []bool) []effects.Rect {
	x := w/2 - fieldW/2
	y := float64(contentTop)
	out := make([]effects.Rect, len(multiline))
	for i, ml := range multiline {
		h := float64(fieldH)
		if ml {
			h = messageH
		}
		out[i] = effects.Rect{X: x, Y: y, W: fieldW, H: h}
		y += h + fieldGap
	}
	return out
}

func submitRect(w float64, fields []effects.Rect) effects.Rect {
	y := float64(contentTop)
	if n := len(fields); n > 0 {
		y = fields[n-1].Y + fields[n-1].H + fieldGap
	}
	return effects.Rect{X: w/2 - submitW/2, Y: y, W: submitW, H: submitH}
}

func actionCardRects(w, top float64, n int) []effects.Rect {
	out := make([]effects.Rect, n)
	for i := range out {
		out[i] = effects.Rect{X: contentLeft + float64(i)*(actionCardW+cardGap), Y: top, W: actionCardW, H: actionCardH}
	}
	return out
}

const (
	achievementHover = 1.05
	journeyGap       = 40
	journeyRowH      = 70
)

// achievementRect is the left column of the journey section.
func achievementRect(w float64, i int) effects.Rect {
	return effects.Rect{X: contentLeft, Y: contentTop + float64(i)*journeyRowH, W: (w-2*contentLeft-journeyGap)/2, H: 56}
}

// timelineRect is the right column of the journey section.
func timelineRect(w float64, i int) effects.Rect {
	col := (w - 2*contentLeft - journeyGap) / 2
	return effects.Rect{X: contentLeft + col + journeyGap, Y: contentTop + float64(i)*journeyRowH, W: col, H: 56}
}
