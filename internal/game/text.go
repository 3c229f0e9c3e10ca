package game

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularSource *text.GoTextFaceSource
	monoSource    *text.GoTextFaceSource
)

func init() {
	var err error
	regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal(err)
	}
	monoSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.Fatal(err)
	}
}

func regular(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: regularSource, Size: size}
}

func mono(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: monoSource, Size: size}
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, alpha float64) {
	if alpha <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent + 4
	text.Draw(dst, s, face, op)
}

// drawCentered draws s horizontally centred on cx.
func drawCentered(dst *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color, alpha float64) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, s, face, cx-w/2, y, clr, alpha)
}
