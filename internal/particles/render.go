package particles

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio/internal/config"
)

// Draw renders particles and their links. pulse scales the drawn radius
// (1 for none) and leaves the simulation untouched.
func (f *Field) Draw(screen *ebiten.Image, pulse float64) {
	if pulse <= 0 {
		pulse = 1
	}
	ps := f.Particles
	for i := range ps {
		p := &ps[i]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius*pulse), HSLA(p.Hue, p.Opacity), true)

		for j := i + 1; j < len(ps); j++ {
			o := &ps[j]
			d := math.Hypot(p.X-o.X, p.Y-o.Y)
			if d >= config.LinkDistance {
				continue
			}
			vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(o.X), float32(o.Y), 1, HSLA(p.Hue, LinkAlpha(d)), true)
		}
	}
}

// HSLA returns the fully saturated, mid-lightness colour for hue (degrees)
// at the given alpha (0..1).
func HSLA(hue, alpha float64) color.NRGBA {
	r, g, b := hsvToRgb(hue, 1, 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1).
// HSL at 100% saturation and 50% lightness is the same colour as HSV at full
// saturation and value.
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
