package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	clickDuration  = 100 * time.Millisecond
	clickFreqStart = 800.0
	clickFreqEnd   = 400.0
	clickGainStart = 0.1
	clickGainEnd   = 0.001
)

// click is a short sine blip whose pitch and gain both fall exponentially.
type click struct {
	rate  float64
	total int
	pos   int
	phase float64
}

// NewClick returns a streamer for one click at the given sample rate.
func NewClick(rate beep.SampleRate) beep.Streamer {
	return &click{rate: float64(rate), total: rate.N(clickDuration)}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.total {
			return i, i > 0
		}
		frac := float64(c.pos) / float64(c.total)
		freq := clickFreqStart * math.Pow(clickFreqEnd/clickFreqStart, frac)
		gain := clickGainStart * math.Pow(clickGainEnd/clickGainStart, frac)

		v := math.Sin(2*math.Pi*c.phase) * gain
		samples[i][0] = v
		samples[i][1] = v

		c.phase += freq / c.rate
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

func (c *click) Err() error { return nil }
