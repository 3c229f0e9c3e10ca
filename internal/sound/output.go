// Package sound owns the single audio output of the application: the click
// effect played on interaction and an optional looping ambient track whose
// loudness drives the particle pulse.
package sound

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/portfolio/internal/config"
)

var ErrUnavailable = errors.New("audio output unavailable")

const levelWindow = 1024

type track struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	tap      *levelTap
}

// Output is created once and shared. The speaker is initialised on first use;
// if that fails sound stays off for the rest of the run.
type Output struct {
	once    sync.Once
	ready   bool
	enabled bool
	rate    beep.SampleRate
	mixer   *beep.Mixer
	track   *track
	level   float64

	// initSpeaker and play default to the beep speaker.
	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

func NewOutput(enabled bool) *Output {
	return &Output{
		enabled:     enabled,
		rate:        beep.SampleRate(config.SampleRate),
		mixer:       &beep.Mixer{},
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

func (o *Output) ensure() bool {
	o.once.Do(func() {
		if err := o.initSpeaker(o.rate, o.rate.N(time.Second/20)); err != nil {
			log.Printf("[Sound] audio disabled: %v", err)
			return
		}
		o.play(o.mixer)
		o.ready = true
	})
	return o.ready
}

// Enabled reports whether sound is switched on.
func (o *Output) Enabled() bool { return o.enabled }

// Toggle switches sound on or off and pauses the ambient track accordingly.
func (o *Output) Toggle() bool {
	o.enabled = !o.enabled
	if o.track != nil {
		speaker.Lock()
		o.track.ctrl.Paused = !o.enabled
		speaker.Unlock()
	}
	return o.enabled
}

// Click plays the click effect.
func (o *Output) Click() {
	if !o.enabled || !o.ensure() {
		return
	}
	speaker.Lock()
	o.mixer.Add(NewClick(o.rate))
	speaker.Unlock()
}

// PlayTrack decodes path and loops it in the background, replacing any
// previous track.
func (o *Output) PlayTrack(path string) error {
	if !o.ensure() {
		return ErrUnavailable
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != o.rate {
		s = beep.Resample(4, format.SampleRate, o.rate, s)
	}
	tap := newLevelTap(s, config.VisualRingSize)
	ctrl := &beep.Ctrl{
		Streamer: &effects.Volume{Streamer: tap, Base: 2, Volume: -1},
		Paused:   !o.enabled,
	}

	o.StopTrack()
	speaker.Lock()
	o.mixer.Add(ctrl)
	speaker.Unlock()

	o.track = &track{file: f, streamer: streamer, ctrl: ctrl, tap: tap}
	log.Printf("[Sound] playing %s", path)
	return nil
}

// StopTrack stops and releases the ambient track.
func (o *Output) StopTrack() {
	t := o.track
	if t == nil {
		return
	}
	speaker.Lock()
	// A Ctrl without a streamer ends, and the mixer drops it.
	t.ctrl.Streamer = nil
	speaker.Unlock()
	_ = t.streamer.Close()
	_ = t.file.Close()
	o.track = nil
	o.level = 0
}

// Level returns the smoothed loudness of the ambient track, 0..1. It is
// meant to be called once per frame.
func (o *Output) Level() float64 {
	if o.track == nil || !o.enabled {
		o.level *= config.SmoothingFactor
		return o.level
	}
	rms := o.track.tap.rms(levelWindow)
	if rms > 1 {
		rms = 1
	}
	o.level = config.SmoothingFactor*o.level + (1-config.SmoothingFactor)*rms
	return o.level
}

// Close releases the ambient track.
func (o *Output) Close() {
	o.StopTrack()
}
