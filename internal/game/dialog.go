package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

// chooseTrack asks for an ambient track and starts it. Cancelling the dialog
// is not an error.
func (g *Game) chooseTrack() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Ambient Track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	log.Printf("[Sound] selected %s", filename)
	return g.sound.PlayTrack(filename)
}

// notifyDesktop shows msg as a desktop notification. It runs off the update
// loop and touches no game state.
func notifyDesktop(msg string) {
	go func() {
		if err := zenity.Notify(msg, zenity.Title("Portfolio")); err != nil {
			log.Printf("[Notify] %v", err)
		}
	}()
}
