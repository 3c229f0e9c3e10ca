package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/game"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		envFile = flag.String("env", ".env", "environment file with PORTFOLIO_* settings")
		content = flag.String("content", "", "content YAML file (default: built-in)")
		track   = flag.String("track", "", "ambient audio track (wav, mp3 or flac)")
		mute    = flag.Bool("mute", false, "start with sound off")
		notify  = flag.Bool("notify", false, "mirror success toasts as desktop notifications")
		watch   = flag.Bool("watch", false, "reload the content file when it changes")
		verbose = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "content":
			settings.ContentPath = *content
		case "track":
			settings.TrackPath = *track
		case "mute":
			settings.Sound = !*mute
		case "notify":
			settings.DesktopNotify = *notify
		case "watch":
			settings.HotReload = *watch
		case "v":
			settings.Verbose = *verbose
		}
	})

	if !settings.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	c := config.DefaultContent()
	if settings.ContentPath != "" {
		if c, err = config.LoadContent(settings.ContentPath); err != nil {
			return err
		}
	}

	var watcher *config.ContentWatcher
	if settings.HotReload && settings.ContentPath != "" {
		if watcher, err = config.WatchContent(settings.ContentPath); err != nil {
			return err
		}
	}

	g, err := game.New(game.Options{
		Settings: settings,
		Content:  c,
		Watcher:  watcher,
	})
	if err != nil {
		if watcher != nil {
			watcher.Close()
		}
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(c.Owner.Name + " - Portfolio")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
