package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are the runtime switches read from the environment. Command-line
// flags in main override them.
type Settings struct {
	ContentPath   string // YAML content document; empty uses the embedded default
	Sound         bool
	TrackPath     string // optional ambient track (wav, mp3 or flac)
	DesktopNotify bool   // mirror success toasts as desktop notifications
	HotReload     bool   // watch ContentPath for changes
	Verbose       bool
	Width         int
	Height        int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Sound:  true,
		Width:  WindowWidth,
		Height: WindowHeight,
	}
}

// LoadSettings reads envFile (if it exists) into the process environment
// and builds Settings from the PORTFOLIO_* variables. A missing envFile is
// not an error.
func LoadSettings(envFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return SettingsFromEnv(os.Getenv)
}

// SettingsFromEnv builds Settings from a lookup function.
func SettingsFromEnv(getenv func(string) string) (Settings, error) {
	s := DefaultSettings()
	s.ContentPath = getenv("PORTFOLIO_CONTENT")
	s.TrackPath = getenv("PORTFOLIO_TRACK")

	var err error
	if s.Sound, err = envBool(getenv, "PORTFOLIO_SOUND", s.Sound); err != nil {
		return Settings{}, err
	}
	if s.DesktopNotify, err = envBool(getenv, "PORTFOLIO_NOTIFY", s.DesktopNotify); err != nil {
		return Settings{}, err
	}
	if s.HotReload, err = envBool(getenv, "PORTFOLIO_HOT_RELOAD", s.HotReload); err != nil {
		return Settings{}, err
	}
	if s.Verbose, err = envBool(getenv, "PORTFOLIO_VERBOSE", s.Verbose); err != nil {
		return Settings{}, err
	}
	if s.Width, err = envInt(getenv, "PORTFOLIO_WIDTH", s.Width); err != nil {
		return Settings{}, err
	}
	if s.Height, err = envInt(getenv, "PORTFOLIO_HEIGHT", s.Height); err != nil {
		return Settings{}, err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return Settings{}, fmt.Errorf("invalid window size %dx%d", s.Width, s.Height)
	}
	return s, nil
}

func envBool(getenv func(string) string, key string, def bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return b, nil
}

func envInt(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return n, nil
}
