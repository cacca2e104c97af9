// Package config loads the TOML configuration file and resolves it against
// flags, environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/session"
	"github.com/abhisek/elemquiz/internal/store"
)

// EnvDB overrides the database path when no flag is given.
const EnvDB = "ELEMQUIZ_DB"

// FileConfig represents the TOML configuration file. Unset keys are nil.
type FileConfig struct {
	Store  StoreConfig  `toml:"store"`
	Log    LogConfig    `toml:"log"`
	Play   PlayConfig   `toml:"play"`
	Timing TimingConfig `toml:"timing"`
}

// StoreConfig maps storage settings.
type StoreConfig struct {
	Path *string `toml:"path"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	Path  *string `toml:"path"`
}

// PlayConfig maps gameplay settings.
type PlayConfig struct {
	DefaultMode *string `toml:"default_mode"`
}

// TimingConfig maps dwell times, in milliseconds.
type TimingConfig struct {
	CountdownStepMS *int `toml:"countdown_step_ms"`
	GoDwellMS       *int `toml:"go_dwell_ms"`
	CorrectMS       *int `toml:"correct_ms"`
	WrongMS         *int `toml:"wrong_ms"`
	FinishMS        *int `toml:"finish_ms"`
	FlashMS         *int `toml:"flash_ms"`
}

// Config is the fully resolved configuration.
type Config struct {
	DBPath      string
	LogLevel    string
	LogPath     string
	DefaultMode mode.Mode
	Timing      session.Timing
}

// Overrides carries values given on the command line. Empty means unset.
type Overrides struct {
	DBPath string
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Resolve merges fc with overrides, the environment, and defaults.
// Precedence is flag, then ELEMQUIZ_DB, then file, then default.
func Resolve(fc FileConfig, ov Overrides) (Config, error) {
	cfg := Config{
		LogLevel:    "info",
		LogPath:     DefaultLogPath(),
		DefaultMode: mode.AtomicNumber,
		Timing:      session.DefaultTiming(),
	}

	switch {
	case ov.DBPath != "":
		cfg.DBPath = ov.DBPath
	case os.Getenv(EnvDB) != "":
		cfg.DBPath = os.Getenv(EnvDB)
	case fc.Store.Path != nil && *fc.Store.Path != "":
		cfg.DBPath = *fc.Store.Path
	default:
		p, err := store.DefaultDBPath()
		if err != nil {
			return Config{}, fmt.Errorf("resolve db path: %w", err)
		}
		cfg.DBPath = p
	}

	if fc.Log.Level != nil {
		lvl := *fc.Log.Level
		if !validLevel(lvl) {
			return Config{}, fmt.Errorf("invalid log level %q", lvl)
		}
		cfg.LogLevel = lvl
	}
	if fc.Log.Path != nil {
		cfg.LogPath = *fc.Log.Path
	}

	if fc.Play.DefaultMode != nil {
		m, err := mode.Parse(*fc.Play.DefaultMode)
		if err != nil {
			return Config{}, fmt.Errorf("play.default_mode: %w", err)
		}
		cfg.DefaultMode = m
	}

	t := &cfg.Timing
	for _, f := range []struct {
		name string
		src  *int
		dst  *time.Duration
	}{
		{"countdown_step_ms", fc.Timing.CountdownStepMS, &t.CountdownStep},
		{"go_dwell_ms", fc.Timing.GoDwellMS, &t.GoDwell},
		{"correct_ms", fc.Timing.CorrectMS, &t.Correct},
		{"wrong_ms", fc.Timing.WrongMS, &t.Wrong},
		{"finish_ms", fc.Timing.FinishMS, &t.Finish},
		{"flash_ms", fc.Timing.FlashMS, &t.Flash},
	} {
		if f.src == nil {
			continue
		}
		if *f.src <= 0 {
			return Config{}, fmt.Errorf("timing.%s must be positive, got %d", f.name, *f.src)
		}
		*f.dst = time.Duration(*f.src) * time.Millisecond
	}

	return cfg, nil
}

func validLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
