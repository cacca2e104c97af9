package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_MissingFile(t *testing.T) {
	fc, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, fc.Store.Path)
	assert.Nil(t, fc.Play.DefaultMode)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, "[store\npath = 1")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestResolve_Defaults(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", "/state")

	cfg, err := Resolve(FileConfig{}, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join("/state", "elemquiz", "elemquiz.log"), cfg.LogPath)
	assert.Equal(t, mode.AtomicNumber, cfg.DefaultMode)
	assert.Equal(t, session.DefaultTiming(), cfg.Timing)
	assert.Equal(t, "elemquiz.db", filepath.Base(cfg.DBPath))
}

func TestResolve_FileValues(t *testing.T) {
	t.Setenv(EnvDB, "")
	path := writeConfig(t, `
[store]
path = "/data/quiz.db"

[log]
level = "debug"
path = "/tmp/quiz.log"

[play]
default_mode = "periodic_table"

[timing]
countdown_step_ms = 10
wrong_ms = 200
`)
	fc, err := LoadConfig(path)
	require.NoError(t, err)

	cfg, err := Resolve(fc, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "/data/quiz.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/quiz.log", cfg.LogPath)
	assert.Equal(t, mode.PeriodicTable, cfg.DefaultMode)
	assert.Equal(t, 10*time.Millisecond, cfg.Timing.CountdownStep)
	assert.Equal(t, 200*time.Millisecond, cfg.Timing.Wrong)
	assert.Equal(t, session.DefaultTiming().Correct, cfg.Timing.Correct)
}

func TestResolve_DBPathPrecedence(t *testing.T) {
	file := "/from/file.db"
	fc := FileConfig{Store: StoreConfig{Path: &file}}

	t.Setenv(EnvDB, "/from/env.db")
	cfg, err := Resolve(fc, Overrides{DBPath: "/from/flag.db"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.db", cfg.DBPath)

	cfg, err = Resolve(fc, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)

	t.Setenv(EnvDB, "")
	cfg, err = Resolve(fc, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, file, cfg.DBPath)
}

func TestResolve_Errors(t *testing.T) {
	t.Setenv(EnvDB, "/x.db")
	badMode := "speed_run"
	badLevel := "loud"
	zero := 0

	tests := []struct {
		name string
		fc   FileConfig
	}{
		{"unknown mode", FileConfig{Play: PlayConfig{DefaultMode: &badMode}}},
		{"bad level", FileConfig{Log: LogConfig{Level: &badLevel}}},
		{"zero timing", FileConfig{Timing: TimingConfig{FlashMS: &zero}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.fc, Overrides{})
			assert.Error(t, err)
		})
	}
}

func TestResolve_UnknownModeWrapsSentinel(t *testing.T) {
	t.Setenv(EnvDB, "/x.db")
	bad := "speed_run"
	_, err := Resolve(FileConfig{Play: PlayConfig{DefaultMode: &bad}}, Overrides{})
	assert.ErrorIs(t, err, mode.ErrUnknown)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	assert.Equal(t, filepath.Join("/cfg", "elemquiz", "config.toml"), DefaultConfigPath())
}
