package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/elemquiz/internal/app"
	"github.com/abhisek/elemquiz/internal/config"
	"github.com/abhisek/elemquiz/internal/logging"
	"github.com/abhisek/elemquiz/internal/mode"
	"github.com/abhisek/elemquiz/internal/records"
	"github.com/abhisek/elemquiz/internal/session"
	"github.com/abhisek/elemquiz/internal/store"
)

// runApp resolves config, opens the record store, builds the controller,
// and launches the TUI. startMode, when set, begins a run immediately.
func runApp(cmd *cobra.Command, startMode *mode.Mode) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		logger = slog.New(slog.DiscardHandler)
	} else {
		defer logCloser.Close()
	}

	recs, closeStore := openRecords(cfg, logger)
	defer closeStore()

	ctrl := session.New(session.Options{
		Records: recs,
		Timing:  cfg.Timing,
		Logger:  logger,
	})

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Controller:  ctrl,
		Records:     recs,
		DefaultMode: cfg.DefaultMode,
		StartMode:   startMode,
		Splash:      !noSplash,
	})
}

// openRecords opens the SQLite-backed record store. If the database cannot
// be opened the game still runs, keeping records in memory.
func openRecords(cfg config.Config, logger *slog.Logger) (*records.Store, func()) {
	st, err := openStore(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Record store unavailable:", err)
		fmt.Fprintln(os.Stderr, "Best times will not be saved.")
		logger.Warn("record store unavailable", "path", cfg.DBPath, "error", err)
		return records.New(records.NewMemoryKV(), records.WithLogger(logger)), func() {}
	}
	return records.New(st.KV(), records.WithLogger(logger)), func() { closeQuietly(st) }
}

func openStore(path string) (*store.Store, error) {
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
