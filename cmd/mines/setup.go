package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies the global flags over it.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	if flagPlayer != "" {
		cfg.Game.Player = flagPlayer
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger builds the command logger. While a Bubble Tea program owns the
// terminal the log goes to the configured file instead of stderr.
func newLogger(cfg config.Config, toFile bool) (*log.Logger, io.Closer) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)

	if toFile {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			out = io.Discard
		} else {
			out, closer = f, f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}
	return logger, closer
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, os.ErrNotExist
	}
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openStore opens the game database or exits.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("could not open game database: %v", err)
	}
	return store
}

// settingsFrom converts the game config to TUI settings.
func settingsFrom(gc config.GameConfig) tui.Settings {
	return tui.Settings{
		Size:            gc.Size,
		Mines:           gc.Mines,
		Player:          gc.Player,
		Seed:            gc.Seed,
		RecordNoOpOpens: gc.RecordNoOpOpens,
	}
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// parseID parses a game id argument.
func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fail("invalid game id %q", arg)
	}
	return id
}
