// Package logging sets up the process-wide slog logger. The TUI owns the
// terminal, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options selects the log destination and minimum level.
type Options struct {
	// File is the log file path. Empty means DefaultPath.
	File string
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// DefaultPath resolves the log file path:
// $XDG_STATE_HOME/campus/campus.log, else ~/.local/state/campus/campus.log.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "campus", "campus.log"), nil
}

// Setup builds a text logger writing to the configured file. The returned
// close func must be called on shutdown.
//
// An invalid level is an error. A file that cannot be opened is not: the
// logger discards output and the open error is returned alongside it so the
// caller can warn once.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }

	path := opts.File
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return discard(level), noop, err
		}
	}

	w, err := openLogFile(path)
	if err != nil {
		return discard(level), noop, fmt.Errorf("open log file %s: %w", path, err)
	}

	return New(w, level), w.Close, nil
}

// New returns a text logger at the given level writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func discard(level slog.Level) *slog.Logger {
	return New(io.Discard, level)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
