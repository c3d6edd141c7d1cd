package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "campus.log")

	logger, closeFn, err := Setup(Options{File: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "view", "goals")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "view=goals")
}

func TestSetupInvalidLevel(t *testing.T) {
	_, _, err := Setup(Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}

func TestSetupUnwritableFileFallsBackToDiscard(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	logger, closeFn, err := Setup(Options{File: filepath.Join(blocker, "campus.log")})
	assert.Error(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestDefaultPathUsesXDGState(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	got, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "campus", "campus.log"), got)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelDebug).Debug("tick", "seconds", 3)
	assert.True(t, strings.Contains(buf.String(), "seconds=3"))
}
