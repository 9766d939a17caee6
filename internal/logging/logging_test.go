package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" warn ", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"verbose", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ParseLevel(tc.in), "ParseLevel(%q)", tc.in)
	}
}

func TestPathCustom(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "nested", "game.log")

	p, err := Path(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, p)

	_, err = os.Stat(custom)
	assert.NoError(t, err, "custom log file should be created")
}

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "mario.log")

	logger, closer, err := New(Options{Level: "debug", Prefix: "test", File: file})
	require.NoError(t, err)
	logger.Debug("level loaded", "stage", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level loaded")
	assert.Contains(t, string(data), "stage=2")
}

func TestNewRespectsLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "mario.log")

	logger, closer, err := New(Options{Level: "warn", File: file})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewStderr(t *testing.T) {
	logger, closer, err := New(Options{Stderr: true})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}
