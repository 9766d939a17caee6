// Package logging builds the charmbracelet logger shared by the CLI, the TUI
// and the SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Options controls where and how much is logged.
type Options struct {
	Level  string // debug, info, warn, error
	Prefix string
	// File is an explicit log path. Empty means the XDG state file.
	File string
	// Stderr logs to standard error instead of a file. Used by the SSH server,
	// which owns no terminal.
	Stderr bool
}

// ParseLevel parses a log level name (case-insensitive).
// Unknown names fall back to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Path resolves the log file location. A custom path wins when it is
// writable; otherwise the XDG state file is used.
func Path(custom string) (string, error) {
	if custom != "" {
		if strings.HasPrefix(custom, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				custom = filepath.Join(home, custom[2:])
			}
		}
		if err := os.MkdirAll(filepath.Dir(custom), 0o755); err == nil {
			f, err := os.OpenFile(custom, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
			if err == nil {
				_ = f.Close()
				return custom, nil
			}
		}
		fmt.Fprintf(os.Stderr, "Warning: could not use log path %s, falling back to XDG default\n", custom)
	}

	p, err := xdg.StateFile("mario/mario.log")
	if err != nil {
		return "", fmt.Errorf("logging: could not get log path: %w", err)
	}
	return p, nil
}

// New creates a logger according to opts. The returned closer releases the
// log file and is always safe to call.
func New(opts Options) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if !opts.Stderr {
		p, err := Path(opts.File)
		if err != nil {
			return Discard(), closer, err
		}
		f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return Discard(), closer, fmt.Errorf("logging: open %s: %w", p, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           ParseLevel(opts.Level),
	})
	return logger, closer, nil
}

// Discard returns a logger that writes nowhere.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
