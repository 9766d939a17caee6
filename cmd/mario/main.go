// mario is a terminal platformer: run, jump and stomp through a short
// campaign of levels, locally or over SSH.
//
// Usage:
//
//	mario                    - Pick a ruleset and play
//	mario play [ruleset]     - Play a ruleset directly (mario, mario_classic)
//	mario levels             - Describe the level catalog
//	mario scores [ruleset]   - Show high scores and recent runs
//	mario serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible enemy kinds
//	--db <path>          - Set database path (default: XDG data dir)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log file (default: XDG state dir)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kojo-codeur/Mario/internal/core"
	"github.com/kojo-codeur/Mario/internal/logging"
	"github.com/kojo-codeur/Mario/internal/storage"

	// Import games to register them
	_ "github.com/kojo-codeur/Mario/internal/games/mario"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mario",
	Short: "Mario - a platformer in your terminal",
	Long: `Mario is a terminal platformer. Collect coins to unlock the door,
stomp enemies, and reach the end of the campaign.

Available commands:
  play     - Play a ruleset directly
  levels   - Describe the level catalog
  scores   - View high scores and recent runs
  serve    - Start SSH server for remote play

Examples:
  mario
  mario play
  mario play mario_classic --difficulty hard
  mario serve --ssh :2222
  mario scores --interactive`,
	Run: runPicker,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: XDG state dir)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger opens the file logger. Failures fall back to a silent logger
// so the game still starts.
func newLogger(prefix string) (*log.Logger, io.Closer) {
	logger, closer, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		Prefix: prefix,
		File:   flagLogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	return logger, closer
}

// openStore opens the scores database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
