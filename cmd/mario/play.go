package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kojo-codeur/Mario/internal/audio"
	"github.com/kojo-codeur/Mario/internal/config"
	"github.com/kojo-codeur/Mario/internal/core"
	"github.com/kojo-codeur/Mario/internal/games/mario"
	"github.com/kojo-codeur/Mario/internal/platform/tui"
	"github.com/kojo-codeur/Mario/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagMute       bool
	flagVolume     float64
	flagHold       int
)

var playCmd = &cobra.Command{
	Use:   "play [ruleset]",
	Short: "Play a ruleset",
	Long: `Start playing. The default ruleset is "mario"; "mario_classic" wins on
entering the final level and leaves the player in place when hit.

Controls:
  Left/Right, A/D  - Move
  Space            - Jump
  F/X              - Fireball (when enabled)
  Esc              - Menu
  Enter            - Select / play again
  R                - Restart the campaign
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower enemies, longer invincibility
  normal - Configured values
  hard   - Fewer lives, enemies speed up with score
  fixed  - No progression

Examples:
  mario play
  mario play mario_classic
  mario play --difficulty hard --level 2
  mario play --config ./my-mario.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		flags := cmd.Flags()
		flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		flags.IntVar(&flagLevel, "level", 0, "Level to start every run on")
		flags.BoolVar(&flagMute, "mute", false, "Disable sound effects")
		flags.Float64Var(&flagVolume, "volume", 0, "Sound volume offset (0 = unity, -1 = half)")
		flags.IntVar(&flagHold, "hold-ticks", tui.DefaultHoldWindow, "Ticks a key press stays held")
	}
}

// applyGameFlags pushes the play flags into the mario package.
func applyGameFlags() error {
	mario.SetConfigPath(flagConfig)

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		mario.SetDifficultyPreset(preset)
	}

	if flagLevel != 0 {
		if !mario.HasLevel(flagLevel) {
			return fmt.Errorf("unknown level %d (available: %v)", flagLevel, mario.LevelIDs())
		}
		mario.SetStartLevel(flagLevel)
	}
	return nil
}

// openAudio starts the speaker unless muted. Without a device the game runs silently.
func openAudio(logger *log.Logger) (core.AudioSink, func()) {
	sink, closeFn, err := audio.Open(flagVolume, flagMute)
	if err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	return sink, closeFn
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "mario"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown ruleset %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Available: mario, mario_classic")
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := newLogger("play")
	defer logCloser.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sink, closeAudio := openAudio(logger)

	logger.Info("starting", "game", gameID, "difficulty", flagDifficulty, "stage", flagLevel)
	runErr := tui.Run(game, tui.Options{
		Config:     runtimeConfig(),
		Store:      tui.FromStorage(store),
		Audio:      sink,
		Logger:     logger,
		HoldWindow: flagHold,
	})

	closeAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runPicker loops picker -> game -> picker until the player quits.
func runPicker(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := newLogger("play")
	defer logCloser.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sink, closeAudio := openAudio(logger)
	defer closeAudio()

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(tui.FromStorage(store), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(tui.FromStorage(store), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		logger.Info("starting", "game", result.GameID)
		if err := tui.Run(game, tui.Options{
			Config:     cfg,
			Store:      tui.FromStorage(store),
			Audio:      sink,
			Logger:     logger,
			HoldWindow: flagHold,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}
