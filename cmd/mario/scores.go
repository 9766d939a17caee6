package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kojo-codeur/Mario/internal/platform/tui"
	"github.com/kojo-codeur/Mario/internal/registry"
	"github.com/kojo-codeur/Mario/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [ruleset]",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores, recent runs and totals for a ruleset.

Examples:
  mario scores
  mario scores mario_classic --limit 20
  mario scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "mario"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown ruleset %q\n", gameID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mario play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent runs:")
		fmt.Printf("  %-10s  %-8s  %-5s  %-5s  %s\n", "Outcome", "Score", "Level", "Coins", "Ended")
		for _, r := range runs {
			fmt.Printf("  %-10s  %-8d  %-5d  %-5d  %s\n",
				r.Outcome, r.Score, r.Level, r.Coins, r.EndedAt.Local().Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.0f   Victories: %d   Furthest level: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Victories, stats.BestLevel)
	return nil
}
