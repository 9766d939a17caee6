package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kojo-codeur/Mario/internal/games/mario"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Describe the level catalog",
	Long:  `Shows every level in campaign order with its contents and door rule.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Levels:")
	fmt.Println()

	fmt.Printf("  %-5s  %-9s  %-5s  %-7s  %-10s  %s\n", "Level", "Platforms", "Coins", "Enemies", "Door needs", "Leads to")
	fmt.Printf("  %-5s  %-9s  %-5s  %-7s  %-10s  %s\n", "-----", "---------", "-----", "-------", "----------", "--------")

	for _, id := range mario.LevelIDs() {
		info, ok := mario.Info(id)
		if !ok {
			continue
		}
		next := fmt.Sprintf("level %d", info.NextLevel)
		if info.Final {
			next = "victory"
		}
		fmt.Printf("  %-5d  %-9d  %-5d  %-7d  %-10s  %s\n",
			info.ID, info.Platforms, info.Coins, info.Enemies,
			fmt.Sprintf("%d coins", info.CoinsRequired), next)
	}

	fmt.Println()
	fmt.Println("Run 'mario play --level <n>' to start on a level.")
}
