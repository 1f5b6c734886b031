package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-player results",
	Long: `Show games played, wins, losses and win rate for every player.

Example:
  mines stats`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, _ := newLogger(cfg, false)

	store := openStore(cfg)
	defer store.Close()

	ctx := context.Background()
	stats, err := store.PlayerStats(ctx)
	if err != nil {
		fail("%v", err)
	}
	total, err := store.CountGames(ctx)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("computed stats", "players", len(stats), "games", total)

	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	// Calculate column widths
	maxNameLen := 6 // "Player" header
	for _, s := range stats {
		if len(s.Player) > maxNameLen {
			maxNameLen = len(s.Player)
		}
	}

	fmt.Printf("  %-*s  %5s  %4s  %6s  %6s  %s\n", maxNameLen, "Player", "Games", "Wins", "Losses", "Win %", "Last played")
	fmt.Printf("  %-*s  %5s  %4s  %6s  %6s  %s\n", maxNameLen, "------", "-----", "----", "------", "-----", "-----------")
	for _, s := range stats {
		fmt.Printf("  %-*s  %5d  %4d  %6d  %5.1f%%  %s\n",
			maxNameLen, s.Player, s.Games, s.Wins, s.Losses, s.WinRate()*100,
			s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("%d games in total.\n", total)
}
