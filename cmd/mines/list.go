package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved games",
	Long:  `Shows all finished games, newest first.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, _ := newLogger(cfg, false)

	store := openStore(cfg)
	defer store.Close()

	games, err := store.ListGames(context.Background())
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("listed games", "count", len(games))

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println("Run 'mines play' to start one.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Player", "Date", "Board", "Mines", "Result", "Moves")

	for _, g := range games {
		t.Row(
			strconv.FormatInt(g.ID, 10),
			g.Player,
			g.PlayedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", g.Size, g.Size),
			strconv.Itoa(g.MineCount),
			string(g.Result),
			strconv.Itoa(g.TotalMoves),
		)
	}

	fmt.Println(t)
	fmt.Println()
	fmt.Println("Run 'mines replay <id>' to watch a game.")
}
