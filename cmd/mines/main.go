// mines is terminal Minesweeper with a replayable game history.
//
// Usage:
//
//	mines play               - Play a game
//	mines menu               - Pick a board, browse history and watch replays
//	mines list               - List saved games
//	mines replay <id>        - Replay a saved game
//	mines delete <id>        - Delete a saved game
//	mines stats              - Show per-player results
//	mines serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.mines/config.yaml)
//	--db <path>         - Set database path (default: ~/.mines/games.db)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--player <name>     - Player name stored with finished games
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagPlayer   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Mines is terminal Minesweeper. Every finished game is saved with its
mine layout and move list so it can be replayed move by move.

Available commands:
  play     - Play a game directly
  menu     - Interactive board picker, history and replays
  list     - Show saved games
  replay   - Replay a saved game
  delete   - Delete a saved game
  stats    - Per-player wins and losses
  serve    - Start SSH server for remote play

Examples:
  mines play --difficulty easy
  mines play --size 12 --mines 20
  mines list
  mines replay 3 --print
  mines serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to game database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
