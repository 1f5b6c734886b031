package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	flagDifficulty string
	flagSize       int
	flagMines      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Minesweeper. The first cell you open is never a mine.

Controls:
  Arrows/hjkl     - Move cursor
  Space/Enter     - Open cell (left click)
  F/M             - Toggle flag (right click)
  R               - New game
  ?               - Toggle help
  Esc/Q           - Quit

Difficulty options:
  easy    - 9x9, 10 mines
  normal  - 16x16, 40 mines
  hard    - 24x24, 99 mines
  custom  - --size and --mines (or the config values)

Examples:
  mines play
  mines play --difficulty hard
  mines play --size 10 --mines 12
  mines play --seed 42 --player ann`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board side length for a custom game (2-30)")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Mine count for a custom game")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	applyBoardFlags(cmd, &cfg)

	logger, closer := newLogger(cfg, true)
	defer closer.Close()

	// Open game storage
	store := openStore(cfg)
	defer store.Close()

	width, height := terminalSize()
	settings := settingsFrom(cfg.Game)
	logger.Debug("starting game", "size", settings.Size, "mines", settings.Mines, "seed", settings.Seed)

	if err := tui.Run(settings, store, logger, width, height); err != nil {
		fail("%v", err)
	}
}

// applyBoardFlags applies --difficulty, --size and --mines. An explicit size
// or mine count switches to a custom board.
func applyBoardFlags(cmd *cobra.Command, cfg *config.Config) {
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fail("%v", err)
		}
		config.ApplyPreset(&cfg.Game, preset)
	}

	if cmd.Flags().Changed("size") || cmd.Flags().Changed("mines") {
		cfg.Game.Difficulty = config.DifficultyCustom
		if cmd.Flags().Changed("size") {
			cfg.Game.Size = flagSize
		}
		if cmd.Flags().Changed("mines") {
			cfg.Game.Mines = flagMines
		}
	}

	config.Normalize(cfg)
}
