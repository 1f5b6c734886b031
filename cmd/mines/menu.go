package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start the interactive menu to pick a board, browse saved games and
watch replays.

Controls:
  Up/Down      - Navigate
  Enter/Space  - Select
  Tab          - Game history
  Q/Ctrl+C     - Quit

In the history:
  Enter        - Replay the selected game
  X            - Delete the selected game
  Esc          - Back to menu

In a replay:
  N/Space      - Next move
  P            - Auto play
  R            - Restart replay
  Esc          - Back to history`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closer := newLogger(cfg, true)
	defer closer.Close()

	store := openStore(cfg)
	defer store.Close()

	width, height := terminalSize()
	if err := tui.RunSession(settingsFrom(cfg.Game), store, logger, width, height); err != nil {
		fail("%v", err)
	}
}
