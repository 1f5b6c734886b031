package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var flagPrint bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a saved game",
	Long: `Rebuild a saved game from its mine layout and replay it move by move.

Controls:
  N/Space/Right  - Next move
  P              - Auto play
  R/Home         - Restart replay
  Esc/Q          - Quit

With --print the moves and the final board are written to stdout instead.

Examples:
  mines replay 3
  mines replay 3 --print`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagPrint, "print", false, "Print moves and final board instead of the interactive replay")
}

func runReplay(_ *cobra.Command, args []string) {
	id := parseID(args[0])
	cfg := loadConfig()

	logger, closer := newLogger(cfg, !flagPrint)
	defer closer.Close()

	store := openStore(cfg)
	defer store.Close()

	rec, err := store.GameByID(context.Background(), id)
	if errors.Is(err, storage.ErrNotFound) {
		fail("game %d not found", id)
	}
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("loaded game", "id", id, "moves", rec.TotalMoves)

	if flagPrint {
		if err := printReplay(rec); err != nil {
			fail("%v", err)
		}
		return
	}

	width, height := terminalSize()
	if err := tui.RunReplay(rec, width, height); err != nil {
		fail("%v", err)
	}
}

// printReplay writes every move and the reconstructed board.
func printReplay(rec *minesweeper.GameRecord) error {
	r, err := minesweeper.NewReplay(rec)
	if err != nil {
		return err
	}

	fmt.Printf("Game #%d  %s  %s  %dx%d, %d mines\n\n",
		rec.ID, rec.Player, rec.PlayedAt.Local().Format("2006-01-02 15:04"),
		rec.Size, rec.Size, rec.MineCount)

	for !r.Done() {
		mv, _, err := r.Step()
		if err != nil {
			return fmt.Errorf("move %d: %w", r.Cursor()+1, err)
		}
		fmt.Println(mv.Describe())
	}

	grid := r.Grid()
	fmt.Println()
	fmt.Print(minesweeper.FormatBoard(grid.Size(), grid.Symbols()))
	fmt.Printf("\nResult: %s\n", rec.Result)
	return nil
}
