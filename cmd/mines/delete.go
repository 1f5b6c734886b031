package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved game",
	Long: `Delete a saved game and its moves.

Example:
  mines delete 3`,
	Args: cobra.ExactArgs(1),
	Run:  runDelete,
}

func runDelete(_ *cobra.Command, args []string) {
	id := parseID(args[0])
	cfg := loadConfig()
	logger, _ := newLogger(cfg, false)

	store := openStore(cfg)
	defer store.Close()

	deleted, err := store.DeleteGame(context.Background(), id)
	if err != nil {
		fail("%v", err)
	}
	if !deleted {
		fail("game %d not found", id)
	}
	logger.Info("game deleted", "id", id)
	fmt.Printf("Deleted game %d.\n", id)
}
