// Package tui provides the Bubble Tea front end for minesweeper: the play
// and replay screens, the game history table, the start menu and the SSH
// server that hosts them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg refreshes time-dependent parts of a view.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
