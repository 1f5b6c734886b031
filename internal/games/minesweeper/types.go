// Package minesweeper implements the Minesweeper simulation: board
// generation with first-click safety, flood disclosure, win detection, an
// append-only move log and replay reconstruction from persisted mine
// positions.
//
// Live play and replay share one disclosure routine (Disclose) and differ
// only in where adjacency counts come from: a precomputed Layout for the
// live board, a MineSet that counts on the fly for replay.
package minesweeper

import (
	"errors"
	"fmt"
)

// Board size and mine count bounds.
const (
	MinSize = 2
	MaxSize = 30
)

var (
	ErrOutOfBounds    = errors.New("minesweeper: cell out of bounds")
	ErrGameOver       = errors.New("minesweeper: game is over")
	ErrNotInProgress  = errors.New("minesweeper: game not in progress")
	ErrNotTerminal    = errors.New("minesweeper: game has not finished")
	ErrCorruptRecord  = errors.New("minesweeper: corrupt game record")
	ErrReplayDiverged = errors.New("minesweeper: replay diverged from recorded outcome")
	ErrReplayFinished = errors.New("minesweeper: replay finished")
)

// CellState is the disclosure state of a single cell.
type CellState uint8

const (
	CellHidden CellState = iota
	CellRevealed
	CellFlagged
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case CellHidden:
		return "hidden"
	case CellRevealed:
		return "revealed"
	case CellFlagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// MinePosition is the location of one mine. The set of positions is the
// only board data that is ever persisted.
type MinePosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p MinePosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Cell is the full view of one live board cell.
type Cell struct {
	IsMine    bool
	Adjacency int // -1 for mines
	State     CellState
}

// Outcome is the recorded result of a move.
type Outcome string

const (
	OutcomeSafe        Outcome = "safe"
	OutcomeMine        Outcome = "mine"
	OutcomeWin         Outcome = "win"
	OutcomeFlagSet     Outcome = "flag_set"
	OutcomeFlagRemoved Outcome = "flag_removed"
)

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == OutcomeMine || o == OutcomeWin
}

// MoveType is the kind of player action.
type MoveType string

const (
	MoveOpen MoveType = "open"
	MoveFlag MoveType = "flag"
)

// Result is the final result of a finished game.
type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
)

// State is the lifecycle state of a game session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has finished.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}
