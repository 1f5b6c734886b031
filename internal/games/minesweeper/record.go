package minesweeper

import (
	"fmt"
	"time"
)

// GameRecord is a finished game as it is persisted. It is built once when a
// game reaches a terminal state and never changes afterwards.
type GameRecord struct {
	ID            int64
	UID           string
	Player        string
	PlayedAt      time.Time
	Size          int
	MineCount     int
	MinePositions []MinePosition
	Result        Result
	TotalMoves    int
	Moves         []Move
}

// GameSummary is the list view of a record.
type GameSummary struct {
	ID         int64
	UID        string
	Player     string
	PlayedAt   time.Time
	Size       int
	MineCount  int
	Result     Result
	TotalMoves int
}

// Summary strips the board and moves from the record.
func (r *GameRecord) Summary() GameSummary {
	return GameSummary{
		ID:         r.ID,
		UID:        r.UID,
		Player:     r.Player,
		PlayedAt:   r.PlayedAt,
		Size:       r.Size,
		MineCount:  r.MineCount,
		Result:     r.Result,
		TotalMoves: r.TotalMoves,
	}
}

// Validate checks the record's internal consistency. Every failure wraps
// ErrCorruptRecord.
func (r *GameRecord) Validate() error {
	if r.Size < MinSize || r.Size > MaxSize {
		return fmt.Errorf("%w: size %d", ErrCorruptRecord, r.Size)
	}
	if r.MineCount != len(r.MinePositions) {
		return fmt.Errorf("%w: mine count %d but %d positions", ErrCorruptRecord, r.MineCount, len(r.MinePositions))
	}
	if r.Result != ResultWin && r.Result != ResultLose {
		return fmt.Errorf("%w: result %q", ErrCorruptRecord, r.Result)
	}
	if r.TotalMoves != len(r.Moves) {
		return fmt.Errorf("%w: total moves %d but %d recorded", ErrCorruptRecord, r.TotalMoves, len(r.Moves))
	}
	for i, m := range r.Moves {
		if m.Seq != i+1 {
			return fmt.Errorf("%w: move %d has sequence %d", ErrCorruptRecord, i+1, m.Seq)
		}
	}
	return nil
}
