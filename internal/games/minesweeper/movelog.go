package minesweeper

import "fmt"

// Move is one recorded player action.
type Move struct {
	Seq     int      `json:"seq"`
	Row     int      `json:"row"`
	Col     int      `json:"col"`
	Type    MoveType `json:"type"`
	Outcome Outcome  `json:"outcome"`
}

// Describe returns a one-line human description, e.g.
// "#3 open (2, 4): safe".
func (m Move) Describe() string {
	return fmt.Sprintf("#%d %s (%d, %d): %s", m.Seq, m.Type, m.Row, m.Col, describeOutcome(m.Outcome))
}

func describeOutcome(o Outcome) string {
	switch o {
	case OutcomeSafe:
		return "safe"
	case OutcomeMine:
		return "MINE!"
	case OutcomeWin:
		return "WIN!"
	case OutcomeFlagSet:
		return "flag set"
	case OutcomeFlagRemoved:
		return "flag removed"
	default:
		return string(o)
	}
}

// MoveLog is an append-only list of moves with 1-based sequence numbers.
type MoveLog struct {
	moves []Move
}

// Record appends a move and returns it with its sequence number assigned.
func (l *MoveLog) Record(row, col int, typ MoveType, outcome Outcome) Move {
	m := Move{
		Seq:     len(l.moves) + 1,
		Row:     row,
		Col:     col,
		Type:    typ,
		Outcome: outcome,
	}
	l.moves = append(l.moves, m)
	return m
}

// Len returns the number of recorded moves.
func (l *MoveLog) Len() int { return len(l.moves) }

// Moves returns a copy of the log.
func (l *MoveLog) Moves() []Move {
	out := make([]Move, len(l.moves))
	copy(out, l.moves)
	return out
}
