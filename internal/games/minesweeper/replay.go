package minesweeper

import "fmt"

// ReplayStep applies one recorded move to g. Opens go through the same
// open routine as live play, with adjacency counted from mines; the
// computed outcome must match the recorded one or ErrReplayDiverged is
// returned alongside it. Flags apply the recorded outcome.
func ReplayStep(g *Grid, mines *MineSet, m Move) (Outcome, error) {
	if !g.InBounds(m.Row, m.Col) {
		return "", fmt.Errorf("%w: move %d at (%d, %d)", ErrCorruptRecord, m.Seq, m.Row, m.Col)
	}
	idx := g.Index(m.Row, m.Col)

	switch m.Type {
	case MoveOpen:
		got := open(g, mines, idx)
		if got != m.Outcome {
			return got, fmt.Errorf("%w: move %d recorded %s, computed %s", ErrReplayDiverged, m.Seq, m.Outcome, got)
		}
		return got, nil

	case MoveFlag:
		switch {
		case m.Outcome == OutcomeFlagSet && g.states[idx] == CellHidden:
			g.setFlag(idx)
		case m.Outcome == OutcomeFlagRemoved && g.states[idx] == CellFlagged:
			g.clearFlag(idx)
		case m.Outcome == OutcomeFlagSet || m.Outcome == OutcomeFlagRemoved:
			return m.Outcome, fmt.Errorf("%w: move %d %s on %s cell", ErrReplayDiverged, m.Seq, m.Outcome, g.states[idx])
		default:
			return "", fmt.Errorf("%w: move %d flag outcome %q", ErrCorruptRecord, m.Seq, m.Outcome)
		}
		return m.Outcome, nil

	default:
		return "", fmt.Errorf("%w: move %d type %q", ErrCorruptRecord, m.Seq, m.Type)
	}
}

// Replay steps through a finished game one move at a time, starting from an
// all-hidden grid and the recorded mine positions only.
type Replay struct {
	rec    *GameRecord
	mines  *MineSet
	grid   *Grid
	cursor int
	err    error // set when a move diverged, cleared by Reset
}

// NewReplay validates rec and positions the replay before the first move.
func NewReplay(rec *GameRecord) (*Replay, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	mines, err := NewMineSet(rec.Size, rec.MinePositions)
	if err != nil {
		return nil, err
	}
	r := &Replay{rec: rec, mines: mines}
	r.Reset()
	return r, nil
}

// Reset returns to the empty board before the first move.
func (r *Replay) Reset() {
	r.grid = NewGrid(r.rec.Size, r.mines.Len())
	r.cursor = 0
	r.err = nil
}

// Step applies the next move. At the end of the log it returns
// ErrReplayFinished. Once a move fails the replay is stuck on it: later
// calls return the same error without touching the grid until Reset.
func (r *Replay) Step() (Move, Outcome, error) {
	if r.Done() {
		return Move{}, "", ErrReplayFinished
	}
	m := r.rec.Moves[r.cursor]
	if r.err != nil {
		return m, "", r.err
	}
	out, err := ReplayStep(r.grid, r.mines, m)
	if err != nil {
		r.err = err
		return m, out, err
	}
	r.cursor++
	return m, out, nil
}

// Err returns the error that stopped the replay, if any.
func (r *Replay) Err() error { return r.err }

// Done reports whether every move has been applied.
func (r *Replay) Done() bool { return r.cursor >= len(r.rec.Moves) }

// Cursor returns the number of moves applied so far.
func (r *Replay) Cursor() int { return r.cursor }

// Len returns the number of moves in the record.
func (r *Replay) Len() int { return len(r.rec.Moves) }

// Grid returns the board as of the current cursor.
func (r *Replay) Grid() *Grid { return r.grid }

// Record returns the record being replayed.
func (r *Replay) Record() *GameRecord { return r.rec }

// Reconstruct replays every move of rec and returns the final board.
func Reconstruct(rec *GameRecord) (*Grid, error) {
	r, err := NewReplay(rec)
	if err != nil {
		return nil, err
	}
	for !r.Done() {
		if _, _, err := r.Step(); err != nil {
			return r.grid, err
		}
	}
	return r.grid, nil
}
