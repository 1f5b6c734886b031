package minesweeper

import (
	"errors"
	"testing"
)

func TestScenarioFloodWinsInOneMove(t *testing.T) {
	g := NewGame(3, 1, "tester", WithRand(&scriptedRand{idx: []int{0}}), WithClock(fixedClock))

	out, err := g.Open(2, 2)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if out != OutcomeWin {
		t.Fatalf("Open(2, 2) = %s, want win", out)
	}
	if g.State() != StateWon {
		t.Errorf("State() = %s, want won", g.State())
	}
	if len(g.Moves()) != 1 {
		t.Errorf("moves = %d, want 1", len(g.Moves()))
	}
	for idx := 1; idx < 9; idx++ {
		if g.Grid().State(idx) != CellRevealed {
			t.Errorf("cell %d is %s, want revealed", idx, g.Grid().State(idx))
		}
	}
	if g.Grid().State(0) != CellHidden {
		t.Errorf("mine cell is %s, want hidden", g.Grid().State(0))
	}
}

func TestScenarioFlagToggle(t *testing.T) {
	g := startedGame(t, 4, pos(0, 0), pos(3, 3))

	changed, err := g.ToggleFlag(0, 0)
	if err != nil || !changed {
		t.Fatalf("ToggleFlag() = %v, %v, want true, nil", changed, err)
	}
	if g.Grid().Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", g.Grid().Remaining())
	}

	changed, err = g.ToggleFlag(0, 0)
	if err != nil || !changed {
		t.Fatalf("ToggleFlag() = %v, %v, want true, nil", changed, err)
	}
	if g.Grid().Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", g.Grid().Remaining())
	}

	moves := g.Moves()
	want := []Move{
		{Seq: 1, Row: 0, Col: 0, Type: MoveFlag, Outcome: OutcomeFlagSet},
		{Seq: 2, Row: 0, Col: 0, Type: MoveFlag, Outcome: OutcomeFlagRemoved},
	}
	if len(moves) != len(want) {
		t.Fatalf("moves = %d, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("moves[%d] = %+v, want %+v", i, moves[i], want[i])
		}
	}
}

func TestScenarioOpenMineLoses(t *testing.T) {
	b := mustBoard(t, 3, pos(1, 1))

	out, err := b.Open(1, 1)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if out != OutcomeMine {
		t.Fatalf("Open(1, 1) = %s, want mine", out)
	}
	if s := b.Grid().SymbolAt(1, 1); s != SymbolExploded {
		t.Errorf("SymbolAt(1, 1) = %s, want exploded", s)
	}

	g := startedGame(t, 3, pos(1, 1))
	if _, err := g.Open(1, 1); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if g.State() != StateLost {
		t.Errorf("State() = %s, want lost", g.State())
	}
	rec, err := g.Record()
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if rec.Result != ResultLose {
		t.Errorf("Result = %s, want lose", rec.Result)
	}
}

func TestOpenMineShowsAllMinesOverFlags(t *testing.T) {
	b := mustBoard(t, 4, pos(0, 0), pos(3, 3), pos(0, 3))
	if _, err := b.ToggleFlag(3, 3); err != nil {
		t.Fatalf("ToggleFlag() failed: %v", err)
	}

	if out, _ := b.Open(0, 0); out != OutcomeMine {
		t.Fatalf("Open(0, 0) = %s, want mine", out)
	}
	tests := []struct {
		row, col int
		want     Symbol
	}{
		{0, 0, SymbolExploded},
		{3, 3, SymbolMine},
		{0, 3, SymbolMine},
		{1, 1, SymbolHidden},
	}
	for _, tt := range tests {
		if got := b.Grid().SymbolAt(tt.row, tt.col); got != tt.want {
			t.Errorf("SymbolAt(%d, %d) = %s, want %s", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestOpenFlaggedMineExplodes(t *testing.T) {
	b := mustBoard(t, 3, pos(0, 0))
	if _, err := b.ToggleFlag(0, 0); err != nil {
		t.Fatalf("ToggleFlag() failed: %v", err)
	}
	if out, _ := b.Open(0, 0); out != OutcomeMine {
		t.Errorf("Open() on flagged mine = %s, want mine", out)
	}
}

func TestOpenFlaggedSafeCellIsNoOp(t *testing.T) {
	b := mustBoard(t, 3, pos(0, 0))
	if _, err := b.ToggleFlag(2, 2); err != nil {
		t.Fatalf("ToggleFlag() failed: %v", err)
	}
	out, _ := b.Open(2, 2)
	if out != OutcomeSafe {
		t.Errorf("Open() on flagged safe cell = %s, want safe", out)
	}
	if st := b.Grid().State(8); st != CellFlagged {
		t.Errorf("cell state = %s, want flagged", st)
	}
}

func TestReopenRevealedCellIsNoOp(t *testing.T) {
	b := mustBoard(t, 3, pos(0, 0), pos(2, 2))
	if out, _ := b.Open(1, 1); out != OutcomeSafe {
		t.Fatalf("Open(1, 1) = %s, want safe", out)
	}
	before := b.Grid().Clone()
	if out, _ := b.Open(1, 1); out != OutcomeSafe {
		t.Errorf("second Open(1, 1) = %s, want safe", out)
	}
	if !b.Grid().Equal(before) {
		t.Error("reopening a revealed cell changed the grid")
	}
}

func TestToggleFlagOnRevealedCell(t *testing.T) {
	b := mustBoard(t, 3, pos(0, 0), pos(2, 2))
	if _, err := b.Open(1, 1); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	changed, err := b.ToggleFlag(1, 1)
	if err != nil {
		t.Fatalf("ToggleFlag() failed: %v", err)
	}
	if changed {
		t.Error("ToggleFlag() on revealed cell reported a change")
	}
	if b.Grid().Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", b.Grid().Remaining())
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := mustBoard(t, 3, pos(0, 0))
	if _, err := b.Open(3, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Open() error = %v, want ErrOutOfBounds", err)
	}
	if _, err := b.ToggleFlag(0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ToggleFlag() error = %v, want ErrOutOfBounds", err)
	}
	if _, err := b.Cell(-1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Cell() error = %v, want ErrOutOfBounds", err)
	}
}

func TestBoardCellAndSolution(t *testing.T) {
	b := mustBoard(t, 2, pos(0, 1))
	c, err := b.Cell(0, 1)
	if err != nil {
		t.Fatalf("Cell() failed: %v", err)
	}
	if !c.IsMine || c.Adjacency != -1 || c.State != CellHidden {
		t.Errorf("Cell(0, 1) = %+v", c)
	}

	want := []Symbol{1, SymbolMine, 1, 1}
	got := b.Solution()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Solution()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
