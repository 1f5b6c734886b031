package minesweeper

import (
	"testing"
	"time"
)

// scriptedRand returns the given flat indexes in order, cycling.
type scriptedRand struct {
	idx []int
	i   int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.idx[s.i%len(s.idx)] % n
	s.i++
	return v
}

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
}

// startedGame returns an in-progress game over a fixed layout, as if the
// first open had already placed the mines.
func startedGame(t *testing.T, size int, positions ...MinePosition) *Game {
	t.Helper()
	g := NewGame(size, len(positions), "tester", WithClock(fixedClock))
	layout, err := NewLayout(size, positions)
	if err != nil {
		t.Fatalf("NewLayout() failed: %v", err)
	}
	g.positions = positions
	g.board = &Board{grid: g.grid, layout: layout}
	g.state = StateInProgress
	g.startedAt = fixedClock()
	return g
}

func mustBoard(t *testing.T, size int, positions ...MinePosition) *Board {
	t.Helper()
	b, err := NewBoard(size, positions)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b
}

func pos(row, col int) MinePosition {
	return MinePosition{Row: row, Col: col}
}
