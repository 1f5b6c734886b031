package minesweeper

import (
	"math/rand"
	"testing"
)

func TestClampSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, MinSize},
		{0, MinSize},
		{1, MinSize},
		{2, 2},
		{16, 16},
		{30, 30},
		{31, MaxSize},
		{1000, MaxSize},
	}
	for _, tt := range tests {
		if got := ClampSize(tt.in); got != tt.want {
			t.Errorf("ClampSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampMineCount(t *testing.T) {
	tests := []struct {
		size, in, want int
	}{
		{2, 0, 1},
		{2, -3, 1},
		{2, 3, 3},
		{2, 4, 3},
		{9, 10, 10},
		{30, 10000, 899},
	}
	for _, tt := range tests {
		if got := ClampMineCount(tt.size, tt.in); got != tt.want {
			t.Errorf("ClampMineCount(%d, %d) = %d, want %d", tt.size, tt.in, got, tt.want)
		}
	}
}

func TestGenerateRejectsExcludedAndDuplicates(t *testing.T) {
	// 4 is the excluded (1,1) on a 3x3 board; 2 repeats.
	rnd := &scriptedRand{idx: []int{4, 2, 2, 4, 8}}
	positions, adjacency := Generate(3, 2, pos(1, 1), rnd)

	want := []MinePosition{pos(0, 2), pos(2, 2)}
	if len(positions) != len(want) {
		t.Fatalf("Generate() placed %d mines, want %d", len(positions), len(want))
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("positions[%d] = %v, want %v", i, positions[i], want[i])
		}
	}

	wantAdj := []int{
		0, 1, -1,
		0, 2, 2,
		0, 1, -1,
	}
	for i := range wantAdj {
		if adjacency[i] != wantAdj[i] {
			t.Errorf("adjacency[%d] = %d, want %d", i, adjacency[i], wantAdj[i])
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		size := ClampSize(2 + rnd.Intn(MaxSize))
		mines := ClampMineCount(size, 1+rnd.Intn(size*size))
		excluded := pos(rnd.Intn(size), rnd.Intn(size))

		positions, adjacency := Generate(size, mines, excluded, rnd)

		if len(positions) != mines {
			t.Fatalf("seed %d: %d mines placed, want %d", seed, len(positions), mines)
		}
		seen := make(map[MinePosition]bool)
		for _, p := range positions {
			if p == excluded {
				t.Fatalf("seed %d: mine on excluded cell %v", seed, p)
			}
			if seen[p] {
				t.Fatalf("seed %d: duplicate mine %v", seed, p)
			}
			seen[p] = true
		}

		for idx, adj := range adjacency {
			row, col := idx/size, idx%size
			if seen[pos(row, col)] {
				if adj != -1 {
					t.Fatalf("seed %d: mine %d,%d has adjacency %d", seed, row, col, adj)
				}
				continue
			}
			count := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if (dr != 0 || dc != 0) && seen[pos(row+dr, col+dc)] {
						count++
					}
				}
			}
			if adj != count {
				t.Fatalf("seed %d: adjacency at %d,%d = %d, want %d", seed, row, col, adj, count)
			}
		}
	}
}

func TestGenerateFullBoardLeavesOnlyExcluded(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	positions, adjacency := Generate(4, 15, pos(2, 1), rnd)
	if len(positions) != 15 {
		t.Fatalf("Generate() placed %d mines, want 15", len(positions))
	}
	if adjacency[2*4+1] != 8 {
		t.Errorf("adjacency of excluded cell = %d, want 8", adjacency[2*4+1])
	}
}

func TestNewLayoutRejectsCorruptPositions(t *testing.T) {
	tests := []struct {
		name      string
		positions []MinePosition
	}{
		{"out of range row", []MinePosition{pos(3, 0)}},
		{"negative col", []MinePosition{pos(0, -1)}},
		{"duplicate", []MinePosition{pos(1, 1), pos(1, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLayout(3, tt.positions); err == nil {
				t.Error("NewLayout() succeeded, want error")
			}
			if _, err := NewMineSet(3, tt.positions); err == nil {
				t.Error("NewMineSet() succeeded, want error")
			}
		})
	}
}

func TestMineSetMatchesLayout(t *testing.T) {
	positions := []MinePosition{pos(0, 0), pos(1, 3), pos(3, 3), pos(2, 1)}
	layout, err := NewLayout(4, positions)
	if err != nil {
		t.Fatalf("NewLayout() failed: %v", err)
	}
	set, err := NewMineSet(4, positions)
	if err != nil {
		t.Fatalf("NewMineSet() failed: %v", err)
	}
	for idx := range 16 {
		if layout.IsMine(idx) != set.IsMine(idx) {
			t.Errorf("IsMine(%d) differs", idx)
		}
		if layout.Adjacency(idx) != set.Adjacency(idx) {
			t.Errorf("Adjacency(%d): layout %d, set %d", idx, layout.Adjacency(idx), set.Adjacency(idx))
		}
	}
}
