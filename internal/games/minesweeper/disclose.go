package minesweeper

import "github.com/gammazero/deque"

// Disclose runs flood disclosure on g starting at start, with adjacency
// counts supplied by f. A hidden cell is revealed with its count; a cell
// with count 0 queues its 8 neighbours. Cells that are already revealed or
// flagged are skipped. The worklist is FIFO and every index is queued at
// most once, so the walk terminates on any board. Returns the number of
// cells revealed.
//
// The caller guarantees start is not a mine. Flooding never reaches a mine
// because only zero-count cells expand.
func Disclose(g *Grid, f Field, start int) int {
	visited := make([]bool, g.Len())
	var queue deque.Deque[int]

	visited[start] = true
	queue.PushBack(start)

	revealed := 0
	for queue.Len() > 0 {
		idx := queue.PopFront()
		if g.states[idx] != CellHidden {
			continue
		}

		count := f.Adjacency(idx)
		g.reveal(idx, Symbol(count))
		revealed++

		if count != 0 {
			continue
		}
		for _, nb := range neighbors(g.size, idx) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			queue.PushBack(nb)
		}
	}
	return revealed
}

// detonate marks the opened mine as exploded and shows every other mine.
// A mine that was flagged is shown as a mine as well.
func detonate(g *Grid, f Field, hit int) {
	g.reveal(hit, SymbolExploded)
	for _, idx := range f.MineIndexes() {
		if idx == hit {
			continue
		}
		g.reveal(idx, SymbolMine)
	}
}

// open is the single open-a-cell routine behind both Board.Open and
// ReplayStep.
func open(g *Grid, f Field, idx int) Outcome {
	if f.IsMine(idx) {
		detonate(g, f, idx)
		return OutcomeMine
	}
	Disclose(g, f, idx)
	if IsWon(g, f) {
		return OutcomeWin
	}
	return OutcomeSafe
}
