package minesweeper

import "github.com/vovakirdan/tui-mines/internal/core"

// RandSource is the randomness used for mine placement.
// *math/rand.Rand satisfies it; tests supply scripted sources.
type RandSource interface {
	Intn(n int) int
}

// ClampSize restricts a requested board size to [MinSize, MaxSize].
func ClampSize(size int) int {
	return core.Clamp(size, MinSize, MaxSize)
}

// ClampMineCount restricts a requested mine count to [1, size²-1] for an
// already clamped size. At least one cell always stays free for the first click.
func ClampMineCount(size, mines int) int {
	return core.Clamp(mines, 1, size*size-1)
}

// Generate places mineCount mines on a size×size board by rejection
// sampling: a uniformly drawn cell is accepted unless it is the excluded
// cell or already a mine. Only the excluded cell itself is protected, not
// its neighbourhood. It returns the positions in placement order and the
// row-major adjacency grid (-1 marks a mine).
//
// Callers clamp size and mineCount first; Generate assumes
// MinSize <= size and 1 <= mineCount <= size²-1.
func Generate(size, mineCount int, excluded MinePosition, rnd RandSource) ([]MinePosition, []int) {
	n := size * size
	skip := excluded.Row*size + excluded.Col
	taken := make([]bool, n)
	positions := make([]MinePosition, 0, mineCount)

	for len(positions) < mineCount {
		idx := rnd.Intn(n)
		if idx == skip || taken[idx] {
			continue
		}
		taken[idx] = true
		positions = append(positions, MinePosition{Row: idx / size, Col: idx % size})
	}

	adjacency := make([]int, n)
	for idx := range adjacency {
		if taken[idx] {
			adjacency[idx] = -1
			continue
		}
		adjacency[idx] = countAdjacent(size, idx, func(i int) bool { return taken[i] })
	}
	return positions, adjacency
}
