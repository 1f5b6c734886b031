package minesweeper

import "fmt"

// Field answers where the mines are. Disclosure and win detection only ever
// see a Field, which is how the live board and replay share one algorithm.
type Field interface {
	IsMine(idx int) bool
	Adjacency(idx int) int
	MineIndexes() []int
}

// Layout is a Field with adjacency counts computed once at generation time.
// It backs the live board.
type Layout struct {
	size      int
	mines     []bool
	adjacency []int // -1 for mines
	indexes   []int // mine indexes in placement order
}

// NewLayout builds a Layout from mine positions, computing every adjacency
// count in one pass.
func NewLayout(size int, positions []MinePosition) (*Layout, error) {
	l := &Layout{
		size:      size,
		mines:     make([]bool, size*size),
		adjacency: make([]int, size*size),
		indexes:   make([]int, 0, len(positions)),
	}
	for _, p := range positions {
		if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
			return nil, fmt.Errorf("%w: mine %s outside %dx%d board", ErrCorruptRecord, p, size, size)
		}
		idx := p.Row*size + p.Col
		if l.mines[idx] {
			return nil, fmt.Errorf("%w: duplicate mine %s", ErrCorruptRecord, p)
		}
		l.mines[idx] = true
		l.indexes = append(l.indexes, idx)
	}
	for idx := range l.adjacency {
		if l.mines[idx] {
			l.adjacency[idx] = -1
			continue
		}
		l.adjacency[idx] = countAdjacent(size, idx, l.IsMine)
	}
	return l, nil
}

// layoutFromGenerated wraps the output of Generate without recounting.
func layoutFromGenerated(size int, positions []MinePosition, adjacency []int) *Layout {
	l := &Layout{
		size:      size,
		mines:     make([]bool, size*size),
		adjacency: adjacency,
		indexes:   make([]int, 0, len(positions)),
	}
	for _, p := range positions {
		idx := p.Row*size + p.Col
		l.mines[idx] = true
		l.indexes = append(l.indexes, idx)
	}
	return l
}

func (l *Layout) IsMine(idx int) bool   { return l.mines[idx] }
func (l *Layout) Adjacency(idx int) int { return l.adjacency[idx] }
func (l *Layout) MineIndexes() []int    { return l.indexes }

// AdjacencyGrid returns a copy of the row-major adjacency counts.
func (l *Layout) AdjacencyGrid() []int {
	out := make([]int, len(l.adjacency))
	copy(out, l.adjacency)
	return out
}

// MineSet is a Field that only knows the mine positions and counts
// neighbours on demand. Replay uses it so that it never depends on anything
// the live board computed.
type MineSet struct {
	size    int
	set     map[int]struct{}
	indexes []int
}

// NewMineSet validates positions against the board size and returns the set.
func NewMineSet(size int, positions []MinePosition) (*MineSet, error) {
	m := &MineSet{
		size:    size,
		set:     make(map[int]struct{}, len(positions)),
		indexes: make([]int, 0, len(positions)),
	}
	for _, p := range positions {
		if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
			return nil, fmt.Errorf("%w: mine %s outside %dx%d board", ErrCorruptRecord, p, size, size)
		}
		idx := p.Row*size + p.Col
		if _, dup := m.set[idx]; dup {
			return nil, fmt.Errorf("%w: duplicate mine %s", ErrCorruptRecord, p)
		}
		m.set[idx] = struct{}{}
		m.indexes = append(m.indexes, idx)
	}
	return m, nil
}

func (m *MineSet) IsMine(idx int) bool {
	_, ok := m.set[idx]
	return ok
}

func (m *MineSet) Adjacency(idx int) int {
	if m.IsMine(idx) {
		return -1
	}
	return countAdjacent(m.size, idx, m.IsMine)
}

func (m *MineSet) MineIndexes() []int { return m.indexes }

// Len returns the number of mines.
func (m *MineSet) Len() int { return len(m.indexes) }

func countAdjacent(size, idx int, isMine func(int) bool) int {
	count := 0
	for _, nb := range neighbors(size, idx) {
		if isMine(nb) {
			count++
		}
	}
	return count
}
