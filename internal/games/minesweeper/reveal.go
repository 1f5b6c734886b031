package minesweeper

// Board is a live board: a Grid plus the Layout it was generated with.
type Board struct {
	grid   *Grid
	layout *Layout
}

// NewBoard builds a live board over the given mine positions. The
// remaining-mine counter starts at the number of mines.
func NewBoard(size int, positions []MinePosition) (*Board, error) {
	layout, err := NewLayout(size, positions)
	if err != nil {
		return nil, err
	}
	return &Board{grid: NewGrid(size, len(positions)), layout: layout}, nil
}

// Grid returns the board's disclosure state.
func (b *Board) Grid() *Grid { return b.grid }

// Layout returns the mine layout.
func (b *Board) Layout() *Layout { return b.layout }

// Open opens (row, col). Opening a mine detonates it and shows every mine;
// otherwise the cell is disclosed and the win check runs. Opening a cell
// that is already revealed, or a flagged safe cell, changes nothing and
// reports OutcomeSafe. A flagged mine still detonates.
func (b *Board) Open(row, col int) (Outcome, error) {
	if !b.grid.InBounds(row, col) {
		return "", ErrOutOfBounds
	}
	return open(b.grid, b.layout, b.grid.Index(row, col)), nil
}

// ToggleFlag flips a hidden cell to flagged or back. It returns false and
// changes nothing when the cell is revealed.
func (b *Board) ToggleFlag(row, col int) (bool, error) {
	if !b.grid.InBounds(row, col) {
		return false, ErrOutOfBounds
	}
	idx := b.grid.Index(row, col)
	switch b.grid.states[idx] {
	case CellHidden:
		b.grid.setFlag(idx)
	case CellFlagged:
		b.grid.clearFlag(idx)
	default:
		return false, nil
	}
	return true, nil
}

// Cell returns the full view of (row, col).
func (b *Board) Cell(row, col int) (Cell, error) {
	if !b.grid.InBounds(row, col) {
		return Cell{}, ErrOutOfBounds
	}
	idx := b.grid.Index(row, col)
	return Cell{
		IsMine:    b.layout.IsMine(idx),
		Adjacency: b.layout.Adjacency(idx),
		State:     b.grid.states[idx],
	}, nil
}

// Solution returns the fully disclosed field in row-major order: every
// mine as SymbolMine (SymbolExploded where one went off) and every safe
// cell as its count. Used to show the whole field once a game ends.
func (b *Board) Solution() []Symbol {
	out := make([]Symbol, b.grid.Len())
	for idx := range out {
		switch {
		case b.grid.states[idx] == CellRevealed && b.grid.symbols[idx] == SymbolExploded:
			out[idx] = SymbolExploded
		case b.layout.IsMine(idx):
			out[idx] = SymbolMine
		default:
			out[idx] = Symbol(b.layout.Adjacency(idx))
		}
	}
	return out
}
