package minesweeper

// Grid is the disclosure state of a board: per-cell state, the symbol a
// revealed cell shows and the remaining-mine counter. It knows nothing about
// where the mines are; that comes from a Field. The live board and a replay
// each own one Grid.
type Grid struct {
	size      int
	states    []CellState
	symbols   []Symbol // meaningful only where states[i] == CellRevealed
	remaining int
}

// NewGrid returns an all-hidden grid whose counter starts at mineCount.
func NewGrid(size, mineCount int) *Grid {
	n := size * size
	g := &Grid{
		size:      size,
		states:    make([]CellState, n),
		symbols:   make([]Symbol, n),
		remaining: mineCount,
	}
	for i := range g.symbols {
		g.symbols[i] = SymbolHidden
	}
	return g
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.states) }

// Remaining returns the remaining-mine counter (mines minus flags).
func (g *Grid) Remaining() int { return g.remaining }

// InBounds reports whether (row, col) is on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Index converts (row, col) to the row-major flat index.
func (g *Grid) Index(row, col int) int {
	return row*g.size + col
}

// State returns the state of the cell at idx.
func (g *Grid) State(idx int) CellState {
	return g.states[idx]
}

// SymbolAt returns the display symbol of the cell at (row, col).
func (g *Grid) SymbolAt(row, col int) Symbol {
	idx := g.Index(row, col)
	switch g.states[idx] {
	case CellFlagged:
		return SymbolFlagged
	case CellRevealed:
		return g.symbols[idx]
	default:
		return SymbolHidden
	}
}

// Symbols returns the display grid in row-major order.
func (g *Grid) Symbols() []Symbol {
	out := make([]Symbol, len(g.states))
	for idx := range g.states {
		out[idx] = g.SymbolAt(idx/g.size, idx%g.size)
	}
	return out
}

// Equal reports whether two grids show exactly the same board and counter.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size || g.remaining != other.remaining {
		return false
	}
	for idx := range g.states {
		if g.states[idx] != other.states[idx] {
			return false
		}
		if g.states[idx] == CellRevealed && g.symbols[idx] != other.symbols[idx] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:      g.size,
		states:    make([]CellState, len(g.states)),
		symbols:   make([]Symbol, len(g.symbols)),
		remaining: g.remaining,
	}
	copy(c.states, g.states)
	copy(c.symbols, g.symbols)
	return c
}

func (g *Grid) reveal(idx int, s Symbol) {
	g.states[idx] = CellRevealed
	g.symbols[idx] = s
}

func (g *Grid) setFlag(idx int) {
	g.states[idx] = CellFlagged
	g.remaining--
}

func (g *Grid) clearFlag(idx int) {
	g.states[idx] = CellHidden
	g.remaining++
}

// neighbors returns the flat indexes of the up to 8 cells around idx.
func neighbors(size, idx int) []int {
	row, col := idx/size, idx%size
	out := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r >= 0 && r < size && c >= 0 && c < size {
				out = append(out, r*size+c)
			}
		}
	}
	return out
}
