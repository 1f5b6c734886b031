package minesweeper

import "strconv"

// Symbol is what the rendering layer shows for a cell. Values 0..8 are
// adjacency counts of revealed safe cells; the named constants are negative.
type Symbol int8

const (
	SymbolHidden   Symbol = -1
	SymbolFlagged  Symbol = -2
	SymbolMine     Symbol = -3
	SymbolExploded Symbol = -4
)

// IsNumber reports whether the symbol is a revealed adjacency count.
func (s Symbol) IsNumber() bool {
	return s >= 0 && s <= 8
}

// Rune returns the single-character glyph for the symbol.
func (s Symbol) Rune() rune {
	switch {
	case s == SymbolHidden:
		return '·'
	case s == SymbolFlagged:
		return '⚑'
	case s == SymbolMine:
		return '*'
	case s == SymbolExploded:
		return 'X'
	case s == 0:
		return ' '
	case s.IsNumber():
		return rune('0' + s)
	default:
		return '?'
	}
}

// String returns a stable text form used in logs and plain-text output.
func (s Symbol) String() string {
	switch {
	case s == SymbolHidden:
		return "hidden"
	case s == SymbolFlagged:
		return "flagged"
	case s == SymbolMine:
		return "mine"
	case s == SymbolExploded:
		return "exploded"
	case s.IsNumber():
		return strconv.Itoa(int(s))
	default:
		return "invalid"
	}
}
