package minesweeper

// IsWon reports whether every non-mine cell of g is revealed. Flags play no
// part: a game is won with mines unflagged, and a flagged safe cell still
// has to be opened.
func IsWon(g *Grid, f Field) bool {
	for idx, st := range g.states {
		if st != CellRevealed && !f.IsMine(idx) {
			return false
		}
	}
	return true
}
