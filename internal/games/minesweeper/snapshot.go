package minesweeper

// Snapshot captures what a player can see of a session, for tests and the
// platform layer.
type Snapshot struct {
	UID       string
	Player    string
	State     State
	Size      int
	MineCount int
	Remaining int
	Moves     int
	Symbols   []Symbol // row-major; the full field once the game is over
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	symbols := g.grid.Symbols()
	if g.state.Terminal() {
		symbols = g.board.Solution()
	}
	return Snapshot{
		UID:       g.uid,
		Player:    g.player,
		State:     g.state,
		Size:      g.size,
		MineCount: g.mineCount,
		Remaining: g.grid.Remaining(),
		Moves:     g.log.Len(),
		Symbols:   symbols,
	}
}
