package minesweeper

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Game is one single-player session. It is created NotStarted with an
// all-hidden grid; the first Open places the mines around the clicked cell
// and moves it to InProgress; it ends Won or Lost. Game is not safe for
// concurrent use.
type Game struct {
	uid       string
	player    string
	size      int
	mineCount int

	state     State
	grid      *Grid
	board     *Board // nil until the first open
	positions []MinePosition
	log       MoveLog

	rnd        RandSource
	now        func() time.Time
	logNoOps   bool
	startedAt  time.Time
	finishedAt time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the source used for mine placement.
func WithRand(rnd RandSource) Option {
	return func(g *Game) { g.rnd = rnd }
}

// WithSeed places mines from a math/rand source seeded with seed.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rnd = rand.New(rand.NewSource(seed)) }
}

// WithClock replaces time.Now for timestamps and the elapsed timer.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithNoOpOpenLogging controls whether opening an already revealed (or
// flagged safe) cell is written to the move log. It is on by default.
func WithNoOpOpenLogging(enabled bool) Option {
	return func(g *Game) { g.logNoOps = enabled }
}

// NewGame creates a session. size and mines are clamped, never rejected.
func NewGame(size, mines int, player string, opts ...Option) *Game {
	size = ClampSize(size)
	mines = ClampMineCount(size, mines)

	g := &Game{
		uid:       uuid.NewString(),
		player:    player,
		size:      size,
		mineCount: mines,
		state:     StateNotStarted,
		grid:      NewGrid(size, mines),
		now:       time.Now,
		logNoOps:  true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(g.now().UnixNano()))
	}
	return g
}

// Open opens (row, col). The first open of a session generates the board
// with that cell guaranteed safe.
func (g *Game) Open(row, col int) (Outcome, error) {
	if g.state.Terminal() {
		return "", ErrGameOver
	}
	if !g.grid.InBounds(row, col) {
		return "", ErrOutOfBounds
	}

	if g.state == StateNotStarted {
		g.start(row, col)
	}

	idx := g.grid.Index(row, col)
	noop := g.grid.states[idx] != CellHidden && !g.board.layout.IsMine(idx)

	out, err := g.board.Open(row, col)
	if err != nil {
		return "", err
	}

	if !noop || g.logNoOps {
		g.log.Record(row, col, MoveOpen, out)
	}

	switch out {
	case OutcomeMine:
		g.finish(StateLost)
	case OutcomeWin:
		g.finish(StateWon)
	}
	return out, nil
}

// ToggleFlag flips the flag on (row, col). It reports false, and records
// nothing, when the cell is already revealed. Flags can only be placed
// once the board exists.
func (g *Game) ToggleFlag(row, col int) (bool, error) {
	switch {
	case g.state.Terminal():
		return false, ErrGameOver
	case g.state != StateInProgress:
		return false, ErrNotInProgress
	case !g.grid.InBounds(row, col):
		return false, ErrOutOfBounds
	}

	changed, err := g.board.ToggleFlag(row, col)
	if err != nil || !changed {
		return false, err
	}

	out := OutcomeFlagSet
	if g.grid.states[g.grid.Index(row, col)] == CellHidden {
		out = OutcomeFlagRemoved
	}
	g.log.Record(row, col, MoveFlag, out)
	return true, nil
}

// Click routes a platform click: primary opens, secondary toggles a flag.
func (g *Game) Click(c core.Click) error {
	switch c.Kind {
	case core.ClickPrimary:
		_, err := g.Open(c.Row, c.Col)
		return err
	case core.ClickSecondary:
		_, err := g.ToggleFlag(c.Row, c.Col)
		return err
	default:
		return nil
	}
}

func (g *Game) start(row, col int) {
	positions, adjacency := Generate(g.size, g.mineCount, MinePosition{Row: row, Col: col}, g.rnd)
	g.positions = positions
	g.board = &Board{grid: g.grid, layout: layoutFromGenerated(g.size, positions, adjacency)}
	g.state = StateInProgress
	g.startedAt = g.now()
}

func (g *Game) finish(s State) {
	g.state = s
	g.finishedAt = g.now()
}

// UID returns the session's unique id.
func (g *Game) UID() string { return g.uid }

// Player returns the player name.
func (g *Game) Player() string { return g.player }

// Size returns the clamped board size.
func (g *Game) Size() int { return g.size }

// MineCount returns the clamped mine count.
func (g *Game) MineCount() int { return g.mineCount }

// State returns the session state.
func (g *Game) State() State { return g.state }

// Grid returns the disclosure state, all hidden before the first open.
func (g *Game) Grid() *Grid { return g.grid }

// Board returns the live board, or nil before the first open.
func (g *Game) Board() *Board { return g.board }

// MinePositions returns a copy of the placed mines, nil before the first open.
func (g *Game) MinePositions() []MinePosition {
	if g.positions == nil {
		return nil
	}
	out := make([]MinePosition, len(g.positions))
	copy(out, g.positions)
	return out
}

// Moves returns a copy of the move log.
func (g *Game) Moves() []Move { return g.log.Moves() }

// Elapsed returns play time since the first open, frozen once the game ends.
func (g *Game) Elapsed() time.Duration {
	switch {
	case g.state == StateNotStarted:
		return 0
	case g.state.Terminal():
		return g.finishedAt.Sub(g.startedAt)
	default:
		return g.now().Sub(g.startedAt)
	}
}

// Record builds the persistable record of a finished game.
func (g *Game) Record() (*GameRecord, error) {
	if !g.state.Terminal() {
		return nil, ErrNotTerminal
	}
	result := ResultLose
	if g.state == StateWon {
		result = ResultWin
	}
	moves := g.log.Moves()
	return &GameRecord{
		UID:           g.uid,
		Player:        g.player,
		PlayedAt:      g.finishedAt,
		Size:          g.size,
		MineCount:     g.mineCount,
		MinePositions: g.MinePositions(),
		Result:        result,
		TotalMoves:    len(moves),
		Moves:         moves,
	}, nil
}
