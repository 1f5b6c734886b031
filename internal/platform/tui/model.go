package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// Store is the persistence the TUI needs. *storage.Store implements it.
type Store interface {
	SaveGame(ctx context.Context, rec *minesweeper.GameRecord) (int64, error)
	GameByID(ctx context.Context, id int64) (*minesweeper.GameRecord, error)
	ListGames(ctx context.Context) ([]minesweeper.GameSummary, error)
	DeleteGame(ctx context.Context, id int64) (bool, error)
	PlayerStats(ctx context.Context) ([]storage.PlayerStats, error)
}

var _ Store = (*storage.Store)(nil)

const (
	saveTimeout = 5 * time.Second
	helpLines   = 2
)

// Settings are the parameters of games started from the TUI.
type Settings struct {
	Size            int
	Mines           int
	Player          string
	Seed            int64 // 0 = time based
	RecordNoOpOpens bool
}

// NewGame starts a session from the settings.
func (s Settings) NewGame() *minesweeper.Game {
	opts := []minesweeper.Option{minesweeper.WithNoOpOpenLogging(s.RecordNoOpOpens)}
	if s.Seed != 0 {
		opts = append(opts, minesweeper.WithSeed(s.Seed))
	}
	return minesweeper.NewGame(s.Size, s.Mines, s.Player, opts...)
}

// GameModel is the Bubble Tea model for the play screen.
type GameModel struct {
	game     *minesweeper.Game
	settings Settings
	store    Store
	logger   *log.Logger
	screen   *core.Screen
	keys     GameKeyMap
	help     help.Model
	cursor   minesweeper.MinePosition
	status   string
	savedID  int64

	width      int
	height     int
	quitting   bool
	backToMenu bool
	standalone bool // back quits the program
}

// NewGameModel creates the play screen. store may be nil, in which case
// finished games are not saved.
func NewGameModel(settings Settings, store Store, logger *log.Logger, width, height int) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game := settings.NewGame()
	return GameModel{
		game:     game,
		settings: settings,
		store:    store,
		logger:   logger,
		screen:   core.NewScreen(width, boardHeight(height)),
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		cursor:   minesweeper.MinePosition{Row: game.Size() / 2, Col: game.Size() / 2},
		width:    width,
		height:   height,
	}
}

// Init starts the HUD timer.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(time.Second)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m, tickCmd(time.Second)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.game.Size()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = core.Clamp(m.cursor.Row-1, 0, size-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = core.Clamp(m.cursor.Row+1, 0, size-1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = core.Clamp(m.cursor.Col-1, 0, size-1)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = core.Clamp(m.cursor.Col+1, 0, size-1)
	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	case key.Matches(msg, m.keys.Open):
		return m.click(core.Click{Row: m.cursor.Row, Col: m.cursor.Col, Kind: core.ClickPrimary})
	case key.Matches(msg, m.keys.Flag):
		return m.click(core.Click{Row: m.cursor.Row, Col: m.cursor.Col, Kind: core.ClickSecondary})
	}
	return m, nil
}

// handleMouse maps left and right button presses on the board to clicks.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	row, col, ok := minesweeper.CellAt(m.width, m.game.Size(), msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = minesweeper.MinePosition{Row: row, Col: col}

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.click(core.Click{Row: row, Col: col, Kind: core.ClickPrimary})
	case tea.MouseButtonRight:
		return m.click(core.Click{Row: row, Col: col, Kind: core.ClickSecondary})
	}
	return m, nil
}

// click applies one click to the game and saves it once it is over.
func (m GameModel) click(c core.Click) (tea.Model, tea.Cmd) {
	if m.game.State().Terminal() {
		return m, nil
	}
	if err := m.game.Click(c); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = ""

	if !m.game.State().Terminal() {
		return m, nil
	}

	m.logger.Info("game over",
		"uid", m.game.UID(),
		"result", m.game.State(),
		"moves", len(m.game.Moves()),
		"elapsed", m.game.Elapsed().Round(time.Second),
	)
	m.save()
	return m, nil
}

// save persists the finished game. Failures are shown and logged; play
// continues regardless.
func (m *GameModel) save() {
	if m.store == nil {
		return
	}
	rec, err := m.game.Record()
	if err != nil {
		m.status = err.Error()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	id, err := m.store.SaveGame(ctx, rec)
	if err != nil {
		m.status = "could not save game"
		m.logger.Error("save failed", "uid", rec.UID, "error", err)
		return
	}
	m.savedID = id
	m.status = fmt.Sprintf("saved as game #%d, press r for a new game", id)
	m.logger.Info("game saved", "id", id, "uid", rec.UID, "result", rec.Result)
}

// restart starts a fresh game with the same settings.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	if m.game.State() == minesweeper.StateInProgress {
		m.logger.Debug("game abandoned", "uid", m.game.UID(), "moves", len(m.game.Moves()))
	}
	m.game = m.settings.NewGame()
	m.status = ""
	m.savedID = 0
	return m, nil
}

// boardHeight leaves room below the board for the help bar.
func boardHeight(height int) int {
	return core.Max(1, height-helpLines)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	view := m.game.View(m.cursor)
	view.Footer = m.footer()
	minesweeper.Render(m.screen, view)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m GameModel) footer() string {
	elapsed := m.game.Elapsed().Round(time.Second)
	line := fmt.Sprintf("%s  %dx%d  %s", m.game.Player(), m.game.Size(), m.game.Size(), elapsed)
	switch {
	case m.status != "":
		line += "  " + m.status
	case m.game.State().Terminal():
		line += "  press r for a new game"
	}
	return line
}

// Game returns the current session.
func (m GameModel) Game() *minesweeper.Game {
	return m.game
}

// SavedID returns the id the finished game was stored under, or 0.
func (m GameModel) SavedID() int64 {
	return m.savedID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone play screen.
func Run(settings Settings, store Store, logger *log.Logger, width, height int) error {
	model := NewGameModel(settings, store, logger, width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
