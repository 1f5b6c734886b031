package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

const autoPlayInterval = 400 * time.Millisecond

// autoStepMsg advances an auto-playing replay. gen discards ticks from an
// earlier auto-play run.
type autoStepMsg struct {
	gen int
}

// ReplayModel steps through a saved game one move at a time.
type ReplayModel struct {
	replay   *minesweeper.Replay
	screen   *core.Screen
	keys     ReplayKeyMap
	help     help.Model
	lastMove string
	err      error
	autoPlay bool
	autoGen  int

	width      int
	height     int
	quitting   bool
	backToMenu bool
	standalone bool // back quits the program
}

// NewReplayModel creates the replay screen for rec.
func NewReplayModel(rec *minesweeper.GameRecord, width, height int) (ReplayModel, error) {
	r, err := minesweeper.NewReplay(rec)
	if err != nil {
		return ReplayModel{}, err
	}
	return ReplayModel{
		replay: r,
		screen: core.NewScreen(width, boardHeight(height)),
		keys:   DefaultReplayKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}, nil
}

// Init initializes the replay model.
func (m ReplayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay screen.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
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
		case key.Matches(msg, m.keys.Next):
			m.autoPlay = false
			m.step()
		case key.Matches(msg, m.keys.Reset):
			m.autoPlay = false
			m.replay.Reset()
			m.lastMove = ""
			m.err = nil
		case key.Matches(msg, m.keys.Play):
			m.autoPlay = !m.autoPlay
			if m.autoPlay {
				m.autoGen++
				return m, autoStepCmd(m.autoGen)
			}
		}

	case autoStepMsg:
		if !m.autoPlay || msg.gen != m.autoGen {
			return m, nil
		}
		m.step()
		if m.replay.Done() || m.err != nil {
			m.autoPlay = false
			return m, nil
		}
		return m, autoStepCmd(m.autoGen)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m *ReplayModel) step() {
	if m.err != nil {
		return
	}
	mv, _, err := m.replay.Step()
	switch {
	case errors.Is(err, minesweeper.ErrReplayFinished):
		return
	case err != nil:
		m.err = err
		return
	}
	m.lastMove = mv.Describe()
}

func autoStepCmd(gen int) tea.Cmd {
	return tea.Tick(autoPlayInterval, func(time.Time) tea.Msg {
		return autoStepMsg{gen: gen}
	})
}

// View renders the replay.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	rec := m.replay.Record()
	grid := m.replay.Grid()

	footer := m.lastMove
	switch {
	case m.err != nil:
		footer = m.err.Error()
	case m.replay.Done():
		footer += "  (replay finished)"
	}

	minesweeper.Render(m.screen, minesweeper.View{
		Size:      grid.Size(),
		Symbols:   grid.Symbols(),
		Remaining: grid.Remaining(),
		Header: fmt.Sprintf("Replay #%d  %s  %s  move %d/%d  mines %d",
			rec.ID, rec.Player, rec.Result, m.replay.Cursor(), m.replay.Len(), grid.Remaining()),
		Footer: footer,
	})

	out := RenderScreen(m.screen) + "\n"
	if m.err != nil {
		out += errorStyle.Render("replay stopped") + " "
	}
	return out + helpStyle.Render(m.help.View(m.keys))
}

// Replay returns the underlying replay.
func (m ReplayModel) Replay() *minesweeper.Replay {
	return m.replay
}

// IsQuitting returns true if user requested to quit entirely.
func (m ReplayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back.
func (m ReplayModel) BackToMenu() bool {
	return m.backToMenu
}

// RunReplay runs a standalone replay screen.
func RunReplay(rec *minesweeper.GameRecord, width, height int) error {
	model, err := NewReplayModel(rec, width, height)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
