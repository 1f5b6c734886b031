package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show the player stats sidebar
	sidebarWidth       = 24
	queryTimeout       = 5 * time.Second
)

// HistoryKeyMap defines the key bindings for the game history.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Replay},
		{k.Delete, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists saved games and lets the user pick one to replay.
type HistoryModel struct {
	store       Store
	games       []minesweeper.GameSummary
	stats       []storage.PlayerStats
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	err         error
	width       int
	height      int
	selected    int64
	quitting    bool
	goingBack   bool
	showSidebar bool
	standalone  bool // back and replay end the program
}

// NewHistoryModel creates the history screen and loads the game list.
func NewHistoryModel(store Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 16},
		{Title: "Board", Width: 7},
		{Title: "Mines", Width: 5},
		{Title: "Result", Width: 6},
		{Title: "Moves", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the game list and player stats from the store.
func (m *HistoryModel) load() {
	m.games, m.stats, m.err = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	games, err := m.store.ListGames(ctx)
	if err != nil {
		m.err = err
	} else {
		m.games = games
	}
	if stats, err := m.store.PlayerStats(ctx); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current game list.
func (m *HistoryModel) updateTableRows() {
	m.table.SetRows(HistoryRows(m.games))
	m.table.GotoTop()
}

// HistoryRows formats game summaries as table rows.
func HistoryRows(games []minesweeper.GameSummary) []table.Row {
	rows := make([]table.Row, len(games))
	for i, g := range games {
		rows[i] = table.Row{
			fmt.Sprintf("%d", g.ID),
			g.Player,
			g.PlayedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", g.Size, g.Size),
			fmt.Sprintf("%d", g.MineCount),
			string(g.Result),
			fmt.Sprintf("%d", g.TotalMoves),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Replay):
			if g, ok := m.current(); ok {
				m.selected = g.ID
				if m.standalone {
					return m, tea.Quit
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if g, ok := m.current(); ok && m.store != nil {
				ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
				_, err := m.store.DeleteGame(ctx, g.ID)
				cancel()
				if err != nil {
					m.err = err
					return m, nil
				}
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) current() (minesweeper.GameSummary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.games) {
		return minesweeper.GameSummary{}, false
	}
	return m.games[i], true
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.MarginBottom(1).Render(centerText("GAME HISTORY", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders per-player results.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Players\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for _, p := range m.stats {
		name := p.Player
		if len(name) > 10 {
			name = name[:9] + "."
		}
		fmt.Fprintf(&sb, "%-10s %3dW %3dL\n", name, p.Wins, p.Losses)
	}
	if len(m.stats) == 0 {
		sb.WriteString("none yet\n")
	}
	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.games) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nFinish a game to see it here!")
	}
	return m.table.View()
}

// Selected returns the id of the game chosen for replay, or 0.
func (m HistoryModel) Selected() int64 {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// HistoryResult holds the result of running the history screen.
type HistoryResult struct {
	ReplayID int64
	Back     bool
	Quit     bool
}

// RunHistory runs the history screen and returns the user's choice.
func RunHistory(store Store, width, height int) (HistoryResult, error) {
	model := NewHistoryModel(store, width, height)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return HistoryResult{}, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return HistoryResult{Quit: true}, nil
	}
	switch {
	case m.Selected() != 0:
		return HistoryResult{ReplayID: m.Selected()}, nil
	case m.IsGoingBack():
		return HistoryResult{Back: true}, nil
	default:
		return HistoryResult{Quit: true}, nil
	}
}
