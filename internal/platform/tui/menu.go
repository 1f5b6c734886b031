package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
)

// MenuKind is what a menu entry does when selected.
type MenuKind int

const (
	MenuPlay MenuKind = iota
	MenuHistory
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Kind  MenuKind
	Title string
	Size  int
	Mines int
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items       []MenuItem
	base        Settings
	cursor      int
	width       int
	height      int
	quitting    bool
	selected    *MenuItem // Set when user selects an entry
	wantHistory bool
}

// MenuItems builds the menu entries: the fixed difficulties, a custom board
// taken from base, then history and quit.
func MenuItems(base Settings) []MenuItem {
	items := make([]MenuItem, 0, len(config.Presets)+3)
	for _, p := range config.Presets {
		items = append(items, MenuItem{
			Kind:  MenuPlay,
			Title: fmt.Sprintf("%-7s %2dx%-2d %3d mines", p.Label, p.Size, p.Size, p.Mines),
			Size:  p.Size,
			Mines: p.Mines,
		})
	}
	items = append(items,
		MenuItem{
			Kind:  MenuPlay,
			Title: fmt.Sprintf("%-7s %2dx%-2d %3d mines", "Custom", base.Size, base.Size, base.Mines),
			Size:  base.Size,
			Mines: base.Mines,
		},
		MenuItem{Kind: MenuHistory, Title: "History"},
		MenuItem{Kind: MenuQuit, Title: "Quit"},
	)
	return items
}

// NewMenuModel creates a new menu model.
func NewMenuModel(base Settings, width, height int) MenuModel {
	return MenuModel{
		items:  MenuItems(base),
		base:   base,
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionHistory:
		m.wantHistory = true
		return m, tea.Quit

	case MenuActionSelect:
		selected := m.items[m.cursor]
		switch selected.Kind {
		case MenuQuit:
			m.quitting = true
		case MenuHistory:
			m.wantHistory = true
		default:
			m.selected = &selected
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  M I N E S  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a board, "+m.base.Player, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-24s", cursor, item.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen game settings, or false when no board was picked.
func (m MenuModel) Selected() (Settings, bool) {
	if m.selected == nil {
		return Settings{}, false
	}
	s := m.base
	s.Size = m.selected.Size
	s.Mines = m.selected.Mines
	return s, true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the game history.
func (m MenuModel) WantsHistory() bool {
	return m.wantHistory
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Settings     Settings
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(base Settings, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(base, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	if m.WantsHistory() {
		return MenuResult{WantsHistory: true}, nil
	}
	if s, ok := m.Selected(); ok {
		return MenuResult{Settings: s}, nil
	}
	return MenuResult{Quit: true}, nil
}
