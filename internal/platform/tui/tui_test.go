package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

// memStore is an in-memory Store.
type memStore struct {
	saved   []*minesweeper.GameRecord
	games   []minesweeper.GameSummary
	deleted []int64
}

func (s *memStore) SaveGame(_ context.Context, rec *minesweeper.GameRecord) (int64, error) {
	s.saved = append(s.saved, rec)
	id := int64(len(s.saved))
	sum := rec.Summary()
	sum.ID = id
	s.games = append([]minesweeper.GameSummary{sum}, s.games...)
	return id, nil
}

func (s *memStore) GameByID(_ context.Context, id int64) (*minesweeper.GameRecord, error) {
	if id < 1 || int(id) > len(s.saved) {
		return nil, storage.ErrNotFound
	}
	rec := *s.saved[id-1]
	rec.ID = id
	return &rec, nil
}

func (s *memStore) ListGames(context.Context) ([]minesweeper.GameSummary, error) {
	out := make([]minesweeper.GameSummary, len(s.games))
	copy(out, s.games)
	return out, nil
}

func (s *memStore) DeleteGame(_ context.Context, id int64) (bool, error) {
	for i, g := range s.games {
		if g.ID == id {
			s.games = append(s.games[:i], s.games[i+1:]...)
			s.deleted = append(s.deleted, id)
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) PlayerStats(context.Context) ([]storage.PlayerStats, error) {
	return nil, nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// tinySettings is a 2x2 board with three mines: the first open wins.
func tinySettings() Settings {
	return Settings{Size: 2, Mines: 3, Player: "ann", Seed: 1, RecordNoOpOpens: true}
}

func updateGame(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelSavesFinishedGame(t *testing.T) {
	store := &memStore{}
	m := NewGameModel(tinySettings(), store, nil, 80, 24)

	m = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Game().State(); got != minesweeper.StateWon {
		t.Fatalf("state = %v, want won", got)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d games, want 1", len(store.saved))
	}
	if m.SavedID() != 1 {
		t.Errorf("SavedID() = %d, want 1", m.SavedID())
	}
	rec := store.saved[0]
	if rec.Result != minesweeper.ResultWin || rec.Player != "ann" || rec.TotalMoves != 1 {
		t.Errorf("saved record = %+v", rec)
	}

	// further clicks on a finished game change nothing
	m = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(store.saved) != 1 {
		t.Errorf("finished game saved twice")
	}
	if !strings.Contains(m.View(), "YOU WIN!") {
		t.Errorf("View() lacks win banner:\n%s", m.View())
	}
}

func TestGameModelCursorStaysOnBoard(t *testing.T) {
	m := NewGameModel(tinySettings(), nil, nil, 80, 24)

	tests := []struct {
		msg  tea.KeyMsg
		want minesweeper.MinePosition
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, minesweeper.MinePosition{Row: 1, Col: 1}},
		{tea.KeyMsg{Type: tea.KeyRight}, minesweeper.MinePosition{Row: 1, Col: 1}},
		{tea.KeyMsg{Type: tea.KeyUp}, minesweeper.MinePosition{Row: 0, Col: 1}},
		{tea.KeyMsg{Type: tea.KeyUp}, minesweeper.MinePosition{Row: 0, Col: 1}},
		{keyRunes("h"), minesweeper.MinePosition{Row: 0, Col: 0}},
		{keyRunes("h"), minesweeper.MinePosition{Row: 0, Col: 0}},
	}

	for _, tc := range tests {
		m = updateGame(t, m, tc.msg)
		if m.cursor != tc.want {
			t.Fatalf("after %q cursor = %+v, want %+v", tc.msg.String(), m.cursor, tc.want)
		}
	}
}

func TestGameModelMouse(t *testing.T) {
	m := NewGameModel(tinySettings(), nil, nil, 80, 24)
	r := minesweeper.BoardRect(80, 2)
	x, y := r.X+2, r.Y+1 // cell (0, 0)

	m = updateGame(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.Game().State() != minesweeper.StateNotStarted {
		t.Fatalf("flag before the first open started the game")
	}
	if m.status == "" {
		t.Errorf("flag before the first open should report an error")
	}

	m = updateGame(t, m, tea.MouseMsg{X: x + 1, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Game().State() != minesweeper.StateNotStarted {
		t.Fatalf("mouse release should be ignored")
	}

	m = updateGame(t, m, tea.MouseMsg{X: x + 1, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Game().State() != minesweeper.StateWon {
		t.Fatalf("state = %v, want won", m.Game().State())
	}
	if m.cursor != (minesweeper.MinePosition{Row: 0, Col: 0}) {
		t.Errorf("cursor = %+v, want clicked cell", m.cursor)
	}
	moves := m.Game().Moves()
	if len(moves) != 1 || moves[0].Row != 0 || moves[0].Col != 0 {
		t.Errorf("moves = %+v", moves)
	}
}

func TestGameModelRestart(t *testing.T) {
	m := NewGameModel(tinySettings(), nil, nil, 80, 24)
	m = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	oldUID := m.Game().UID()

	m = updateGame(t, m, keyRunes("r"))
	if m.Game().State() != minesweeper.StateNotStarted {
		t.Errorf("restart state = %v", m.Game().State())
	}
	if m.Game().UID() == oldUID {
		t.Errorf("restart kept the old game")
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := NewGameModel(tinySettings(), nil, nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).BackToMenu() {
		t.Errorf("esc should go back to the menu")
	}
	if cmd != nil {
		t.Errorf("back inside a session should not quit the program")
	}

	next, cmd = m.Update(keyRunes("q"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Errorf("q should quit")
	}
}

func TestMenuSelection(t *testing.T) {
	base := Settings{Size: 7, Mines: 5, Player: "bob"}

	tests := []struct {
		name        string
		keys        []tea.KeyMsg
		wantPlay    bool
		wantSize    int
		wantMines   int
		wantHistory bool
		wantQuit    bool
	}{
		{"easy", []tea.KeyMsg{{Type: tea.KeyEnter}}, true, 9, 10, false, false},
		{"hard", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, true, 24, 99, false, false},
		{"custom", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, true, 7, 5, false, false},
		{"history item", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, false, 0, 0, true, false},
		{"history key", []tea.KeyMsg{{Type: tea.KeyTab}}, false, 0, 0, true, false},
		{"quit item", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, false, 0, 0, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var model tea.Model = NewMenuModel(base, 80, 24)
			for _, k := range tc.keys {
				model, _ = model.Update(k)
			}
			m := model.(MenuModel)

			s, ok := m.Selected()
			if ok != tc.wantPlay {
				t.Fatalf("Selected() ok = %v, want %v", ok, tc.wantPlay)
			}
			if ok {
				if s.Size != tc.wantSize || s.Mines != tc.wantMines || s.Player != "bob" {
					t.Errorf("Selected() = %+v", s)
				}
			}
			if m.WantsHistory() != tc.wantHistory {
				t.Errorf("WantsHistory() = %v", m.WantsHistory())
			}
			if m.IsQuitting() != tc.wantQuit {
				t.Errorf("IsQuitting() = %v", m.IsQuitting())
			}
		})
	}
}

func TestHistoryRows(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 0, 0, time.Local)
	rows := HistoryRows([]minesweeper.GameSummary{
		{ID: 12, Player: "ann", PlayedAt: at, Size: 9, MineCount: 10, Result: minesweeper.ResultWin, TotalMoves: 31},
	})
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	want := []string{"12", "ann", "2026-03-04 05:06", "9x9", "10", "win", "31"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("column %d = %q, want %q", i, rows[0][i], cell)
		}
	}
}

func TestHistoryReplayAndDelete(t *testing.T) {
	store := &memStore{
		games: []minesweeper.GameSummary{
			{ID: 2, Player: "ann", Result: minesweeper.ResultLose},
			{ID: 1, Player: "bob", Result: minesweeper.ResultWin},
		},
	}

	var model tea.Model = NewHistoryModel(store, 100, 30)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := model.(HistoryModel).Selected(); got != 2 {
		t.Fatalf("Selected() = %d, want 2", got)
	}

	model, _ = model.Update(keyRunes("x"))
	if len(store.deleted) != 1 || store.deleted[0] != 2 {
		t.Fatalf("deleted = %v, want [2]", store.deleted)
	}
	if n := len(model.(HistoryModel).games); n != 1 {
		t.Errorf("history shows %d games after delete, want 1", n)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !model.(HistoryModel).IsGoingBack() {
		t.Errorf("esc should go back")
	}
}

func TestReplayModelSteps(t *testing.T) {
	g := tinySettings().NewGame()
	if _, err := g.Open(1, 1); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	rec, err := g.Record()
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	model, err := NewReplayModel(rec, 80, 24)
	if err != nil {
		t.Fatalf("NewReplayModel() failed: %v", err)
	}

	next, _ := model.Update(keyRunes("n"))
	m := next.(ReplayModel)
	if m.Replay().Cursor() != 1 || !m.Replay().Done() {
		t.Fatalf("cursor = %d, done = %v", m.Replay().Cursor(), m.Replay().Done())
	}
	if !m.Replay().Grid().Equal(g.Grid()) {
		t.Errorf("replayed board differs from the played board")
	}
	if !strings.Contains(m.lastMove, "WIN!") {
		t.Errorf("lastMove = %q", m.lastMove)
	}

	// stepping past the end is not an error
	next, _ = m.Update(keyRunes("n"))
	m = next.(ReplayModel)
	if m.err != nil {
		t.Errorf("step past end: %v", m.err)
	}

	next, _ = m.Update(keyRunes("r"))
	if c := next.(ReplayModel).Replay().Cursor(); c != 0 {
		t.Errorf("cursor after reset = %d", c)
	}
}

func TestSessionFlow(t *testing.T) {
	store := &memStore{}
	var model tea.Model = NewSessionModel(store, tinySettings(), nil, 80, 24)
	session := func() SessionModel { return model.(SessionModel) }

	if session().SessionID() == "" {
		t.Fatal("session has no id")
	}

	// custom board is the fourth entry
	for _, k := range []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}} {
		model, _ = model.Update(k)
	}
	if session().mode != modeGame {
		t.Fatalf("mode = %v, want game", session().mode)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(store.saved) != 1 {
		t.Fatalf("saved %d games, want 1", len(store.saved))
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if session().mode != modeMenu {
		t.Fatalf("mode = %v, want menu", session().mode)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if session().mode != modeHistory {
		t.Fatalf("mode = %v, want history", session().mode)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if session().mode != modeReplay {
		t.Fatalf("mode = %v, want replay", session().mode)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if session().mode != modeHistory {
		t.Fatalf("mode = %v, want history after replay", session().mode)
	}

	_, cmd := model.Update(keyRunes("q"))
	if cmd == nil {
		t.Errorf("q should quit the session")
	}
}
