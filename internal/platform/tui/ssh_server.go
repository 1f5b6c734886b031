// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.mines/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MaxSessions caps concurrent sessions. 0 means no limit.
	MaxSessions int

	// Settings are the defaults for games started in a session. The SSH
	// user name replaces the player name.
	Settings Settings
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 64,
		Settings:    Settings{Size: 16, Mines: 40, Player: "player", RecordNoOpOpens: true},
	}
}

// SSHServer wraps a Wish SSH server. Every session plays its own games.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    Store
	logger   *log.Logger
	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration. store
// may be nil, in which case games are not saved and history is empty.
func NewSSHServer(cfg SSHServerConfig, store Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".mines", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.limitMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	settings := s.config.Settings
	if user := sshSession.User(); user != "" {
		settings.Player = user
	}
	// a fixed seed would hand every visitor the same boards
	settings.Seed = 0

	model := NewSessionModel(s.store, settings, s.logger, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// limitMiddleware rejects sessions above MaxSessions.
func (s *SSHServer) limitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		n := s.sessions.Add(1)
		defer s.sessions.Add(-1)

		if s.config.MaxSessions > 0 && n > int64(s.config.MaxSessions) {
			s.logger.Warn("session rejected, server full",
				"user", sshSession.User(),
				"active", n-1,
			)
			wish.Fatalln(sshSession, "server is full, try again later")
			return
		}
		next(sshSession)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int {
	return int(s.sessions.Load())
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeHistory
	modeReplay
)

// SessionModel manages the full session flow: menu -> game or history ->
// replay -> back to menu. It is the top-level model of an SSH session and of
// the interactive CLI menu.
type SessionModel struct {
	store     Store
	settings  Settings
	logger    *log.Logger
	sessionID string
	width     int
	height    int

	mode     sessionMode
	menu     MenuModel
	game     GameModel
	history  HistoryModel
	replay   ReplayModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store Store, settings Settings, logger *log.Logger, width, height int) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sessionID := uuid.NewString()

	return SessionModel{
		store:     store,
		settings:  settings,
		logger:    logger.With("session", sessionID, "player", settings.Player),
		sessionID: sessionID,
		width:     width,
		height:    height,
		menu:      NewMenuModel(settings, width, height),
	}
}

// SessionID returns the unique id of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeHistory:
		return m.updateHistory(msg)
	case modeReplay:
		return m.updateReplay(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu resets the session to a fresh menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.mode = modeMenu
	m.menu = NewMenuModel(m.settings, m.width, m.height)
	return m, m.menu.Init()
}

func (m SessionModel) toHistory() (tea.Model, tea.Cmd) {
	m.mode = modeHistory
	m.history = NewHistoryModel(m.store, m.width, m.height)
	return m, m.history.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		return m.toHistory()
	}

	if settings, ok := m.menu.Selected(); ok {
		m.logger.Debug("new game", "size", settings.Size, "mines", settings.Mines)
		m.game = NewGameModel(settings, m.store, m.logger, m.width, m.height)
		m.mode = modeGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateHistory handles updates when browsing saved games.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		return m.toMenu()
	}

	if id := m.history.Selected(); id != 0 {
		m.history.selected = 0
		replay, err := m.openReplay(id)
		if err != nil {
			m.logger.Warn("cannot open replay", "id", id, "error", err)
			m.history.err = err
			return m, nil
		}
		m.replay = replay
		m.mode = modeReplay
		return m, m.replay.Init()
	}

	return m, cmd
}

func (m SessionModel) openReplay(id int64) (ReplayModel, error) {
	if m.store == nil {
		return ReplayModel{}, fmt.Errorf("game %d not found", id)
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rec, err := m.store.GameByID(ctx, id)
	if err != nil {
		return ReplayModel{}, err
	}
	return NewReplayModel(rec, m.width, m.height)
}

// updateReplay handles updates when watching a replay.
func (m SessionModel) updateReplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.replay.Update(msg)
	if replayModel, ok := newModel.(ReplayModel); ok {
		m.replay = replayModel
	}

	if m.replay.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.replay.BackToMenu() {
		return m.toHistory()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeHistory:
		return m.history.View()
	case modeReplay:
		return m.replay.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session on the local terminal.
func RunSession(settings Settings, store Store, logger *log.Logger, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(store, settings, logger, width, height),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
