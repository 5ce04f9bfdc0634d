package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"snakecoach/internal/config"
	"snakecoach/internal/core"
	"snakecoach/internal/game"
	"snakecoach/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is auto-generated at ~/.snakecoach/host_key.
	HostKeyPath string

	// DBPath is the path to the sessions database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.snakecoach/sessions.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that serves the game remotely.
type SSHServer struct {
	config  SSHServerConfig
	appCfg  config.Config
	advisor game.Advisor
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. advisor may be nil; remote
// players then get local placement and no coach text regardless of the
// mode they pick.
func NewSSHServer(cfg SSHServerConfig, appCfg config.Config, advisor game.Advisor) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakecoach-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:  cfg,
		appCfg:  appCfg,
		advisor: advisor,
		store:   store,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snakecoach", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
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

	cfg := core.RuntimeConfig{
		BoardW:  s.appCfg.Board.Width,
		BoardH:  s.appCfg.Board.Height,
		TickMS:  s.appCfg.Game.TickMS,
		Seed:    time.Now().UnixNano(),
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}

	model := NewSessionModel(cfg, s.advisor, s.store)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
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

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

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

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel chains the mode menu into a game for one SSH session.
type SessionModel struct {
	cfg     core.RuntimeConfig
	advisor game.Advisor
	store   *storage.Store
	inGame  bool
	menu    ModeMenuModel
	game    GameModel
}

// NewSessionModel creates the menu-then-game flow model.
func NewSessionModel(cfg core.RuntimeConfig, advisor game.Advisor, store *storage.Store) SessionModel {
	return SessionModel{
		cfg:     cfg,
		advisor: advisor,
		store:   store,
		menu:    NewModeMenuModel(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session flow.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update delegates to whichever stage is active and switches from menu to
// game once a mode is chosen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.inGame {
		inner, cmd := m.game.Update(msg)
		m.game = inner.(GameModel)
		return m, cmd
	}

	inner, cmd := m.menu.Update(msg)
	m.menu = inner.(ModeMenuModel)

	if mode, ok := m.menu.Choice(); ok {
		m.cfg.Mode = mode
		m.game = NewGameModel(m.cfg, m.advisor, m.store)
		m.inGame = true
		return m, m.game.Init()
	}
	return m, cmd
}

// View renders the active stage.
func (m SessionModel) View() string {
	if m.inGame {
		return m.game.View()
	}
	return m.menu.View()
}
