package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"golang.org/x/time/rate"

	"github.com/atbot/runner/internal/core"
	"github.com/atbot/runner/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.atbot/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Difficulty is recorded with every saved run.
	Difficulty string

	// SessionsPerSecond and SessionBurst bound how fast new sessions are
	// admitted across all clients.
	SessionsPerSecond float64
	SessionBurst      int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:           ":23234",
		IdleTimeout:       30 * time.Minute,
		TickRate:          60,
		Difficulty:        "normal",
		SessionsPerSecond: 2,
		SessionBurst:      5,
	}
}

// SessionObserver is told about session admission.
type SessionObserver interface {
	SessionOpened()
	SessionClosed()
	SessionRejected(reason string)
}

// SSHDeps are the collaborators shared by every session.
type SSHDeps struct {
	NewGame  func() Game
	Store    *storage.Store
	Logger   *log.Logger
	Sessions SessionObserver
	Ticks    TickObserver
}

// SSHServer wraps a Wish SSH server that hosts one game per session.
type SSHServer struct {
	config  SSHServerConfig
	deps    SSHDeps
	server  *ssh.Server
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, deps SSHDeps) (*SSHServer, error) {
	if deps.NewGame == nil {
		return nil, errors.New("tui: SSH server needs a game factory")
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "runner-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		deps:    deps,
		limiter: rate.NewLimiter(rate.Limit(cfg.SessionsPerSecond), cfg.SessionBurst),
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".atbot", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: logging wraps admission wraps the game.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.admissionMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		if s.deps.Sessions != nil {
			s.deps.Sessions.SessionRejected("no_pty")
		}
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewModel(s.deps.NewGame(), cfg, Options{
		Store:      s.deps.Store,
		Player:     sshSession.User(),
		Difficulty: s.config.Difficulty,
		Logger:     s.logger.With("user", sshSession.User()),
		Ticks:      s.deps.Ticks,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// admissionMiddleware turns sessions away once the admission rate is spent.
func (s *SSHServer) admissionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		if !s.limiter.Allow() {
			s.logger.Warn("session rejected", "reason", "rate_limit", "remote", sshSession.RemoteAddr().String())
			if s.deps.Sessions != nil {
				s.deps.Sessions.SessionRejected("rate_limit")
			}
			wish.Fatalln(sshSession, "Too many players are joining right now. Try again in a moment.")
			return
		}

		if s.deps.Sessions != nil {
			s.deps.Sessions.SessionOpened()
			defer s.deps.Sessions.SessionClosed()
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

// ListenAndServe starts the SSH server and blocks until ctx is cancelled.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("tui: SSH server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	}
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
