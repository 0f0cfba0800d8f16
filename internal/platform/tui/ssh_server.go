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

	"github.com/quintrel/gridrealm/internal/advisor"
	"github.com/quintrel/gridrealm/internal/config"
	"github.com/quintrel/gridrealm/internal/session"
	"github.com/quintrel/gridrealm/internal/sim"
	"github.com/quintrel/gridrealm/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.gridrealm/host_key.
	HostKeyPath string

	// DBPath is the path to the saves database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.gridrealm/saves.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the city over SSH via Wish. Each connecting user gets
// their own city, saved under their SSH username.
type SSHServer struct {
	config  SSHServerConfig
	realm   config.Config
	catalog *sim.Catalog
	tuning  sim.Tuning
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(realm config.Config, cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridrealm-ssh",
	})

	catalog, err := sim.NewCatalog(realm.Buildings)
	if err != nil {
		return nil, fmt.Errorf("invalid building catalog: %w", err)
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open saves database", "error", err)
		// Continue without persistence
	}

	srv := &SSHServer{
		config:  cfg,
		realm:   realm,
		catalog: catalog,
		tuning:  sim.TuningFromConfig(realm),
		store:   store,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".gridrealm", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
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
// The user's saved city is loaded if one exists, otherwise a fresh
// realm is founded under their username.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	_, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	name := sshSession.User()
	grid := sim.NewGrid(s.realm.Grid.Size)
	stats := sim.NewStats(s.realm.Economy.InitialMoney, s.realm.Economy.TaxRate)

	if s.store != nil {
		if saved, savedStats, found, err := s.store.LoadCity(name); err == nil && found {
			grid, stats = saved, savedStats
			s.logger.Info("loaded city", "user", name, "day", stats.Day)
		}
	}

	sess := session.New(session.Options{
		Name:         name,
		Grid:         grid,
		Stats:        stats,
		Catalog:      s.catalog,
		Tuning:       s.tuning,
		Advisor:      advisor.NewScripted(time.Now().UnixNano()),
		Store:        s.store,
		Logger:       s.logger,
		TickInterval: time.Duration(s.realm.Clock.TickMS) * time.Millisecond,
	})

	return NewModel(sess, s.catalog), []tea.ProgramOption{
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
