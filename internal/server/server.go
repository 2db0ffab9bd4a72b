package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/stow/internal/config"
	"github.com/renato0307/stow/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Server serves the board over SSH
type Server struct {
	address       string
	clipboardPath string
	dbPath        string
	settings      *config.Settings
	wishServer    *ssh.Server
}

// Options locate what each SSH session opens
type Options struct {
	ClipboardPath string
	DBPath        string
	HostKeyPath   string
}

// NewServer creates the SSH server. The host key is generated on first use.
func NewServer(host string, port int, settings *config.Settings, opts Options) (*Server, error) {
	if settings == nil {
		settings = &config.Settings{}
	}
	s := &Server{
		address:       net.JoinHostPort(host, strconv.Itoa(port)),
		clipboardPath: opts.ClipboardPath,
		dbPath:        opts.DBPath,
		settings:      settings,
	}

	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create host key directory: %w", err)
	}

	// Middleware runs last to first
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Logger.Info("Starting SSH server", "address", s.address)
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.wishServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		logging.Logger.Info("SSH server stopped")
		return nil
	})

	return g.Wait()
}
