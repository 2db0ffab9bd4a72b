package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/stow/internal/config"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/server"
)

// ServeCmd serves the board over SSH
type ServeCmd struct {
	Host string `help:"Address to listen on (overrides ssh_host in settings)" env:"STOW_SSH_HOST"`
	Port int    `help:"Port to listen on (overrides ssh_port in settings)" env:"STOW_SSH_PORT"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	host, port := s.address(cli.settings)

	srv, err := server.NewServer(host, port, cli.settings, server.Options{
		ClipboardPath: config.GetClipboardPath(),
		DBPath:        config.GetDBPath(),
		HostKeyPath:   config.GetHostKeyPath(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving stow on ssh://%s (Ctrl+C to stop)\n", srv.Address())
	logging.Logger.Info("Serving over SSH", "address", srv.Address())

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	fmt.Println("Server stopped")
	return nil
}

// address applies flag > settings > default precedence
func (s *ServeCmd) address(settings *config.Settings) (string, int) {
	host, port := s.Host, s.Port
	if host == "" {
		host = config.DefaultSSHHost
		if settings != nil && settings.SSHHost != "" {
			host = settings.SSHHost
		}
	}
	if port == 0 {
		port = config.DefaultSSHPort
		if settings != nil && settings.SSHPort != nil {
			port = *settings.SSHPort
		}
	}
	return host, port
}
