package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/stow/internal/adapters/clipboard"
	"github.com/renato0307/stow/internal/adapters/storage"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/services"
	"github.com/renato0307/stow/internal/ui"
)

// sessionModel wraps ui.Model to release the session's resources on quit
type sessionModel struct {
	*ui.Model
	repo      *storage.SQLiteRepository
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.close()
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) close() {
	duration := time.Since(s.startTime)
	s.Model.Close()
	if err := s.repo.Close(); err != nil {
		logging.Logger.Error("Failed to close repository for SSH session",
			"error", err,
			"session_id", s.sessionID,
			"duration", duration.String())
	}
	logging.Logger.Info("SSH session ended",
		"session_id", s.sessionID,
		"duration", duration.String())
}

// teaHandler creates a board for each SSH session. Sessions share the
// database and the clipboard file with local stow processes; the host's
// system clipboard is never touched from a remote session.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	repo, err := storage.NewSQLiteRepository(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	file := clipboard.NewFile(s.clipboardPath)
	model := ui.NewModel(ui.ModelConfig{
		BoardService:   services.NewBoardService(repo, nil),
		Clipboard:      file,
		ClipboardStore: file,
		Keys:           s.settings.Keys,
		Settings:       services.NewSettingsService(s.settings),
	})

	return &sessionModel{
			Model:     model,
			repo:      repo,
			sessionID: sessionID,
			startTime: time.Now(),
		}, []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithReportFocus(),
		}
}

// errorModel shows an error and quits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
