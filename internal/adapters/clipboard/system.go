package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/ports"
)

// System uses the OS clipboard and falls back to a File when no clipboard
// utility is available (headless hosts, SSH sessions).
type System struct {
	fallback *File
}

var _ ports.Clipboard = (*System)(nil)

// NewSystem creates a system clipboard with fallback
func NewSystem(fallback *File) *System {
	return &System{fallback: fallback}
}

// Available reports whether the OS clipboard can be used
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// ReadText implements ports.Clipboard
func (s *System) ReadText() (string, error) {
	if s.Available() {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text, nil
		}
		logging.Logger.Debug("OS clipboard read failed, using file", "error", err)
	}
	return s.fallback.ReadText()
}

// WriteText implements ports.Clipboard
func (s *System) WriteText(text string) error {
	if s.Available() {
		err := clipboard.WriteAll(text)
		if err == nil {
			return nil
		}
		logging.Logger.Debug("OS clipboard write failed, using file", "error", err)
	}
	return s.fallback.WriteText(text)
}
