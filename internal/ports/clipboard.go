package ports

import "github.com/renato0307/stow/internal/dnd"

// Clipboard reads and writes the system clipboard as plain text
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// ClipboardStore keeps the held cut or copy between stow processes
type ClipboardStore interface {
	Load() (dnd.ClipboardContents, error)
	Save(contents dnd.ClipboardContents) error
}
