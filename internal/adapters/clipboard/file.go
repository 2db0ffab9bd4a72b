package clipboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/ports"
)

// File keeps clipboard contents in a locked JSON file so separate stow
// processes (the TUI, SSH sessions, CLI invocations) share one clipboard.
type File struct {
	path string
}

var _ ports.Clipboard = (*File)(nil)
var _ ports.ClipboardStore = (*File)(nil)

// NewFile creates a file-backed clipboard at path
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the stored contents. A missing file is an empty clipboard.
func (f *File) Load() (dnd.ClipboardContents, error) {
	var contents dnd.ClipboardContents

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return contents, nil
		}
		return contents, fmt.Errorf("failed to open clipboard file: %w", err)
	}
	defer file.Close()

	if err := unix.Flock(int(file.Fd()), unix.LOCK_SH); err != nil {
		return contents, fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unix.Flock(int(file.Fd()), unix.LOCK_UN)

	data, err := io.ReadAll(file)
	if err != nil {
		return contents, fmt.Errorf("failed to read clipboard file: %w", err)
	}
	if len(data) == 0 {
		return contents, nil
	}
	if err := json.Unmarshal(data, &contents); err != nil {
		return contents, fmt.Errorf("failed to parse clipboard file: %w", err)
	}
	return contents, nil
}

// Save replaces the stored contents
func (f *File) Save(contents dnd.ClipboardContents) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create clipboard directory: %w", err)
	}

	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("failed to open clipboard file: %w", err)
	}
	defer file.Close()

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unix.Flock(int(file.Fd()), unix.LOCK_UN)

	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal clipboard: %w", err)
	}
	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// ReadText implements ports.Clipboard
func (f *File) ReadText() (string, error) {
	contents, err := f.Load()
	if err != nil {
		return "", err
	}
	return contents.Text, nil
}

// WriteText implements ports.Clipboard. Plain text written here replaces any
// held items.
func (f *File) WriteText(text string) error {
	return f.Save(dnd.ClipboardContents{Text: text})
}
