package services

import (
	"fmt"

	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/ports"
)

// ClipboardService keeps a clipboard bridge in step with the shared clipboard
// store, so a cut made in one stow process can be pasted from another.
type ClipboardService struct {
	bridge *dnd.ClipboardBridge
	store  ports.ClipboardStore
}

// NewClipboardService creates a new ClipboardService
func NewClipboardService(bridge *dnd.ClipboardBridge, store ports.ClipboardStore) *ClipboardService {
	return &ClipboardService{bridge: bridge, store: store}
}

// Bridge returns the underlying clipboard bridge
func (s *ClipboardService) Bridge() *dnd.ClipboardBridge {
	return s.bridge
}

// Refresh replaces the held payload with what the store has
func (s *ClipboardService) Refresh() error {
	contents, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load clipboard: %w", err)
	}
	s.bridge.Restore(contents)
	return nil
}

// Copy holds the items a drag on key would carry and persists them
func (s *ClipboardService) Copy(src *dnd.DraggableCollection, key string) ([]string, error) {
	keys, err := s.bridge.Copy(src, key)
	if err != nil {
		return nil, fmt.Errorf("failed to copy: %w", err)
	}
	return keys, s.persist()
}

// Cut holds the items a drag on key would carry, to be moved on paste
func (s *ClipboardService) Cut(src *dnd.DraggableCollection, key string) ([]string, error) {
	keys, err := s.bridge.Cut(src, key)
	if err != nil {
		return nil, fmt.Errorf("failed to cut: %w", err)
	}
	return keys, s.persist()
}

// Paste drops the clipboard on point of dst. The store is read first so the
// latest cut or copy wins, whichever process made it.
func (s *ClipboardService) Paste(dst *dnd.DroppableCollection, point dnd.DropPoint) (dnd.DropResult, error) {
	if err := s.Refresh(); err != nil {
		logging.Logger.Warn("Using in-process clipboard", "error", err)
	}

	res, err := s.bridge.Paste(dst, point)
	if err != nil {
		return res, err
	}
	if res.State == dnd.StateDropped {
		if err := s.persist(); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (s *ClipboardService) persist() error {
	contents, _ := s.bridge.Contents()
	if err := s.store.Save(contents); err != nil {
		return fmt.Errorf("failed to save clipboard: %w", err)
	}
	return nil
}
