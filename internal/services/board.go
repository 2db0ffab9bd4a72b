package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/ports"
)

// BoardService handles shelf and item management and applies drops
type BoardService struct {
	newKey func() string
	repo   ports.BoardRepository
}

// NewBoardService creates a new BoardService. A nil newKey uses NewItemKey.
func NewBoardService(repo ports.BoardRepository, newKey func() string) *BoardService {
	if newKey == nil {
		newKey = NewItemKey
	}
	return &BoardService{
		newKey: newKey,
		repo:   repo,
	}
}

// NewItemKey returns a short random item key
func NewItemKey() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// LoadBoard returns every shelf with its items
func (s *BoardService) LoadBoard(ctx context.Context) (*domain.Board, error) {
	board, err := s.repo.LoadBoard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	return board, nil
}

// AddShelf creates a shelf named after displayName
func (s *BoardService) AddShelf(ctx context.Context, displayName string, accept []domain.ItemType) (*domain.Shelf, error) {
	name := domain.SanitizeShelfName(displayName)
	if name == "" {
		return nil, fmt.Errorf("shelf name '%s' has no usable characters", displayName)
	}
	logging.Logger.Info("Adding shelf", "name", name, "accept", accept)

	shelf := domain.Shelf{Accept: accept, DisplayName: displayName, Name: name}
	if err := s.repo.AddShelf(ctx, shelf); err != nil {
		return nil, fmt.Errorf("failed to add shelf %s: %w", name, err)
	}
	return &shelf, nil
}

// DeleteShelf removes a shelf. Without force only empty shelves go.
func (s *BoardService) DeleteShelf(ctx context.Context, name string, force bool) error {
	logging.Logger.Info("Deleting shelf", "name", name, "force", force)
	if err := s.repo.DeleteShelf(ctx, name, force); err != nil {
		return fmt.Errorf("failed to delete shelf %s: %w", name, err)
	}
	return nil
}

// SwapShelves exchanges the positions of two shelves
func (s *BoardService) SwapShelves(ctx context.Context, name1, name2 string) error {
	if err := s.repo.SwapShelves(ctx, name1, name2); err != nil {
		return fmt.Errorf("failed to swap shelves: %w", err)
	}
	return nil
}

// AddItem creates an item with a fresh key
func (s *BoardService) AddItem(ctx context.Context, params AddItemParams) (*domain.Item, error) {
	text := strings.TrimSpace(params.Text)
	if text == "" {
		return nil, fmt.Errorf("item text is required")
	}
	if params.Type == "" {
		params.Type = domain.ItemTypeItem
	}

	item := domain.Item{
		Key:  s.newKey(),
		Text: text,
		Type: params.Type,
	}
	at := domain.Placement{Before: params.Before, Parent: params.Parent, Shelf: params.Shelf}
	logging.Logger.Info("Adding item", "key", item.Key, "shelf", at.Shelf, "parent", at.Parent, "type", item.Type)

	if err := s.repo.AddItem(ctx, item, at); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	item.Shelf = at.Shelf
	item.Parent = at.Parent
	return &item, nil
}

// DeleteItems removes items with their folder contents and links
func (s *BoardService) DeleteItems(ctx context.Context, keys []string) error {
	logging.Logger.Info("Deleting items", "keys", keys)
	if err := s.repo.DeleteItems(ctx, keys); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	return nil
}

// RenameItem changes an item's text
func (s *BoardService) RenameItem(ctx context.Context, key, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("item text is required")
	}
	if err := s.repo.UpdateText(ctx, key, text); err != nil {
		return fmt.Errorf("failed to rename item %s: %w", key, err)
	}
	return nil
}

// ApplyDrop carries out a completed drop: existing items are moved, copied or
// linked to the drop point and foreign text becomes new items there.
func (s *BoardService) ApplyDrop(ctx context.Context, req DropRequest) (*DropOutcome, error) {
	logging.Logger.Info("Applying drop",
		"shelf", req.Shelf,
		"point", req.Point.String(),
		"operation", req.Operation.String(),
		"keys", req.Keys,
		"texts", len(req.Texts))

	board, err := s.LoadBoard(ctx)
	if err != nil {
		return nil, err
	}
	at, err := ResolvePlacement(board, req.Shelf, req.Point)
	if err != nil {
		return nil, err
	}

	outcome := &DropOutcome{}
	if len(req.Keys) > 0 {
		if err := s.transfer(ctx, req, at, outcome); err != nil {
			return nil, err
		}
	}

	for _, text := range req.Texts {
		item, err := s.AddItem(ctx, AddItemParams{Before: at.Before, Parent: at.Parent, Shelf: at.Shelf, Text: text})
		if err != nil {
			return outcome, err
		}
		outcome.Created = append(outcome.Created, item.Key)
	}

	logging.Logger.Info("Drop applied", "created", outcome.Created, "moved", outcome.Moved)
	return outcome, nil
}

func (s *BoardService) transfer(ctx context.Context, req DropRequest, at domain.Placement, outcome *DropOutcome) error {
	switch req.Operation {
	case dnd.OpMove:
		if err := s.repo.MoveItems(ctx, req.Keys, at); err != nil {
			return fmt.Errorf("failed to move items: %w", err)
		}
		outcome.Moved = append(outcome.Moved, req.Keys...)
	case dnd.OpCopy:
		created, err := s.repo.CopyItems(ctx, req.Keys, at, s.newKey)
		if err != nil {
			return fmt.Errorf("failed to copy items: %w", err)
		}
		outcome.Created = append(outcome.Created, created...)
	case dnd.OpLink:
		created, err := s.repo.LinkItems(ctx, req.Keys, at, s.newKey)
		if err != nil {
			return fmt.Errorf("failed to link items: %w", err)
		}
		outcome.Created = append(outcome.Created, created...)
	default:
		return fmt.Errorf("%w: operation %s", domain.ErrInvalidDrop, req.Operation)
	}
	return nil
}
