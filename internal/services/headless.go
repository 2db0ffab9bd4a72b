package services

import (
	"context"
	"fmt"

	"github.com/renato0307/stow/internal/collection"
	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/ports"
)

// ItemEntries converts a shelf's items to collection entries
func ItemEntries(items []domain.Item) []collection.Entry {
	entries := make([]collection.Entry, len(items))
	for i, it := range items {
		entries[i] = collection.Entry{
			Key:    it.Key,
			Parent: it.Parent,
			Text:   it.Text,
			Type:   string(it.Type),
		}
	}
	return entries
}

// Headless runs drags and clipboard operations without a screen. Each call
// is a virtual gesture through the same drag manager, negotiation and drop
// targets the board uses.
type Headless struct {
	boards    *BoardService
	clipboard *ClipboardService
	manager   *dnd.Manager
}

// NewHeadless creates a headless driver. clip carries text to other
// programs; store shares held items with other stow processes.
func NewHeadless(boards *BoardService, clip ports.Clipboard, store ports.ClipboardStore) *Headless {
	manager := dnd.NewManager(dnd.NewRegistry())
	return &Headless{
		boards:    boards,
		clipboard: NewClipboardService(dnd.NewClipboardBridge(manager, clip), store),
		manager:   manager,
	}
}

// Close cancels anything left in flight
func (h *Headless) Close() {
	h.manager.Close()
}

// source picks up keys from a collection of the whole board, selected so
// one gesture carries all of them
func (h *Headless) source(board *domain.Board, keys []string, allowed dnd.Allowed) (*dnd.DraggableCollection, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no items given", dnd.ErrEmptyPayload)
	}
	var entries []collection.Entry
	for _, name := range board.OrderedShelves {
		entries = append(entries, ItemEntries(board.Items[name])...)
	}
	coll := collection.New(entries)
	for _, k := range keys {
		if !coll.Has(k) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, k)
		}
	}
	coll.SetSelectedKeys(keys)

	return dnd.NewDraggableCollection(h.manager, coll, dnd.DraggableOptions{
		Allowed: allowed,
		GetItems: func(keys []string) ([]dnd.DragItem, error) {
			return DragItems(board, keys)
		},
	}), nil
}

// target registers the drop targets of shelf with every folder open, so
// any item can be named as a drop point. OnDrop stores the request in req.
func (h *Headless) target(board *domain.Board, shelf string, req **DropRequest) (*dnd.DroppableCollection, error) {
	s, ok := board.Shelf(shelf)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrShelfNotFound, shelf)
	}
	items := board.Items[shelf]
	coll := collection.New(ItemEntries(items))
	for _, it := range items {
		if it.IsFolder() {
			coll.SetExpanded(it.Key, true)
		}
	}

	return dnd.NewDroppableCollection(h.manager, coll, dnd.DroppableOptions{
		Between: true,
		GetDropOperation: func(point dnd.DropPoint, types dnd.TypeSet, allowed dnd.Allowed) dnd.Acceptance {
			return DropOperation(board, shelf, point, types, allowed)
		},
		IsDirectory: func(key string) bool {
			it, ok := board.FindItem(key)
			return ok && it.IsFolder()
		},
		Label:   s.DisplayName,
		OnItems: true,
		OnDrop: func(point dnd.DropPoint, e dnd.DropEvent) {
			r := RequestFromDrop(shelf, point, e)
			*req = &r
		},
	}), nil
}

// Transfer drags keys onto point of shelf with op and applies the drop
func (h *Headless) Transfer(ctx context.Context, keys []string, op dnd.Operation, shelf string, point dnd.DropPoint) (*DropOutcome, error) {
	board, err := h.boards.LoadBoard(ctx)
	if err != nil {
		return nil, err
	}

	var req *DropRequest
	dst, err := h.target(board, shelf, &req)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	handle, ok := dst.HandleFor(point)
	if !ok {
		return nil, fmt.Errorf("%w: no %s on shelf %s", domain.ErrInvalidDrop, point, shelf)
	}

	src, err := h.source(board, keys, dnd.Allowed{op})
	if err != nil {
		return nil, err
	}
	if _, err := src.StartDrag(keys[0], dnd.ModalityVirtual); err != nil {
		return nil, fmt.Errorf("failed to start drag: %w", err)
	}
	if err := h.manager.Over(handle); err != nil {
		_ = h.manager.Cancel(dnd.ReasonRejected)
		return nil, err
	}
	// A refused point falls back to the shelf root; a command names its
	// point exactly, so that counts as a refusal.
	if snap := h.manager.Snapshot(); snap.Target == nil || snap.Target.Handle != handle {
		_ = h.manager.Cancel(dnd.ReasonRejected)
		return nil, fmt.Errorf("%w: %s on shelf %s does not take these items as %s", domain.ErrInvalidDrop, point, shelf, op)
	}

	res, err := h.manager.Drop()
	if err != nil {
		return nil, err
	}
	if res.State != dnd.StateDropped || req == nil {
		logging.Logger.Info("Headless drop refused", "keys", keys, "shelf", shelf, "point", point.String(), "operation", op.String())
		return nil, fmt.Errorf("%w: %s does not take these items as %s", domain.ErrInvalidDrop, shelf, op)
	}
	return h.boards.ApplyDrop(ctx, *req)
}

// Copy holds keys on the clipboard to be copied on paste
func (h *Headless) Copy(ctx context.Context, keys []string) ([]string, error) {
	return h.hold(ctx, keys, false)
}

// Cut holds keys on the clipboard to be moved on paste
func (h *Headless) Cut(ctx context.Context, keys []string) ([]string, error) {
	return h.hold(ctx, keys, true)
}

func (h *Headless) hold(ctx context.Context, keys []string, cut bool) ([]string, error) {
	board, err := h.boards.LoadBoard(ctx)
	if err != nil {
		return nil, err
	}
	src, err := h.source(board, keys, dnd.Allowed{dnd.OpMove, dnd.OpCopy, dnd.OpLink})
	if err != nil {
		return nil, err
	}
	if cut {
		return h.clipboard.Cut(src, keys[0])
	}
	return h.clipboard.Copy(src, keys[0])
}

// Paste drops the clipboard on point of shelf and applies the drop
func (h *Headless) Paste(ctx context.Context, shelf string, point dnd.DropPoint) (*DropOutcome, error) {
	board, err := h.boards.LoadBoard(ctx)
	if err != nil {
		return nil, err
	}

	var req *DropRequest
	dst, err := h.target(board, shelf, &req)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	res, err := h.clipboard.Paste(dst, point)
	if err != nil {
		return nil, fmt.Errorf("failed to paste: %w", err)
	}
	if res.State != dnd.StateDropped || req == nil {
		return nil, fmt.Errorf("%w: %s does not take the clipboard items", domain.ErrInvalidDrop, shelf)
	}
	return h.boards.ApplyDrop(ctx, *req)
}
