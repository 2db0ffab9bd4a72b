package services

import (
	"fmt"

	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
)

// TypeKey is the drag item type key offered for items of type t
func TypeKey(t domain.ItemType) string {
	return "application/x-stow-" + string(t)
}

var itemTypes = []domain.ItemType{domain.ItemTypeFolder, domain.ItemTypeItem, domain.ItemTypeLink}

// DragItems builds one drag item per key, in order. Each item offers its key,
// its text, its type and, lazily, the shelf it sits on.
func DragItems(board *domain.Board, keys []string) ([]dnd.DragItem, error) {
	items := make([]dnd.DragItem, 0, len(keys))
	for _, key := range keys {
		it, ok := board.FindItem(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, key)
		}
		shelf := it.Shelf
		items = append(items, dnd.NewDragItem(map[string]string{
			dnd.TypeItemKey:  it.Key,
			dnd.TypeText:     it.Text,
			TypeKey(it.Type): it.Key,
		}).WithLazy(dnd.TypeShelf, func() string { return shelf }))
	}
	return items, nil
}

// DropOperation is the acceptance of a drop point on a shelf. Shelves refuse
// item types they do not accept, drops on an item need a folder, and text
// from outside stow can only be copied in.
func DropOperation(board *domain.Board, shelfName string, point dnd.DropPoint, types dnd.TypeSet, allowed dnd.Allowed) dnd.Acceptance {
	shelf, ok := board.Shelf(shelfName)
	if !ok {
		return dnd.Reject()
	}

	if point.Position == dnd.PositionOn {
		target, ok := board.FindItem(point.Key)
		if !ok || !target.IsFolder() {
			return dnd.Reject()
		}
	}

	if !types.Has(dnd.TypeItemKey) {
		if !types.Has(dnd.TypeText) || !shelf.Accepts(domain.ItemTypeItem) {
			return dnd.Reject()
		}
		return dnd.Accept(dnd.OpCopy)
	}

	for _, t := range itemTypes {
		if types.Has(TypeKey(t)) && !shelf.Accepts(t) {
			return dnd.Reject()
		}
	}
	return dnd.Accept(dnd.OpMove, dnd.OpCopy, dnd.OpLink)
}

// ResolvePlacement maps a drop point on a shelf to where the items land.
// Dropping after an item lands in front of its next sibling, or at the end of
// its folder when it is the last one.
func ResolvePlacement(board *domain.Board, shelfName string, point dnd.DropPoint) (domain.Placement, error) {
	if _, ok := board.Shelf(shelfName); !ok {
		return domain.Placement{}, fmt.Errorf("%w: %s", domain.ErrShelfNotFound, shelfName)
	}
	at := domain.Placement{Shelf: shelfName}
	if point.Position == dnd.PositionRoot {
		return at, nil
	}

	items := board.Items[shelfName]
	idx := -1
	for i, it := range items {
		if it.Key == point.Key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Placement{}, fmt.Errorf("%w: %s on shelf %s", domain.ErrItemNotFound, point.Key, shelfName)
	}
	target := items[idx]

	switch point.Position {
	case dnd.PositionOn:
		if !target.IsFolder() {
			return domain.Placement{}, fmt.Errorf("%w: %s is not a folder", domain.ErrInvalidDrop, target.Key)
		}
		at.Parent = target.Key
	case dnd.PositionBefore:
		at.Parent = target.Parent
		at.Before = target.Key
	case dnd.PositionAfter:
		at.Parent = target.Parent
		for _, it := range items[idx+1:] {
			if it.Parent == target.Parent {
				at.Before = it.Key
				break
			}
		}
	}
	return at, nil
}

// RequestFromDrop turns a drop event on a shelf into a DropRequest. Payload
// items without a stow key are carried as text.
func RequestFromDrop(shelfName string, point dnd.DropPoint, e dnd.DropEvent) DropRequest {
	req := DropRequest{Operation: e.Operation, Point: point, Shelf: shelfName}
	for _, item := range e.Payload.Items() {
		if key, ok := item.Get(dnd.TypeItemKey); ok {
			req.Keys = append(req.Keys, key)
			continue
		}
		if text, ok := item.Get(dnd.TypeText); ok {
			req.Texts = append(req.Texts, text)
		}
	}
	return req
}
