package services

import (
	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
)

// AddItemParams contains parameters for adding an item to a shelf
type AddItemParams struct {
	// Before is the key of the sibling the item goes in front of. Empty appends.
	Before string
	Parent string
	Shelf  string
	Text   string
	Type   domain.ItemType
}

// DropRequest is a resolved drop ready to be applied to the board
type DropRequest struct {
	// Keys are the existing items the drop carries
	Keys      []string
	Operation dnd.Operation
	Point     dnd.DropPoint
	Shelf     string
	// Texts are payload entries with no item behind them (text copied from
	// another program). They become new items.
	Texts []string
}

// DropOutcome reports what applying a drop changed
type DropOutcome struct {
	Created []string
	Moved   []string
}
