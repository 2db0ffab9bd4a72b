package ui

import (
	"github.com/renato0307/stow/internal/config"
)

// BoardKeys defines key bindings for editing shelves and items
type BoardKeys struct {
	Delete    BoundKey
	NewFolder BoundKey
	NewItem   BoundKey
	NewShelf  BoundKey
	Select    BoundKey
	SelectAll BoundKey
}

// DragKeys defines key bindings for keyboard drags
type DragKeys struct {
	Activate  BoundKey
	Cancel    BoundKey
	Drop      BoundKey
	DropCopy  BoundKey
	DropLink  BoundKey
	StartDrag BoundKey
}

// ClipboardKeys defines key bindings for cut, copy and paste
type ClipboardKeys struct {
	Copy  BoundKey
	Cut   BoundKey
	Paste BoundKey
}

// newBoardKeys creates board key bindings
func newBoardKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) BoardKeys {
	return BoardKeys{
		Delete:    buildBinding("delete", defaults, customKeys),
		NewFolder: buildBinding("new_folder", defaults, customKeys),
		NewItem:   buildBinding("new_item", defaults, customKeys),
		NewShelf:  buildBinding("new_shelf", defaults, customKeys),
		Select:    buildBinding("select", defaults, customKeys),
		SelectAll: buildBinding("select_all", defaults, customKeys),
	}
}

// newDragKeys creates drag key bindings
func newDragKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) DragKeys {
	return DragKeys{
		Activate:  buildBinding("activate", defaults, customKeys),
		Cancel:    buildBinding("cancel_drag", defaults, customKeys),
		Drop:      buildBinding("drop", defaults, customKeys),
		DropCopy:  buildBinding("drop_copy", defaults, customKeys),
		DropLink:  buildBinding("drop_link", defaults, customKeys),
		StartDrag: buildBinding("start_drag", defaults, customKeys),
	}
}

// newClipboardKeys creates clipboard key bindings
func newClipboardKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ClipboardKeys {
	return ClipboardKeys{
		Copy:  buildBinding("copy", defaults, customKeys),
		Cut:   buildBinding("cut", defaults, customKeys),
		Paste: buildBinding("paste", defaults, customKeys),
	}
}
