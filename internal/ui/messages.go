package ui

import (
	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/services"
)

// Action messages. Keys and the command palette both produce these; Model
// handles them in updateBoard.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowCommandPaletteMsg requests showing the command palette
type ShowCommandPaletteMsg struct{}

// NewItemMsg requests the add item dialog for the focused shelf
type NewItemMsg struct {
	Folder bool
}

// NewShelfMsg requests the add shelf dialog
type NewShelfMsg struct{}

// DeleteItemsMsg requests deleting the focused item or the selection
type DeleteItemsMsg struct{}

// SelectAllMsg selects every item of the focused shelf
type SelectAllMsg struct{}

// StartDragMsg starts a keyboard drag of the focused item or selection
type StartDragMsg struct{}

// CopyMsg copies the focused item or selection
type CopyMsg struct{}

// CutMsg cuts the focused item or selection
type CutMsg struct{}

// PasteMsg pastes at the focused position
type PasteMsg struct{}

// Result messages from commands run outside the event loop

// boardLoadedMsg carries a freshly loaded board
type boardLoadedMsg struct {
	board *domain.Board
	err   error
}

// dropAppliedMsg reports a drop that was written to the repository
type dropAppliedMsg struct {
	err     error
	outcome *services.DropOutcome
	req     services.DropRequest
}

// boardChangedMsg reports an edit that needs a reload
type boardChangedMsg struct {
	err error
}

// dwellMsg fires a callback scheduled by the drag manager
type dwellMsg struct {
	id uint64
}

// showTipMsg rotates the tip shown in the bottom line
type showTipMsg struct{}
