package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
)

// dragThreshold is how far, in cells, the mouse must travel before a press
// becomes a drag
const dragThreshold = 1

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m, tea.Quit

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		return m, m.openDialog(m.helpScreen, stateHelp)

	case ShowCommandPaletteMsg:
		name := ""
		if sv := m.focusedView(); sv != nil && sv.focus != "" {
			if node, ok := sv.coll.Get(sv.focus); ok {
				name = node.Text
			}
		}
		m.commandPalette = NewCommandPalette(name, m.keys)
		m.commandPalette.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.state = stateCommandPalette
		return m, m.commandPalette.Init()

	case NewItemMsg:
		sv := m.focusedView()
		if sv == nil {
			return m, m.errors.Show(fmt.Errorf("add a shelf first"))
		}
		t := domain.ItemTypeItem
		title := "Add Item"
		if msg.Folder {
			t = domain.ItemTypeFolder
			title = "Add Folder"
		}
		parent := ""
		if sv.focus != "" && sv.isFolder(sv.focus) && sv.coll.IsExpanded(sv.focus) {
			parent = sv.focus
		}
		m.itemForm = NewDialog(title, NewItemForm(m.boardService, sv.shelf, parent, t), m.devMode)
		return m, m.openDialog(m.itemForm, stateCreatingItem)

	case NewShelfMsg:
		m.shelfForm = NewDialog("Add Shelf", NewShelfForm(m.boardService, m.board), m.devMode)
		return m, m.openDialog(m.shelfForm, stateCreatingShelf)

	case DeleteItemsMsg:
		sv := m.focusedView()
		if sv == nil || sv.focus == "" {
			return m, nil
		}
		m.deleteKeys = sv.drag.KeysForDrag(sv.focus)
		m.deleteForm = m.createDeleteDialog(m.deleteKeys)
		return m, m.openDialog(m.deleteForm, stateConfirmingDelete)

	case SelectAllMsg:
		if sv := m.focusedView(); sv != nil {
			sv.coll.SelectAll()
		}
		return m, nil

	case StartDragMsg:
		return m, m.startKeyboardDrag()

	case CopyMsg:
		return m, m.hold(false)

	case CutMsg:
		return m, m.hold(true)

	case PasteMsg:
		return m, m.paste()

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.manager.Active() {
			return m, m.handleDragKey(msg)
		}
		return m, m.handleBoardKey(msg)
	}
	return m, nil
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	sv := m.focusedView()

	switch {
	case key.Matches(msg, m.keys.Application.ForceQuit.Binding):
		return tea.Quit
	case key.Matches(msg, m.keys.Application.Quit.Binding):
		return send(QuitMsg{})
	case key.Matches(msg, m.keys.Application.Help.Binding):
		return send(ShowHelpMsg{})
	case key.Matches(msg, m.keys.Application.CommandPalette.Binding):
		return send(ShowCommandPaletteMsg{})

	case key.Matches(msg, m.keys.Navigation.Up.Binding):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Navigation.Down.Binding):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Navigation.Left.Binding):
		m.focusShelfAt(m.focusShelf - 1)
	case key.Matches(msg, m.keys.Navigation.Right.Binding):
		m.focusShelfAt(m.focusShelf + 1)
	case key.Matches(msg, m.keys.Navigation.ToggleFolder.Binding):
		if sv != nil && sv.focus != "" && sv.isFolder(sv.focus) {
			sv.coll.ToggleExpanded(sv.focus)
		}

	case key.Matches(msg, m.keys.Board.Select.Binding):
		if sv != nil && sv.focus != "" {
			sv.coll.ToggleSelected(sv.focus)
		}
	case key.Matches(msg, m.keys.Board.SelectAll.Binding):
		return send(SelectAllMsg{})
	case key.Matches(msg, m.keys.Board.NewItem.Binding):
		return send(NewItemMsg{})
	case key.Matches(msg, m.keys.Board.NewFolder.Binding):
		return send(NewItemMsg{Folder: true})
	case key.Matches(msg, m.keys.Board.NewShelf.Binding):
		return send(NewShelfMsg{})
	case key.Matches(msg, m.keys.Board.Delete.Binding):
		return send(DeleteItemsMsg{})

	case key.Matches(msg, m.keys.Drag.StartDrag.Binding):
		return send(StartDragMsg{})

	case key.Matches(msg, m.keys.Clipboard.Copy.Binding):
		return send(CopyMsg{})
	case key.Matches(msg, m.keys.Clipboard.Cut.Binding):
		return send(CutMsg{})
	case key.Matches(msg, m.keys.Clipboard.Paste.Binding):
		return send(PasteMsg{})

	case key.Matches(msg, m.keys.Drag.Cancel.Binding):
		if sv != nil {
			sv.coll.ClearSelection()
		}
	}
	return nil
}

// handleDragKey drives a drag in progress. Keys that do not steer the drag
// are ignored until it ends.
func (m *Model) handleDragKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Application.ForceQuit.Binding):
		_ = m.manager.Cancel(dnd.ReasonEscape)
		return tea.Quit
	case key.Matches(msg, m.keys.Drag.Cancel.Binding):
		_ = m.manager.Cancel(dnd.ReasonEscape)
		m.pointer = nil
	case key.Matches(msg, m.keys.Navigation.Up.Binding):
		return m.navigate(-1)
	case key.Matches(msg, m.keys.Navigation.Down.Binding):
		return m.navigate(1)
	case key.Matches(msg, m.keys.Navigation.Left.Binding):
		m.dragToShelf(m.dragShelf() - 1)
	case key.Matches(msg, m.keys.Navigation.Right.Binding):
		m.dragToShelf(m.dragShelf() + 1)
	case key.Matches(msg, m.keys.Drag.DropCopy.Binding):
		m.manager.SetHint(dnd.OpCopy)
		return m.drop()
	case key.Matches(msg, m.keys.Drag.DropLink.Binding):
		m.manager.SetHint(dnd.OpLink)
		return m.drop()
	case key.Matches(msg, m.keys.Drag.Drop.Binding):
		return m.drop()
	case key.Matches(msg, m.keys.Drag.Activate.Binding):
		if err := m.manager.Activate(); err != nil {
			return m.errors.Show(fmt.Errorf("nothing to open here: %w", err))
		}
	}
	return nil
}

func (m *Model) focusedView() *shelfView {
	if m.focusShelf < 0 || m.focusShelf >= len(m.shelves) {
		return nil
	}
	return m.shelves[m.focusShelf]
}

func (m *Model) moveFocus(delta int) {
	sv := m.focusedView()
	if sv == nil {
		return
	}
	keys := sv.coll.VisibleKeys()
	if len(keys) == 0 {
		sv.focus = ""
		return
	}
	idx := sv.focusIndex()
	if idx < 0 {
		idx = 0
	} else {
		idx = max(0, min(len(keys)-1, idx+delta))
	}
	sv.focus = keys[idx]
	m.ensureVisible(sv, idx)
}

func (m *Model) focusShelfAt(i int) {
	if i < 0 || i >= len(m.shelves) {
		return
	}
	m.focusShelf = i
	m.scrollToFocus()
}

// showShelf focuses the shelf called name, scrolling it into view
func (m *Model) showShelf(name string) {
	for i, sv := range m.shelves {
		if sv.shelf.Name == name {
			m.focusShelfAt(i)
			return
		}
	}
}

// focusItem focuses key on whichever shelf holds it
func (m *Model) focusItem(key string) {
	for i, sv := range m.shelves {
		if !sv.coll.Has(key) {
			continue
		}
		sv.reveal(key)
		sv.focus = key
		m.focusShelf = i
		if idx := sv.focusIndex(); idx >= 0 {
			m.ensureVisible(sv, idx)
		}
		return
	}
}

// clampFocus keeps the focused shelf and every shelf's focused key valid
func (m *Model) clampFocus() {
	if m.focusShelf >= len(m.shelves) {
		m.focusShelf = len(m.shelves) - 1
	}
	if m.focusShelf < 0 {
		m.focusShelf = 0
	}
	for _, sv := range m.shelves {
		keys := sv.coll.VisibleKeys()
		if sv.focusIndex() < 0 {
			sv.focus = ""
			if len(keys) > 0 {
				sv.focus = keys[0]
			}
		}
		if sv.offset > 0 && sv.offset >= len(keys) {
			sv.offset = max(0, len(keys)-1)
		}
	}
}

func (m *Model) startKeyboardDrag() tea.Cmd {
	sv := m.focusedView()
	if sv == nil || sv.focus == "" {
		return nil
	}
	if _, err := sv.drag.StartDrag(sv.focus, dnd.ModalityKeyboard); err != nil {
		return m.errors.Show(fmt.Errorf("failed to start drag: %w", err))
	}
	m.preview = sv.drag.Preview(sv.focus)

	// start on the dragged item itself, where dropping changes nothing
	if sv.drop != nil {
		if h, ok := sv.drop.HandleFor(dnd.DropPoint{Key: sv.focus, Position: dnd.PositionBefore}); ok {
			_ = m.manager.Over(h)
		}
	}
	return nil
}

func (m *Model) navigate(delta int) tea.Cmd {
	ref, err := m.manager.Navigate(delta)
	if err != nil {
		return m.errors.Show(fmt.Errorf("%w: no shelf on screen takes these items", domain.ErrInvalidDrop))
	}
	m.revealTarget(ref.Handle)
	return nil
}

// revealTarget scrolls the shelf holding h so its row is shown
func (m *Model) revealTarget(h dnd.Handle) {
	for _, sv := range m.shelves {
		if sv.drop == nil {
			continue
		}
		point, ok := sv.drop.PointFor(h)
		if !ok || point.Position == dnd.PositionRoot {
			continue
		}
		keys := sv.coll.VisibleKeys()
		for i, k := range keys {
			if k != point.Key {
				continue
			}
			if point.Position == dnd.PositionAfter {
				i++
			}
			m.ensureVisible(sv, i)
		}
		return
	}
}

// dragShelf is the shelf the drag is over, or the focused one
func (m *Model) dragShelf() int {
	for i, sv := range m.shelves {
		if sv.drop != nil && sv.drop.IsHovered() {
			return i
		}
	}
	return m.focusShelf
}

func (m *Model) dragToShelf(i int) {
	if i < 0 || i >= len(m.shelves) {
		return
	}
	if m.shelves[i].drop == nil {
		m.focusShelfAt(i)
	}
	if sv := m.shelves[i]; sv.drop != nil {
		_ = m.manager.Over(sv.drop.Root())
	}
}

// drop ends the drag. A keyboard drop with nothing accepting under it is
// reported, a pointer release there just cancels.
func (m *Model) drop() tea.Cmd {
	snap := m.manager.Snapshot()
	m.pointer = nil
	res, err := m.manager.Drop()
	if err != nil {
		return nil
	}
	if res.State == dnd.StateCancelled && snap.State == dnd.StateDragging && snap.Modality == dnd.ModalityKeyboard {
		return m.errors.Show(fmt.Errorf("%w: move to a highlighted position first", domain.ErrInvalidDrop))
	}
	return nil
}

// hold puts the focused item or the selection on the clipboard
func (m *Model) hold(cut bool) tea.Cmd {
	sv := m.focusedView()
	if sv == nil || sv.focus == "" {
		return nil
	}

	var keys []string
	var err error
	if cut {
		keys, err = m.clipboard.Cut(sv.drag, sv.focus)
	} else {
		keys, err = m.clipboard.Copy(sv.drag, sv.focus)
	}
	if err != nil {
		return m.errors.Show(err)
	}
	logging.Logger.Info("Items on clipboard", "keys", keys, "cut", cut)
	return nil
}

// pastePoint is where a paste on the focused shelf lands: into an open
// folder, in front of the next row, or at the end
func (m *Model) pastePoint(sv *shelfView) dnd.DropPoint {
	if sv.focus == "" {
		return dnd.DropPoint{Position: dnd.PositionRoot}
	}
	if sv.isFolder(sv.focus) && sv.coll.IsExpanded(sv.focus) {
		return dnd.DropPoint{Key: sv.focus, Position: dnd.PositionOn}
	}
	keys := sv.coll.VisibleKeys()
	idx := sv.focusIndex()
	if idx >= 0 && idx+1 < len(keys) {
		return dnd.DropPoint{Key: keys[idx+1], Position: dnd.PositionBefore}
	}
	return dnd.DropPoint{Key: keys[len(keys)-1], Position: dnd.PositionAfter}
}

func (m *Model) paste() tea.Cmd {
	sv := m.focusedView()
	if sv == nil || sv.drop == nil {
		return nil
	}
	res, err := m.clipboard.Paste(sv.drop, m.pastePoint(sv))
	if err != nil {
		return m.errors.Show(fmt.Errorf("failed to paste: %w", err))
	}
	if res.State != dnd.StateDropped {
		return m.errors.Show(fmt.Errorf("%w: %s does not take the clipboard items", domain.ErrInvalidDrop, sv.shelf.DisplayName))
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.mousePress(msg)
		case tea.MouseButtonRight:
			if m.manager.Active() {
				_ = m.manager.Cancel(dnd.ReasonPointerLost)
				m.pointer = nil
			}
		case tea.MouseButtonWheelUp:
			m.moveFocus(-1)
		case tea.MouseButtonWheelDown:
			m.moveFocus(1)
		}

	case tea.MouseActionMotion:
		return m.mouseMotion(msg)

	case tea.MouseActionRelease:
		if m.pointer != nil && m.manager.Active() {
			return m.drop()
		}
		m.pointer = nil
	}
	return nil
}

func (m *Model) mousePress(msg tea.MouseMsg) tea.Cmd {
	r, ok := m.layout().hit(msg.X, msg.Y)
	if !ok {
		return nil
	}

	switch r.kind {
	case regionTab:
		m.focusShelfAt(r.shelf)
	case regionItem:
		m.focusShelf = r.shelf
		sv := m.shelves[r.shelf]
		sv.focus = r.key
		if m.manager.Active() {
			return nil
		}
		if _, err := sv.drag.StartDrag(r.key, dnd.ModalityPointer); err != nil {
			return m.errors.Show(fmt.Errorf("failed to start drag: %w", err))
		}
		m.pointer = &pointerPress{x: msg.X, y: msg.Y}
		m.preview = sv.drag.Preview(r.key)
	case regionShelf, regionAfter:
		m.focusShelf = r.shelf
	}
	return nil
}

func (m *Model) mouseMotion(msg tea.MouseMsg) tea.Cmd {
	if m.pointer == nil || !m.manager.Active() {
		return nil
	}

	if m.manager.Snapshot().State == dnd.StateArmed {
		if abs(msg.X-m.pointer.x)+abs(msg.Y-m.pointer.y) < dragThreshold {
			return nil
		}
		if err := m.manager.Start(); err != nil {
			logging.Logger.Warn("Failed to start pointer drag", "error", err)
			return nil
		}
	}

	m.manager.SetHint(dnd.ModifierHint(msg.Alt, msg.Ctrl, msg.Shift))
	_ = m.manager.Over(m.layout().handleAt(msg.X, msg.Y))
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
