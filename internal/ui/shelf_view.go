package ui

import (
	"github.com/renato0307/stow/internal/collection"
	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/services"
)

// shelfView is one shelf on the board: its items as a collection, the drag
// source over them and, while the shelf is on screen, its drop targets.
type shelfView struct {
	coll      *collection.Collection
	drag      *dnd.DraggableCollection
	drop      *dnd.DroppableCollection // nil while the shelf is off screen
	dropIndex int                      // board position drop targets were ordered with
	focus     string
	offset    int // first item row shown
	shelf     domain.Shelf
	tab       dnd.Handle
}

func (sv *shelfView) isFolder(key string) bool {
	node, ok := sv.coll.Get(key)
	return ok && node.Type == string(domain.ItemTypeFolder)
}

// focusIndex returns the position of the focused key among visible keys
func (sv *shelfView) focusIndex() int {
	for i, k := range sv.coll.VisibleKeys() {
		if k == sv.focus {
			return i
		}
	}
	return -1
}

// reveal expands the folders above key so it is visible
func (sv *shelfView) reveal(key string) {
	node, ok := sv.coll.Get(key)
	for ok && node.Parent != "" {
		sv.coll.SetExpanded(node.Parent, true)
		node, ok = sv.coll.Get(node.Parent)
	}
}

// applyBoard rebuilds the shelf views from a freshly loaded board. Views of
// shelves that still exist keep selection, expansion, focus and scroll.
func (m *Model) applyBoard(board *domain.Board) {
	m.board = board

	existing := make(map[string]*shelfView, len(m.shelves))
	for _, sv := range m.shelves {
		existing[sv.shelf.Name] = sv
	}

	views := make([]*shelfView, 0, len(board.OrderedShelves))
	for i, name := range board.OrderedShelves {
		entries := services.ItemEntries(board.Items[name])
		sv, ok := existing[name]
		if ok {
			delete(existing, name)
			sv.shelf = board.Shelves[name]
			sv.coll.Reset(entries)
			m.registry.Reorder(sv.tab, []int{0, i})
		} else {
			sv = m.newShelfView(board.Shelves[name], entries, i)
		}
		views = append(views, sv)
	}
	for _, sv := range existing {
		m.closeShelfView(sv)
	}
	m.shelves = views

	if m.focusAfterLoad != "" {
		m.focusItem(m.focusAfterLoad)
		m.focusAfterLoad = ""
	}
	m.clampFocus()
	m.scrollToFocus()
}

func (m *Model) newShelfView(shelf domain.Shelf, entries []collection.Entry, index int) *shelfView {
	sv := &shelfView{
		coll:      collection.New(entries),
		dropIndex: -1,
		shelf:     shelf,
	}
	name := shelf.Name

	sv.drag = dnd.NewDraggableCollection(m.manager, sv.coll, dnd.DraggableOptions{
		Allowed: m.settings.AllowedOperations(),
		GetItems: func(keys []string) ([]dnd.DragItem, error) {
			return services.DragItems(m.board, keys)
		},
		OnCut: func(keys []string) {
			sv.coll.ClearSelection()
		},
		OnDragStart: func(keys []string, e dnd.DragStartEvent) {
			logging.Logger.Debug("Dragging from shelf", "shelf", name, "keys", keys, "modality", e.Modality.String())
		},
		OnDragEnd: func(keys []string, e dnd.DragEndEvent) {
			m.preview = dnd.Preview{}
			if e.State == dnd.StateDropped && e.Operation == dnd.OpMove {
				sv.coll.ClearSelection()
			}
		},
	})

	sv.tab = m.registry.Register(dnd.Registration{
		Kind:  dnd.KindActivation,
		Label: "tab " + name,
		Order: []int{0, index},
		Target: dnd.ActivationTarget{
			OnActivate: func(dnd.DropEvent) {
				m.showShelf(name)
			},
		},
	})
	return sv
}

// closeShelfView unmounts a shelf that left the board. A drag it started is
// cancelled.
func (m *Model) closeShelfView(sv *shelfView) {
	if sv.drag.DraggingCount() > 0 && m.manager.Active() {
		_ = m.manager.Cancel(dnd.ReasonSourceUnmount)
	}
	if sv.drop != nil {
		sv.drop.Close()
		sv.drop = nil
	}
	m.registry.Unregister(sv.tab)
}

// syncWindow keeps drop targets registered for the shelves on screen only.
func (m *Model) syncWindow() {
	first, last := m.window()
	for i, sv := range m.shelves {
		visible := i >= first && i < last
		switch {
		case !visible && sv.drop != nil:
			sv.drop.Close()
			sv.drop = nil
		case visible && sv.drop != nil && sv.dropIndex != i:
			sv.drop.Close()
			sv.drop = m.newDroppable(sv, i)
		case visible && sv.drop == nil:
			sv.drop = m.newDroppable(sv, i)
		case visible:
			sv.drop.Sync()
		}
	}
}

func (m *Model) newDroppable(sv *shelfView, index int) *dnd.DroppableCollection {
	name := sv.shelf.Name
	sv.dropIndex = index
	return dnd.NewDroppableCollection(m.manager, sv.coll, dnd.DroppableOptions{
		Between: true,
		GetDropOperation: func(point dnd.DropPoint, types dnd.TypeSet, allowed dnd.Allowed) dnd.Acceptance {
			return services.DropOperation(m.board, name, point, types, allowed)
		},
		IsDirectory: sv.isFolder,
		Label:       sv.shelf.DisplayName,
		OnItems:     true,
		OnDrop: func(point dnd.DropPoint, e dnd.DropEvent) {
			m.queued = append(m.queued, m.applyDrop(services.RequestFromDrop(name, point, e)))
		},
		OnDropActivate: func(point dnd.DropPoint, _ dnd.DropEvent) {
			if point.Position != dnd.PositionOn {
				return
			}
			sv.coll.SetExpanded(point.Key, true)
			if sv.drop != nil {
				sv.drop.Sync()
			}
		},
		Order:  []int{1, index},
		Parent: m.group,
	})
}
