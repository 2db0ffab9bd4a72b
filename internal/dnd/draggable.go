package dnd

import (
	"strconv"
)

// SelectionState is the part of a collection the draggable side reads.
type SelectionState interface {
	// Keys returns every key in collection order.
	Keys() []string
	IsSelected(key string) bool
	SelectedKeys() []string
}

// DraggableOptions configures a DraggableCollection.
type DraggableOptions struct {
	Allowed Allowed
	// GetItems builds one drag item per key, in the order given.
	GetItems    func(keys []string) ([]DragItem, error)
	OnCut       func(keys []string)
	OnDragEnd   func(keys []string, e DragEndEvent)
	OnDragStart func(keys []string, e DragStartEvent)
}

// Preview is what a renderer needs to draw a single drag preview for any
// number of items.
type Preview struct {
	Count      int
	DraggedKey string
	Keys       []string
}

// Badge returns the item count when more than one item is dragged.
func (p Preview) Badge() string {
	if p.Count <= 1 {
		return ""
	}
	return strconv.Itoa(p.Count)
}

// DraggableCollection ties a collection's selection to drag sessions.
type DraggableCollection struct {
	dragging  map[string]bool
	manager   *Manager
	opts      DraggableOptions
	selection SelectionState
	sessionID uint64
}

// NewDraggableCollection creates the draggable state for sel.
func NewDraggableCollection(m *Manager, sel SelectionState, opts DraggableOptions) *DraggableCollection {
	opts.Allowed = opts.Allowed.normalize()
	return &DraggableCollection{
		dragging:  make(map[string]bool),
		manager:   m,
		opts:      opts,
		selection: sel,
	}
}

// Allowed returns the operations this collection's drags permit.
func (d *DraggableCollection) Allowed() Allowed {
	return append(Allowed(nil), d.opts.Allowed...)
}

// KeysForDrag returns the keys a gesture on key carries: the whole selection,
// in collection order, when key is selected alongside others, otherwise key
// alone. The selection is never changed.
func (d *DraggableCollection) KeysForDrag(key string) []string {
	if !d.selection.IsSelected(key) || len(d.selection.SelectedKeys()) < 2 {
		return []string{key}
	}
	var keys []string
	for _, k := range d.selection.Keys() {
		if d.selection.IsSelected(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Items builds the drag items for a gesture on key.
func (d *DraggableCollection) Items(key string) ([]DragItem, error) {
	return d.itemsFor(d.KeysForDrag(key))
}

func (d *DraggableCollection) itemsFor(keys []string) ([]DragItem, error) {
	if d.opts.GetItems == nil {
		items := make([]DragItem, len(keys))
		for i, k := range keys {
			items[i] = NewDragItem(map[string]string{TypeItemKey: k, TypeText: k})
		}
		return items, nil
	}
	return d.opts.GetItems(keys)
}

// Preview returns the single preview for a gesture on key.
func (d *DraggableCollection) Preview(key string) Preview {
	keys := d.KeysForDrag(key)
	return Preview{Count: len(keys), DraggedKey: key, Keys: keys}
}

// IsDragging reports whether key is part of the payload of the drag this
// collection started.
func (d *DraggableCollection) IsDragging(key string) bool {
	return d.dragging[key]
}

// DraggingCount returns how many of this collection's items are in flight.
func (d *DraggableCollection) DraggingCount() int {
	return len(d.dragging)
}

// SourceFor returns the drag source for a gesture on key. The keys are fixed
// when the source is created.
func (d *DraggableCollection) SourceFor(key string) Source {
	keys := d.KeysForDrag(key)
	return SourceFuncs{
		Allowed: d.opts.Allowed,
		Items: func() ([]DragItem, error) {
			return d.itemsFor(keys)
		},
		OnDragStart: func(e DragStartEvent) {
			d.sessionID = e.SessionID
			d.dragging = make(map[string]bool, len(keys))
			for _, k := range keys {
				d.dragging[k] = true
			}
			if d.opts.OnDragStart != nil {
				d.opts.OnDragStart(keys, e)
			}
		},
		OnDragEnd: func(e DragEndEvent) {
			if d.sessionID == e.SessionID {
				d.dragging = make(map[string]bool)
				d.sessionID = 0
			}
			if d.opts.OnDragEnd != nil {
				d.opts.OnDragEnd(keys, e)
			}
		},
	}
}

// StartDrag arms a gesture on key. Pointer gestures stay armed until the
// caller confirms movement with Manager.Start; other modalities start at once.
func (d *DraggableCollection) StartDrag(key string, modality Modality) (*Session, error) {
	if modality == ModalityPointer {
		return d.manager.Arm(d.SourceFor(key), modality)
	}
	return d.manager.Begin(d.SourceFor(key), modality)
}
