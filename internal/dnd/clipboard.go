package dnd

import (
	"strings"

	"github.com/renato0307/stow/internal/logging"
)

// ClipboardStore is the system clipboard as plain text.
type ClipboardStore interface {
	ReadText() (string, error)
	WriteText(text string) error
}

type clipEntry struct {
	allowed Allowed
	items   []DragItem
	keys    []string
	text    string
}

// ClipboardBridge turns cut, copy and paste into drag sessions. A copy or cut
// offers the payload a drag from the same place would; a paste is a virtual
// drop of the held payload on a drop point. Cut pastes as move, copy as copy.
type ClipboardBridge struct {
	held    *clipEntry
	manager *Manager
	store   ClipboardStore
}

// NewClipboardBridge creates a bridge writing plain text to store.
func NewClipboardBridge(m *Manager, store ClipboardStore) *ClipboardBridge {
	return &ClipboardBridge{manager: m, store: store}
}

// Copy puts the items a drag on key would carry on the clipboard.
func (b *ClipboardBridge) Copy(src *DraggableCollection, key string) ([]string, error) {
	keys := src.KeysForDrag(key)
	if err := b.hold(src, keys, Allowed{OpCopy}); err != nil {
		return nil, err
	}
	return keys, nil
}

// Cut is a move whose target is the clipboard: the items are held and the
// source's OnCut is told which keys left.
func (b *ClipboardBridge) Cut(src *DraggableCollection, key string) ([]string, error) {
	keys := src.KeysForDrag(key)
	if err := b.hold(src, keys, Allowed{OpMove}); err != nil {
		return nil, err
	}
	if src.opts.OnCut != nil {
		src.opts.OnCut(keys)
	}
	return keys, nil
}

func (b *ClipboardBridge) hold(src *DraggableCollection, keys []string, allowed Allowed) error {
	items, err := src.itemsFor(keys)
	if err == nil {
		_, err = NewPayload(items)
	}
	if err != nil {
		logging.Logger.Warn("Clipboard source failed to produce items", "keys", keys, "error", err)
		return err
	}

	var lines []string
	for _, item := range items {
		if v, ok := item.Get(TypeText); ok {
			lines = append(lines, v)
		}
	}
	text := strings.Join(lines, "\n")
	if err := b.store.WriteText(text); err != nil {
		// The in-process copy still works without a system clipboard.
		logging.Logger.Debug("System clipboard write failed", "error", err)
	}

	b.held = &clipEntry{allowed: allowed, items: items, keys: keys, text: text}
	logging.Logger.Debug("Clipboard filled", "keys", keys, "operation", allowed.First().String())
	return nil
}

// Held returns the keys and operation of the held payload, if any.
func (b *ClipboardBridge) Held() ([]string, Operation, bool) {
	if b.held == nil {
		return nil, OpNone, false
	}
	return append([]string(nil), b.held.keys...), b.held.allowed.First(), true
}

// Items returns what a paste would deliver. Text copied by another program
// becomes one text/plain item per non-empty line, offered as copy.
func (b *ClipboardBridge) Items() ([]DragItem, Allowed, error) {
	items, allowed, _, err := b.contents()
	return items, allowed, err
}

// contents is Items plus whether the held entry is what it returned.
func (b *ClipboardBridge) contents() ([]DragItem, Allowed, bool, error) {
	text, err := b.store.ReadText()
	if err != nil {
		logging.Logger.Debug("System clipboard read failed", "error", err)
	}

	if b.held != nil && (err != nil || text == b.held.text) {
		return append([]DragItem(nil), b.held.items...), b.held.allowed, true, nil
	}

	var items []DragItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, NewDragItem(map[string]string{TypeText: line}))
	}
	if len(items) == 0 {
		return nil, nil, false, ErrClipboardEmpty
	}
	return items, Allowed{OpCopy}, false, nil
}

// Paste drops the clipboard contents on point of dst as a virtual drag. A cut
// is released once it has been pasted. Pasting text from another program
// leaves a held cut alone.
func (b *ClipboardBridge) Paste(dst *DroppableCollection, point DropPoint) (DropResult, error) {
	items, allowed, fromHeld, err := b.contents()
	if err != nil {
		return DropResult{}, err
	}
	h, ok := dst.HandleFor(point)
	if !ok {
		return DropResult{}, ErrUnknownTarget
	}

	held := b.held
	src := SourceFuncs{
		Allowed: allowed,
		Items: func() ([]DragItem, error) {
			return items, nil
		},
	}
	if _, err := b.manager.Begin(src, ModalityVirtual); err != nil {
		return DropResult{}, err
	}
	if err := b.manager.Over(h); err != nil {
		_ = b.manager.Cancel(ReasonRejected)
		return DropResult{}, err
	}
	res, err := b.manager.Drop()
	if err != nil {
		return res, err
	}

	if res.State == StateDropped && fromHeld && held == b.held && held.allowed.First() == OpMove {
		b.held = nil
	}
	return res, nil
}

// ClipboardContents is the held payload in a form that survives the process,
// so a cut in one stow invocation can be pasted from another.
type ClipboardContents struct {
	Items     []map[string]string `json:"items"`
	Keys      []string            `json:"keys"`
	Operation Operation           `json:"operation"`
	Text      string              `json:"text"`
}

// Contents returns the held payload.
func (b *ClipboardBridge) Contents() (ClipboardContents, bool) {
	if b.held == nil {
		return ClipboardContents{}, false
	}
	items := make([]map[string]string, len(b.held.items))
	for i, item := range b.held.items {
		items[i] = item.Values()
	}
	return ClipboardContents{
		Items:     items,
		Keys:      append([]string(nil), b.held.keys...),
		Operation: b.held.allowed.First(),
		Text:      b.held.text,
	}, true
}

// Restore replaces the held payload with c. Contents without items clear it.
func (b *ClipboardBridge) Restore(c ClipboardContents) {
	if len(c.Items) == 0 {
		b.held = nil
		return
	}
	items := make([]DragItem, len(c.Items))
	for i, values := range c.Items {
		items[i] = NewDragItem(values)
	}
	op := c.Operation
	if op != OpMove {
		op = OpCopy
	}
	b.held = &clipEntry{
		allowed: Allowed{op},
		items:   items,
		keys:    append([]string(nil), c.Keys...),
		text:    c.Text,
	}
}

// Clear drops the held payload.
func (b *ClipboardBridge) Clear() {
	b.held = nil
}
