package dnd

import (
	"sort"
	"sync"
)

// Common item type keys. Any string works as a type key; these are the ones
// stow itself produces.
const (
	TypeText    = "text/plain"
	TypeItemKey = "application/x-stow-key"
	TypeShelf   = "application/x-stow-shelf"
)

// lazyValue produces a string the first time it is read.
type lazyValue struct {
	fn   func() string
	once sync.Once
	val  string
}

func (l *lazyValue) get() string {
	l.once.Do(func() {
		l.val = l.fn()
		l.fn = nil
	})
	return l.val
}

// DragItem maps type keys to string values. Values may be produced lazily.
// A DragItem is never modified after construction.
type DragItem struct {
	lazy   map[string]*lazyValue
	values map[string]string
}

// NewDragItem creates an item from eager values.
func NewDragItem(values map[string]string) DragItem {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return DragItem{values: copied}
}

// WithLazy returns a copy of the item that also offers typ, produced by fn on
// first read.
func (i DragItem) WithLazy(typ string, fn func() string) DragItem {
	out := DragItem{
		lazy:   make(map[string]*lazyValue, len(i.lazy)+1),
		values: i.values,
	}
	for k, v := range i.lazy {
		out.lazy[k] = v
	}
	out.lazy[typ] = &lazyValue{fn: fn}
	return out
}

// Get returns the value for typ.
func (i DragItem) Get(typ string) (string, bool) {
	if v, ok := i.values[typ]; ok {
		return v, true
	}
	if l, ok := i.lazy[typ]; ok {
		return l.get(), true
	}
	return "", false
}

// Has reports whether the item offers typ.
func (i DragItem) Has(typ string) bool {
	if _, ok := i.values[typ]; ok {
		return true
	}
	_, ok := i.lazy[typ]
	return ok
}

// Types returns the offered type keys, sorted.
func (i DragItem) Types() []string {
	types := make([]string, 0, len(i.values)+len(i.lazy))
	for k := range i.values {
		types = append(types, k)
	}
	for k := range i.lazy {
		if _, dup := i.values[k]; !dup {
			types = append(types, k)
		}
	}
	sort.Strings(types)
	return types
}

// Values resolves every entry, including lazy ones.
func (i DragItem) Values() map[string]string {
	out := make(map[string]string, len(i.values)+len(i.lazy))
	for _, typ := range i.Types() {
		v, _ := i.Get(typ)
		out[typ] = v
	}
	return out
}

// TypeSet is the set of type keys offered by a payload.
type TypeSet map[string]struct{}

// NewTypeSet builds a set from types.
func NewTypeSet(types ...string) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether typ is offered.
func (s TypeSet) Has(typ string) bool {
	_, ok := s[typ]
	return ok
}

// HasAll reports whether every one of types is offered.
func (s TypeSet) HasAll(types ...string) bool {
	for _, t := range types {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// Payload is the ordered, non-empty sequence of items carried by a session.
type Payload struct {
	items []DragItem
}

// NewPayload validates and copies items into a payload.
func NewPayload(items []DragItem) (Payload, error) {
	if len(items) == 0 {
		return Payload{}, ErrEmptyPayload
	}
	copied := make([]DragItem, len(items))
	copy(copied, items)
	return Payload{items: copied}, nil
}

// Len returns the number of items.
func (p Payload) Len() int {
	return len(p.items)
}

// Items returns a copy of the items in order.
func (p Payload) Items() []DragItem {
	out := make([]DragItem, len(p.items))
	copy(out, p.items)
	return out
}

// Item returns the i-th item.
func (p Payload) Item(i int) DragItem {
	return p.items[i]
}

// Types returns the union of the type keys offered by every item.
func (p Payload) Types() TypeSet {
	set := make(TypeSet)
	for _, item := range p.items {
		for _, t := range item.Types() {
			set[t] = struct{}{}
		}
	}
	return set
}

// Strings returns the typ value of every item that offers it, in order.
func (p Payload) Strings(typ string) []string {
	var out []string
	for _, item := range p.items {
		if v, ok := item.Get(typ); ok {
			out = append(out, v)
		}
	}
	return out
}
