package dnd

import (
	"sort"
	"sync"

	"github.com/renato0307/stow/internal/logging"
)

// Registration describes a target being mounted.
type Registration struct {
	Kind   Kind
	Label  string
	// Order is a lexicographic sort key used for keyboard navigation.
	// Targets with equal keys keep registration order.
	Order  []int
	Parent Handle
	Target DropTarget
}

type registryEntry struct {
	order  []int
	ref    TargetRef
	target DropTarget
}

// UnregisterFunc is told about targets leaving the registry.
type UnregisterFunc func(ref TargetRef, target DropTarget)

// Registry holds the currently mounted drop targets. It is safe to register
// and unregister from any callback, including while a drag is in progress.
type Registry struct {
	entries   map[Handle]*registryEntry
	listeners map[int]UnregisterFunc
	mu        sync.RWMutex
	next      Handle
	nextSub   int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:   make(map[Handle]*registryEntry),
		listeners: make(map[int]UnregisterFunc),
	}
}

// Register mounts a target and returns its handle.
func (r *Registry) Register(reg Registration) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	h := r.next
	order := make([]int, len(reg.Order))
	copy(order, reg.Order)
	r.entries[h] = &registryEntry{
		order: order,
		ref: TargetRef{
			Handle: h,
			Kind:   reg.Kind,
			Label:  reg.Label,
			Parent: reg.Parent,
		},
		target: reg.Target,
	}

	logging.Logger.Debug("Drop target registered", "handle", h, "kind", reg.Kind.String(), "label", reg.Label)
	return h
}

// Unregister removes a target. Unknown handles are ignored. Listeners run
// after the entry is gone.
func (r *Registry) Unregister(h Handle) {
	r.mu.Lock()
	entry, ok := r.entries[h]
	if ok {
		delete(r.entries, h)
	}
	listeners := make([]UnregisterFunc, 0, len(r.listeners))
	for _, fn := range r.listeners {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	logging.Logger.Debug("Drop target unregistered", "handle", h, "label", entry.ref.Label)
	for _, fn := range listeners {
		fn(entry.ref, entry.target)
	}
}

// Reorder replaces the navigation key of h. Unknown handles are ignored.
func (r *Registry) Reorder(h Handle, order []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[h]; ok {
		entry.order = append([]int(nil), order...)
	}
}

// OnUnregister subscribes fn to removals. The returned func cancels it.
func (r *Registry) OnUnregister(fn UnregisterFunc) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSub++
	id := r.nextSub
	r.listeners[id] = fn
	return func() {
		r.mu.Lock()
		delete(r.listeners, id)
		r.mu.Unlock()
	}
}

// Lookup returns the target for h.
func (r *Registry) Lookup(h Handle) (DropTarget, TargetRef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[h]
	if !ok {
		return nil, TargetRef{}, false
	}
	return entry.target, entry.ref, true
}

// Contains reports whether h is registered.
func (r *Registry) Contains(h Handle) bool {
	_, _, ok := r.Lookup(h)
	return ok
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// TargetsUnder returns hit followed by its registered ancestors, innermost
// first. Ancestors that have been unregistered end the chain.
func (r *Registry) TargetsUnder(hit Handle) []TargetRef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var chain []TargetRef
	seen := make(map[Handle]bool)
	for h := hit; h != 0 && !seen[h]; {
		entry, ok := r.entries[h]
		if !ok {
			break
		}
		seen[h] = true
		chain = append(chain, entry.ref)
		h = entry.ref.Parent
	}
	return chain
}

// Targets returns every registered target in navigation order.
func (r *Registry) Targets() []TargetRef {
	r.mu.RLock()
	entries := make([]*registryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if c := compareOrder(entries[i].order, entries[j].order); c != 0 {
			return c < 0
		}
		return entries[i].ref.Handle < entries[j].ref.Handle
	})

	refs := make([]TargetRef, len(entries))
	for i, e := range entries {
		refs[i] = e.ref
	}
	return refs
}

// Accepting returns the targets that would take a drop of types under
// allowed, in navigation order. Targets removed during the walk are skipped.
func (r *Registry) Accepting(types TypeSet, allowed Allowed) []TargetRef {
	var out []TargetRef
	for _, ref := range r.Targets() {
		target, _, ok := r.Lookup(ref.Handle)
		if !ok {
			continue
		}
		if Negotiate(allowed, target.DropOperation(types, allowed), OpNone) != OpNone {
			out = append(out, ref)
		}
	}
	return out
}

// Navigable returns the targets keyboard navigation should visit: those that
// accept the offer plus activation-only targets.
func (r *Registry) Navigable(types TypeSet, allowed Allowed) []TargetRef {
	var out []TargetRef
	for _, ref := range r.Targets() {
		target, _, ok := r.Lookup(ref.Handle)
		if !ok {
			continue
		}
		if ref.Kind == KindActivation || Negotiate(allowed, target.DropOperation(types, allowed), OpNone) != OpNone {
			out = append(out, ref)
		}
	}
	return out
}

func compareOrder(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
