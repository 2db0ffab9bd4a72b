package dnd

import (
	"fmt"
)

// Position qualifies a drop point within a collection.
type Position int

const (
	PositionRoot Position = iota
	PositionOn
	PositionBefore
	PositionAfter
)

// String implements fmt.Stringer
func (p Position) String() string {
	switch p {
	case PositionOn:
		return "on"
	case PositionBefore:
		return "before"
	case PositionAfter:
		return "after"
	default:
		return "root"
	}
}

// DropPoint is a sub-target of a droppable collection. Key is empty for the
// collection root.
type DropPoint struct {
	Key      string
	Position Position
}

// String implements fmt.Stringer
func (p DropPoint) String() string {
	if p.Position == PositionRoot {
		return "root"
	}
	return fmt.Sprintf("%s %s", p.Position, p.Key)
}

// KeyedCollection is the part of a collection the droppable side reads.
type KeyedCollection interface {
	// VisibleKeys returns the keys currently shown, in order.
	VisibleKeys() []string
	// Version changes whenever VisibleKeys would return something different.
	Version() uint64
}

// DroppableOptions configures a DroppableCollection. Nil callbacks are
// no-ops.
type DroppableOptions struct {
	// Between registers insertion points before every item and after the
	// last one.
	Between bool
	// GetDropOperation is the acceptance function for every sub-target. Nil
	// accepts the source's first allowed operation everywhere.
	GetDropOperation func(point DropPoint, types TypeSet, allowed Allowed) Acceptance
	// IsDirectory marks items that expand on activation instead of only
	// taking drops.
	IsDirectory func(key string) bool
	Label       string
	// OnItems registers a target on each item.
	OnItems        bool
	OnDrop         func(point DropPoint, e DropEvent)
	OnDropActivate func(point DropPoint, e DropEvent)
	OnDropEnter    func(point DropPoint, e DropEvent)
	OnDropExit     func(point DropPoint, e DropEvent)
	// Order prefixes every navigation key so several collections interleave
	// predictably.
	Order  []int
	Parent Handle
}

// DroppableCollection registers the drop targets of one collection and
// tracks which of them the current drag is over.
type DroppableCollection struct {
	collection KeyedCollection
	handles    map[DropPoint]Handle
	manager    *Manager
	opts       DroppableOptions
	points     map[Handle]DropPoint
	root       Handle
	synced     bool
	version    uint64
}

// NewDroppableCollection registers the collection's targets with m's
// registry.
func NewDroppableCollection(m *Manager, coll KeyedCollection, opts DroppableOptions) *DroppableCollection {
	d := &DroppableCollection{
		collection: coll,
		handles:    make(map[DropPoint]Handle),
		manager:    m,
		opts:       opts,
		points:     make(map[Handle]DropPoint),
	}
	root := DropPoint{Position: PositionRoot}
	d.root = m.Registry().Register(Registration{
		Kind:   KindRoot,
		Label:  opts.Label,
		Order:  opts.Order,
		Parent: opts.Parent,
		Target: d.targetFor(root),
	})
	d.handles[root] = d.root
	d.points[d.root] = root
	d.Sync()
	return d
}

// Root returns the handle of the whole-collection target.
func (d *DroppableCollection) Root() Handle {
	return d.root
}

// Label returns the collection's label.
func (d *DroppableCollection) Label() string {
	return d.opts.Label
}

// Sync brings the registered sub-targets in line with the collection. Points
// that still exist keep their handles so an ongoing drag is not disturbed.
func (d *DroppableCollection) Sync() {
	version := d.collection.Version()
	if d.synced && version == d.version {
		return
	}
	d.synced = true
	d.version = version

	keys := d.collection.VisibleKeys()
	wanted := make(map[DropPoint][]int)
	for i, key := range keys {
		if d.opts.Between {
			wanted[DropPoint{Key: key, Position: PositionBefore}] = d.order(i, 0)
		}
		if d.opts.OnItems {
			wanted[DropPoint{Key: key, Position: PositionOn}] = d.order(i, 1)
		}
	}
	if d.opts.Between && len(keys) > 0 {
		wanted[DropPoint{Key: keys[len(keys)-1], Position: PositionAfter}] = d.order(len(keys), 0)
	}

	reg := d.manager.Registry()
	for point, h := range d.handles {
		if point.Position == PositionRoot {
			continue
		}
		if _, ok := wanted[point]; !ok {
			delete(d.handles, point)
			delete(d.points, h)
			reg.Unregister(h)
		}
	}

	for point, order := range wanted {
		if h, ok := d.handles[point]; ok {
			reg.Reorder(h, order)
			continue
		}
		kind := KindBetween
		if point.Position == PositionOn {
			kind = KindItem
		}
		h := reg.Register(Registration{
			Kind:   kind,
			Label:  point.String(),
			Order:  order,
			Parent: d.root,
			Target: d.targetFor(point),
		})
		d.handles[point] = h
		d.points[h] = point
	}
}

// Close unregisters every target of the collection.
func (d *DroppableCollection) Close() {
	reg := d.manager.Registry()
	for point, h := range d.handles {
		if point.Position != PositionRoot {
			reg.Unregister(h)
		}
	}
	reg.Unregister(d.root)
	d.handles = make(map[DropPoint]Handle)
	d.points = make(map[Handle]DropPoint)
}

// HandleFor returns the handle registered for point.
func (d *DroppableCollection) HandleFor(point DropPoint) (Handle, bool) {
	h, ok := d.handles[point]
	return h, ok
}

// PointFor returns the drop point behind h when h belongs to this collection.
func (d *DroppableCollection) PointFor(h Handle) (DropPoint, bool) {
	p, ok := d.points[h]
	return p, ok
}

// Current returns the sub-target the active drag resolves to, when it is in
// this collection.
func (d *DroppableCollection) Current() (DropPoint, bool) {
	snap := d.manager.Snapshot()
	if !snap.Active() || snap.Target == nil {
		return DropPoint{}, false
	}
	return d.PointFor(snap.Target.Handle)
}

// IsDropTarget reports whether point is the current drop indicator.
func (d *DroppableCollection) IsDropTarget(point DropPoint) bool {
	cur, ok := d.Current()
	return ok && cur == point
}

// IsRootDropTarget reports whether the whole collection is the current
// target.
func (d *DroppableCollection) IsRootDropTarget() bool {
	return d.IsDropTarget(DropPoint{Position: PositionRoot})
}

// IsHovered reports whether the drag is anywhere inside the collection.
func (d *DroppableCollection) IsHovered() bool {
	snap := d.manager.Snapshot()
	return snap.Active() && snap.HasEntered(d.root)
}

func (d *DroppableCollection) order(index, slot int) []int {
	out := make([]int, 0, len(d.opts.Order)+2)
	out = append(out, d.opts.Order...)
	return append(out, index, slot)
}

func (d *DroppableCollection) targetFor(point DropPoint) DropTarget {
	return TargetFuncs{
		OnOperation: func(types TypeSet, allowed Allowed) Acceptance {
			if d.opts.GetDropOperation == nil {
				return Prefer(allowed.First())
			}
			return d.opts.GetDropOperation(point, types, allowed)
		},
		OnEnter: func(e DropEvent) {
			if d.opts.OnDropEnter != nil {
				d.opts.OnDropEnter(point, e)
			}
		},
		OnExit: func(e DropEvent) {
			if d.opts.OnDropExit != nil {
				d.opts.OnDropExit(point, e)
			}
		},
		OnActivate: func(e DropEvent) {
			if point.Position == PositionOn && d.opts.IsDirectory != nil && !d.opts.IsDirectory(point.Key) {
				return
			}
			if d.opts.OnDropActivate != nil {
				d.opts.OnDropActivate(point, e)
			}
		},
		OnDrop: func(e DropEvent) {
			if d.opts.OnDrop != nil {
				d.opts.OnDrop(point, e)
			}
		},
	}
}
