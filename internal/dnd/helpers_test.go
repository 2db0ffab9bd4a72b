package dnd

import (
	"fmt"
	"time"
)

// recorder collects callback names in the order they fire.
type recorder struct {
	events []string
	ends   []DragEndEvent
	drops  []DropEvent
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) source(allowed Allowed, texts ...string) SourceFuncs {
	return SourceFuncs{
		Allowed: allowed,
		Items: func() ([]DragItem, error) {
			items := make([]DragItem, len(texts))
			for i, text := range texts {
				items[i] = NewDragItem(map[string]string{TypeText: text})
			}
			return items, nil
		},
		OnDragStart: func(e DragStartEvent) {
			r.add("start")
		},
		OnDragEnd: func(e DragEndEvent) {
			r.ends = append(r.ends, e)
			r.add("end %s %s", e.State, e.Operation)
		},
	}
}

func (r *recorder) target(name string, acc Acceptance) TargetFuncs {
	return TargetFuncs{
		OnOperation: func(TypeSet, Allowed) Acceptance { return acc },
		OnEnter:     func(DropEvent) { r.add("enter %s", name) },
		OnExit:      func(DropEvent) { r.add("exit %s", name) },
		OnActivate:  func(DropEvent) { r.add("activate %s", name) },
		OnDrop: func(e DropEvent) {
			r.drops = append(r.drops, e)
			r.add("drop %s %s", name, e.Operation)
		},
	}
}

func (r *recorder) reset() {
	r.events = nil
}

// fakeScheduler runs callbacks only when the test fires them.
type fakeScheduler struct {
	pending []*scheduled
}

type scheduled struct {
	cancelled bool
	d         time.Duration
	fn        func()
}

func (f *fakeScheduler) Schedule(d time.Duration, fn func()) func() {
	s := &scheduled{d: d, fn: fn}
	f.pending = append(f.pending, s)
	return func() { s.cancelled = true }
}

// fire runs every pending callback that was not cancelled.
func (f *fakeScheduler) fire() {
	pending := f.pending
	f.pending = nil
	for _, s := range pending {
		if !s.cancelled {
			s.fn()
		}
	}
}

func (f *fakeScheduler) live() int {
	n := 0
	for _, s := range f.pending {
		if !s.cancelled {
			n++
		}
	}
	return n
}
