package dnd

// Kind says what part of a collection a drop target stands for.
type Kind int

const (
	// KindRoot is a whole collection or a free-standing drop zone.
	KindRoot Kind = iota
	// KindItem is a drop directly onto an item.
	KindItem
	// KindBetween is an insertion point between two items.
	KindBetween
	// KindActivation never accepts a drop; it only reacts to activation
	// (a tab that switches the visible shelf, a button that opens a dialog).
	KindActivation
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindBetween:
		return "between"
	case KindActivation:
		return "activation"
	default:
		return "root"
	}
}

// Handle identifies a registered drop target. The zero Handle is never issued.
type Handle uint64

// TargetRef is the public description of a registered target.
type TargetRef struct {
	Handle Handle
	Kind   Kind
	Label  string
	Parent Handle
}

// DropEvent is delivered to drop targets.
type DropEvent struct {
	Allowed   Allowed
	Modality  Modality
	Operation Operation
	Payload   Payload
	SessionID uint64
	Target    TargetRef
	Types     TypeSet
}

// DropTarget is implemented by every registered target.
type DropTarget interface {
	// DropOperation says which operations the target would perform for an
	// offer of types, given the source's allowed operations in order.
	DropOperation(types TypeSet, allowed Allowed) Acceptance
	DropEnter(e DropEvent)
	DropExit(e DropEvent)
	DropActivate(e DropEvent)
	Drop(e DropEvent)
}

// TargetFuncs adapts plain functions to DropTarget. Nil functions are no-ops;
// a nil OnOperation accepts whatever the source allows first.
type TargetFuncs struct {
	OnActivate  func(DropEvent)
	OnDrop      func(DropEvent)
	OnEnter     func(DropEvent)
	OnExit      func(DropEvent)
	OnOperation func(types TypeSet, allowed Allowed) Acceptance
}

var _ DropTarget = TargetFuncs{}

// DropOperation implements DropTarget
func (f TargetFuncs) DropOperation(types TypeSet, allowed Allowed) Acceptance {
	if f.OnOperation == nil {
		return Prefer(allowed.First())
	}
	return f.OnOperation(types, allowed)
}

// DropEnter implements DropTarget
func (f TargetFuncs) DropEnter(e DropEvent) {
	if f.OnEnter != nil {
		f.OnEnter(e)
	}
}

// DropExit implements DropTarget
func (f TargetFuncs) DropExit(e DropEvent) {
	if f.OnExit != nil {
		f.OnExit(e)
	}
}

// DropActivate implements DropTarget
func (f TargetFuncs) DropActivate(e DropEvent) {
	if f.OnActivate != nil {
		f.OnActivate(e)
	}
}

// Drop implements DropTarget
func (f TargetFuncs) Drop(e DropEvent) {
	if f.OnDrop != nil {
		f.OnDrop(e)
	}
}

// ActivationTarget reacts to activation only and rejects every drop.
type ActivationTarget struct {
	OnActivate func(DropEvent)
	OnEnter    func(DropEvent)
	OnExit     func(DropEvent)
}

var _ DropTarget = ActivationTarget{}

// DropOperation implements DropTarget
func (a ActivationTarget) DropOperation(TypeSet, Allowed) Acceptance { return Reject() }

// DropEnter implements DropTarget
func (a ActivationTarget) DropEnter(e DropEvent) {
	if a.OnEnter != nil {
		a.OnEnter(e)
	}
}

// DropExit implements DropTarget
func (a ActivationTarget) DropExit(e DropEvent) {
	if a.OnExit != nil {
		a.OnExit(e)
	}
}

// DropActivate implements DropTarget
func (a ActivationTarget) DropActivate(e DropEvent) {
	if a.OnActivate != nil {
		a.OnActivate(e)
	}
}

// Drop implements DropTarget
func (a ActivationTarget) Drop(DropEvent) {}

// RequireTypes wraps an acceptance function so that offers missing any of
// types are cancelled.
func RequireTypes(types []string, next func(TypeSet, Allowed) Acceptance) func(TypeSet, Allowed) Acceptance {
	return func(offered TypeSet, allowed Allowed) Acceptance {
		if !offered.HasAll(types...) {
			return Reject()
		}
		if next == nil {
			return Prefer(allowed.First())
		}
		return next(offered, allowed)
	}
}
