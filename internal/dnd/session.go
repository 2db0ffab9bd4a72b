package dnd

import "time"

// Modality is the input method that started a drag.
type Modality int

const (
	ModalityPointer Modality = iota
	ModalityKeyboard
	// ModalityVirtual covers drags with no physical gesture: clipboard
	// transfers and scripted drags from the command line.
	ModalityVirtual
)

// String implements fmt.Stringer
func (m Modality) String() string {
	switch m {
	case ModalityKeyboard:
		return "keyboard"
	case ModalityVirtual:
		return "virtual"
	default:
		return "pointer"
	}
}

// State is a drag session's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateDragging
	StateDropped
	StateCancelled
)

// String implements fmt.Stringer
func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	case StateDropped:
		return "dropped"
	case StateCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// Terminal reports whether s ends a session.
func (s State) Terminal() bool {
	return s == StateDropped || s == StateCancelled
}

// CancelReason records why a session was cancelled.
type CancelReason string

const (
	ReasonEscape         CancelReason = "escape"
	ReasonFocusLost      CancelReason = "focus_lost"
	ReasonPointerLost    CancelReason = "pointer_lost"
	ReasonProducerFailed CancelReason = "producer_failed"
	ReasonRejected       CancelReason = "rejected"
	ReasonSourceUnmount  CancelReason = "source_unmount"
)

// Source is the dragged side of a session.
type Source interface {
	// DragItems produces the payload. It is called exactly once per gesture,
	// when the gesture is armed.
	DragItems() ([]DragItem, error)
	AllowedOperations() Allowed
	DragStart(e DragStartEvent)
	DragEnd(e DragEndEvent)
}

// DragStartEvent is delivered when a session starts dragging.
type DragStartEvent struct {
	Modality  Modality
	Payload   Payload
	SessionID uint64
}

// DragEndEvent is delivered exactly once per session.
type DragEndEvent struct {
	// Duration runs from the start of dragging; zero if it never started
	Duration  time.Duration
	Modality  Modality
	Operation Operation
	Payload   Payload
	Reason    CancelReason
	SessionID uint64
	State     State
	Target    *TargetRef
}

// SourceFuncs adapts plain functions to Source.
type SourceFuncs struct {
	Allowed     Allowed
	Items       func() ([]DragItem, error)
	OnDragEnd   func(DragEndEvent)
	OnDragStart func(DragStartEvent)
}

var _ Source = SourceFuncs{}

// DragItems implements Source
func (s SourceFuncs) DragItems() ([]DragItem, error) {
	if s.Items == nil {
		return nil, ErrEmptyPayload
	}
	return s.Items()
}

// AllowedOperations implements Source
func (s SourceFuncs) AllowedOperations() Allowed {
	return s.Allowed.normalize()
}

// DragStart implements Source
func (s SourceFuncs) DragStart(e DragStartEvent) {
	if s.OnDragStart != nil {
		s.OnDragStart(e)
	}
}

// DragEnd implements Source
func (s SourceFuncs) DragEnd(e DragEndEvent) {
	if s.OnDragEnd != nil {
		s.OnDragEnd(e)
	}
}

// Session is one drag gesture. Only the Manager mutates it; everything else
// reads it through Snapshot.
type Session struct {
	active    *TargetRef
	allowed   Allowed
	chain     []TargetRef
	endFired  bool
	hint      Operation
	id        uint64
	modality  Modality
	operation Operation
	payload   Payload
	reason    CancelReason
	source    Source
	startedAt time.Time
	state     State
}

// ID returns the session id, unique per manager.
func (s *Session) ID() uint64 { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Snapshot returns a read-only view of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Allowed:   append(Allowed(nil), s.allowed...),
		ID:        s.id,
		Modality:  s.modality,
		Operation: s.operation,
		Payload:   s.payload,
		Reason:    s.reason,
		StartedAt: s.startedAt,
		State:     s.state,
	}
	if s.active != nil {
		ref := *s.active
		snap.Target = &ref
	}
	snap.Entered = append([]TargetRef(nil), s.chain...)
	return snap
}

// Snapshot is what renderers consume: the current target, the resolved
// operation and whether a drag is active.
type Snapshot struct {
	Allowed   Allowed
	Entered   []TargetRef
	ID        uint64
	Modality  Modality
	Operation Operation
	Payload   Payload
	Reason    CancelReason
	StartedAt time.Time // zero while armed
	State     State
	Target    *TargetRef
}

// Active reports whether a drag is armed or in progress.
func (s Snapshot) Active() bool {
	return s.State == StateArmed || s.State == StateDragging
}

// IsTarget reports whether h is the current drop target.
func (s Snapshot) IsTarget(h Handle) bool {
	return s.Target != nil && s.Target.Handle == h
}

// HasEntered reports whether h is in the chain of entered targets.
func (s Snapshot) HasEntered(h Handle) bool {
	for _, ref := range s.Entered {
		if ref.Handle == h {
			return true
		}
	}
	return false
}
