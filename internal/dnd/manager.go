package dnd

import (
	"fmt"
	"time"

	"github.com/renato0307/stow/internal/logging"
)

// Scheduler runs fn after d on the host's event loop. The returned func
// cancels the callback if it has not run yet.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// DropResult describes how a session ended.
type DropResult struct {
	Operation Operation
	Payload   Payload
	SessionID uint64
	State     State
	Target    *TargetRef
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDwell enables pointer-hover activation after d, scheduled through s.
func WithDwell(s Scheduler, d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.scheduler = s
		m.dwell = d
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager owns the single drag session of one interactive program and drives
// it through idle, armed, dragging and a terminal state. All methods must be
// called from the host's event loop.
type Manager struct {
	dwell       time.Duration
	dwellCancel func()
	dwellHandle Handle
	nextID      uint64
	nextWatch   int
	now         func() time.Time
	registry    *Registry
	scheduler   Scheduler
	session     *Session
	unsubscribe func()
	watchers    map[int]func(Snapshot)
}

// NewManager creates a manager bound to reg.
func NewManager(reg *Registry, opts ...ManagerOption) *Manager {
	m := &Manager{
		now:      time.Now,
		registry: reg,
		watchers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.unsubscribe = reg.OnUnregister(m.targetRemoved)
	return m
}

// Close cancels any session in progress and detaches from the registry.
func (m *Manager) Close() {
	if m.session != nil {
		_ = m.Cancel(ReasonFocusLost)
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Registry returns the registry the manager negotiates against.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Watch registers fn to be called after every state change. The returned
// func removes it.
func (m *Manager) Watch(fn func(Snapshot)) func() {
	m.nextWatch++
	id := m.nextWatch
	m.watchers[id] = fn
	return func() {
		delete(m.watchers, id)
	}
}

// Snapshot returns the current session view, or an idle view.
func (m *Manager) Snapshot() Snapshot {
	if m.session == nil {
		return Snapshot{State: StateIdle}
	}
	return m.session.Snapshot()
}

// Active reports whether a session is armed or dragging.
func (m *Manager) Active() bool {
	return m.session != nil
}

// Arm starts a gesture. The source's items are produced here, once. A gesture
// started while another is active is ignored and reported as ErrSessionActive.
func (m *Manager) Arm(src Source, modality Modality) (*Session, error) {
	if m.session != nil {
		logging.Logger.Debug("Ignoring drag gesture while another is active",
			"active_session", m.session.id,
			"active_state", m.session.state.String(),
			"modality", modality.String())
		return nil, ErrSessionActive
	}

	m.nextID++
	id := m.nextID
	allowed := src.AllowedOperations().normalize()

	items, err := src.DragItems()
	var payload Payload
	if err == nil {
		payload, err = NewPayload(items)
	}
	if err != nil {
		logging.Logger.Warn("Drag source failed to produce items",
			"session_id", id,
			"modality", modality.String(),
			"error", err)
		src.DragEnd(DragEndEvent{
			Modality:  modality,
			Operation: OpNone,
			Reason:    ReasonProducerFailed,
			SessionID: id,
			State:     StateCancelled,
		})
		return nil, fmt.Errorf("%w: %w", ErrProducerFailed, err)
	}

	s := &Session{
		allowed:  allowed,
		id:       id,
		modality: modality,
		payload:  payload,
		source:   src,
		state:    StateArmed,
	}
	m.session = s

	logging.Logger.Debug("Drag session armed",
		"session_id", id,
		"modality", modality.String(),
		"items", payload.Len(),
		"allowed", allowed.Set().String())
	m.notify()
	return s, nil
}

// Start confirms an armed gesture as a drag.
func (m *Manager) Start() error {
	s := m.session
	if s == nil {
		return ErrNoSession
	}
	if s.state != StateArmed {
		return fmt.Errorf("%w: start from %s", ErrWrongState, s.state)
	}
	s.state = StateDragging
	s.startedAt = m.now()
	s.source.DragStart(DragStartEvent{
		Modality:  s.modality,
		Payload:   s.payload,
		SessionID: s.id,
	})
	logging.Logger.Debug("Drag session started", "session_id", s.id)
	m.notify()
	return nil
}

// Begin arms and immediately starts a gesture. Keyboard and virtual drags
// have no movement threshold.
func (m *Manager) Begin(src Source, modality Modality) (*Session, error) {
	s, err := m.Arm(src, modality)
	if err != nil {
		return nil, err
	}
	if err := m.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

// Over moves the gesture onto hit and its ancestors. A zero hit leaves every
// target.
func (m *Manager) Over(hit Handle) error {
	s := m.session
	if s == nil {
		return ErrNoSession
	}
	if s.state != StateDragging {
		return fmt.Errorf("%w: over from %s", ErrWrongState, s.state)
	}
	m.moveTo(s, m.registry.TargetsUnder(hit))
	m.notify()
	return nil
}

// Navigate moves keyboard focus delta steps through the targets that accept
// the payload (plus activation-only targets), wrapping at both ends.
func (m *Manager) Navigate(delta int) (TargetRef, error) {
	s := m.session
	if s == nil {
		return TargetRef{}, ErrNoSession
	}
	candidates := m.registry.Navigable(s.payload.Types(), s.allowed)
	if len(candidates) == 0 {
		return TargetRef{}, ErrUnknownTarget
	}

	idx := -1
	if len(s.chain) > 0 {
		for i, ref := range candidates {
			if ref.Handle == s.chain[0].Handle {
				idx = i
				break
			}
		}
	}

	var next int
	switch {
	case idx < 0 && delta < 0:
		next = len(candidates) - 1
	case idx < 0:
		next = 0
	default:
		next = ((idx+delta)%len(candidates) + len(candidates)) % len(candidates)
	}

	ref := candidates[next]
	if err := m.Over(ref.Handle); err != nil {
		return TargetRef{}, err
	}
	return ref, nil
}

// SetHint records the operation requested by modifier keys and renegotiates.
func (m *Manager) SetHint(op Operation) {
	s := m.session
	if s == nil || s.hint == op {
		return
	}
	s.hint = op
	m.renegotiate(s)
	m.notify()
}

// Activate fires activation on the innermost target under the gesture.
func (m *Manager) Activate() error {
	s := m.session
	if s == nil {
		return ErrNoSession
	}
	if len(s.chain) == 0 {
		return ErrUnknownTarget
	}
	m.cancelDwell()
	m.activate(s, s.chain[0])
	return nil
}

// Drop completes the gesture on the current target. When no target accepts
// the payload the session is cancelled instead and no drop is delivered.
func (m *Manager) Drop() (DropResult, error) {
	s := m.session
	if s == nil {
		return DropResult{}, ErrNoSession
	}
	m.cancelDwell()

	if s.state == StateArmed || s.active == nil || s.operation == OpNone {
		logging.Logger.Debug("Drop rejected",
			"session_id", s.id,
			"state", s.state.String(),
			"has_target", s.active != nil)
		m.finish(s, StateCancelled, ReasonRejected)
		return m.result(s), nil
	}

	ref := *s.active
	target, _, ok := m.registry.Lookup(ref.Handle)
	if !ok {
		m.finish(s, StateCancelled, ReasonRejected)
		return m.result(s), nil
	}

	s.state = StateDropped
	target.Drop(m.event(s, ref, s.operation))

	logging.Logger.Info("Drop completed",
		"session_id", s.id,
		"operation", s.operation.String(),
		"target", ref.Label,
		"items", s.payload.Len(),
		"modality", s.modality.String())
	m.finish(s, StateDropped, "")
	return m.result(s), nil
}

// Cancel aborts the gesture. Every entered target is exited and the source
// sees a drag end with OpNone.
func (m *Manager) Cancel(reason CancelReason) error {
	s := m.session
	if s == nil {
		return ErrNoSession
	}
	m.cancelDwell()
	logging.Logger.Debug("Drag session cancelled", "session_id", s.id, "reason", string(reason))
	s.operation = OpNone
	m.finish(s, StateCancelled, reason)
	return nil
}

func (m *Manager) finish(s *Session, state State, reason CancelReason) {
	s.state = state
	s.reason = reason
	if state == StateCancelled {
		s.operation = OpNone
	}

	entered := append([]TargetRef(nil), s.chain...)
	for i := len(entered) - 1; i >= 0; i-- {
		m.exit(s, entered[i])
	}

	if !s.endFired {
		s.endFired = true
		var target *TargetRef
		if state == StateDropped && s.active != nil {
			ref := *s.active
			target = &ref
		}
		var duration time.Duration
		if !s.startedAt.IsZero() {
			duration = m.now().Sub(s.startedAt)
		}
		logging.Logger.Debug("Drag session ended",
			"session_id", s.id,
			"state", state.String(),
			"operation", s.operation.String(),
			"duration", duration)
		s.source.DragEnd(DragEndEvent{
			Duration:  duration,
			Modality:  s.modality,
			Operation: s.operation,
			Payload:   s.payload,
			Reason:    reason,
			SessionID: s.id,
			State:     state,
			Target:    target,
		})
	}

	if m.session == s {
		m.session = nil
	}
	m.notifySnapshot(s.Snapshot())
}

func (m *Manager) result(s *Session) DropResult {
	res := DropResult{
		Operation: s.operation,
		Payload:   s.payload,
		SessionID: s.id,
		State:     s.state,
	}
	if s.state == StateDropped && s.active != nil {
		ref := *s.active
		res.Target = &ref
	}
	return res
}

// moveTo fires exits for targets no longer under the gesture (outermost
// first), then enters for new ones (innermost first), then renegotiates.
func (m *Manager) moveTo(s *Session, next []TargetRef) {
	nextSet := make(map[Handle]bool, len(next))
	for _, ref := range next {
		nextSet[ref.Handle] = true
	}

	previous := append([]TargetRef(nil), s.chain...)
	for i := len(previous) - 1; i >= 0; i-- {
		if !nextSet[previous[i].Handle] {
			m.exit(s, previous[i])
		}
	}

	for _, ref := range next {
		if s.hasEntered(ref.Handle) {
			continue
		}
		target, _, ok := m.registry.Lookup(ref.Handle)
		if !ok {
			continue
		}
		s.chain = append(s.chain, ref)
		target.DropEnter(m.event(s, ref, m.operationFor(s, target)))
	}

	ordered := make([]TargetRef, 0, len(next))
	for _, ref := range next {
		if s.hasEntered(ref.Handle) {
			ordered = append(ordered, ref)
		}
	}
	s.chain = ordered

	m.renegotiate(s)
	m.scheduleDwell(s)
}

func (m *Manager) exit(s *Session, ref TargetRef) {
	if !s.removeEntered(ref.Handle) {
		return
	}
	if target, _, ok := m.registry.Lookup(ref.Handle); ok {
		target.DropExit(m.event(s, ref, OpNone))
	}
}

// renegotiate picks the innermost entered target that accepts the payload.
func (m *Manager) renegotiate(s *Session) {
	var active *TargetRef
	op := OpNone
	for _, ref := range s.chain {
		target, _, ok := m.registry.Lookup(ref.Handle)
		if !ok {
			continue
		}
		if o := m.operationFor(s, target); o != OpNone {
			r := ref
			active = &r
			op = o
			break
		}
	}
	if active == nil && len(s.chain) > 0 {
		r := s.chain[0]
		active = &r
	}

	if op != s.operation || !sameTarget(active, s.active) {
		label := ""
		if active != nil {
			label = active.Label
		}
		logging.Logger.Debug("Drop operation negotiated",
			"session_id", s.id,
			"target", label,
			"operation", op.String())
	}
	s.active = active
	s.operation = op
}

func (m *Manager) operationFor(s *Session, target DropTarget) Operation {
	return Negotiate(s.allowed, target.DropOperation(s.payload.Types(), s.allowed), s.hint)
}

func (m *Manager) activate(s *Session, ref TargetRef) {
	target, _, ok := m.registry.Lookup(ref.Handle)
	if !ok {
		return
	}
	logging.Logger.Debug("Drop target activated", "session_id", s.id, "target", ref.Label)
	target.DropActivate(m.event(s, ref, m.operationFor(s, target)))
}

func (m *Manager) scheduleDwell(s *Session) {
	if m.scheduler == nil || m.dwell <= 0 || s.modality != ModalityPointer {
		return
	}
	if len(s.chain) == 0 {
		m.cancelDwell()
		return
	}
	ref := s.chain[0]
	if m.dwellCancel != nil && m.dwellHandle == ref.Handle {
		return
	}
	m.cancelDwell()
	m.dwellHandle = ref.Handle
	m.dwellCancel = m.scheduler.Schedule(m.dwell, func() {
		m.dwellCancel = nil
		m.dwellHandle = 0
		if m.session != s || s.state != StateDragging {
			return
		}
		if len(s.chain) == 0 || s.chain[0].Handle != ref.Handle {
			return
		}
		m.activate(s, ref)
		m.notify()
	})
}

func (m *Manager) cancelDwell() {
	if m.dwellCancel != nil {
		m.dwellCancel()
	}
	m.dwellCancel = nil
	m.dwellHandle = 0
}

// targetRemoved treats a target unmounted mid-drag as an immediate exit.
func (m *Manager) targetRemoved(ref TargetRef, target DropTarget) {
	s := m.session
	if s == nil || !s.removeEntered(ref.Handle) {
		return
	}
	logging.Logger.Debug("Entered drop target unmounted during drag",
		"session_id", s.id,
		"target", ref.Label)
	if target != nil {
		target.DropExit(m.event(s, ref, OpNone))
	}
	if m.dwellHandle == ref.Handle {
		m.cancelDwell()
	}
	m.renegotiate(s)
	m.notify()
}

func (m *Manager) event(s *Session, ref TargetRef, op Operation) DropEvent {
	return DropEvent{
		Allowed:   append(Allowed(nil), s.allowed...),
		Modality:  s.modality,
		Operation: op,
		Payload:   s.payload,
		SessionID: s.id,
		Target:    ref,
		Types:     s.payload.Types(),
	}
}

func (m *Manager) notify() {
	m.notifySnapshot(m.Snapshot())
}

func (m *Manager) notifySnapshot(snap Snapshot) {
	for _, fn := range m.watchers {
		fn(snap)
	}
}

func (s *Session) hasEntered(h Handle) bool {
	for _, ref := range s.chain {
		if ref.Handle == h {
			return true
		}
	}
	return false
}

func (s *Session) removeEntered(h Handle) bool {
	for i, ref := range s.chain {
		if ref.Handle == h {
			s.chain = append(s.chain[:i:i], s.chain[i+1:]...)
			return true
		}
	}
	return false
}

func sameTarget(a, b *TargetRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Handle == b.Handle
}
