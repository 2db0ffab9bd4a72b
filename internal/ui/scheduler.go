package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/stow/internal/dnd"
)

// tickScheduler runs drag manager callbacks on the bubbletea event loop.
// Schedule queues a tea.Tick; the callback runs when its dwellMsg comes back
// through Update, unless it was cancelled first.
type tickScheduler struct {
	nextID  uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

var _ dnd.Scheduler = (*tickScheduler)(nil)

func newTickScheduler() *tickScheduler {
	return &tickScheduler{pending: make(map[uint64]func())}
}

// Schedule implements dnd.Scheduler
func (s *tickScheduler) Schedule(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return dwellMsg{id: id}
	}))
	return func() {
		delete(s.pending, id)
	}
}

// Fire runs the callback for id. Cancelled and already fired ids are ignored.
func (s *tickScheduler) Fire(id uint64) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// Drain returns the ticks queued since the last call.
func (s *tickScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}
