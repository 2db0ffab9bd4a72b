package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg expires the error shown as generation gen
type clearErrorMsg struct {
	gen int
}

// errorBar holds the error line under the board. Each error gets a new
// generation so an old timer cannot clear a newer error.
type errorBar struct {
	delay time.Duration
	err   error
	gen   int
}

func newErrorBar(delay time.Duration) *errorBar {
	return &errorBar{delay: delay}
}

// Show replaces the current error and returns the timer that expires it
func (e *errorBar) Show(err error) tea.Cmd {
	e.err = err
	e.gen++
	gen := e.gen
	return tea.Tick(e.delay, func(time.Time) tea.Msg {
		return clearErrorMsg{gen: gen}
	})
}

// Err is the error on screen, if any
func (e *errorBar) Err() error {
	return e.err
}

// expire clears the error if it is still the one the timer was set for
func (e *errorBar) expire(gen int) {
	if gen == e.gen {
		e.err = nil
	}
}
