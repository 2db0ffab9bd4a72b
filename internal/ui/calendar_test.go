package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)
}

func TestCalendar_KeyboardRange(t *testing.T) {
	c := NewCalendarModel(time.Monday, fixedNow)

	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c.Update(tea.KeyMsg{Type: tea.KeyRight})
	c.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, c.View(), "Selecting from Mar 14, 3 days so far")

	c.Update(tea.KeyMsg{Type: tea.KeyEnter})

	r, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC), r.End)
	assert.True(t, c.state.IsRangeSelecting())

	// the selecting flag clears on the next frame
	c.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, c.state.IsRangeSelecting())
}

func TestCalendar_FocusFollowsIntoNextMonth(t *testing.T) {
	c := NewCalendarModel(time.Monday, fixedNow)

	for range 3 {
		c.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	assert.Equal(t, time.April, c.month.Month)
	assert.Contains(t, c.View(), "April 2024")
}

func TestCalendar_EscCancelsAnchorThenQuits(t *testing.T) {
	c := NewCalendarModel(time.Monday, fixedNow)
	c.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	_, anchored := c.state.AnchorDate()
	assert.False(t, anchored)

	_, cmd = c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestCalendar_ClickPicksDay(t *testing.T) {
	c := NewCalendarModel(time.Monday, fixedNow)

	// March 2024 starts on a Friday: the first row is Feb 26 to Mar 3
	c.Update(tea.MouseMsg{X: 17, Y: calendarGridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	c.Update(tea.MouseMsg{X: 1, Y: calendarGridTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	r, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, 1, r.Start.Day())
	assert.Equal(t, 4, r.End.Day())
	assert.Equal(t, 4, r.Days())
}
