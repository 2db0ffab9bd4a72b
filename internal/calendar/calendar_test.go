package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonth_WeeksInMonth(t *testing.T) {
	// February 2026 starts on a Sunday and has 28 days.
	feb := NewMonth(date(2026, time.February, 10), time.Sunday)
	assert.Equal(t, 4, feb.WeeksInMonth())

	feb.FirstWeekday = time.Monday
	assert.Equal(t, 5, feb.WeeksInMonth())

	// August 2026 starts on a Saturday and has 31 days.
	aug := NewMonth(date(2026, time.August, 1), time.Sunday)
	assert.Equal(t, 6, aug.WeeksInMonth())
}

func TestMonth_NextPrevCrossYears(t *testing.T) {
	dec := NewMonth(date(2026, time.December, 31), time.Monday)

	assert.Equal(t, Month{FirstWeekday: time.Monday, Month: time.January, Year: 2027}, dec.Next())
	assert.Equal(t, time.November, dec.Prev().Month)
	assert.Equal(t, 31, dec.End().Day())
}

func TestMonth_Weekdays(t *testing.T) {
	m := NewMonth(date(2026, time.October, 1), time.Monday)

	days := m.Weekdays()
	assert.Equal(t, time.Monday, days[0])
	assert.Equal(t, time.Sunday, days[6])
}

func TestStartOfWeek(t *testing.T) {
	// 2026-10-18 is a Sunday.
	assert.Equal(t, date(2026, time.October, 12), StartOfWeek(date(2026, time.October, 18), time.Monday))
	assert.Equal(t, date(2026, time.October, 18), StartOfWeek(date(2026, time.October, 18), time.Sunday))
}

func TestGrid_MarksOutsideTodayAndRange(t *testing.T) {
	m := NewMonth(date(2026, time.October, 1), time.Monday)
	sel := NewRangeState(date(2026, time.October, 5))
	sel.SetValue(Range{Start: date(2026, time.October, 7), End: date(2026, time.October, 5)})

	grid := m.Grid(sel, time.Date(2026, time.October, 18, 15, 4, 0, 0, time.UTC))
	require.Len(t, grid, m.WeeksInMonth())

	// 2026-10-01 is a Thursday, so the first row starts on 2026-09-28.
	first := grid[0][0]
	assert.Equal(t, date(2026, time.September, 28), first.Date)
	assert.True(t, first.Outside)

	var selected []int
	for _, row := range grid {
		for _, c := range row {
			if c.Selected {
				selected = append(selected, c.Date.Day())
			}
			if c.Today {
				assert.Equal(t, 18, c.Date.Day())
			}
		}
	}
	assert.Equal(t, []int{5, 6, 7}, selected)
	assert.True(t, grid[1][0].RangeStart)
	assert.True(t, grid[1][2].RangeEnd)
}

func TestRangeState_TwoPickSelection(t *testing.T) {
	s := NewRangeState(date(2026, time.October, 10))

	_, ok := s.AnchorDate()
	assert.False(t, ok)
	assert.False(t, s.IsRangeSelecting())

	s.SelectFocused()
	anchor, ok := s.AnchorDate()
	require.True(t, ok)
	assert.Equal(t, date(2026, time.October, 10), anchor)
	assert.True(t, s.IsRangeSelecting())

	s.Move(-3)
	r, ok := s.HighlightedRange()
	require.True(t, ok)
	assert.Equal(t, NewRange(date(2026, time.October, 7), date(2026, time.October, 10)), r)
	assert.Equal(t, 4, r.Days())

	s.SelectFocused()
	_, ok = s.AnchorDate()
	assert.False(t, ok)
	assert.True(t, s.IsRangeSelecting(), "still selecting until the next tick")

	s.Tick()
	assert.False(t, s.IsRangeSelecting())
	v, ok := s.Value()
	require.True(t, ok)
	assert.True(t, v.Contains(date(2026, time.October, 8)))
	assert.False(t, v.Contains(date(2026, time.October, 11)))
}

func TestRangeState_CancelKeepsCommittedValue(t *testing.T) {
	s := NewRangeState(date(2026, time.October, 1))
	s.SetValue(NewRange(date(2026, time.October, 1), date(2026, time.October, 2)))

	s.Select(date(2026, time.October, 20))
	s.Cancel()

	r, ok := s.HighlightedRange()
	require.True(t, ok)
	assert.Equal(t, date(2026, time.October, 2), r.End)
	assert.False(t, s.IsRangeSelecting())
}
