package calendar

import "time"

// Day truncates t to a calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Month is one month laid out in weeks starting on FirstWeekday.
type Month struct {
	FirstWeekday time.Weekday
	Month        time.Month
	Year         int
}

// NewMonth returns the month containing t.
func NewMonth(t time.Time, firstWeekday time.Weekday) Month {
	return Month{FirstWeekday: firstWeekday, Month: t.Month(), Year: t.Year()}
}

// Start returns the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

// Next returns the following month.
func (m Month) Next() Month {
	return NewMonth(m.Start().AddDate(0, 1, 0), m.FirstWeekday)
}

// Prev returns the previous month.
func (m Month) Prev() Month {
	return NewMonth(m.Start().AddDate(0, -1, 0), m.FirstWeekday)
}

// StartOfWeek returns the first day of the week containing d.
func StartOfWeek(d time.Time, firstWeekday time.Weekday) time.Time {
	d = Day(d)
	offset := (int(d.Weekday()) - int(firstWeekday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// WeeksInMonth returns how many week rows the month spans.
func (m Month) WeeksInMonth() int {
	lead := (int(m.Start().Weekday()) - int(m.FirstWeekday) + 7) % 7
	return (lead + m.End().Day() + 6) / 7
}

// Weekdays returns the seven weekdays in column order.
func (m Month) Weekdays() []time.Weekday {
	out := make([]time.Weekday, 7)
	for i := range out {
		out[i] = time.Weekday((int(m.FirstWeekday) + i) % 7)
	}
	return out
}

// Cell is one day in the grid.
type Cell struct {
	Date       time.Time
	Outside    bool
	RangeEnd   bool
	RangeStart bool
	Selected   bool
	Today      bool
}

// Grid lays out the month as WeeksInMonth rows of seven cells. Days from the
// neighbouring months fill the first and last rows and are marked Outside.
func (m Month) Grid(sel Selection, today time.Time) [][]Cell {
	today = Day(today)
	start := StartOfWeek(m.Start(), m.FirstWeekday)
	var rs, re time.Time
	var hasRange bool
	if sel != nil {
		if r, ok := sel.HighlightedRange(); ok {
			rs, re, hasRange = r.Start, r.End, true
		}
	}

	weeks := make([][]Cell, m.WeeksInMonth())
	for w := range weeks {
		row := make([]Cell, 7)
		for i := range row {
			d := start.AddDate(0, 0, w*7+i)
			c := Cell{
				Date:    d,
				Outside: d.Month() != m.Month,
				Today:   d.Equal(today),
			}
			if hasRange && !d.Before(rs) && !d.After(re) {
				c.Selected = true
				c.RangeStart = d.Equal(rs)
				c.RangeEnd = d.Equal(re)
			}
			row[i] = c
		}
		weeks[w] = row
	}
	return weeks
}
