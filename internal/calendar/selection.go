package calendar

import "time"

// Range is an inclusive span of days.
type Range struct {
	End   time.Time
	Start time.Time
}

// NewRange orders a and b into a range.
func NewRange(a, b time.Time) Range {
	a, b = Day(a), Day(b)
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Contains reports whether d falls within the range.
func (r Range) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of days in the range.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Selection is what a grid renderer reads.
type Selection interface {
	AnchorDate() (time.Time, bool)
	HighlightedRange() (Range, bool)
	IsRangeSelecting() bool
}

// RangeState selects a range with two picks: the first sets the anchor, the
// second commits. While anchored, the highlight follows the focused date.
type RangeState struct {
	anchor       *time.Time
	focused      time.Time
	pendingClear bool
	value        *Range
}

var _ Selection = (*RangeState)(nil)

// NewRangeState creates an empty selection focused on focus.
func NewRangeState(focus time.Time) *RangeState {
	return &RangeState{focused: Day(focus)}
}

// AnchorDate returns the first pick of a range in progress.
func (s *RangeState) AnchorDate() (time.Time, bool) {
	if s.anchor == nil {
		return time.Time{}, false
	}
	return *s.anchor, true
}

// Focused returns the focused date.
func (s *RangeState) Focused() time.Time {
	return s.focused
}

// Focus moves focus to d.
func (s *RangeState) Focus(d time.Time) {
	s.focused = Day(d)
}

// Move moves focus by days.
func (s *RangeState) Move(days int) {
	s.focused = s.focused.AddDate(0, 0, days)
}

// Select picks d. The first pick anchors, the second commits the range.
func (s *RangeState) Select(d time.Time) {
	d = Day(d)
	s.focused = d
	if s.anchor == nil {
		s.anchor = &d
		s.pendingClear = false
		return
	}
	r := NewRange(*s.anchor, d)
	s.value = &r
	s.anchor = nil
	s.pendingClear = true
}

// SelectFocused picks the focused date.
func (s *RangeState) SelectFocused() {
	s.Select(s.focused)
}

// Cancel drops an anchor without committing.
func (s *RangeState) Cancel() {
	s.anchor = nil
	s.pendingClear = false
}

// Value returns the committed range.
func (s *RangeState) Value() (Range, bool) {
	if s.value == nil {
		return Range{}, false
	}
	return *s.value, true
}

// SetValue replaces the committed range.
func (s *RangeState) SetValue(r Range) {
	r = NewRange(r.Start, r.End)
	s.value = &r
}

// HighlightedRange is the anchor-to-focus span while anchored, otherwise the
// committed range.
func (s *RangeState) HighlightedRange() (Range, bool) {
	if s.anchor != nil {
		return NewRange(*s.anchor, s.focused), true
	}
	return s.Value()
}

// IsRangeSelecting stays true for one Tick after the anchor is released, so
// a renderer does not flash the committed state between frames.
func (s *RangeState) IsRangeSelecting() bool {
	return s.anchor != nil || s.pendingClear
}

// Tick advances one frame.
func (s *RangeState) Tick() {
	s.pendingClear = false
}
