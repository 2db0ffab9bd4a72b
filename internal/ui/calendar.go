package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/stow/internal/calendar"
	"github.com/renato0307/stow/internal/theme"
)

// calendarCellWidth is the width of one day column
const calendarCellWidth = 4

// calendarGridTop is the row of the first week: title, blank, weekdays
const calendarGridTop = 3

type calendarKeys struct {
	Cancel    key.Binding
	Down      key.Binding
	Left      key.Binding
	NextMonth key.Binding
	PrevMonth key.Binding
	Quit      key.Binding
	Right     key.Binding
	Select    key.Binding
	Up        key.Binding
}

func newCalendarKeys() calendarKeys {
	return calendarKeys{
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel range")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next week")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous day")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "previous month")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "done")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "previous week")),
	}
}

func (k calendarKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cancel, k.PrevMonth, k.NextMonth, k.Quit}
}

func (k calendarKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		k.ShortHelp(),
	}
}

// CalendarModel picks a range of days on a month grid. The first pick
// anchors the range, the second commits it.
type CalendarModel struct {
	firstWeekday time.Weekday
	help         help.Model
	keys         calendarKeys
	month        calendar.Month
	now          func() time.Time
	state        *calendar.RangeState
}

// NewCalendarModel opens the calendar on the month of today
func NewCalendarModel(firstWeekday time.Weekday, now func() time.Time) *CalendarModel {
	if now == nil {
		now = time.Now
	}
	today := now()
	return &CalendarModel{
		firstWeekday: firstWeekday,
		help:         help.New(),
		keys:         newCalendarKeys(),
		month:        calendar.NewMonth(today, firstWeekday),
		now:          now,
		state:        calendar.NewRangeState(today),
	}
}

// Value returns the committed range, if any
func (c *CalendarModel) Value() (calendar.Range, bool) {
	return c.state.Value()
}

func (c *CalendarModel) Init() tea.Cmd {
	return nil
}

func (c *CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.help.Width = msg.Width
		return c, nil

	case tea.KeyMsg:
		c.state.Tick()
		switch {
		case key.Matches(msg, c.keys.Quit):
			return c, tea.Quit
		case key.Matches(msg, c.keys.Cancel):
			if _, ok := c.state.AnchorDate(); !ok {
				return c, tea.Quit
			}
			c.state.Cancel()
		case key.Matches(msg, c.keys.Left):
			c.move(-1)
		case key.Matches(msg, c.keys.Right):
			c.move(1)
		case key.Matches(msg, c.keys.Up):
			c.move(-7)
		case key.Matches(msg, c.keys.Down):
			c.move(7)
		case key.Matches(msg, c.keys.PrevMonth):
			c.state.Focus(c.state.Focused().AddDate(0, -1, 0))
			c.month = c.month.Prev()
		case key.Matches(msg, c.keys.NextMonth):
			c.state.Focus(c.state.Focused().AddDate(0, 1, 0))
			c.month = c.month.Next()
		case key.Matches(msg, c.keys.Select):
			c.state.SelectFocused()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return c, nil
		}
		c.state.Tick()
		if d, ok := c.dayAt(msg.X, msg.Y); ok {
			c.state.Select(d)
			c.month = calendar.NewMonth(d, c.firstWeekday)
		}
	}
	return c, nil
}

// move shifts focus by days, following it into the neighbouring month
func (c *CalendarModel) move(days int) {
	c.state.Move(days)
	f := c.state.Focused()
	if f.Month() != c.month.Month || f.Year() != c.month.Year {
		c.month = calendar.NewMonth(f, c.firstWeekday)
	}
}

// dayAt maps a screen cell to the day drawn there
func (c *CalendarModel) dayAt(x, y int) (time.Time, bool) {
	row := y - calendarGridTop
	col := x / calendarCellWidth
	grid := c.month.Grid(nil, c.now())
	if row < 0 || row >= len(grid) || x < 0 || col >= 7 {
		return time.Time{}, false
	}
	return grid[row][col].Date, true
}

func (c *CalendarModel) View() string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", c.month.Month, c.month.Year)
	b.WriteString(theme.CalendarHeaderStyle.Render(title) + "\n\n")

	for _, wd := range c.month.Weekdays() {
		b.WriteString(theme.CalendarWeekdayStyle.Render(fmt.Sprintf("%-*s", calendarCellWidth, wd.String()[:2])))
	}
	b.WriteString("\n")

	focused := c.state.Focused()
	for _, week := range c.month.Grid(c.state, c.now()) {
		cells := make([]string, len(week))
		for i, cell := range week {
			cells[i] = c.renderCell(cell, cell.Date.Equal(focused))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}

	b.WriteString("\n" + c.statusLine() + "\n")
	b.WriteString(c.help.View(c.keys))
	return b.String()
}

func (c *CalendarModel) renderCell(cell calendar.Cell, focused bool) string {
	day := fmt.Sprintf("%2d", cell.Date.Day())
	if focused {
		day = "[" + day + "]"
	} else {
		day = " " + day + " "
	}

	style := theme.CalendarDayStyle
	switch {
	case cell.Selected:
		style = theme.CalendarRangeStyle
	case cell.Today:
		style = theme.CalendarTodayStyle
	case cell.Outside:
		style = theme.CalendarOutsideStyle
	}
	return style.Width(calendarCellWidth).Render(day)
}

func (c *CalendarModel) statusLine() string {
	if anchor, ok := c.state.AnchorDate(); ok {
		r := calendar.NewRange(anchor, c.state.Focused())
		return theme.NormalStyle.Render(fmt.Sprintf("Selecting from %s, %s so far", anchor.Format("Jan 2"), countDays(r.Days())))
	}
	if r, ok := c.state.Value(); ok {
		status := fmt.Sprintf("%s to %s (%s)", r.Start.Format("Jan 2"), r.End.Format("Jan 2"), countDays(r.Days()))
		if c.state.IsRangeSelecting() {
			return theme.OperationStyle.Render(status)
		}
		return theme.NormalStyle.Render(status)
	}
	return theme.DimmedStyle.Render("Pick the first day of a range")
}

func countDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
