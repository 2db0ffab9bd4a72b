package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/stow/internal/dnd"
)

const (
	boardTop      = 2 // app name and tabs
	defaultHeight = 24
	defaultWidth  = 80
	footerHeight  = 4 // status, help and two lines for errors or tips
	gutterWidth   = 2
	minBoxHeight  = 5
	minShelfWidth = 28
)

type regionKind int

const (
	regionBoard regionKind = iota
	regionShelf
	regionItem
	regionAfter
	regionTab
)

// region is a screen rectangle, half open on both axes, backed by a drop
// target.
type region struct {
	handle dnd.Handle
	key    string
	kind   regionKind
	shelf  int
	x0, x1 int
	y0, y1 int
}

func (r region) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// boardLayout places the shelves on screen. The board view renders from it
// and mouse events are hit tested against it, so both always agree.
type boardLayout struct {
	colWidth int
	first    int
	last     int
	regions  []region // outermost first
	rows     int      // item rows per shelf
}

// hit returns the innermost region at x, y
func (l *boardLayout) hit(x, y int) (region, bool) {
	for i := len(l.regions) - 1; i >= 0; i-- {
		if l.regions[i].contains(x, y) {
			return l.regions[i], true
		}
	}
	return region{}, false
}

// handleAt returns the drop target at x, y, or zero outside the board
func (l *boardLayout) handleAt(x, y int) dnd.Handle {
	r, ok := l.hit(x, y)
	if !ok {
		return 0
	}
	return r.handle
}

func (m *Model) screenWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) screenHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

// shelvesPerScreen is how many shelf columns fit in width
func shelvesPerScreen(width, count int) int {
	n := width / minShelfWidth
	if n < 1 {
		n = 1
	}
	if count > 0 && n > count {
		n = count
	}
	return n
}

func (m *Model) boxHeight() int {
	h := m.screenHeight() - boardTop - footerHeight
	if h < minBoxHeight {
		h = minBoxHeight
	}
	return h
}

// itemRows is the number of item lines inside a shelf box: the box minus
// its borders and header
func (m *Model) itemRows() int {
	return m.boxHeight() - 3
}

// window returns the range of shelves on screen
func (m *Model) window() (int, int) {
	per := shelvesPerScreen(m.screenWidth(), len(m.shelves))
	last := m.firstShelf + per
	if last > len(m.shelves) {
		last = len(m.shelves)
	}
	return m.firstShelf, last
}

// scrollToFocus moves the window so the focused shelf is on screen and
// mounts the drop targets of the shelves that came into view.
func (m *Model) scrollToFocus() {
	per := shelvesPerScreen(m.screenWidth(), len(m.shelves))
	if m.focusShelf < m.firstShelf {
		m.firstShelf = m.focusShelf
	}
	if m.focusShelf >= m.firstShelf+per {
		m.firstShelf = m.focusShelf - per + 1
	}
	if maxFirst := len(m.shelves) - per; m.firstShelf > maxFirst {
		m.firstShelf = maxFirst
	}
	if m.firstShelf < 0 {
		m.firstShelf = 0
	}
	m.syncWindow()
}

// ensureVisible scrolls sv so that row idx is shown
func (m *Model) ensureVisible(sv *shelfView, idx int) {
	rows := m.itemRows()
	if idx < sv.offset {
		sv.offset = idx
	}
	if idx >= sv.offset+rows {
		sv.offset = idx - rows + 1
	}
	if sv.offset < 0 {
		sv.offset = 0
	}
}

func tabLabel(sv *shelfView) string {
	return fmt.Sprintf("%s (%d)", sv.shelf.DisplayName, sv.coll.Len())
}

// layout computes where everything is for the current state
func (m *Model) layout() *boardLayout {
	width := m.screenWidth()
	first, last := m.window()
	l := &boardLayout{first: first, last: last, rows: m.itemRows(), colWidth: width}
	if last > first {
		l.colWidth = width / (last - first)
	}
	top := boardTop
	bottom := boardTop + m.boxHeight()

	x := 0
	for i, sv := range m.shelves {
		w := ansi.StringWidth(tabLabel(sv)) + 2
		l.regions = append(l.regions, region{kind: regionTab, shelf: i, handle: sv.tab, x0: x, x1: x + w, y0: 1, y1: 2})
		x += w
	}

	l.regions = append(l.regions, region{kind: regionBoard, shelf: -1, handle: m.group, x0: 0, x1: width, y0: top, y1: bottom})

	for i := first; i < last; i++ {
		sv := m.shelves[i]
		if sv.drop == nil {
			continue
		}
		x0 := (i - first) * l.colWidth
		x1 := x0 + l.colWidth
		l.regions = append(l.regions, region{kind: regionShelf, shelf: i, handle: sv.drop.Root(), x0: x0, x1: x1, y0: top, y1: bottom})

		keys := sv.coll.VisibleKeys()
		end := min(sv.offset+l.rows, len(keys))
		for idx := sv.offset; idx < end; idx++ {
			key := keys[idx]
			y := top + 2 + idx - sv.offset
			before, _ := sv.drop.HandleFor(dnd.DropPoint{Key: key, Position: dnd.PositionBefore})
			body := before
			if on, ok := sv.drop.HandleFor(dnd.DropPoint{Key: key, Position: dnd.PositionOn}); ok && sv.isFolder(key) {
				body = on
			}
			l.regions = append(l.regions,
				region{kind: regionItem, shelf: i, key: key, handle: before, x0: x0 + 1, x1: x0 + 2 + gutterWidth, y0: y, y1: y + 1},
				region{kind: regionItem, shelf: i, key: key, handle: body, x0: x0 + 2 + gutterWidth, x1: x1 - 1, y0: y, y1: y + 1},
			)
		}

		// the line under the last item drops after it
		if n := len(keys); n > 0 && end == n && end-sv.offset < l.rows {
			if after, ok := sv.drop.HandleFor(dnd.DropPoint{Key: keys[n-1], Position: dnd.PositionAfter}); ok {
				y := top + 2 + end - sv.offset
				l.regions = append(l.regions, region{kind: regionAfter, shelf: i, handle: after, x0: x0 + 1, x1: x1 - 1, y0: y, y1: y + 1})
			}
		}
	}
	return l
}
