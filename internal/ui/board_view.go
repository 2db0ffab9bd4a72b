package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/theme"
)

func (m *Model) boardView() string {
	l := m.layout()
	width := m.screenWidth()

	var b strings.Builder
	header := appNameLine(m.devMode) + "  " + theme.TaglineStyle.Render(versionInfo.Tagline)
	b.WriteString(ansi.Truncate(header, width, "…") + "\n")
	b.WriteString(m.renderTabs(width) + "\n")

	if len(m.shelves) == 0 {
		empty := theme.ShelfStyle.Width(width - 2).Height(m.boxHeight() - 2).Render(
			theme.DimmedStyle.Render(fmt.Sprintf("No shelves yet. Press %s to add one.", m.keys.Shortcut("new_shelf"))))
		b.WriteString(empty + "\n")
	} else {
		held := m.heldKeys()
		boxes := make([]string, 0, l.last-l.first)
		for i := l.first; i < l.last; i++ {
			boxes = append(boxes, m.renderShelf(l, i, held))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...) + "\n")
	}

	b.WriteString(ansi.Truncate(m.statusLine(), width, "…") + "\n")
	b.WriteString(m.helpLine() + "\n")

	// Bottom section - fixed 2 lines, an error hides the tip
	if m.errors.Err() != nil {
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.errors.Err(), width)))
	} else if tips := m.keys.Tips(); len(tips) > 0 {
		b.WriteString(tips[m.tipIndex%len(tips)].Render() + "\n ")
	} else {
		b.WriteString(" \n ")
	}
	return b.String()
}

func (m *Model) renderTabs(width int) string {
	snap := m.manager.Snapshot()
	var b strings.Builder
	for i, sv := range m.shelves {
		style := theme.TabStyle
		switch {
		case snap.HasEntered(sv.tab):
			style = theme.TabDropTargetStyle
		case i == m.focusShelf:
			style = theme.TabActiveStyle
		}
		b.WriteString(style.Render(tabLabel(sv)))
	}
	return ansi.Truncate(b.String(), width, "…")
}

// heldKeys are the items cut to the clipboard, drawn faded until pasted
func (m *Model) heldKeys() map[string]bool {
	keys, op, ok := m.clipboard.Bridge().Held()
	if !ok || op != dnd.OpMove {
		return nil
	}
	held := make(map[string]bool, len(keys))
	for _, k := range keys {
		held[k] = true
	}
	return held
}

func (m *Model) renderShelf(l *boardLayout, i int, held map[string]bool) string {
	sv := m.shelves[i]
	inner := l.colWidth - 4

	lines := []string{m.shelfHeader(sv)}
	keys := sv.coll.VisibleKeys()
	end := min(sv.offset+l.rows, len(keys))
	for idx := sv.offset; idx < end; idx++ {
		lines = append(lines, m.renderItem(sv, i, keys[idx], held))
	}
	switch {
	case len(keys) == 0:
		lines = append(lines, theme.DimmedStyle.Render("empty, drop items here"))
	case end == len(keys) && end-sv.offset < l.rows:
		lines = append(lines, m.renderAfter(sv, keys[len(keys)-1], inner))
	}
	for len(lines) < l.rows+1 {
		lines = append(lines, "")
	}
	lines = lines[:l.rows+1]
	for j := range lines {
		lines[j] = ansi.Truncate(lines[j], inner, "…")
	}

	style := theme.ShelfStyle
	switch {
	case sv.drop != nil && sv.drop.IsRootDropTarget():
		style = theme.ShelfDropTargetStyle
	case i == m.focusShelf:
		style = theme.ShelfFocusedStyle
	}
	return style.Width(l.colWidth - 2).Height(l.rows + 1).Render(strings.Join(lines, "\n"))
}

func (m *Model) shelfHeader(sv *shelfView) string {
	header := theme.ShelfHeaderStyle.Render(sv.shelf.DisplayName)
	if len(sv.shelf.Accept) > 0 && len(sv.shelf.Accept) < 3 {
		names := make([]string, len(sv.shelf.Accept))
		for i, t := range sv.shelf.Accept {
			names[i] = string(t) + "s"
		}
		header += " " + theme.ShelfAcceptStyle.Render("only "+strings.Join(names, ", "))
	}
	if n := len(sv.coll.SelectedKeys()); n > 0 {
		header += " " + theme.ItemSelectedStyle.Render(fmt.Sprintf("%d selected", n))
	}
	return header
}

func (m *Model) renderItem(sv *shelfView, shelfIndex int, key string, held map[string]bool) string {
	node, _ := sv.coll.Get(key)
	item := domain.Item{Key: key, Text: node.Text, Type: domain.ParseItemType(node.Type)}
	focused := shelfIndex == m.focusShelf && key == sv.focus
	selected := sv.coll.IsSelected(key)
	onTarget := sv.drop != nil && sv.drop.IsDropTarget(dnd.DropPoint{Key: key, Position: dnd.PositionOn})

	gutter := "  "
	switch {
	case sv.drop != nil && sv.drop.IsDropTarget(dnd.DropPoint{Key: key, Position: dnd.PositionBefore}):
		gutter = theme.DropLineStyle.Render("▶ ")
	case focused:
		gutter = theme.ItemFocusedStyle.Render("› ")
	}

	mark := " "
	if selected {
		mark = "✓"
	}
	text := mark + strings.Repeat("  ", node.Level) + item.Symbol(sv.coll.IsExpanded(key)) + " " + node.Text

	style := theme.ItemStyle
	switch {
	case sv.drag.IsDragging(key):
		style = theme.ItemDraggingStyle
	case onTarget:
		style = theme.ItemDropTargetStyle
	case held[key]:
		style = theme.ItemCutStyle
	case focused:
		style = theme.ItemFocusedStyle
	case selected:
		style = theme.ItemSelectedStyle
	case item.Type == domain.ItemTypeLink:
		style = theme.ItemLinkStyle
	}

	line := gutter + style.Render(text)
	if m.manager.Active() && m.preview.DraggedKey == key {
		if badge := m.preview.Badge(); badge != "" {
			line += " " + theme.BadgeStyle.Render(badge)
		}
	}
	return line
}

// renderAfter draws the drop line under the last item when it is the target
func (m *Model) renderAfter(sv *shelfView, last string, width int) string {
	if sv.drop == nil || !sv.drop.IsDropTarget(dnd.DropPoint{Key: last, Position: dnd.PositionAfter}) {
		return ""
	}
	return theme.DropLineStyle.Render("▶ " + strings.Repeat("─", max(0, width-2)))
}

func (m *Model) statusLine() string {
	snap := m.manager.Snapshot()
	if !snap.Active() {
		if keys, op, ok := m.clipboard.Bridge().Held(); ok {
			verb := "copied"
			if op == dnd.OpMove {
				verb = "cut"
			}
			return theme.NormalStyle.Render(fmt.Sprintf("Clipboard: %s %s, press %s to paste",
				countItems(len(keys)), verb, m.keys.Shortcut("paste")))
		}
		return ""
	}

	status := theme.NormalStyle.Render("Dragging " + countItems(snap.Payload.Len()))
	if snap.State == dnd.StateArmed {
		return status + theme.DimmedStyle.Render(" · move to start")
	}
	if snap.Target == nil || snap.Operation == dnd.OpNone {
		hint := " · no drop here"
		if !m.overBoard && snap.Modality == dnd.ModalityPointer {
			hint = " · release to cancel"
		}
		return status + theme.DimmedStyle.Render(hint)
	}
	return status + " · " + theme.OperationStyle.Render(snap.Operation.String()) + " " + m.describeTarget(*snap.Target)
}

func countItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// describeTarget names a drop target for the status line
func (m *Model) describeTarget(ref dnd.TargetRef) string {
	for _, sv := range m.shelves {
		if sv.drop == nil {
			continue
		}
		point, ok := sv.drop.PointFor(ref.Handle)
		if !ok {
			continue
		}
		node, _ := sv.coll.Get(point.Key)
		switch point.Position {
		case dnd.PositionOn:
			return "into " + node.Text
		case dnd.PositionBefore:
			return "before " + node.Text
		case dnd.PositionAfter:
			return "after " + node.Text
		default:
			return "to the end of " + sv.shelf.DisplayName
		}
	}
	return "to " + ref.Label
}

func (m *Model) helpLine() string {
	var km help.KeyMap = m.keys
	if m.manager.Active() {
		km = dragKeyMap{keys: &m.keys}
	}
	return m.help.View(km)
}
