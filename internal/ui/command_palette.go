package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/theme"
)

// maxVisibleItems is how many actions the palette lists at once.
const maxVisibleItems = 6

// PaletteAction is an action the palette can dispatch
type PaletteAction struct {
	Description string
	Msg         tea.Msg
	Name        string
	Shortcut    string
}

// CommandPalette is a searchable action palette shown at the bottom of the
// board.
type CommandPalette struct {
	actions       []PaletteAction // Filtered actions
	allActions    []PaletteAction
	Completed     bool
	filterInput   textinput.Model
	itemName      string // Focused item, shown in the header
	lastQuery     string
	Result        CommandPaletteResult
	selectedIndex int
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *PaletteAction
	Cancelled bool
}

// NewCommandPalette creates a palette listing the actions available with or
// without a focused item. itemName is empty when nothing is focused.
func NewCommandPalette(itemName string, keys KeyMap) *CommandPalette {
	actions := paletteActions(itemName != "", keys)

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		filterInput: ti,
		itemName:    itemName,
	}
}

// paletteActions joins the action registry with the key definitions that
// can dispatch them
func paletteActions(hasItem bool, keys KeyMap) []PaletteAction {
	var out []PaletteAction
	for _, action := range domain.GetActionsForContext(hasItem) {
		def := GetKeyDefinition(action.Name)
		if def == nil || !def.IsPaletteAction || def.Msg == nil {
			continue
		}
		out = append(out, PaletteAction{
			Description: action.Description,
			Msg:         def.Msg,
			Name:        action.Name,
			Shortcut:    keys.Shortcut(action.Name),
		})
	}
	return out
}

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		return cp, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case tea.KeyEnter:
			if cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()
	return cp, cmd
}

// View renders the palette as a full-width bottom panel.
func (cp *CommandPalette) View() string {
	header := theme.PaletteTitleStyle.Render("⌘ Command Palette")
	if cp.itemName != "" {
		header += " " + theme.DimmedStyle.Render("(focused: "+cp.itemName+")")
	}

	var items []string
	width := cp.maxDescLen()
	start, end := cp.visibleRange()
	for i := start; i < end; i++ {
		action := cp.actions[i]

		prefix := "  "
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && start > 0:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && end < len(cp.actions):
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		}

		items = append(items, prefix+
			theme.PaletteItemStyle.Render(padRight(action.Description, width))+
			theme.PaletteShortcutStyle.Render("  "+action.Shortcut))
	}
	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	inner := header + "\n\n" + cp.filterInput.View() + "\n\n" + strings.Join(items, "\n")
	return theme.PaletteBorderStyle.Width(cp.paletteWidth() - 2).Render(inner)
}

// Height is the number of lines View renders.
func (cp *CommandPalette) Height() int {
	// border, header, blank, filter, blank, items, border
	return maxVisibleItems + 6
}

// filterActions fuzzy matches the query against descriptions, best first.
func (cp *CommandPalette) filterActions() {
	query := cp.filterInput.Value()
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query
	cp.selectedIndex = 0

	if query == "" {
		cp.actions = cp.allActions
		return
	}

	descs := make([]string, len(cp.allActions))
	for i, a := range cp.allActions {
		descs[i] = a.Description
	}
	matches := fuzzy.Find(query, descs)
	cp.actions = make([]PaletteAction, len(matches))
	for i, m := range matches {
		cp.actions[i] = cp.allActions[m.Index]
	}
}

// maxDescLen is computed over all actions so alignment holds while filtering.
func (cp *CommandPalette) maxDescLen() int {
	maxLen := 0
	for _, a := range cp.allActions {
		if len(a.Description) > maxLen {
			maxLen = len(a.Description)
		}
	}
	return maxLen
}

func (cp *CommandPalette) paletteWidth() int {
	if cp.width > 0 {
		return cp.width
	}
	return 80
}

// visibleRange keeps the selected action in view.
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}
	start := cp.selectedIndex - maxVisibleItems/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

// padRight pads a string to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
