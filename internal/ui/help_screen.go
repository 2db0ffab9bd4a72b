package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool // viewport has been sized
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// renderGroup renders a titled group of bindings
func renderGroup(title string, bindings ...key.Binding) string {
	var b strings.Builder
	b.WriteString(theme.HelpGroupStyle.Render(title) + "\n")
	for _, binding := range bindings {
		b.WriteString(renderBinding(binding))
	}
	return b.String()
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += renderGroup("Navigation",
		keys.Navigation.Up.Binding,
		keys.Navigation.Down.Binding,
		keys.Navigation.Left.Binding,
		keys.Navigation.Right.Binding,
		keys.Navigation.ToggleFolder.Binding)

	content += "\n" + renderGroup("Shelves and Items",
		keys.Board.Select.Binding,
		keys.Board.SelectAll.Binding,
		keys.Board.NewItem.Binding,
		keys.Board.NewFolder.Binding,
		keys.Board.NewShelf.Binding,
		keys.Board.Delete.Binding)

	content += "\n" + renderGroup("Drag and Drop",
		keys.Drag.StartDrag.Binding,
		keys.Drag.Drop.Binding,
		keys.Drag.DropCopy.Binding,
		keys.Drag.DropLink.Binding,
		keys.Drag.Activate.Binding,
		keys.Drag.Cancel.Binding)
	content += renderShortcut(keys.Navigation.Up.Binding.Help().Key+" "+keys.Navigation.Down.Binding.Help().Key,
		"while dragging: next or previous drop position")
	content += renderShortcut(keys.Navigation.Left.Binding.Help().Key+" "+keys.Navigation.Right.Binding.Help().Key,
		"while dragging: jump to the neighbouring shelf")

	content += "\n" + theme.HelpGroupStyle.Render("Mouse") + "\n"
	content += renderShortcut("press and move", "drag the item or selection")
	content += renderShortcut("alt / ctrl / shift", "hold while dragging to copy, link or move")
	content += renderShortcut("hover a folder", "opens it after a moment")
	content += renderShortcut("hover a tab", "shows that shelf")
	content += renderShortcut("right click", "cancel drag")

	content += "\n" + renderGroup("Clipboard",
		keys.Clipboard.Copy.Binding,
		keys.Clipboard.Cut.Binding,
		keys.Clipboard.Paste.Binding)

	content += "\n" + renderGroup("Application",
		keys.Application.CommandPalette.Binding,
		keys.Application.Help.Binding,
		keys.Application.Quit.Binding,
		keys.Application.ForceQuit.Binding)

	content += "\n" + theme.HelpGroupStyle.Render("Symbols (read-only)") + "\n"
	content += renderShortcut(domain.SymbolItem, "item")
	content += renderShortcut(domain.SymbolFolderClosed+" "+domain.SymbolFolderOpen, "folder, closed or open")
	content += renderShortcut(domain.SymbolLink, "link to another item")
	content += renderShortcut("▶", "drop lands before this item")
	content += renderShortcut("✓", "selected")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		viewportHeight := msg.Height - 6
		if viewportHeight < 5 {
			viewportHeight = 5
		}
		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
