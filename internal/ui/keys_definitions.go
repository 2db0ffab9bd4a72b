package ui

import (
	"maps"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// If IsPaletteAction is true, the key appears in the command palette.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"P"}, Help: "command palette", TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "next item"},
	{Name: "left", Defaults: []string{"left"}, Help: "previous shelf"},
	{Name: "right", Defaults: []string{"right"}, Help: "next shelf"},
	{Name: "toggle_folder", Defaults: []string{"tab"}, Help: "expand or collapse folder", TipFormat: "press %s to open a folder"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "previous item"},

	// Board keys
	{Name: "delete", Defaults: []string{"D"}, Help: "delete item", IsPaletteAction: true, Msg: DeleteItemsMsg{}},
	{Name: "new_folder", Defaults: []string{"N"}, Help: "add folder", IsPaletteAction: true, Msg: NewItemMsg{Folder: true}, TipFormat: "press %s to add a folder"},
	{Name: "new_item", Defaults: []string{"n"}, Help: "add item", IsPaletteAction: true, Msg: NewItemMsg{}, TipFormat: "press %s to add an item to the focused shelf"},
	{Name: "new_shelf", Defaults: []string{"S"}, Help: "add shelf", IsPaletteAction: true, Msg: NewShelfMsg{}, TipFormat: "press %s to add a shelf"},
	{Name: "select", Defaults: []string{" "}, Help: "toggle selection", TipFormat: "press %s to select several items and drag them together"},
	{Name: "select_all", Defaults: []string{"A"}, Help: "select all in shelf", IsPaletteAction: true, Msg: SelectAllMsg{}},

	// Drag keys
	{Name: "activate", Defaults: []string{"o"}, Help: "open folder or shelf under the drag", TipFormat: "press %s while dragging to open the folder under the drag"},
	{Name: "cancel_drag", Defaults: []string{"esc"}, Help: "cancel drag"},
	{Name: "drop", Defaults: []string{"enter"}, Help: "drop here"},
	{Name: "drop_copy", Defaults: []string{"alt+enter"}, Help: "drop as copy", TipFormat: "press %s to drop a copy instead of moving"},
	{Name: "drop_link", Defaults: []string{"ctrl+l"}, Help: "drop as link", TipFormat: "press %s to drop a link to the dragged items"},
	{Name: "start_drag", Defaults: []string{"d"}, Help: "drag item or selection", IsPaletteAction: true, Msg: StartDragMsg{}, TipFormat: "press %s to drag the focused item with the keyboard"},

	// Clipboard keys
	{Name: "copy", Defaults: []string{"y"}, Help: "copy", IsPaletteAction: true, Msg: CopyMsg{}, TipFormat: "press %s to copy the focused item or selection"},
	{Name: "cut", Defaults: []string{"x"}, Help: "cut", IsPaletteAction: true, Msg: CutMsg{}},
	{Name: "paste", Defaults: []string{"p"}, Help: "paste", IsPaletteAction: true, Msg: PasteMsg{}},
}

// keyIndex is AllKeyDefinitions keyed by name, built on first use
var keyIndex = sync.OnceValues(func() (map[string]KeyDefinition, []string) {
	byName := make(map[string]KeyDefinition, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		byName[def.Name] = def
	}
	names := slices.Sorted(maps.Keys(byName))
	return byName, names
})

// GetDefaultKeyBindings maps each key name to its default keys
func GetDefaultKeyBindings() map[string][]string {
	byName, _ := keyIndex()
	defaults := make(map[string][]string, len(byName))
	for name, def := range byName {
		defaults[name] = def.Defaults
	}
	return defaults
}

// GetKeyDefinition returns the definition named name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	byName, _ := keyIndex()
	if def, ok := byName[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns every key name in sorted order. Callers must not
// modify the result.
func GetValidKeyNames() []string {
	_, names := keyIndex()
	return names
}

// IsValidKeyName reports whether name is a known key
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
