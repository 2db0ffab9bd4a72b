package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/stow/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Board       BoardKeys
	Clipboard   ClipboardKeys
	Drag        DragKeys
	Navigation  NavigationKeys

	// shortcuts maps a key definition name to the first bound key
	shortcuts map[string]string
	tips      []Tip
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Custom bindings in keysConfig override the defaults.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	shortcuts := make(map[string]string, len(defaults))
	for name, keys := range defaults {
		if custom, ok := keysConfig[name]; ok && len(custom) > 0 {
			keys = custom
		}
		if len(keys) > 0 {
			shortcuts[name] = displayKey(keys[0])
		}
	}
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Board:       newBoardKeys(defaults, keysConfig),
		Clipboard:   newClipboardKeys(defaults, keysConfig),
		Drag:        newDragKeys(defaults, keysConfig),
		Navigation:  newNavigationKeys(defaults, keysConfig),
		shortcuts:   shortcuts,
		tips:        buildTips(shortcuts),
	}
}

// Tips returns the hints for this key map, naming the keys it binds
func (k KeyMap) Tips() []Tip {
	return k.tips
}

// Shortcut returns the key shown for a key definition, honouring custom
// bindings
func (k KeyMap) Shortcut(name string) string {
	return k.shortcuts[name]
}

// ShortHelp implements help.KeyMap for the bottom bar while browsing
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Drag.StartDrag.Binding,
		k.Board.Select.Binding,
		k.Clipboard.Copy.Binding,
		k.Clipboard.Cut.Binding,
		k.Clipboard.Paste.Binding,
		k.Board.NewItem.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		k.DragHelp(),
	}
}

// DragHelp is the bottom bar while a drag is in progress
func (k KeyMap) DragHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Up.Binding,
		k.Navigation.Down.Binding,
		k.Navigation.Left.Binding,
		k.Navigation.Right.Binding,
		k.Drag.Drop.Binding,
		k.Drag.DropCopy.Binding,
		k.Drag.DropLink.Binding,
		k.Drag.Activate.Binding,
		k.Drag.Cancel.Binding,
	}
}

// dragKeyMap adapts the drag bindings to help.KeyMap
type dragKeyMap struct {
	keys *KeyMap
}

func (d dragKeyMap) ShortHelp() []key.Binding {
	return d.keys.DragHelp()
}

func (d dragKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.keys.DragHelp()}
}

// buildBinding creates a BoundKey from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) BoundKey {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	shown := make([]string, len(keys))
	for i, k := range keys {
		shown[i] = displayKey(k)
	}

	return BoundKey{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(shown, "/"), def.Help),
		),
	}
}

// displayKey names keys that render as blanks
func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
