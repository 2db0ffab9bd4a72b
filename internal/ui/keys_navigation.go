package ui

import (
	"github.com/renato0307/stow/internal/config"
)

// NavigationKeys defines key bindings for moving focus around the board.
// The same keys move the drop target while a keyboard drag is active.
type NavigationKeys struct {
	Down         BoundKey
	Left         BoundKey
	Right        BoundKey
	ToggleFolder BoundKey
	Up           BoundKey
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Down:         buildBinding("down", defaults, customKeys),
		Left:         buildBinding("left", defaults, customKeys),
		Right:        buildBinding("right", defaults, customKeys),
		ToggleFolder: buildBinding("toggle_folder", defaults, customKeys),
		Up:           buildBinding("up", defaults, customKeys),
	}
}
