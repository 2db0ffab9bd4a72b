package ui

import (
	"github.com/renato0307/stow/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	CommandPalette BoundKey
	ForceQuit      BoundKey
	Help           BoundKey
	Quit           BoundKey
}

// newApplicationKeys creates application key bindings
func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		CommandPalette: buildBinding("command_palette", defaults, customKeys),
		ForceQuit:      buildBinding("force_quit", defaults, customKeys),
		Help:           buildBinding("help", defaults, customKeys),
		Quit:           buildBinding("quit", defaults, customKeys),
	}
}
