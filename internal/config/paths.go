package config

import (
	"os"
	"path/filepath"
)

// GetStowHome returns STOW_HOME or ~/.stow default
func GetStowHome() string {
	stowHome := os.Getenv("STOW_HOME")
	if stowHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".stow"
		}
		return filepath.Join(homeDir, ".stow")
	}
	return ExpandPath(stowHome)
}

// GetDBPath returns $STOW_HOME/stow.db
func GetDBPath() string {
	return filepath.Join(GetStowHome(), "stow.db")
}

// GetSettingsPath returns $STOW_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetStowHome(), "settings.json")
}

// GetClipboardPath returns $STOW_HOME/clipboard.json
func GetClipboardPath() string {
	return filepath.Join(GetStowHome(), "clipboard.json")
}

// GetHostKeyPath returns $STOW_HOME/ssh_host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetStowHome(), "ssh_host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
