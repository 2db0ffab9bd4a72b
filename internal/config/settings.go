package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Defaults applied when a setting is absent
const (
	DefaultDwellMillis     = 800
	DefaultErrorClearDelay = 10
	DefaultFirstWeekday    = "monday"
	DefaultMaxLogFiles     = 1000
	DefaultSSHHost         = "localhost"
	DefaultSSHPort         = 23234
)

// Settings is $STOW_HOME/settings.json. Every field is optional; the
// example and help tags feed 'stow settings meta'.
type Settings struct {
	AuthorizedKeys    string            `json:"authorized_keys,omitempty" example:"\"~/.ssh/authorized_keys\"" help:"Public keys allowed to open the board over SSH"`
	Debug             *bool             `json:"debug,omitempty" example:"true" help:"Write debug logs"`
	DefaultOperations StringArray       `json:"default_operations,omitempty" example:"[\"move\",\"copy\",\"link\"]" help:"Operations a drag may perform"`
	DwellMillis       *int              `json:"dwell_millis,omitempty" example:"800" help:"Hover time before a pointer drag opens a target, 0 disables"`
	ErrorClearDelay   *int              `json:"error_clear_delay,omitempty" example:"10" help:"Seconds an error stays under the board"`
	FirstWeekday      string            `json:"first_weekday,omitempty" example:"\"monday\"" help:"First column of the calendar"`
	Keys              KeyBindingsConfig `json:"keys,omitempty" example:"{\"start_drag\":\"d\",\"help\":[\"H\",\"?\"]}" help:"Custom key bindings, see 'stow settings keys'"`
	MaxLogFiles       *int              `json:"max_log_files,omitempty" example:"1000" help:"Debug log files kept before the oldest are removed"`
	SSHHost           string            `json:"ssh_host,omitempty" example:"\"localhost\"" help:"Address 'stow serve' listens on"`
	SSHPort           *int              `json:"ssh_port,omitempty" example:"23234" help:"Port 'stow serve' listens on"`
}

// Dwell is how long a pointer drag hovers before activating a target.
// Zero disables hover activation.
func (s *Settings) Dwell() time.Duration {
	if s == nil || s.DwellMillis == nil {
		return DefaultDwellMillis * time.Millisecond
	}
	return time.Duration(max(*s.DwellMillis, 0)) * time.Millisecond
}

// ErrorClearDuration is how long errors stay on screen
func (s *Settings) ErrorClearDuration() time.Duration {
	if s == nil || s.ErrorClearDelay == nil || *s.ErrorClearDelay <= 0 {
		return DefaultErrorClearDelay * time.Second
	}
	return time.Duration(*s.ErrorClearDelay) * time.Second
}

// Weekday is the configured first day of the week
func (s *Settings) Weekday() (time.Weekday, error) {
	if s == nil || s.FirstWeekday == "" {
		return ParseWeekday(DefaultFirstWeekday)
	}
	return ParseWeekday(s.FirstWeekday)
}

// ParseWeekday parses an English weekday name or its three-letter prefix
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday '%s'", name)
}

// LoadSettings reads $STOW_HOME/settings.json. A missing file gives empty
// settings.
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if settings.AuthorizedKeys != "" {
		settings.AuthorizedKeys = ExpandPath(settings.AuthorizedKeys)
	}
	return &settings, nil
}

// SaveSettings writes $STOW_HOME/settings.json through a temporary file so
// a crash never leaves it half written
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
