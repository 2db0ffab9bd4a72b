package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_AcceptsArrayAndCommaString(t *testing.T) {
	var s Settings
	require.NoError(t, json.Unmarshal([]byte(`{"default_operations": "copy, link"}`), &s))
	assert.Equal(t, StringArray{"copy", "link"}, s.DefaultOperations)

	require.NoError(t, json.Unmarshal([]byte(`{"default_operations": ["move"]}`), &s))
	assert.Equal(t, StringArray{"move"}, s.DefaultOperations)
}

func TestKeyBindingValue_SingleOrMany(t *testing.T) {
	var s Settings
	require.NoError(t, json.Unmarshal([]byte(`{"keys": {"start_drag": "D", "help": ["H", "?"]}}`), &s))

	assert.Equal(t, KeyBindingValue{"D"}, s.Keys["start_drag"])
	assert.Equal(t, KeyBindingValue{"H", "?"}, s.Keys["help"])

	out, err := json.Marshal(s.Keys["start_drag"])
	require.NoError(t, err)
	assert.JSONEq(t, `"D"`, string(out))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"start_drag", "help", "paste"}

	tests := []struct {
		name    string
		keys    KeyBindingsConfig
		wantErr string
	}{
		{name: "nil", keys: nil},
		{name: "ok", keys: KeyBindingsConfig{"start_drag": {"D"}, "help": {"?"}}},
		{name: "unknown name", keys: KeyBindingsConfig{"launch": {"l"}}, wantErr: "unknown key binding 'launch'"},
		{name: "empty value", keys: KeyBindingsConfig{"paste": {""}}, wantErr: "contains empty value"},
		{name: "duplicate", keys: KeyBindingsConfig{"paste": {"p"}, "help": {"p"}}, wantErr: "is assigned to both 'help' and 'paste'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keys.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSettings_Defaults(t *testing.T) {
	var s *Settings

	assert.Equal(t, 800*time.Millisecond, s.Dwell())
	assert.Equal(t, 10*time.Second, s.ErrorClearDuration())
	day, err := s.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)
}

func TestSettings_DwellZeroDisables(t *testing.T) {
	zero := 0
	s := &Settings{DwellMillis: &zero}

	assert.Equal(t, time.Duration(0), s.Dwell())
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("Sun")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)

	day, err = ParseWeekday(" saturday ")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, day)

	_, err = ParseWeekday("someday")
	assert.Error(t, err)
}

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("STOW_HOME", t.TempDir())

	s, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv("STOW_HOME", home)
	port := 2222

	require.NoError(t, SaveSettings(&Settings{SSHPort: &port, FirstWeekday: "sunday"}))

	s, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, s.SSHPort)
	assert.Equal(t, 2222, *s.SSHPort)
	assert.Equal(t, "sunday", s.FirstWeekday)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("STOW_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, name := range []string{"authorized_keys", "debug", "default_operations", "dwell_millis", "first_weekday", "keys", "ssh_port"} {
		assert.Contains(t, example, name)
	}
	assert.Equal(t, DefaultDwellMillis, example["dwell_millis"])
	assert.Equal(t, DefaultSSHPort, example["ssh_port"])
	assert.Equal(t, DefaultMaxLogFiles, example["max_log_files"])
	assert.Equal(t, DefaultErrorClearDelay, example["error_clear_delay"])
	assert.Equal(t, DefaultFirstWeekday, example["first_weekday"])
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, StringArray{"move", "copy", "link"}, example["default_operations"])
}

func TestSettingsFields_HaveHelp(t *testing.T) {
	fields, err := SettingsFields()
	require.NoError(t, err)

	require.NotEmpty(t, fields)
	assert.Equal(t, "authorized_keys", fields[0].Name)
	for _, f := range fields {
		assert.NotEmpty(t, f.Help, f.Name)
		assert.NotNil(t, f.Example, f.Name)
	}
}

func TestSaveSettings_LeavesNoTempFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("STOW_HOME", home)

	require.NoError(t, SaveSettings(&Settings{FirstWeekday: "sunday"}))

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "settings.json", entries[0].Name())
}
