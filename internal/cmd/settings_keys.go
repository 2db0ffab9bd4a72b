package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/stow/internal/config"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List key bindings with their defaults" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Restore the default binding of a key"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Bind keys to an action"`
}

type keyBindingRow struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Help    string   `json:"help"`
	Name    string   `json:"name"`
}

// Active is what the board binds: the custom keys when set
func (r keyBindingRow) Active() []string {
	if len(r.Custom) > 0 {
		return r.Custom
	}
	return r.Default
}

func keyBindingRows(custom config.KeyBindingsConfig) []keyBindingRow {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()
	rows := make([]keyBindingRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, keyBindingRow{
			Custom:  custom[name],
			Default: defaults[name],
			Help:    ui.GetKeyDefinition(name).Help,
			Name:    name,
		})
	}
	return rows
}

// SettingsKeysListCmd lists key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}
	rows := keyBindingRows(custom)

	if s.Format == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tKeys\tAction")
	fmt.Fprintln(w, "────\t────\t──────")
	for _, r := range rows {
		keys := strings.Join(r.Active(), ", ")
		if len(r.Custom) > 0 {
			keys += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, keys, r.Help)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n* custom binding, stored in %s\n", config.GetSettingsPath())
	return nil
}

// SettingsKeysSetCmd binds keys to an action
type SettingsKeysSetCmd struct {
	Name string   `arg:"" help:"Action name (e.g. start_drag, paste, quit)"`
	Keys []string `arg:"" help:"Keys to bind (e.g. g, ctrl+s, or up,k for several)" sep:","`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	keys := make([]string, 0, len(s.Keys))
	for _, k := range s.Keys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys given for '%s'", s.Name)
	}

	logging.Logger.Debug("Setting key binding", "name", s.Name, "keys", keys)

	err := updateKeyBindings(s.Name, func(bindings config.KeyBindingsConfig) {
		bindings[s.Name] = keys
	})
	if err != nil {
		return err
	}

	fmt.Printf("'%s' is now bound to %s\n", s.Name, strings.Join(keys, ", "))
	return nil
}

// SettingsKeysResetCmd drops a custom binding
type SettingsKeysResetCmd struct {
	Name string `arg:"" help:"Action name"`
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	err := updateKeyBindings(s.Name, func(bindings config.KeyBindingsConfig) {
		delete(bindings, s.Name)
	})
	if err != nil {
		return err
	}

	fmt.Printf("'%s' is back to %s\n", s.Name, strings.Join(ui.GetDefaultKeyBindings()[s.Name], ", "))
	return nil
}

// updateKeyBindings edits the bindings in the settings file. It reads the
// file again so values merged from flags are not written back.
func updateKeyBindings(name string, edit func(config.KeyBindingsConfig)) error {
	if !ui.IsValidKeyName(name) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}

	edit(settings.Keys)
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
