package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/stow/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show the settings file and the options it takes" default:"1"`
}

// SettingsMetaCmd describes settings.json
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	fields, err := config.SettingsFields()
	if err != nil {
		return err
	}
	path := config.GetSettingsPath()

	if s.Format == "json" {
		data, err := json.MarshalIndent(map[string]any{
			"fields":        fields,
			"format":        config.GetSettingsExample(),
			"settings_file": path,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", path)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tType\tExample\tDescription")
	fmt.Fprintln(w, "────\t────\t───────\t───────────")
	for _, f := range fields {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Type, exampleText(f.Example), f.Help)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nEvery setting is optional.")
	return nil
}

// exampleText shows an example the way it is written in settings.json
func exampleText(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(data)
}
