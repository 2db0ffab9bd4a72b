package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/stow/internal/config"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/ui"
)

// CalendarCmd opens the range picker and prints the chosen range
type CalendarCmd struct {
	FirstWeekday string `help:"First day of the week (overrides first_weekday in settings)"`
	Format       string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the calendar command
func (c *CalendarCmd) Run(cli *CLI) error {
	firstWeekday := cli.Container.SettingsService.FirstWeekday()
	if c.FirstWeekday != "" {
		wd, err := config.ParseWeekday(c.FirstWeekday)
		if err != nil {
			return err
		}
		firstWeekday = wd
	}

	model := ui.NewCalendarModel(firstWeekday, time.Now)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running calendar: %w", err)
	}

	r, ok := model.Value()
	if !ok {
		logging.Logger.Debug("Calendar closed without a range")
		return nil
	}

	if c.Format == "json" {
		data, err := json.MarshalIndent(map[string]any{
			"start": r.Start.Format(time.DateOnly),
			"end":   r.End.Format(time.DateOnly),
			"days":  r.Days(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s to %s (%d days)\n", r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly), r.Days())
	return nil
}
