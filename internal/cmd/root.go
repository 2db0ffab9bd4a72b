package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/stow/internal/config"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Open the board (default)" default:"1"`
	Calendar CalendarCmd `cmd:"calendar" help:"Pick a range of days on a month grid"`
	Items    ItemsCmd    `cmd:"items" help:"Manage items (list, add, move, copy, link, cut, paste, del)"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the board over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`
	Shelves  ShelvesCmd  `cmd:"shelves" help:"Manage shelves (list, add, del, swap)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("STOW_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("STOW_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize exports STOW_DEBUG and STOW_DEBUG_FILE so child processes
	// append to the same file
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("STOW_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	if c.settings != nil && c.settings.Keys != nil {
		if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
	}

	// The container opens the database, whose logger needs logging initialized
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	logging.Logger.Debug("CLI initialized", "log_file", logFilePath, "db", config.GetDBPath())

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev bool `help:"Enable development mode (shows version info in dialogs)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting stow TUI",
		"system_clipboard", cli.Container.SystemClipboard.Available())

	var keys config.KeyBindingsConfig
	if cli.settings != nil {
		keys = cli.settings.Keys
	}

	model := ui.NewModel(ui.ModelConfig{
		BoardService:   cli.Container.BoardService,
		Clipboard:      cli.Container.SystemClipboard,
		ClipboardStore: cli.Container.ClipboardFile,
		DevMode:        r.Dev,
		Keys:           keys,
		Settings:       cli.Container.SettingsService,
	})
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, release and motion while a button is down
		tea.WithReportFocus(),     // Blur cancels pointer drags
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
