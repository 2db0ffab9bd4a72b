package cmd

import (
	"errors"

	adapterclipboard "github.com/renato0307/stow/internal/adapters/clipboard"
	adapterstorage "github.com/renato0307/stow/internal/adapters/storage"
	"github.com/renato0307/stow/internal/config"
	"github.com/renato0307/stow/internal/ports"
	"github.com/renato0307/stow/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	BoardService    *services.BoardService
	Headless        *services.Headless
	SettingsService *services.SettingsService

	// Adapters
	ClipboardFile   *adapterclipboard.File
	SystemClipboard *adapterclipboard.System

	// Internal - for cleanup only
	boardRepo ports.BoardRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	boardRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	clipboardFile := adapterclipboard.NewFile(config.GetClipboardPath())
	systemClipboard := adapterclipboard.NewSystem(clipboardFile)

	boardService := services.NewBoardService(boardRepo, services.NewItemKey)

	return &Container{
		BoardService:    boardService,
		ClipboardFile:   clipboardFile,
		Headless:        services.NewHeadless(boardService, systemClipboard, clipboardFile),
		SettingsService: services.NewSettingsService(settings),
		SystemClipboard: systemClipboard,
		boardRepo:       boardRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	if c.Headless != nil {
		c.Headless.Close()
	}
	if c.boardRepo != nil {
		errs = append(errs, c.boardRepo.Close())
	}
	return errors.Join(errs...)
}
