package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/stow/internal/config"
	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/ports"
	"github.com/renato0307/stow/internal/services"
)

const tipInterval = 20 * time.Second

type uiState int

const (
	stateBoard uiState = iota
	stateCommandPalette
	stateConfirmingDelete
	stateCreatingItem
	stateCreatingShelf
	stateHelp
)

// ModelConfig holds what the board needs to run
type ModelConfig struct {
	BoardService *services.BoardService
	// Clipboard carries the text of copied items to other programs
	Clipboard ports.Clipboard
	// ClipboardStore shares held items with other stow processes
	ClipboardStore ports.ClipboardStore
	DevMode        bool
	Keys           config.KeyBindingsConfig
	Settings       *services.SettingsService
}

type Model struct {
	board          *domain.Board
	boardService   *services.BoardService
	clipboard      *services.ClipboardService
	commandPalette *CommandPalette
	confirmDelete  *bool // huh writes the decision here
	deleteForm     *Dialog
	deleteKeys     []string
	devMode        bool
	errors         *errorBar
	firstShelf     int    // first shelf on screen
	focusAfterLoad string // key to focus once the next board load lands
	focusShelf     int
	group          dnd.Handle // every shelf's drop targets hang off this one
	height         int
	help           help.Model
	helpScreen     *Dialog
	itemForm       *Dialog
	keys           KeyMap
	manager        *dnd.Manager
	overBoard      bool
	pointer        *pointerPress // set while a mouse button is down on an item
	preview        dnd.Preview
	queued         []tea.Cmd // commands produced by drag callbacks
	registry       *dnd.Registry
	scheduler      *tickScheduler
	settings       *services.SettingsService
	shelfForm      *Dialog
	shelves        []*shelfView
	state          uiState
	tipIndex       int
	width          int
}

// pointerPress is where the mouse went down
type pointerPress struct {
	x, y int
}

// NewModel creates the board model. The board itself is loaded by Init.
func NewModel(cfg ModelConfig) *Model {
	settings := cfg.Settings
	if settings == nil {
		settings = services.NewSettingsService(nil)
	}

	registry := dnd.NewRegistry()
	scheduler := newTickScheduler()
	manager := dnd.NewManager(registry, dnd.WithDwell(scheduler, settings.Dwell()))
	clipboard := services.NewClipboardService(dnd.NewClipboardBridge(manager, cfg.Clipboard), cfg.ClipboardStore)
	if err := clipboard.Refresh(); err != nil {
		logging.Logger.Warn("Failed to load clipboard", "error", err)
	}

	m := &Model{
		boardService: cfg.BoardService,
		clipboard:    clipboard,
		devMode:      cfg.DevMode,
		errors:       newErrorBar(settings.ErrorClearDelay()),
		help:         help.New(),
		keys:         NewKeyMap(cfg.Keys),
		manager:      manager,
		registry:     registry,
		scheduler:    scheduler,
		settings:     settings,
		state:        stateBoard,
	}

	m.group = registry.Register(dnd.Registration{
		Kind:  dnd.KindRoot,
		Label: "board",
		Order: []int{1},
		Target: dnd.TargetFuncs{
			OnOperation: func(dnd.TypeSet, dnd.Allowed) dnd.Acceptance { return dnd.Reject() },
			OnEnter:     func(dnd.DropEvent) { m.overBoard = true },
			OnExit:      func(dnd.DropEvent) { m.overBoard = false },
		},
	})
	return m
}

// Close ends any drag in progress and releases the drop targets
func (m *Model) Close() {
	m.manager.Close()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoard(), m.tipTick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToFocus()
		// dialogs need the size too

	case boardLoadedMsg:
		if msg.err != nil {
			logging.Logger.Error("Failed to load board", "error", msg.err)
			return m, m.errors.Show(msg.err)
		}
		m.applyBoard(msg.board)
		return m, m.flush()

	case boardChangedMsg:
		if msg.err != nil {
			return m, tea.Batch(m.errors.Show(msg.err), m.loadBoard())
		}
		return m, m.loadBoard()

	case dropAppliedMsg:
		if msg.err != nil {
			logging.Logger.Error("Failed to apply drop", "error", msg.err)
			err := fmt.Errorf("failed to %s items: %w", msg.req.Operation, msg.err)
			return m, tea.Batch(m.errors.Show(err), m.loadBoard())
		}
		if msg.outcome != nil {
			switch {
			case len(msg.outcome.Moved) > 0:
				m.focusAfterLoad = msg.outcome.Moved[0]
			case len(msg.outcome.Created) > 0:
				m.focusAfterLoad = msg.outcome.Created[0]
			}
		}
		return m, m.loadBoard()

	case dwellMsg:
		m.scheduler.Fire(msg.id)
		return m, m.flush()

	case clearErrorMsg:
		m.errors.expire(msg.gen)
		return m, nil

	case showTipMsg:
		m.tipIndex++
		return m, m.tipTick()

	case tea.BlurMsg:
		if m.manager.Active() {
			_ = m.manager.Cancel(dnd.ReasonFocusLost)
		}
		m.pointer = nil
		return m, m.flush()
	}

	model, cmd := m.updateState(msg)
	m.syncWindow()
	return model, tea.Batch(cmd, m.flush())
}

func (m *Model) updateState(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateBoard:
		return m.updateBoard(msg)
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateConfirmingDelete:
		return m.updateConfirmingDelete(msg)
	case stateCreatingItem:
		return m.updateCreatingItem(msg)
	case stateCreatingShelf:
		return m.updateCreatingShelf(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

// flush returns the commands queued by drag callbacks and dwell timers
func (m *Model) flush() tea.Cmd {
	cmds := append(m.queued, m.scheduler.Drain())
	m.queued = nil
	return tea.Batch(cmds...)
}

func (m *Model) loadBoard() tea.Cmd {
	return func() tea.Msg {
		board, err := m.boardService.LoadBoard(context.Background())
		return boardLoadedMsg{board: board, err: err}
	}
}

func (m *Model) applyDrop(req services.DropRequest) tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.boardService.ApplyDrop(context.Background(), req)
		return dropAppliedMsg{err: err, outcome: outcome, req: req}
	}
}

func (m *Model) deleteItems(keys []string) tea.Cmd {
	return func() tea.Msg {
		return boardChangedMsg{err: m.boardService.DeleteItems(context.Background(), keys)}
	}
}

func (m *Model) tipTick() tea.Cmd {
	return tea.Tick(tipInterval, func(time.Time) tea.Msg {
		return showTipMsg{}
	})
}

// openDialog switches to state and sizes the dialog
func (m *Model) openDialog(d *Dialog, state uiState) tea.Cmd {
	m.state = state
	initCmd := d.Init()
	_, sizeCmd := d.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateCommandPalette(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.commandPalette == nil {
		m.state = stateBoard
		return m, nil
	}

	_, cmd := m.commandPalette.Update(msg)
	if !m.commandPalette.Completed {
		return m, cmd
	}

	result := m.commandPalette.Result
	m.commandPalette = nil
	m.state = stateBoard
	if result.Cancelled || result.Action == nil {
		return m, nil
	}

	logging.Logger.Debug("Command palette action", "action", result.Action.Name)
	action := result.Action.Msg
	return m, func() tea.Msg { return action }
}

func (m *Model) updateCreatingItem(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.itemForm.Update(msg)
	m.itemForm = updated.(*Dialog)

	if content, ok := m.itemForm.Content().(*ItemForm); ok && content.Completed {
		result := content.Result()
		m.state = stateBoard
		m.itemForm = nil

		if result.Error != nil {
			return m, m.errors.Show(fmt.Errorf("failed to add item: %w", result.Error))
		}
		if result.Item != nil {
			m.focusAfterLoad = result.Item.Key
			return m, m.loadBoard()
		}
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateCreatingShelf(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.shelfForm.Update(msg)
	m.shelfForm = updated.(*Dialog)

	if content, ok := m.shelfForm.Content().(*ShelfForm); ok && content.Completed {
		result := content.Result()
		m.state = stateBoard
		m.shelfForm = nil

		if result.Error != nil {
			return m, m.errors.Show(fmt.Errorf("failed to add shelf: %w", result.Error))
		}
		if result.Shelf != nil {
			m.focusShelf = len(m.shelves)
			return m, m.loadBoard()
		}
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateConfirmingDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && (keyMsg.Type == tea.KeyEsc || keyMsg.Type == tea.KeyCtrlC) {
		m.state = stateBoard
		m.deleteForm = nil
		m.deleteKeys = nil
		return m, nil
	}

	updated, cmd := m.deleteForm.Update(msg)
	m.deleteForm = updated.(*Dialog)

	if form, ok := m.deleteForm.Content().(*huh.Form); ok && form.State == huh.StateCompleted {
		keys := m.deleteKeys
		confirmed := *m.confirmDelete
		m.state = stateBoard
		m.deleteForm = nil
		m.deleteKeys = nil
		m.confirmDelete = nil

		logging.Logger.Info("Delete decision", "keys", keys, "confirmed", confirmed)
		if !confirmed {
			return m, nil
		}
		return m, m.deleteItems(keys)
	}
	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateBoard
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) createDeleteDialog(keys []string) *Dialog {
	confirm := false
	m.confirmDelete = &confirm

	title := "Delete the focused item?"
	if len(keys) > 1 {
		title = fmt.Sprintf("Delete %d items?", len(keys))
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description("Folders go with their contents. Links to deleted items are removed.").
				Affirmative("Delete").
				Negative("Keep").
				Value(m.confirmDelete),
		),
	)
	return NewDialog("Delete Items", form, m.devMode)
}

func (m *Model) View() string {
	switch m.state {
	case stateBoard:
		return m.boardView()
	case stateCommandPalette:
		if m.commandPalette != nil {
			return bottomAnchoredOverlay(m.boardView(), m.commandPalette.View(),
				m.screenWidth(), m.screenHeight(), m.commandPalette.Height())
		}
	case stateConfirmingDelete:
		if m.deleteForm != nil {
			return m.deleteForm.View()
		}
	case stateCreatingItem:
		if m.itemForm != nil {
			return m.itemForm.View()
		}
	case stateCreatingShelf:
		if m.shelfForm != nil {
			return m.shelfForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	}
	return ""
}
