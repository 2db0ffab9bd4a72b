package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/services"
)

// ShelfFormResult contains the result of the add shelf dialog
type ShelfFormResult struct {
	Cancelled bool
	Error     error
	Shelf     *domain.Shelf
}

// ShelfForm asks for a shelf name and the item types it takes
type ShelfForm struct {
	accept       []domain.ItemType
	board        *domain.Board
	boardService *services.BoardService
	Completed    bool
	displayName  string
	form         *huh.Form
	result       ShelfFormResult
}

// NewShelfForm creates a new shelf form. board is used to refuse names that
// are taken.
func NewShelfForm(boardService *services.BoardService, board *domain.Board) *ShelfForm {
	f := &ShelfForm{
		accept:       []domain.ItemType{domain.ItemTypeFolder, domain.ItemTypeItem, domain.ItemTypeLink},
		board:        board,
		boardService: boardService,
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shelf name").
				Value(&f.displayName).
				Validate(func(s string) error {
					name := domain.SanitizeShelfName(s)
					if name == "" {
						return fmt.Errorf("shelf name required")
					}
					if board == nil {
						return nil
					}
					if _, ok := board.Shelf(name); ok {
						return fmt.Errorf("shelf %s already exists", name)
					}
					return nil
				}),
			huh.NewMultiSelect[domain.ItemType]().
				Title("Accepts").
				Description("Drops of other types are refused").
				Options(
					huh.NewOption("folders", domain.ItemTypeFolder).Selected(true),
					huh.NewOption("items", domain.ItemTypeItem).Selected(true),
					huh.NewOption("links", domain.ItemTypeLink).Selected(true),
				).
				Value(&f.accept),
		),
	)
	return f
}

func (f *ShelfForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *ShelfForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		f.Completed = true
		shelf, err := f.boardService.AddShelf(context.Background(), f.displayName, f.accept)
		if err != nil {
			logging.Logger.Error("Failed to add shelf", "error", err)
			f.result.Error = err
			return f, nil
		}
		f.result.Shelf = shelf
		return f, nil
	}

	return f, cmd
}

func (f *ShelfForm) View() string {
	return f.form.View()
}

// Result returns the form result
func (f *ShelfForm) Result() ShelfFormResult {
	return f.result
}
