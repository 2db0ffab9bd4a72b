package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/services"
)

// ItemFormResult contains the result of the add item dialog
type ItemFormResult struct {
	Cancelled bool
	Error     error
	Item      *domain.Item
}

// ItemForm asks for the text of a new item or folder and adds it
type ItemForm struct {
	boardService *services.BoardService
	Completed    bool
	form         *huh.Form
	params       services.AddItemParams
	result       ItemFormResult
}

// NewItemForm creates a form adding an item of type t under parent on shelf
func NewItemForm(boardService *services.BoardService, shelf domain.Shelf, parent string, t domain.ItemType) *ItemForm {
	f := &ItemForm{
		boardService: boardService,
		params: services.AddItemParams{
			Parent: parent,
			Shelf:  shelf.Name,
			Type:   t,
		},
	}

	title := "Item text"
	if t == domain.ItemTypeFolder {
		title = "Folder name"
	}
	description := fmt.Sprintf("Adding to %s", shelf.DisplayName)
	if parent != "" {
		description += " inside the focused folder"
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Value(&f.params.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("text required")
					}
					if !shelf.Accepts(t) {
						return fmt.Errorf("%w: %s", domain.ErrTypeNotAccepted, t)
					}
					return nil
				}),
		),
	)
	return f
}

func (f *ItemForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *ItemForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		item, err := f.boardService.AddItem(context.Background(), f.params)
		if err != nil {
			logging.Logger.Error("Failed to add item", "error", err)
			f.result.Error = err
			return f, nil
		}
		f.result.Item = item
		return f, nil
	}

	return f, cmd
}

func (f *ItemForm) View() string {
	return f.form.View()
}

// Result returns the form result
func (f *ItemForm) Result() ItemFormResult {
	return f.result
}
