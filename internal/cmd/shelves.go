package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
)

// ShelvesCmd manages shelves
type ShelvesCmd struct {
	Add  ShelvesAddCmd  `cmd:"add" help:"Add a new shelf"`
	Del  ShelvesDelCmd  `cmd:"del" help:"Delete a shelf"`
	List ShelvesListCmd `cmd:"list" help:"List all shelves" default:"1"`
	Swap ShelvesSwapCmd `cmd:"swap" help:"Swap the positions of two shelves"`
}

// ShelvesListCmd lists shelves in board order
type ShelvesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type shelfRow struct {
	Accept      []domain.ItemType `json:"accept,omitempty"`
	DisplayName string            `json:"display_name"`
	Items       int               `json:"items"`
	Name        string            `json:"name"`
}

// Run executes the list command
func (s *ShelvesListCmd) Run(cli *CLI) error {
	board, err := cli.Container.BoardService.LoadBoard(context.Background())
	if err != nil {
		return err
	}

	rows := make([]shelfRow, 0, len(board.OrderedShelves))
	for _, name := range board.OrderedShelves {
		shelf, _ := board.Shelf(name)
		rows = append(rows, shelfRow{
			Accept:      shelf.Accept,
			DisplayName: shelf.DisplayName,
			Items:       len(board.Items[name]),
			Name:        name,
		})
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(rows) == 0 {
		fmt.Println("No shelves. Use 'stow shelves add <name>' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDisplay Name\tItems\tAccepts")
	fmt.Fprintln(w, "────\t────────────\t─────\t───────")
	for _, r := range rows {
		accepts := "all"
		if len(r.Accept) > 0 {
			names := make([]string, len(r.Accept))
			for i, t := range r.Accept {
				names[i] = string(t)
			}
			accepts = strings.Join(names, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Name, r.DisplayName, r.Items, accepts)
	}
	return w.Flush()
}

// ShelvesAddCmd adds a shelf
type ShelvesAddCmd struct {
	Accept      []string `help:"Item types the shelf takes (folder, item, link). Empty takes all." sep:","`
	DisplayName string   `arg:"" help:"Name shown on the board"`
}

// Run executes the add command
func (s *ShelvesAddCmd) Run(cli *CLI) error {
	accept, err := parseItemTypes(s.Accept)
	if err != nil {
		return err
	}

	shelf, err := cli.Container.BoardService.AddShelf(context.Background(), s.DisplayName, accept)
	if err != nil {
		return fmt.Errorf("failed to add shelf: %w", err)
	}

	fmt.Printf("Shelf '%s' added successfully\n", shelf.Name)
	return nil
}

// ShelvesDelCmd deletes a shelf
type ShelvesDelCmd struct {
	Force bool   `help:"Delete the shelf and everything on it" short:"f"`
	Name  string `arg:"" help:"Name of the shelf to delete"`
}

// Run executes the del command
func (s *ShelvesDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing shelves del command", "shelf", s.Name, "force", s.Force)

	if err := cli.Container.BoardService.DeleteShelf(context.Background(), s.Name, s.Force); err != nil {
		return fmt.Errorf("failed to delete shelf: %w", err)
	}

	fmt.Printf("Shelf '%s' deleted successfully\n", s.Name)
	return nil
}

// ShelvesSwapCmd swaps two shelves on the board
type ShelvesSwapCmd struct {
	First  string `arg:"" help:"Name of the first shelf"`
	Second string `arg:"" help:"Name of the second shelf"`
}

// Run executes the swap command
func (s *ShelvesSwapCmd) Run(cli *CLI) error {
	if err := cli.Container.BoardService.SwapShelves(context.Background(), s.First, s.Second); err != nil {
		return fmt.Errorf("failed to swap shelves: %w", err)
	}

	fmt.Printf("Swapped '%s' and '%s'\n", s.First, s.Second)
	return nil
}

// parseItemTypes parses item type names, refusing unknown ones
func parseItemTypes(names []string) ([]domain.ItemType, error) {
	types := make([]domain.ItemType, 0, len(names))
	for _, name := range names {
		t := domain.ItemType(strings.ToLower(strings.TrimSpace(name)))
		switch t {
		case domain.ItemTypeFolder, domain.ItemTypeItem, domain.ItemTypeLink:
			types = append(types, t)
		default:
			return nil, fmt.Errorf("unknown item type '%s' (expected folder, item or link)", name)
		}
	}
	return types, nil
}
