package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/stow/internal/collection"
	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/services"
)

// ItemsCmd manages items. Move, copy, link and paste run as drags, so they
// are refused exactly where the board would refuse them.
type ItemsCmd struct {
	Add    ItemsAddCmd    `cmd:"add" help:"Add an item to a shelf"`
	Copy   ItemsCopyCmd   `cmd:"copy" aliases:"cp" help:"Copy items to a shelf or folder"`
	Cut    ItemsCutCmd    `cmd:"cut" help:"Cut items to the clipboard"`
	Del    ItemsDelCmd    `cmd:"del" help:"Delete items with their folder contents"`
	Link   ItemsLinkCmd   `cmd:"link" aliases:"ln" help:"Link items from a shelf or folder"`
	List   ItemsListCmd   `cmd:"list" help:"List items" default:"1"`
	Move   ItemsMoveCmd   `cmd:"move" aliases:"mv" help:"Move items to a shelf or folder"`
	Paste  ItemsPasteCmd  `cmd:"paste" help:"Paste the clipboard on a shelf or folder"`
	Rename ItemsRenameCmd `cmd:"rename" help:"Change an item's text"`
	Yank   ItemsYankCmd   `cmd:"yank" help:"Copy items to the clipboard"`
}

// DropFlags name a drop point: a shelf, optionally inside a folder or in
// front of an item
type DropFlags struct {
	Before string `help:"Key of the item to land in front of" xor:"point"`
	Into   string `help:"Key of the folder to land in" xor:"point"`
	To     string `help:"Name of the destination shelf" required:""`
}

func (f DropFlags) point() dnd.DropPoint {
	switch {
	case f.Into != "":
		return dnd.DropPoint{Key: f.Into, Position: dnd.PositionOn}
	case f.Before != "":
		return dnd.DropPoint{Key: f.Before, Position: dnd.PositionBefore}
	default:
		return dnd.DropPoint{Position: dnd.PositionRoot}
	}
}

// ItemsListCmd lists items
type ItemsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Shelf  string `help:"Only list this shelf"`
}

type itemRow struct {
	Key        string `json:"key"`
	Level      int    `json:"level"`
	LinkTarget string `json:"link_target,omitempty"`
	Parent     string `json:"parent,omitempty"`
	Shelf      string `json:"shelf"`
	Text       string `json:"text"`
	Type       string `json:"type"`
}

// Run executes the list command
func (s *ItemsListCmd) Run(cli *CLI) error {
	board, err := cli.Container.BoardService.LoadBoard(context.Background())
	if err != nil {
		return err
	}

	shelves := board.OrderedShelves
	if s.Shelf != "" {
		if _, ok := board.Shelf(s.Shelf); !ok {
			return fmt.Errorf("%w: %s", domain.ErrShelfNotFound, s.Shelf)
		}
		shelves = []string{s.Shelf}
	}

	var rows []itemRow
	for _, name := range shelves {
		rows = append(rows, shelfRows(name, board.Items[name])...)
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
		fmt.Println("No items.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Shelf\tKey\tType\tText")
	fmt.Fprintln(w, "─────\t───\t────\t────")
	for _, r := range rows {
		text := strings.Repeat("  ", r.Level) + r.Text
		if r.LinkTarget != "" {
			text += " → " + r.LinkTarget
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Shelf, r.Key, r.Type, text)
	}
	return w.Flush()
}

// shelfRows lists a shelf's items depth first, the way the board shows them
// with every folder open
func shelfRows(shelf string, items []domain.Item) []itemRow {
	coll := collection.New(services.ItemEntries(items))
	byKey := make(map[string]domain.Item, len(items))
	for _, it := range items {
		byKey[it.Key] = it
		if it.IsFolder() {
			coll.SetExpanded(it.Key, true)
		}
	}

	keys := coll.VisibleKeys()
	rows := make([]itemRow, 0, len(keys))
	for _, key := range keys {
		node, _ := coll.Get(key)
		it := byKey[key]
		rows = append(rows, itemRow{
			Key:        key,
			Level:      node.Level,
			LinkTarget: it.LinkTarget,
			Parent:     it.Parent,
			Shelf:      shelf,
			Text:       it.Text,
			Type:       string(it.Type),
		})
	}
	return rows
}

// ItemsAddCmd adds an item
type ItemsAddCmd struct {
	Before string `help:"Key of the item to add in front of"`
	Folder bool   `help:"Add a folder instead of an item"`
	Parent string `help:"Key of the folder to add into"`
	Shelf  string `help:"Name of the shelf" required:""`
	Text   string `arg:"" help:"Text of the item"`
}

// Run executes the add command
func (s *ItemsAddCmd) Run(cli *CLI) error {
	itemType := domain.ItemTypeItem
	if s.Folder {
		itemType = domain.ItemTypeFolder
	}

	item, err := cli.Container.BoardService.AddItem(context.Background(), services.AddItemParams{
		Before: s.Before,
		Parent: s.Parent,
		Shelf:  s.Shelf,
		Text:   s.Text,
		Type:   itemType,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s '%s' (%s)\n", item.Type, item.Text, item.Key)
	return nil
}

// ItemsMoveCmd moves items
type ItemsMoveCmd struct {
	DropFlags `embed:""`
	Keys      []string `arg:"" help:"Keys of the items to move"`
}

// Run executes the move command
func (s *ItemsMoveCmd) Run(cli *CLI) error {
	return transfer(cli, s.Keys, dnd.OpMove, s.DropFlags)
}

// ItemsCopyCmd copies items
type ItemsCopyCmd struct {
	DropFlags `embed:""`
	Keys      []string `arg:"" help:"Keys of the items to copy"`
}

// Run executes the copy command
func (s *ItemsCopyCmd) Run(cli *CLI) error {
	return transfer(cli, s.Keys, dnd.OpCopy, s.DropFlags)
}

// ItemsLinkCmd links items
type ItemsLinkCmd struct {
	DropFlags `embed:""`
	Keys      []string `arg:"" help:"Keys of the items to link"`
}

// Run executes the link command
func (s *ItemsLinkCmd) Run(cli *CLI) error {
	return transfer(cli, s.Keys, dnd.OpLink, s.DropFlags)
}

func transfer(cli *CLI, keys []string, op dnd.Operation, flags DropFlags) error {
	logging.Logger.Info("Executing items transfer command",
		"keys", keys, "operation", op.String(), "shelf", flags.To, "point", flags.point().String())

	outcome, err := cli.Container.Headless.Transfer(context.Background(), keys, op, flags.To, flags.point())
	if err != nil {
		return err
	}
	printOutcome(op, outcome)
	return nil
}

func printOutcome(op dnd.Operation, outcome *services.DropOutcome) {
	switch {
	case len(outcome.Moved) > 0:
		fmt.Printf("Moved %s\n", strings.Join(outcome.Moved, ", "))
	case len(outcome.Created) > 0 && op == dnd.OpLink:
		fmt.Printf("Linked as %s\n", strings.Join(outcome.Created, ", "))
	case len(outcome.Created) > 0:
		fmt.Printf("Created %s\n", strings.Join(outcome.Created, ", "))
	default:
		fmt.Println("Nothing changed")
	}
}

// ItemsCutCmd cuts items to the clipboard
type ItemsCutCmd struct {
	Keys []string `arg:"" help:"Keys of the items to cut"`
}

// Run executes the cut command
func (s *ItemsCutCmd) Run(cli *CLI) error {
	held, err := cli.Container.Headless.Cut(context.Background(), s.Keys)
	if err != nil {
		return err
	}
	fmt.Printf("Cut %s, paste with 'stow items paste --to <shelf>'\n", strings.Join(held, ", "))
	return nil
}

// ItemsYankCmd copies items to the clipboard
type ItemsYankCmd struct {
	Keys []string `arg:"" help:"Keys of the items to copy"`
}

// Run executes the yank command
func (s *ItemsYankCmd) Run(cli *CLI) error {
	held, err := cli.Container.Headless.Copy(context.Background(), s.Keys)
	if err != nil {
		return err
	}
	fmt.Printf("Copied %s to the clipboard\n", strings.Join(held, ", "))
	return nil
}

// ItemsPasteCmd pastes the clipboard
type ItemsPasteCmd struct {
	DropFlags `embed:""`
}

// Run executes the paste command
func (s *ItemsPasteCmd) Run(cli *CLI) error {
	outcome, err := cli.Container.Headless.Paste(context.Background(), s.To, s.point())
	if err != nil {
		return err
	}
	printOutcome(dnd.OpCopy, outcome)
	return nil
}

// ItemsDelCmd deletes items
type ItemsDelCmd struct {
	Keys []string `arg:"" help:"Keys of the items to delete"`
}

// Run executes the del command
func (s *ItemsDelCmd) Run(cli *CLI) error {
	if err := cli.Container.BoardService.DeleteItems(context.Background(), s.Keys); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", strings.Join(s.Keys, ", "))
	return nil
}

// ItemsRenameCmd renames an item
type ItemsRenameCmd struct {
	Key  string `arg:"" help:"Key of the item"`
	Text string `arg:"" help:"New text"`
}

// Run executes the rename command
func (s *ItemsRenameCmd) Run(cli *CLI) error {
	if err := cli.Container.BoardService.RenameItem(context.Background(), s.Key, s.Text); err != nil {
		return err
	}
	fmt.Printf("Renamed %s\n", s.Key)
	return nil
}
