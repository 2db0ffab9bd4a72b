package domain

import (
	"slices"
	"strings"
	"time"
	"unicode"
)

// ItemType is what an item on a shelf is
type ItemType string

const (
	ItemTypeFolder ItemType = "folder"
	ItemTypeItem   ItemType = "item"
	ItemTypeLink   ItemType = "link"
)

// Type symbols (Unicode)
const (
	SymbolFolderClosed = "▸"
	SymbolFolderOpen   = "▾"
	SymbolItem         = "•"
	SymbolLink         = "↪"
)

// ParseItemType parses an item type name, defaulting to item
func ParseItemType(s string) ItemType {
	switch ItemType(strings.ToLower(strings.TrimSpace(s))) {
	case ItemTypeFolder:
		return ItemTypeFolder
	case ItemTypeLink:
		return ItemTypeLink
	default:
		return ItemTypeItem
	}
}

// Shelf is an ordered collection of items (domain entity)
type Shelf struct {
	// Accept lists the item types the shelf takes. Empty accepts all.
	Accept      []ItemType
	CreatedAt   time.Time
	DisplayName string
	Name        string
}

// Accepts reports whether the shelf takes items of type t
func (s Shelf) Accepts(t ItemType) bool {
	return len(s.Accept) == 0 || slices.Contains(s.Accept, t)
}

// Item is one entry on a shelf. Items inside a folder carry the folder's key
// as Parent.
type Item struct {
	CreatedAt time.Time
	Key       string
	// LinkTarget is the key of the item a link points at
	LinkTarget string
	Parent     string
	Shelf      string
	Text       string
	Type       ItemType
	UpdatedAt  time.Time
}

// IsFolder reports whether the item can hold other items
func (i Item) IsFolder() bool {
	return i.Type == ItemTypeFolder
}

// Symbol returns the symbol shown before the item
func (i Item) Symbol(expanded bool) string {
	switch i.Type {
	case ItemTypeFolder:
		if expanded {
			return SymbolFolderOpen
		}
		return SymbolFolderClosed
	case ItemTypeLink:
		return SymbolLink
	default:
		return SymbolItem
	}
}

// Board is every shelf with its items in order
type Board struct {
	Items          map[string][]Item
	OrderedShelves []string
	Shelves        map[string]Shelf
}

// Shelf returns the named shelf
func (b *Board) Shelf(name string) (Shelf, bool) {
	s, ok := b.Shelves[name]
	return s, ok
}

// FindItem looks an item up by key across all shelves
func (b *Board) FindItem(key string) (Item, bool) {
	for _, items := range b.Items {
		for _, it := range items {
			if it.Key == key {
				return it, true
			}
		}
	}
	return Item{}, false
}

// SanitizeShelfName converts a display name to a shelf name.
// - Alphanumeric, underscores, hyphens, and periods are kept
// - Spaces, parentheses, and slashes become underscores (consecutive ones collapsed)
// - Everything else is removed
func SanitizeShelfName(displayName string) string {
	var result strings.Builder
	lastWasUnderscore := false

	for _, r := range strings.ToLower(displayName) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '.' {
			result.WriteRune(r)
			lastWasUnderscore = false
		} else if r == '_' {
			result.WriteRune('_')
			lastWasUnderscore = true
		} else if unicode.IsSpace(r) || r == '(' || r == ')' || r == '/' {
			if !lastWasUnderscore && result.Len() > 0 {
				result.WriteRune('_')
				lastWasUnderscore = true
			}
		}
	}

	return strings.TrimRight(result.String(), "_")
}

// Descendants returns the keys of every item nested under key, depth first
func Descendants(items []Item, key string) []string {
	children := make(map[string][]string)
	for _, it := range items {
		if it.Parent != "" {
			children[it.Parent] = append(children[it.Parent], it.Key)
		}
	}
	var out []string
	seen := map[string]bool{key: true}
	var visit func(k string)
	visit = func(k string) {
		for _, c := range children[k] {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
			visit(c)
		}
	}
	visit(key)
	return out
}

// Placement says where items land: on a shelf, inside a folder, before a
// sibling. An empty Before appends.
type Placement struct {
	Before string
	Parent string
	Shelf  string
}
