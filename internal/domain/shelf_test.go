package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeShelfName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "inbox", "inbox"},
		{"lowercased", "Inbox", "inbox"},
		{"single space", "to read", "to_read"},
		{"multiple spaces", "to   read", "to_read"},
		{"parens", "work (old)", "work_old"},
		{"special chars removed", "a!b@c#", "abc"},
		{"trailing underscore trimmed", "done ", "done"},
		{"keeps dots and hyphens", "v1.2-rc", "v1.2-rc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeShelfName(tt.input))
		})
	}
}

func TestShelfAccepts(t *testing.T) {
	inbox := Shelf{Name: "inbox"}
	assert.True(t, inbox.Accepts(ItemTypeItem))
	assert.True(t, inbox.Accepts(ItemTypeFolder))

	folders := Shelf{Name: "folders", Accept: []ItemType{ItemTypeFolder}}
	assert.True(t, folders.Accepts(ItemTypeFolder))
	assert.False(t, folders.Accepts(ItemTypeItem))
}

func TestParseItemType(t *testing.T) {
	assert.Equal(t, ItemTypeFolder, ParseItemType("Folder"))
	assert.Equal(t, ItemTypeLink, ParseItemType(" link "))
	assert.Equal(t, ItemTypeItem, ParseItemType(""))
	assert.Equal(t, ItemTypeItem, ParseItemType("bogus"))
}

func TestItemSymbol(t *testing.T) {
	assert.Equal(t, SymbolFolderClosed, Item{Type: ItemTypeFolder}.Symbol(false))
	assert.Equal(t, SymbolFolderOpen, Item{Type: ItemTypeFolder}.Symbol(true))
	assert.Equal(t, SymbolLink, Item{Type: ItemTypeLink}.Symbol(false))
	assert.Equal(t, SymbolItem, Item{Type: ItemTypeItem}.Symbol(true))
}

func TestDescendants(t *testing.T) {
	items := []Item{
		{Key: "foo", Type: ItemTypeFolder},
		{Key: "a", Parent: "foo"},
		{Key: "bar", Parent: "foo", Type: ItemTypeFolder},
		{Key: "b", Parent: "bar"},
		{Key: "baz"},
	}

	assert.Equal(t, []string{"a", "bar", "b"}, Descendants(items, "foo"))
	assert.Equal(t, []string{"b"}, Descendants(items, "bar"))
	assert.Empty(t, Descendants(items, "baz"))
}

func TestGetActionByName(t *testing.T) {
	a := GetActionByName("start_drag")
	if assert.NotNil(t, a) {
		assert.True(t, a.RequiresItem)
	}
	assert.Nil(t, GetActionByName("nope"))
	for _, a := range GetActionsForContext(false) {
		assert.False(t, a.RequiresItem, a.Name)
	}
}
