package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
)

func TestResolvePlacement(t *testing.T) {
	board := testBoard()

	tests := []struct {
		name    string
		shelf   string
		point   dnd.DropPoint
		want    domain.Placement
		wantErr error
	}{
		{name: "root appends", shelf: "archive", point: dnd.DropPoint{}, want: domain.Placement{Shelf: "archive"}},
		{name: "on folder", shelf: "inbox", point: dnd.DropPoint{Key: "foo", Position: dnd.PositionOn}, want: domain.Placement{Shelf: "inbox", Parent: "foo"}},
		{name: "on plain item", shelf: "inbox", point: dnd.DropPoint{Key: "baz", Position: dnd.PositionOn}, wantErr: domain.ErrInvalidDrop},
		{name: "before nested", shelf: "inbox", point: dnd.DropPoint{Key: "qux", Position: dnd.PositionBefore}, want: domain.Placement{Shelf: "inbox", Parent: "foo", Before: "qux"}},
		{name: "after skips nested items", shelf: "inbox", point: dnd.DropPoint{Key: "foo", Position: dnd.PositionAfter}, want: domain.Placement{Shelf: "inbox", Before: "bar"}},
		{name: "after last appends", shelf: "inbox", point: dnd.DropPoint{Key: "baz", Position: dnd.PositionAfter}, want: domain.Placement{Shelf: "inbox"}},
		{name: "after last in folder", shelf: "inbox", point: dnd.DropPoint{Key: "qux", Position: dnd.PositionAfter}, want: domain.Placement{Shelf: "inbox", Parent: "foo"}},
		{name: "unknown shelf", shelf: "nope", point: dnd.DropPoint{}, wantErr: domain.ErrShelfNotFound},
		{name: "item on other shelf", shelf: "archive", point: dnd.DropPoint{Key: "baz", Position: dnd.PositionBefore}, wantErr: domain.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePlacement(board, tt.shelf, tt.point)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDropOperation(t *testing.T) {
	board := testBoard()
	all := dnd.Allowed{dnd.OpMove, dnd.OpCopy, dnd.OpLink}
	itemTypes := dnd.NewTypeSet(dnd.TypeItemKey, dnd.TypeText, TypeKey(domain.ItemTypeItem))
	folderTypes := dnd.NewTypeSet(dnd.TypeItemKey, dnd.TypeText, TypeKey(domain.ItemTypeFolder))
	textOnly := dnd.NewTypeSet(dnd.TypeText)

	tests := []struct {
		name  string
		shelf string
		point dnd.DropPoint
		types dnd.TypeSet
		want  dnd.Operation
	}{
		{name: "item on shelf moves", shelf: "archive", types: itemTypes, want: dnd.OpMove},
		{name: "item on folder", shelf: "inbox", point: dnd.DropPoint{Key: "bar", Position: dnd.PositionOn}, types: itemTypes, want: dnd.OpMove},
		{name: "item on plain item refused", shelf: "inbox", point: dnd.DropPoint{Key: "baz", Position: dnd.PositionOn}, types: itemTypes, want: dnd.OpNone},
		{name: "shelf refuses type", shelf: "folders", types: itemTypes, want: dnd.OpNone},
		{name: "shelf takes its type", shelf: "folders", types: folderTypes, want: dnd.OpMove},
		{name: "foreign text copies", shelf: "inbox", types: textOnly, want: dnd.OpCopy},
		{name: "foreign text refused by folder shelf", shelf: "folders", types: textOnly, want: dnd.OpNone},
		{name: "unknown shelf", shelf: "nope", types: itemTypes, want: dnd.OpNone},
		{name: "nothing usable", shelf: "inbox", types: dnd.NewTypeSet("image/png"), want: dnd.OpNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := DropOperation(board, tt.shelf, tt.point, tt.types, all)
			assert.Equal(t, tt.want, dnd.Negotiate(all, acc, dnd.OpNone))
		})
	}
}

func TestDragItems(t *testing.T) {
	items, err := DragItems(testBoard(), []string{"baz", "foo"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, map[string]string{
		dnd.TypeItemKey:              "baz",
		dnd.TypeText:                 "Baz",
		dnd.TypeShelf:                "inbox",
		TypeKey(domain.ItemTypeItem): "baz",
	}, items[0].Values())
	assert.True(t, items[1].Has(TypeKey(domain.ItemTypeFolder)))

	_, err = DragItems(testBoard(), []string{"nope"})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestRequestFromDrop_SplitsKeysAndText(t *testing.T) {
	payload, err := dnd.NewPayload([]dnd.DragItem{
		dnd.NewDragItem(map[string]string{dnd.TypeItemKey: "baz", dnd.TypeText: "Baz"}),
		dnd.NewDragItem(map[string]string{dnd.TypeText: "from elsewhere"}),
	})
	require.NoError(t, err)
	point := dnd.DropPoint{Key: "foo", Position: dnd.PositionOn}

	req := RequestFromDrop("inbox", point, dnd.DropEvent{Operation: dnd.OpCopy, Payload: payload})

	assert.Equal(t, DropRequest{
		Keys:      []string{"baz"},
		Operation: dnd.OpCopy,
		Point:     point,
		Shelf:     "inbox",
		Texts:     []string{"from elsewhere"},
	}, req)
}
