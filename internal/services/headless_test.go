package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
	portsmocks "github.com/renato0307/stow/internal/ports/mocks"
)

type headlessFixture struct {
	headless *Headless
	repo     *portsmocks.MockBoardRepository
	store    *portsmocks.MockClipboardStore
	text     *portsmocks.MockClipboard
}

func newHeadlessFixture(t *testing.T) *headlessFixture {
	t.Helper()
	f := &headlessFixture{
		repo:  portsmocks.NewMockBoardRepository(t),
		store: portsmocks.NewMockClipboardStore(t),
		text:  portsmocks.NewMockClipboard(t),
	}
	f.repo.EXPECT().LoadBoard(mock.Anything).RunAndReturn(func(context.Context) (*domain.Board, error) {
		return testBoard(), nil
	}).Maybe()
	f.headless = NewHeadless(NewBoardService(f.repo, keys("k")), f.text, f.store)
	t.Cleanup(f.headless.Close)
	return f
}

func TestHeadless_TransferMovesIntoFolder(t *testing.T) {
	f := newHeadlessFixture(t)
	f.repo.EXPECT().MoveItems(mock.Anything, []string{"baz"}, domain.Placement{Shelf: "inbox", Parent: "bar"}).Return(nil)

	outcome, err := f.headless.Transfer(context.Background(), []string{"baz"}, dnd.OpMove, "inbox",
		dnd.DropPoint{Key: "bar", Position: dnd.PositionOn})

	require.NoError(t, err)
	assert.Equal(t, []string{"baz"}, outcome.Moved)
}

func TestHeadless_TransferCarriesEveryKey(t *testing.T) {
	f := newHeadlessFixture(t)
	f.repo.EXPECT().CopyItems(mock.Anything, []string{"qux", "baz"}, domain.Placement{Shelf: "archive"}, mock.Anything).
		Return([]string{"k1", "k2"}, nil)

	outcome, err := f.headless.Transfer(context.Background(), []string{"qux", "baz"}, dnd.OpCopy, "archive",
		dnd.DropPoint{Position: dnd.PositionRoot})

	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2"}, outcome.Created)
}

func TestHeadless_TransferBeforeSibling(t *testing.T) {
	f := newHeadlessFixture(t)
	f.repo.EXPECT().LinkItems(mock.Anything, []string{"baz"}, domain.Placement{Shelf: "inbox", Before: "bar"}, mock.Anything).
		Return([]string{"k1"}, nil)

	_, err := f.headless.Transfer(context.Background(), []string{"baz"}, dnd.OpLink, "inbox",
		dnd.DropPoint{Key: "bar", Position: dnd.PositionBefore})

	require.NoError(t, err)
}

func TestHeadless_TransferRefusals(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		shelf string
		point dnd.DropPoint
		want  error
	}{
		{
			name:  "shelf does not accept items",
			keys:  []string{"baz"},
			shelf: "folders",
			point: dnd.DropPoint{Position: dnd.PositionRoot},
			want:  domain.ErrInvalidDrop,
		},
		{
			name:  "into an item that is not a folder",
			keys:  []string{"bar"},
			shelf: "inbox",
			point: dnd.DropPoint{Key: "baz", Position: dnd.PositionOn},
			want:  domain.ErrInvalidDrop,
		},
		{
			name:  "point not on the shelf",
			keys:  []string{"baz"},
			shelf: "archive",
			point: dnd.DropPoint{Key: "foo", Position: dnd.PositionBefore},
			want:  domain.ErrInvalidDrop,
		},
		{
			name:  "unknown item",
			keys:  []string{"nope"},
			shelf: "archive",
			point: dnd.DropPoint{Position: dnd.PositionRoot},
			want:  domain.ErrItemNotFound,
		},
		{
			name:  "unknown shelf",
			keys:  []string{"baz"},
			shelf: "attic",
			point: dnd.DropPoint{Position: dnd.PositionRoot},
			want:  domain.ErrShelfNotFound,
		},
		{
			name:  "no items",
			shelf: "archive",
			point: dnd.DropPoint{Position: dnd.PositionRoot},
			want:  dnd.ErrEmptyPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHeadlessFixture(t)

			_, err := f.headless.Transfer(context.Background(), tt.keys, dnd.OpMove, tt.shelf, tt.point)

			require.ErrorIs(t, err, tt.want)
			assert.False(t, f.headless.manager.Active())
		})
	}
}

func TestHeadless_CutThenPasteMoves(t *testing.T) {
	f := newHeadlessFixture(t)
	var saved dnd.ClipboardContents
	f.store.EXPECT().Save(mock.Anything).RunAndReturn(func(c dnd.ClipboardContents) error {
		saved = c
		return nil
	})
	f.store.EXPECT().Load().RunAndReturn(func() (dnd.ClipboardContents, error) {
		return saved, nil
	})
	f.text.EXPECT().WriteText("Baz").Return(nil)
	f.text.EXPECT().ReadText().Return("Baz", nil)
	f.repo.EXPECT().MoveItems(mock.Anything, []string{"baz"}, domain.Placement{Shelf: "archive"}).Return(nil)

	held, err := f.headless.Cut(context.Background(), []string{"baz"})
	require.NoError(t, err)
	assert.Equal(t, []string{"baz"}, held)
	assert.Equal(t, dnd.OpMove, saved.Operation)

	outcome, err := f.headless.Paste(context.Background(), "archive", dnd.DropPoint{Position: dnd.PositionRoot})

	require.NoError(t, err)
	assert.Equal(t, []string{"baz"}, outcome.Moved)
	assert.Empty(t, saved.Keys, "a pasted cut is released")
}

func TestHeadless_PasteEmptyClipboard(t *testing.T) {
	f := newHeadlessFixture(t)
	f.store.EXPECT().Load().Return(dnd.ClipboardContents{}, nil)
	f.text.EXPECT().ReadText().Return("", nil)

	_, err := f.headless.Paste(context.Background(), "archive", dnd.DropPoint{Position: dnd.PositionRoot})

	assert.ErrorIs(t, err, dnd.ErrClipboardEmpty)
}

func TestItemEntries(t *testing.T) {
	entries := ItemEntries(testBoard().Items["inbox"])

	require.Len(t, entries, 4)
	assert.Equal(t, "foo", entries[1].Parent)
	assert.Equal(t, "folder", entries[0].Type)
}
