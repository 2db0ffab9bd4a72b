package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/stow/internal/dnd"
	"github.com/renato0307/stow/internal/domain"
	portsmocks "github.com/renato0307/stow/internal/ports/mocks"
)

func testBoard() *domain.Board {
	return &domain.Board{
		OrderedShelves: []string{"inbox", "archive", "folders"},
		Shelves: map[string]domain.Shelf{
			"inbox":   {Name: "inbox"},
			"archive": {Name: "archive"},
			"folders": {Name: "folders", Accept: []domain.ItemType{domain.ItemTypeFolder}},
		},
		Items: map[string][]domain.Item{
			"inbox": {
				{Key: "foo", Shelf: "inbox", Text: "Foo", Type: domain.ItemTypeFolder},
				{Key: "qux", Shelf: "inbox", Text: "Qux", Type: domain.ItemTypeItem, Parent: "foo"},
				{Key: "bar", Shelf: "inbox", Text: "Bar", Type: domain.ItemTypeFolder},
				{Key: "baz", Shelf: "inbox", Text: "Baz", Type: domain.ItemTypeItem},
			},
		},
	}
}

func keys(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func TestAddShelf_SanitizesName(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().AddShelf(mock.Anything, domain.Shelf{Name: "to_read", DisplayName: "To Read"}).Return(nil)

	shelf, err := NewBoardService(repo, nil).AddShelf(context.Background(), "To Read", nil)

	require.NoError(t, err)
	assert.Equal(t, "to_read", shelf.Name)
}

func TestAddShelf_RejectsUnusableName(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)

	_, err := NewBoardService(repo, nil).AddShelf(context.Background(), "!!!", nil)

	assert.Error(t, err)
}

func TestAddItem_AssignsKeyAndDefaultType(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().AddItem(mock.Anything, domain.Item{Key: "k1", Text: "milk", Type: domain.ItemTypeItem}, domain.Placement{Shelf: "inbox"}).
		Return(nil)

	item, err := NewBoardService(repo, keys("k")).AddItem(context.Background(), AddItemParams{Shelf: "inbox", Text: "  milk "})

	require.NoError(t, err)
	assert.Equal(t, "k1", item.Key)
	assert.Equal(t, "inbox", item.Shelf)
}

func TestAddItem_RequiresText(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)

	_, err := NewBoardService(repo, nil).AddItem(context.Background(), AddItemParams{Shelf: "inbox", Text: " "})

	assert.Error(t, err)
}

func TestAddItem_WrapsRepositoryError(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().AddItem(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrShelfNotFound)

	_, err := NewBoardService(repo, keys("k")).AddItem(context.Background(), AddItemParams{Shelf: "nope", Text: "x"})

	assert.ErrorIs(t, err, domain.ErrShelfNotFound)
}

func TestApplyDrop_MoveBeforeSibling(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().LoadBoard(mock.Anything).Return(testBoard(), nil)
	repo.EXPECT().MoveItems(mock.Anything, []string{"baz"}, domain.Placement{Shelf: "inbox", Before: "foo"}).Return(nil)

	out, err := NewBoardService(repo, nil).ApplyDrop(context.Background(), DropRequest{
		Keys:      []string{"baz"},
		Operation: dnd.OpMove,
		Point:     dnd.DropPoint{Key: "foo", Position: dnd.PositionBefore},
		Shelf:     "inbox",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"baz"}, out.Moved)
	assert.Empty(t, out.Created)
}

func TestApplyDrop_CopyIntoFolder(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().LoadBoard(mock.Anything).Return(testBoard(), nil)
	repo.EXPECT().CopyItems(mock.Anything, []string{"baz"}, domain.Placement{Shelf: "inbox", Parent: "bar"}, mock.Anything).
		Return([]string{"c1"}, nil)

	out, err := NewBoardService(repo, keys("c")).ApplyDrop(context.Background(), DropRequest{
		Keys:      []string{"baz"},
		Operation: dnd.OpCopy,
		Point:     dnd.DropPoint{Key: "bar", Position: dnd.PositionOn},
		Shelf:     "inbox",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, out.Created)
}

func TestApplyDrop_LinkOnShelf(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().LoadBoard(mock.Anything).Return(testBoard(), nil)
	repo.EXPECT().LinkItems(mock.Anything, []string{"foo", "baz"}, domain.Placement{Shelf: "archive"}, mock.Anything).
		Return([]string{"l1", "l2"}, nil)

	out, err := NewBoardService(repo, nil).ApplyDrop(context.Background(), DropRequest{
		Keys:      []string{"foo", "baz"},
		Operation: dnd.OpLink,
		Shelf:     "archive",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2"}, out.Created)
}

func TestApplyDrop_TextBecomesItems(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().LoadBoard(mock.Anything).Return(testBoard(), nil)
	at := domain.Placement{Shelf: "inbox", Before: "baz"}
	repo.EXPECT().AddItem(mock.Anything, domain.Item{Key: "t1", Text: "eggs", Type: domain.ItemTypeItem}, at).Return(nil)
	repo.EXPECT().AddItem(mock.Anything, domain.Item{Key: "t2", Text: "milk", Type: domain.ItemTypeItem}, at).Return(nil)

	out, err := NewBoardService(repo, keys("t")).ApplyDrop(context.Background(), DropRequest{
		Operation: dnd.OpCopy,
		Point:     dnd.DropPoint{Key: "bar", Position: dnd.PositionAfter},
		Shelf:     "inbox",
		Texts:     []string{"eggs", "milk"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, out.Created)
}

func TestApplyDrop_NoneIsInvalid(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().LoadBoard(mock.Anything).Return(testBoard(), nil)

	_, err := NewBoardService(repo, nil).ApplyDrop(context.Background(), DropRequest{
		Keys:      []string{"baz"},
		Operation: dnd.OpNone,
		Shelf:     "archive",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDrop)
}

func TestApplyDrop_RepositoryFailure(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().LoadBoard(mock.Anything).Return(testBoard(), nil)
	repo.EXPECT().MoveItems(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrTypeNotAccepted)

	_, err := NewBoardService(repo, nil).ApplyDrop(context.Background(), DropRequest{
		Keys:      []string{"baz"},
		Operation: dnd.OpMove,
		Shelf:     "folders",
	})

	assert.ErrorIs(t, err, domain.ErrTypeNotAccepted)
}

func TestApplyDrop_LoadFailure(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	boom := errors.New("disk gone")
	repo.EXPECT().LoadBoard(mock.Anything).Return(nil, boom)

	_, err := NewBoardService(repo, nil).ApplyDrop(context.Background(), DropRequest{Keys: []string{"baz"}, Operation: dnd.OpMove, Shelf: "inbox"})

	assert.ErrorIs(t, err, boom)
}

func TestDeleteShelf_PassesForce(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().DeleteShelf(mock.Anything, "inbox", true).Return(nil)

	require.NoError(t, NewBoardService(repo, nil).DeleteShelf(context.Background(), "inbox", true))
}

func TestRenameItem(t *testing.T) {
	repo := portsmocks.NewMockBoardRepository(t)
	repo.EXPECT().UpdateText(mock.Anything, "baz", "Renamed").Return(nil)

	svc := NewBoardService(repo, nil)
	require.NoError(t, svc.RenameItem(context.Background(), "baz", " Renamed "))
	assert.Error(t, svc.RenameItem(context.Background(), "baz", ""))
}

func TestNewItemKey(t *testing.T) {
	a, b := NewItemKey(), NewItemKey()

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}
