package ports

import (
	"context"

	"github.com/renato0307/stow/internal/domain"
)

// ShelfReader reads shelves
type ShelfReader interface {
	GetShelf(ctx context.Context, name string) (*domain.Shelf, error)
	ListShelves(ctx context.Context) ([]domain.Shelf, error)
}

// ShelfWriter creates, deletes, and reorders shelves
type ShelfWriter interface {
	AddShelf(ctx context.Context, shelf domain.Shelf) error
	DeleteShelf(ctx context.Context, name string, force bool) error
	SwapShelves(ctx context.Context, name1, name2 string) error
}

// ItemReader reads items
type ItemReader interface {
	GetItem(ctx context.Context, key string) (*domain.Item, error)
	ListItems(ctx context.Context, shelf string) ([]domain.Item, error)
}

// ItemWriter creates, deletes, and edits items
type ItemWriter interface {
	AddItem(ctx context.Context, item domain.Item, at domain.Placement) error
	DeleteItems(ctx context.Context, keys []string) error
	UpdateText(ctx context.Context, key, text string) error
}

// ItemTransfer applies the outcome of a drop. Each call is one transaction.
type ItemTransfer interface {
	CopyItems(ctx context.Context, keys []string, at domain.Placement, newKey func() string) ([]string, error)
	LinkItems(ctx context.Context, keys []string, at domain.Placement, newKey func() string) ([]string, error)
	MoveItems(ctx context.Context, keys []string, at domain.Placement) error
}

// BoardLoader loads everything the UI shows
type BoardLoader interface {
	LoadBoard(ctx context.Context) (*domain.Board, error)
}

// BoardRepository is the composite interface
type BoardRepository interface {
	ShelfReader
	ShelfWriter
	ItemReader
	ItemWriter
	ItemTransfer
	BoardLoader
	Close() error
}
