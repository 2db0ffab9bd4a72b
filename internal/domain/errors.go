package domain

import "errors"

var (
	ErrInvalidDrop     = errors.New("items cannot be dropped there")
	ErrItemExists      = errors.New("item already exists")
	ErrItemNotFound    = errors.New("item not found")
	ErrShelfExists     = errors.New("shelf already exists")
	ErrShelfNotEmpty   = errors.New("shelf is not empty")
	ErrShelfNotFound   = errors.New("shelf not found")
	ErrTypeNotAccepted = errors.New("shelf does not accept this item type")
)
