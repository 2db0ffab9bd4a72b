package dnd

import "errors"

var (
	ErrClipboardEmpty = errors.New("clipboard is empty")
	ErrEmptyPayload   = errors.New("drag payload has no items")
	ErrNoSession      = errors.New("no drag session in progress")
	ErrProducerFailed = errors.New("drag source failed to produce items")
	ErrSessionActive  = errors.New("another drag session is already active")
	ErrUnknownTarget  = errors.New("drop target is not registered")
	ErrWrongState     = errors.New("drag session is not in the required state")
)
