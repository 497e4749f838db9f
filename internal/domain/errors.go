package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced node, order or admin does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when a menu node id is already taken
	ErrDuplicateID = errors.New("duplicate id")
	// ErrInvalidKind is returned for an unknown menu node type
	ErrInvalidKind = errors.New("invalid node type")
	// ErrOrderClosed is returned when reviewing an approved or rejected order
	ErrOrderClosed = errors.New("order already closed")
	// ErrInvalidInput is returned for malformed admin input
	ErrInvalidInput = errors.New("invalid input")
)
