package common

import "errors"

// Error kinds shared by every store and service. Call sites wrap them with
// fmt.Errorf("...: %w", Err...) so handlers can map the kind to a status
// while keeping the specific message.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotDeletable = errors.New("not deletable")
)
