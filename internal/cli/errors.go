package cli

import "errors"

var (
	ErrAmbiguousID = errors.New("task id prefix matches more than one task")
	ErrIDTooShort  = errors.New("task id prefix is too short")
	ErrEmptyTitle  = errors.New("title cannot be empty")
)
