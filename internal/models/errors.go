package models

import "errors"

// Validation errors for user-supplied values
var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrInvalidDueDate  = errors.New("invalid due date")
)
