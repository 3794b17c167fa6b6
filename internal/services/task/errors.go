package task

import "errors"

// Task store errors
var (
	// ErrCorruptData marks a stored task list that could not be decoded.
	// It only ever appears inside a LoadResult, never as a returned error.
	ErrCorruptData = errors.New("stored task list is corrupt")

	// ErrTaskNotFound is what callers that want strict semantics report when
	// Result.Found is false
	ErrTaskNotFound = errors.New("task not found")
)
