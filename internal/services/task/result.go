package task

import "github.com/thenoetrevino/flowlist/internal/models"

// PersistResult describes one write of the task list to storage.
// A failed write never interrupts the operation that caused it.
type PersistResult struct {
	Key     string
	Bytes   int   // size of the encoded list
	Err     error // swallowed write or encode error
	Written bool  // false when nothing changed and no write was attempted
}

// OK reports whether the list is durable after the operation
func (p PersistResult) OK() bool {
	return p.Err == nil
}

// Result is returned by every mutating Store operation
type Result struct {
	// Found is false when the id matched no task; the list is then unchanged
	Found bool

	// Task is the affected task after the change. For Delete it is the task
	// as it was before removal.
	Task models.Task

	Persist PersistResult
}

// LoadResult describes how the store was initialized from storage
type LoadResult struct {
	Key   string
	Found bool  // the key existed
	Count int   // tasks loaded
	Err   error // read failure or ErrCorruptData; the list is empty when set
}

// OK reports whether the stored list (or its absence) was read cleanly
func (l LoadResult) OK() bool {
	return l.Err == nil
}
