package database

import "errors"

// ErrEmptyKey is returned for operations on the empty key
var ErrEmptyKey = errors.New("key cannot be empty")
