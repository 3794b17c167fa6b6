package database

import "context"

// KeyValueStore is the persistence capability the model layer depends on.
// Values are opaque strings; callers own their encoding.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key is
	// absent, which is not an error.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists every stored key in lexical order
	Keys(ctx context.Context) ([]string, error)
}
