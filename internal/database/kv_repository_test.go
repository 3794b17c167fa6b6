package database

import (
	"context"
	"errors"
	"testing"
)

func TestKVRepo_GetMissingKey(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	value, found, err := repo.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get() on missing key returned error: %v", err)
	}
	if found {
		t.Errorf("Get() found = true for missing key, value %q", value)
	}
}

func TestKVRepo_SetGetOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	if err := repo.Set(ctx, "flowlist-theme", "light"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := repo.Set(ctx, "flowlist-theme", "dark"); err != nil {
		t.Fatalf("second Set() failed: %v", err)
	}

	value, found, err := repo.Get(ctx, "flowlist-theme")
	if err != nil || !found {
		t.Fatalf("Get() = %q, %v, %v; want stored value", value, found, err)
	}
	if value != "dark" {
		t.Errorf("Get() = %q, want dark", value)
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 1 {
		t.Errorf("Keys() = %v, want a single key after overwrite", keys)
	}
}

func TestKVRepo_Remove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	if err := repo.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := repo.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if _, found, _ := repo.Get(ctx, "k"); found {
		t.Error("key still present after Remove()")
	}

	// Removing again is a no-op
	if err := repo.Remove(ctx, "k"); err != nil {
		t.Errorf("Remove() of absent key returned error: %v", err)
	}
}

func TestKVRepo_KeysSorted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	for _, k := range []string{"flowlist-theme", "a", "flowlist-tasks"} {
		if err := repo.Set(ctx, k, "x"); err != nil {
			t.Fatalf("Set(%s) failed: %v", k, err)
		}
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	want := []string{"a", "flowlist-tasks", "flowlist-theme"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %s, want %s", i, keys[i], want[i])
		}
	}
}

func TestKVRepo_EmptyKeyRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	if err := repo.Set(ctx, "", "v"); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Set(\"\") error = %v, want ErrEmptyKey", err)
	}
	if _, _, err := repo.Get(ctx, ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Get(\"\") error = %v, want ErrEmptyKey", err)
	}
	if err := repo.Remove(ctx, ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Remove(\"\") error = %v, want ErrEmptyKey", err)
	}
}

func TestKVRepo_ClosedDatabaseReturnsError(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	if err := db.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	if err := repo.Set(context.Background(), "k", "v"); err == nil {
		t.Error("Set() on closed database should fail")
	}
	if _, _, err := repo.Get(context.Background(), "k"); err == nil {
		t.Error("Get() on closed database should fail")
	}
}
