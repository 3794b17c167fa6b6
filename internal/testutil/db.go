package testutil

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/thenoetrevino/flowlist/internal/database"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// SetupTestDB creates an in-memory database with full schema and returns a
// repository over it. The database is closed when the test ends.
func SetupTestDB(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	repo := database.NewRepository(db)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

// SeedTasks writes tasks directly under the tasks key, bypassing the store
func SeedTasks(t *testing.T, kv database.KeyValueStore, tasks ...models.Task) {
	t.Helper()
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		t.Fatalf("Failed to encode tasks: %v", err)
	}
	if err := kv.Set(context.Background(), models.TasksKey, string(data)); err != nil {
		t.Fatalf("Failed to seed tasks: %v", err)
	}
}

// StoredTasks decodes whatever is currently persisted under the tasks key
func StoredTasks(t *testing.T, kv database.KeyValueStore) []models.Task {
	t.Helper()
	raw, found, err := kv.Get(context.Background(), models.TasksKey)
	if err != nil {
		t.Fatalf("Failed to read tasks: %v", err)
	}
	if !found {
		return nil
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		t.Fatalf("Stored tasks are not valid JSON: %v\n%s", err, raw)
	}
	return tasks
}

// SequentialIDs returns an id generator producing id-1, id-2, ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
}


