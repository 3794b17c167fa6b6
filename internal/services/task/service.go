// Package task owns the canonical task list and keeps it in sync with storage.
package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/thenoetrevino/flowlist/internal/database"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// Service defines all task-related operations the front ends use
type Service interface {
	// Read operations
	Tasks() []models.Task
	Get(id string) (models.Task, bool)
	Filtered(filter models.Filter) []models.Task
	Counts() models.Counts
	LoadResult() LoadResult

	// Write operations
	Create(ctx context.Context, input models.TaskInput) Result
	ToggleComplete(ctx context.Context, id string) Result
	Delete(ctx context.Context, id string) Result
	Update(ctx context.Context, id string, patch models.TaskPatch) Result
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for swallowed persistence failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator replaces the UUID generator, mainly for tests
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// Store holds the task list, newest first, and writes the whole list to the
// key-value store after every change.
//
// Store is not safe for concurrent use; front ends drive it from a single
// event loop.
type Store struct {
	kv     database.KeyValueStore
	logger *slog.Logger
	newID  func() string

	tasks []models.Task
	load  LoadResult
}

var _ Service = (*Store)(nil)

// NewStore creates a store and loads the persisted list from kv.
// It never fails: unreadable or corrupt data yields an empty list, and the
// reason is available from LoadResult.
func NewStore(ctx context.Context, kv database.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: slog.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tasks, s.load = s.loadTasks(ctx)
	return s
}

// loadTasks reads and decodes the persisted list
func (s *Store) loadTasks(ctx context.Context) ([]models.Task, LoadResult) {
	res := LoadResult{Key: models.TasksKey}

	raw, found, err := s.kv.Get(ctx, models.TasksKey)
	if err != nil {
		res.Err = fmt.Errorf("failed to read tasks: %w", err)
		s.logger.Error("Failed to read tasks from storage", "key", models.TasksKey, "error", err)
		return []models.Task{}, res
	}
	res.Found = found
	if !found {
		return []models.Task{}, res
	}

	tasks, err := decodeTasks(raw)
	if err != nil {
		res.Err = err
		s.logger.Error("Failed to parse tasks from storage", "key", models.TasksKey, "error", err)
		return []models.Task{}, res
	}

	res.Count = len(tasks)
	return tasks, res
}

// decodeTasks parses a stored list and checks its shape
func decodeTasks(raw string) ([]models.Task, error) {
	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if tasks == nil {
		// JSON null
		return []models.Task{}, nil
	}

	seen := make(map[string]struct{}, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		if t.ID == "" {
			return nil, fmt.Errorf("%w: task %d has no id", ErrCorruptData, i)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrCorruptData, t.ID)
		}
		seen[t.ID] = struct{}{}

		t.Priority = t.Priority.OrDefault()
		if !t.Priority.Valid() {
			return nil, fmt.Errorf("%w: task %s has priority %q", ErrCorruptData, t.ID, t.Priority)
		}
	}
	return tasks, nil
}

// persist writes the full list. Failures are logged and returned as data.
func (s *Store) persist(ctx context.Context) PersistResult {
	res := PersistResult{Key: models.TasksKey, Written: true}

	data, err := json.Marshal(s.tasks)
	if err != nil {
		res.Err = fmt.Errorf("failed to encode tasks: %w", err)
		s.logger.Error("Failed to encode tasks", "error", err)
		return res
	}
	res.Bytes = len(data)

	if err := s.kv.Set(ctx, models.TasksKey, string(data)); err != nil {
		res.Err = fmt.Errorf("failed to save tasks: %w", err)
		s.logger.Error("Failed to save tasks to storage", "key", models.TasksKey, "error", err)
	}
	return res
}

// indexOf returns the position of id in the list, or -1
func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Create builds a new task from input and prepends it to the list.
// The title is stored as given; validating it is the caller's job.
func (s *Store) Create(ctx context.Context, input models.TaskInput) Result {
	t := models.Task{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority.OrDefault(),
		Completed:   false,
	}

	s.tasks = append([]models.Task{t}, s.tasks...)
	s.logger.Debug("Task created", "id", t.ID)

	return Result{Found: true, Task: t, Persist: s.persist(ctx)}
}

// ToggleComplete flips the completed flag of the task with id
func (s *Store) ToggleComplete(ctx context.Context, id string) Result {
	i := s.indexOf(id)
	if i < 0 {
		return Result{Persist: PersistResult{Key: models.TasksKey}}
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	return Result{Found: true, Task: s.tasks[i], Persist: s.persist(ctx)}
}

// Delete removes the task with id
func (s *Store) Delete(ctx context.Context, id string) Result {
	i := s.indexOf(id)
	if i < 0 {
		return Result{Persist: PersistResult{Key: models.TasksKey}}
	}

	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.logger.Debug("Task deleted", "id", id)

	return Result{Found: true, Task: removed, Persist: s.persist(ctx)}
}

// Update merges the non-nil fields of patch into the task with id.
// The id itself can never change.
func (s *Store) Update(ctx context.Context, id string, patch models.TaskPatch) Result {
	i := s.indexOf(id)
	if i < 0 {
		return Result{Persist: PersistResult{Key: models.TasksKey}}
	}

	s.tasks[i] = patch.Apply(s.tasks[i])
	return Result{Found: true, Task: s.tasks[i], Persist: s.persist(ctx)}
}

// Tasks returns a copy of the list, newest first
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get looks up a task by id
func (s *Store) Get(id string) (models.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return models.Task{}, false
}

// Filtered returns the tasks visible under filter
func (s *Store) Filtered(filter models.Filter) []models.Task {
	return models.ApplyFilter(s.tasks, filter)
}

// Counts returns the size of every filtered view
func (s *Store) Counts() models.Counts {
	return models.CountTasks(s.tasks)
}

// LoadResult reports how the list was loaded at construction
func (s *Store) LoadResult() LoadResult {
	return s.load
}
