package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/flowlist/internal/app"
	"github.com/thenoetrevino/flowlist/internal/database"
	"github.com/thenoetrevino/flowlist/internal/logging"
	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/services/theme"
	"github.com/thenoetrevino/flowlist/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the repository and an
// App over it. Task ids are id-1, id-2, ... and the environment prefers light.
// This lives in its own package to avoid import cycles with service tests.
func SetupCLITest(t *testing.T, opts ...app.Option) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestDB(t)

	defaults := []app.Option{
		app.WithIDGenerator(testutil.SequentialIDs()),
		app.WithDetector(theme.StaticDetector(false)),
		app.WithLogger(logging.Discard()),
	}
	appInstance := app.New(context.Background(), repo, append(defaults, opts...)...)

	return repo, appInstance
}

// CreateTestTask adds a task through the app's store and returns it
func CreateTestTask(t *testing.T, a *app.App, input models.TaskInput) models.Task {
	t.Helper()
	res := a.Tasks.Create(context.Background(), input)
	if !res.Persist.OK() {
		t.Fatalf("Failed to persist test task: %v", res.Persist.Err)
	}
	return res.Task
}
