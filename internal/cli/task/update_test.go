package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	flcli "github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/testutil"
	"github.com/thenoetrevino/flowlist/internal/testutil/cli"
)

func TestUpdateTask(t *testing.T) {
	repo, app := cli.SetupCLITest(t)
	original := cli.CreateTestTask(t, app, models.TaskInput{
		Title:       "Draft",
		Description: "keep me",
		DueDate:     "2025-02-01T00:00:00.000Z",
		Priority:    models.PriorityLow,
	})

	t.Run("title only leaves other fields", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{original.ID, "--title", "Final"})
		require.NoError(t, err)

		got := testutil.StoredTasks(t, repo)[0]
		assert.Equal(t, "Final", got.Title)
		assert.Equal(t, original.ID, got.ID)
		assert.Equal(t, "keep me", got.Description)
		assert.Equal(t, original.DueDate, got.DueDate)
		assert.Equal(t, models.PriorityLow, got.Priority)
	})

	t.Run("several fields", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			original.ID, "--priority", "high", "--completed=true", "--due", "2025-03-05",
		})
		require.NoError(t, err)

		got := testutil.StoredTasks(t, repo)[0]
		assert.Equal(t, models.PriorityHigh, got.Priority)
		assert.True(t, got.Completed)
		assert.Equal(t, "2025-03-05T00:00:00.000Z", got.DueDate)
	})

	t.Run("clear due date", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{original.ID, "--clear-due", "--quiet"})
		require.NoError(t, err)
		assert.Empty(t, testutil.StoredTasks(t, repo)[0].DueDate)
	})
}

func TestUpdateTask_Negative(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	task := cli.CreateTestTask(t, app, models.TaskInput{Title: "Draft"})

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"no fields", []string{task.ID}, flcli.ExitUsage},
		{"empty title", []string{task.ID, "--title", ""}, flcli.ExitValidation},
		{"bad priority", []string{task.ID, "--priority", "asap"}, flcli.ExitValidation},
		{"unknown task", []string{"id-77", "--title", "x"}, flcli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, flcli.ExitCode(err))
		})
	}

	got, _ := app.Tasks.Get(task.ID)
	assert.Equal(t, "Draft", got.Title)
}
