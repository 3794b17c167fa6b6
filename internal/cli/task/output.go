package task

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/models"
	taskservice "github.com/thenoetrevino/flowlist/internal/services/task"
)

// taskJSON is the wire shape of a task in --json output
func taskJSON(t models.Task) map[string]any {
	return map[string]any{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"due_date":    t.DueDate,
		"priority":    t.Priority,
		"completed":   t.Completed,
		"overdue":     t.IsOverdue(time.Now()),
	}
}

// printTask writes a single-task result in the formatter's mode
func printTask(f *cli.OutputFormatter, t models.Task, human string) error {
	if f.Quiet {
		fmt.Println(t.GetID())
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"task":    taskJSON(t),
		})
	}

	fmt.Println(human)
	return nil
}

// checkPersist turns a failed write into a reported storage error.
// The in-memory change is gone when the process exits, so the CLI must not
// claim success.
func checkPersist(f *cli.OutputFormatter, res taskservice.PersistResult) error {
	if res.OK() {
		return nil
	}
	return f.Fail(cli.ExitError, "STORAGE_ERROR", res.Err, "Check that the database file is writable")
}
