package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task_id>",
		Short: "Update fields of a task",
		Long: `Update one or more fields of a task. Fields without a flag are left alone.

Examples:
  flowlist task update 3f2a9c10 --title="Buy oat milk"
  flowlist task update 3f2a9c10 --priority=low --due=2025-05-01
  flowlist task update 3f2a9c10 --clear-due
  flowlist task update 3f2a9c10 --completed=false
`,
		RunE: runUpdate,
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("due", "", "New due date: YYYY-MM-DD or RFC3339")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")
	cmd.Flags().Bool("completed", false, "Set the completed flag")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")

	cli.AddOutputFlags(cmd)

	return cmd
}

// buildPatch turns the changed flags into a TaskPatch
func buildPatch(cmd *cobra.Command) (models.TaskPatch, int, string, error) {
	var patch models.TaskPatch
	flags := cmd.Flags()

	if flags.Changed("title") {
		raw, _ := flags.GetString("title")
		title, err := cli.ValidateTitle(raw)
		if err != nil {
			return patch, cli.ExitValidation, "INVALID_TITLE", err
		}
		patch.Title = &title
	}

	if flags.Changed("description") {
		raw, _ := flags.GetString("description")
		description, err := cli.ReadDescription(raw)
		if err != nil {
			return patch, cli.ExitDataErr, "STDIN_READ_ERROR", err
		}
		patch.Description = &description
	}

	if flags.Changed("due") {
		raw, _ := flags.GetString("due")
		due, err := models.NormalizeDueDate(raw)
		if err != nil {
			return patch, cli.ExitValidation, "INVALID_DUE_DATE", err
		}
		patch.DueDate = &due
	}
	if clear, _ := flags.GetBool("clear-due"); clear {
		empty := ""
		patch.DueDate = &empty
	}

	if flags.Changed("priority") {
		raw, _ := flags.GetString("priority")
		priority, err := models.ParsePriority(raw)
		if err != nil {
			return patch, cli.ExitValidation, "INVALID_PRIORITY", err
		}
		patch.Priority = &priority
	}

	if flags.Changed("completed") {
		completed, _ := flags.GetBool("completed")
		patch.Completed = &completed
	}

	return patch, cli.ExitSuccess, "", nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	patch, exitCode, code, err := buildPatch(cmd)
	if err != nil {
		return formatter.Fail(exitCode, code, err, "")
	}
	if patch.IsEmpty() {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES", fmt.Errorf("no fields to update"),
			"Pass at least one of --title, --description, --due, --clear-due, --priority, --completed")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	t, err := cli.ResolveTask(cliInstance.App.Tasks, args[0])
	if err != nil {
		return cli.ResolveFailure(formatter, err)
	}

	res := cliInstance.App.Tasks.Update(cliInstance.Context(), t.ID, patch)
	if err := checkPersist(formatter, res.Persist); err != nil {
		return err
	}

	return printTask(formatter, res.Task, fmt.Sprintf("✓ Task %s updated successfully", cli.ShortID(res.Task.ID)))
}
