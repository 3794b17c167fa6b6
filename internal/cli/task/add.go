package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task to the top of the list.

Examples:
  # Simple task (human-readable output)
  flowlist task add --title="Buy milk"

  # JSON output for agents
  flowlist task add --title="Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(flowlist task add --title="Buy milk" --quiet)

  # Full example with all options
  flowlist task add \
    --title="File taxes" \
    --description="Receipts are in the **blue** folder" \
    --due=2025-04-15 \
    --priority=high
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description, Markdown allowed (use - for stdin)")
	cmd.Flags().String("due", "", "Due date: YYYY-MM-DD or RFC3339")
	cmd.Flags().String("priority", string(models.PriorityMedium), "Priority: low, medium, high")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	rawTitle, _ := cmd.Flags().GetString("title")
	rawDescription, _ := cmd.Flags().GetString("description")
	rawDue, _ := cmd.Flags().GetString("due")
	rawPriority, _ := cmd.Flags().GetString("priority")

	title, err := cli.ValidateTitle(rawTitle)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err, "Provide a non-empty --title")
	}

	priority, err := models.ParsePriority(rawPriority)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err, "")
	}

	due, err := models.NormalizeDueDate(rawDue)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_DUE_DATE", err, "")
	}

	description, err := cli.ReadDescription(rawDescription)
	if err != nil {
		return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
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

	res := cliInstance.App.Tasks.Create(cliInstance.Context(), models.TaskInput{
		Title:       title,
		Description: description,
		DueDate:     due,
		Priority:    priority,
	})
	if err := checkPersist(formatter, res.Persist); err != nil {
		return err
	}

	return printTask(formatter, res.Task,
		fmt.Sprintf("✓ Task '%s' created (ID: %s, priority: %s)", res.Task.Title, cli.ShortID(res.Task.ID), res.Task.Priority))
}
