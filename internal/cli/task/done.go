package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Toggle whether a task is completed",
		Long: `Flip the completed flag of a task. Running it twice restores the task.

Examples:
  flowlist task done 3f2a9c10
  flowlist task done 3f2a9c10 --json
`,
		RunE: runDone,
		Args: cobra.ExactArgs(1),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

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

	res := cliInstance.App.Tasks.ToggleComplete(cliInstance.Context(), t.ID)
	if err := checkPersist(formatter, res.Persist); err != nil {
		return err
	}

	state := "active again"
	if res.Task.Completed {
		state = "completed"
	}
	return printTask(formatter, res.Task, fmt.Sprintf("✓ Task '%s' marked %s", res.Task.Title, state))
}
