package task

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force, --json or --quiet).",
		RunE:  runDelete,
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

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

	// Ask for confirmation unless force or machine output
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Delete task %s: '%s'? (y/N): ", cli.ShortID(t.ID), t.Title)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	res := cliInstance.App.Tasks.Delete(cliInstance.Context(), t.ID)
	if err := checkPersist(formatter, res.Persist); err != nil {
		return err
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"task_id": t.ID,
		})
	}

	fmt.Printf("✓ Task '%s' deleted\n", t.Title)
	return nil
}
