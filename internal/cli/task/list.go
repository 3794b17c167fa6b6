package task

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/cli/styles"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Long: `List tasks, newest first, under one of the filters.

Examples:
  flowlist task list
  flowlist task list --filter=active
  flowlist task list --filter=high --json
`,
		RunE: runList,
	}

	cmd.Flags().String("filter", string(models.FilterAll), "Filter: all, active, completed, high")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	rawFilter, _ := cmd.Flags().GetString("filter")
	filter, err := models.ParseFilter(rawFilter)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_FILTER", err, "")
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

	store := cliInstance.App.Tasks
	tasks := store.Filtered(filter)
	counts := store.Counts()

	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Println(t.ID)
		}
		return nil
	}

	if formatter.JSON {
		items := make([]map[string]any, 0, len(tasks))
		for _, t := range tasks {
			items = append(items, taskJSON(t))
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"filter":  filter,
			"counts":  counts,
			"tasks":   items,
		})
	}

	fmt.Printf("%s: %d of %d tasks (active %d, completed %d, high %d)\n",
		filter.Label(), len(tasks), counts.All, counts.Active, counts.Completed, counts.High)
	if len(tasks) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("  Nothing here."))
		return nil
	}

	fmt.Println()
	now := time.Now()
	for _, t := range tasks {
		fmt.Println("  " + listLine(t, now))
	}
	return nil
}

// listLine renders one task as "[ ] 3f2a9c10  Title [high] due Mar 5, 2025"
func listLine(t models.Task, now time.Time) string {
	title := t.Title
	if t.Completed {
		title = styles.DoneStyle.Render(title)
	}

	parts := []string{
		styles.Checkbox(t.Completed),
		styles.SubtitleStyle.Render(cli.ShortID(t.ID)),
		title,
		styles.PriorityBadge(t.Priority),
	}
	if due := cli.FormatDue(t); due != "" {
		if t.IsOverdue(now) {
			parts = append(parts, styles.OverdueStyle.Render("overdue "+due))
		} else {
			parts = append(parts, "due "+due)
		}
	}
	return strings.Join(parts, " ")
}
