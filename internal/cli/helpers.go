package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/services/task"
)

// MinIDPrefix is the shortest id prefix accepted on the command line
const MinIDPrefix = 4

// Formatter builds an OutputFormatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers the agent-friendly flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// ResolveTask finds the task whose id equals ref or starts with it.
// Prefixes shorter than MinIDPrefix are rejected unless they match exactly.
func ResolveTask(store task.Service, ref string) (models.Task, error) {
	ref = strings.TrimSpace(ref)
	if t, ok := store.Get(ref); ok {
		return t, nil
	}
	if len(ref) < MinIDPrefix {
		return models.Task{}, fmt.Errorf("%w: '%s' (need at least %d characters)", ErrIDTooShort, ref, MinIDPrefix)
	}

	var matches []models.Task
	for _, t := range store.Tasks() {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("%w: %s", task.ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("%w: '%s' matches %d tasks", ErrAmbiguousID, ref, len(matches))
	}
}

// ResolveFailure reports a ResolveTask error with the matching exit code
func ResolveFailure(f *OutputFormatter, err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return f.Fail(ExitNotFound, "TASK_NOT_FOUND", err, "Run 'flowlist task list' to see task ids")
	default:
		return f.Fail(ExitUsage, "INVALID_TASK_ID", err, "Use a longer id prefix")
	}
}

// ValidateTitle trims the title and rejects empty ones
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ShortID returns the first 8 characters of id for human output
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatDue renders a stored due date for display
func FormatDue(t models.Task) string {
	if t.DueDate == "" {
		return ""
	}
	if due, ok := t.Due(); ok {
		return due.Format(models.DisplayDateLayout)
	}
	return t.DueDate
}
