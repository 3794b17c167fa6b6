package task

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/cli/styles"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show task details",
		Long:  "Display all details of a task. The description is rendered as Markdown.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if formatter.Quiet || formatter.JSON {
		return printTask(formatter, t, "")
	}

	styles.Init(cliInstance.Config.Theme.For(cliInstance.App.Theme.Current()))
	fmt.Println(styles.RenderCard(renderDetail(t, time.Now())))
	return nil
}

// renderDetail builds the card body for one task
func renderDetail(t models.Task, now time.Time) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(t.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(t.ID))
	content.WriteString("\n\n")

	status := "active"
	if t.Completed {
		status = "completed"
	}
	meta := fmt.Sprintf("%s %s  %s %s",
		styles.LabelStyle.Render("Status:"), styles.ValueStyle.Render(status),
		styles.LabelStyle.Render("Priority:"), styles.PriorityBadge(t.Priority))
	if due := cli.FormatDue(t); due != "" {
		dueText := styles.ValueStyle.Render(due)
		if t.IsOverdue(now) {
			dueText = styles.OverdueStyle.Render(due + " (overdue)")
		}
		meta += fmt.Sprintf("  %s %s", styles.LabelStyle.Render("Due:"), dueText)
	}
	content.WriteString(meta)

	if strings.TrimSpace(t.Description) != "" {
		content.WriteString("\n")
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(renderMarkdown(t.Description, styles.CardWidth-6))
	}

	return content.String()
}

// renderMarkdown renders md with glamour, falling back to the raw text
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Printf("Error creating markdown renderer: %v", err)
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		log.Printf("Error rendering markdown: %v", err)
		return md
	}
	return strings.TrimRight(out, "\n")
}
