// Package tutorial prints the scripting guide for the flowlist commands.
package tutorial

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print a short guide to scripting flowlist",
		Long: `Print a short guide to the task and theme commands, their output
modes and exit codes, in markdown. Use --render for terminal formatting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return outputTutorial(cmd, render)
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "Render the markdown for the terminal")
	return cmd
}

func outputTutorial(cmd *cobra.Command, render bool) error {
	out := tutorialContent
	if render {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		if out, err = r.Render(tutorialContent); err != nil {
			return fmt.Errorf("failed to render tutorial: %w", err)
		}
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), strings.TrimLeft(out, "\n"))
	return err
}
