// Package cmd wires the flowlist command tree.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/cli/setup"
	"github.com/thenoetrevino/flowlist/internal/cli/task"
	"github.com/thenoetrevino/flowlist/internal/cli/theme"
	"github.com/thenoetrevino/flowlist/internal/cli/tutorial"
	"github.com/thenoetrevino/flowlist/internal/launcher"
	"github.com/thenoetrevino/flowlist/internal/logging"
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "flowlist",
	Short: "FlowList - a task list for the terminal",
	Long: `FlowList keeps a personal task list with priorities, due dates and a
light/dark theme. Run it without arguments for the interactive UI, or use the
task and theme commands from scripts.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closer, err := logging.Init("")
		if err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logCloser = closer
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(theme.ThemeCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
	rootCmd.AddCommand(setup.SetupCmd())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		return cli.Exit(cli.ExitUsage, err)
	})
}

// Execute runs the command tree. Interrupts cancel the command context.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)

	if logCloser != nil {
		if cerr := logCloser.Close(); cerr != nil {
			slog.Debug("failed to close log file", "error", cerr)
		}
	}
	return err
}
