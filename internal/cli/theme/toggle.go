package theme

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
)

// ToggleCmd returns the theme toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE:  runToggle,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
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

	theme, res := cliInstance.App.Theme.Toggle(cliInstance.Context())
	if err := checkPersist(formatter, res); err != nil {
		return err
	}

	return printTheme(formatter, theme, "", fmt.Sprintf("✓ Theme switched to %s", theme))
}
