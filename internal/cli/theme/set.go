package theme

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/models"
)

// SetCmd returns the theme set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Choose the theme explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.ThemeLight), string(models.ThemeDark)},
		RunE:      runSet,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	theme, err := models.ParseTheme(args[0])
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_THEME", err, "Use 'light' or 'dark'")
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

	res, err := cliInstance.App.Theme.Set(cliInstance.Context(), theme)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_THEME", err, "Use 'light' or 'dark'")
	}
	if err := checkPersist(formatter, res); err != nil {
		return err
	}

	return printTheme(formatter, theme, "", fmt.Sprintf("✓ Theme set to %s", theme))
}
