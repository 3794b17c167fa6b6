package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/models"
	themeservice "github.com/thenoetrevino/flowlist/internal/services/theme"
)

// ThemeCmd returns the theme command. Without a subcommand it prints the
// current theme.
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark theme",
		Long: `Show or change the light/dark theme shared with the terminal UI.

Examples:
  flowlist theme
  flowlist theme toggle
  flowlist theme set dark --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(SetCmd())

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

	pref := cliInstance.App.Theme
	return printTheme(formatter, pref.Current(), pref.LoadResult().Source,
		fmt.Sprintf("Theme: %s (%s)", pref.Current(), pref.LoadResult().Source))
}

// printTheme writes the theme in the formatter's mode
func printTheme(f *cli.OutputFormatter, theme models.Theme, source themeservice.Source, human string) error {
	if f.Quiet {
		fmt.Println(theme)
		return nil
	}

	if f.JSON {
		out := map[string]any{
			"success": true,
			"theme":   theme,
		}
		if source != "" {
			out["source"] = source
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Println(human)
	return nil
}

// checkPersist reports a theme that could not be saved
func checkPersist(f *cli.OutputFormatter, res themeservice.PersistResult) error {
	if res.OK() {
		return nil
	}
	return f.Fail(cli.ExitError, "STORAGE_ERROR", res.Err, "Check that the database file is writable")
}
