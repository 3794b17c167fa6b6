// Package setup writes a starter configuration file.
package setup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/config"
)

var errConfigExists = errors.New("config file already exists")

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write the default configuration file",
		Long: `Write the default key mappings, color palettes and storage settings to
the config file so they can be edited. An existing file is kept unless
--force is given.

Examples:
  flowlist setup
  flowlist setup --force --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSetup(cmd *cobra.Command, force bool) error {
	formatter := cli.Formatter(cmd)

	path, err := config.Path()
	if err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err, "Set XDG_CONFIG_HOME or HOME")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return formatter.Fail(cli.ExitUsage, "CONFIG_EXISTS",
			fmt.Errorf("%w: %s", errConfigExists, path),
			"Use --force to overwrite it")
	}

	if err := config.Default().Save(); err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_WRITE_ERROR", err, "Check that the config directory is writable")
	}

	switch {
	case formatter.Quiet:
		fmt.Println(path)
	case formatter.JSON:
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"path":    path,
		})
	default:
		fmt.Printf("✓ Wrote default config to %s\n", path)
	}
	return nil
}
