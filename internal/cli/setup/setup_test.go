package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	flcli "github.com/thenoetrevino/flowlist/internal/cli"
	"github.com/thenoetrevino/flowlist/internal/config"
	"github.com/thenoetrevino/flowlist/internal/testutil"
)

func runSetupCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := SetupCmd()
	testutil.SetupCobraCommand(cmd, args)

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	return output, err
}

func TestSetupWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(config.ThemeFileEnv, "")

	output, err := runSetupCmd(t, "--json")
	require.NoError(t, err)

	path := filepath.Join(dir, "flowlist", "config.yaml")
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, path, result["path"])

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultKeyMappings(), cfg.KeyMappings)
	assert.Equal(t, config.DefaultPalette(), cfg.Theme)
}

func TestSetupKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "flowlist", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("key_mappings:\n  quit: x\n"), 0o644))

	output, err := runSetupCmd(t, "--json")
	require.Error(t, err)
	assert.Equal(t, flcli.ExitUsage, flcli.ExitCode(err))
	assert.Equal(t, "CONFIG_EXISTS", testutil.ErrorCode(t, output))

	stderr := testutil.CaptureStderr(t, func() {
		_, err = runSetupCmd(t)
	})
	require.Error(t, err)
	assert.Contains(t, stderr, "Suggestion: Use --force to overwrite it")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "quit: x")

	_, err = runSetupCmd(t, "--force", "--quiet")
	require.NoError(t, err)
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
}
