package tutorial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorialPrintsMarkdown(t *testing.T) {
	cmd := TutorialCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "# FlowList from the command line")
	assert.Contains(t, out.String(), "flowlist task add")
}

func TestTutorialRender(t *testing.T) {
	cmd := TutorialCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--render"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Exit codes")
}
