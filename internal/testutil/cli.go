package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

// CaptureOutput captures stdout during function execution. JSON results and
// JSON error envelopes both land here.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()
	return captureFile(t, &os.Stdout, fn)
}

// CaptureStderr captures stderr during function execution, where human
// readable errors and their suggestions are written
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return captureFile(t, &os.Stderr, fn)
}

// captureFile swaps *target for a pipe while fn runs
func captureFile(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	original := *target
	*target = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	defer func() { *target = original }()
	fn()

	_ = w.Close()
	return <-outC
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// ErrorCode parses a JSON failure envelope ({"success": false, "error": {...}})
// and returns its error code
func ErrorCode(t *testing.T, output string) string {
	t.Helper()

	result := ParseJSON(t, output)
	if result["success"] != false {
		t.Fatalf("Expected a failure envelope, got: %s", output)
	}
	errData, ok := result["error"].(map[string]any)
	if !ok {
		t.Fatalf("Failure envelope has no error object: %s", output)
	}
	code, _ := errData["code"].(string)
	return code
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
