package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/flowlist/internal/testutil"
)

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

type mockStringer struct{}

func (mockStringer) String() string { return "rendered" }

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		if err := f.Success(mockDataWithID{ID: "abc", Name: "Test"}); err != nil {
			t.Errorf("Success() error = %v", err)
		}
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["Name"] != "Test" {
		t.Errorf("Expected data.Name to be 'Test', got %v", data["Name"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"struct with ID", mockDataWithID{ID: "3f2a9c10", Name: "Test"}, "3f2a9c10\n"},
		{"struct without ID", mockDataWithoutID{Name: "Test", Value: 42}, "{Name:Test Value:42}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &OutputFormatter{Quiet: true}
			output := testutil.CaptureOutput(t, func() {
				_ = f.Success(tt.data)
			})
			if output != tt.want {
				t.Errorf("output = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestOutputFormatter_Success_HumanUsesStringer(t *testing.T) {
	f := &OutputFormatter{}
	output := testutil.CaptureOutput(t, func() {
		_ = f.Success(mockStringer{})
	})
	if output != "rendered\n" {
		t.Errorf("output = %q, want rendered", output)
	}
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		_ = f.ErrorWithSuggestion("TASK_NOT_FOUND", "task abcd not found", "Run 'flowlist task list'")
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "TASK_NOT_FOUND" {
		t.Errorf("code = %v, want TASK_NOT_FOUND", errData["code"])
	}
	if !strings.Contains(errData["suggestion"].(string), "task list") {
		t.Errorf("suggestion = %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_NoSuggestionField(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = f.Error("STORAGE_ERROR", "disk full")
	})
	if strings.Contains(output, "suggestion") {
		t.Errorf("empty suggestion should be omitted: %s", output)
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	cause := errors.New("title cannot be empty")

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = f.Fail(ExitValidation, "INVALID_TITLE", cause, "")
	})

	if ExitCode(err) != ExitValidation {
		t.Errorf("ExitCode = %d, want %d", ExitCode(err), ExitValidation)
	}
	if !errors.Is(err, cause) {
		t.Error("Fail should wrap the cause")
	}
	if !strings.Contains(output, "INVALID_TITLE") {
		t.Errorf("error envelope missing: %s", output)
	}
}

func TestOutputFormatter_Error_HumanGoesToStderr(t *testing.T) {
	f := &OutputFormatter{}

	var stdout string
	stderr := testutil.CaptureStderr(t, func() {
		stdout = testutil.CaptureOutput(t, func() {
			_ = f.ErrorWithSuggestion("TASK_NOT_FOUND", "task abcd not found", "Run 'flowlist task list'")
		})
	})

	if stdout != "" {
		t.Errorf("human errors should leave stdout empty, got %q", stdout)
	}
	if !strings.Contains(stderr, "Error: task abcd not found") {
		t.Errorf("stderr = %q, want the error line", stderr)
	}
	if !strings.Contains(stderr, "Suggestion: Run 'flowlist task list'") {
		t.Errorf("stderr = %q, want the suggestion line", stderr)
	}
}
