package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Filter Tests
// ============================================================================

// fiveTaskFixture has 2 completed, 1 high-priority incomplete and 2 other
// incomplete tasks
func fiveTaskFixture() []Task {
	return []Task{
		{ID: "1", Title: "Ship release", Priority: PriorityHigh},
		{ID: "2", Title: "Water plants", Priority: PriorityLow},
		{ID: "3", Title: "Book flights", Priority: PriorityHigh, Completed: true},
		{ID: "4", Title: "Read paper", Priority: PriorityMedium},
		{ID: "5", Title: "File taxes", Priority: PriorityMedium, Completed: true},
	}
}

func TestApplyFilter_MatchesManualTally(t *testing.T) {
	tasks := fiveTaskFixture()

	tests := []struct {
		filter  Filter
		wantIDs []string
	}{
		{FilterAll, []string{"1", "2", "3", "4", "5"}},
		{FilterActive, []string{"1", "2", "4"}},
		{FilterCompleted, []string{"3", "5"}},
		{FilterHigh, []string{"1"}},
	}

	counts := CountTasks(tasks)
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := ApplyFilter(tasks, tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("ApplyFilter(%s) returned %d tasks, want %d", tt.filter, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("ApplyFilter(%s)[%d].ID = %s, want %s", tt.filter, i, got[i].ID, id)
				}
			}
			if counts.For(tt.filter) != len(tt.wantIDs) {
				t.Errorf("Counts.For(%s) = %d, want %d", tt.filter, counts.For(tt.filter), len(tt.wantIDs))
			}
		})
	}
}

func TestApplyFilter_DoesNotModifyInput(t *testing.T) {
	tasks := fiveTaskFixture()
	_ = ApplyFilter(tasks, FilterCompleted)

	if len(tasks) != 5 || tasks[0].ID != "1" || tasks[4].ID != "5" {
		t.Errorf("ApplyFilter modified its input: %+v", tasks)
	}
}

func TestCountTasks_Empty(t *testing.T) {
	if got := CountTasks(nil); got != (Counts{}) {
		t.Errorf("CountTasks(nil) = %+v, want zero counts", got)
	}
}

func TestFilter_NextPrevWrap(t *testing.T) {
	if FilterHigh.Next() != FilterAll {
		t.Errorf("FilterHigh.Next() = %s, want all", FilterHigh.Next())
	}
	if FilterAll.Prev() != FilterHigh {
		t.Errorf("FilterAll.Prev() = %s, want high", FilterAll.Prev())
	}
	if FilterActive.Next() != FilterCompleted {
		t.Errorf("FilterActive.Next() = %s, want completed", FilterActive.Next())
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    Filter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"ALL", FilterAll, false},
		{"active", FilterActive, false},
		{"done", FilterCompleted, false},
		{"high-priority", FilterHigh, false},
		{"urgent", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFilter(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFilter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidFilter) {
			t.Errorf("ParseFilter(%q) error = %v, want ErrInvalidFilter", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

// ============================================================================
// Priority / Theme Tests
// ============================================================================

func TestParsePriority(t *testing.T) {
	if p, err := ParsePriority(" High "); err != nil || p != PriorityHigh {
		t.Errorf("ParsePriority(\" High \") = %s, %v; want high", p, err)
	}
	if _, err := ParsePriority("critical"); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("ParsePriority(critical) error = %v, want ErrInvalidPriority", err)
	}
}

func TestPriority_OrDefault(t *testing.T) {
	if Priority("").OrDefault() != PriorityMedium {
		t.Error("empty priority should default to medium")
	}
	if PriorityLow.OrDefault() != PriorityLow {
		t.Error("explicit priority should be kept")
	}
}

func TestTheme_Toggled(t *testing.T) {
	if ThemeLight.Toggled() != ThemeDark {
		t.Error("light should toggle to dark")
	}
	if ThemeDark.Toggled() != ThemeLight {
		t.Error("dark should toggle to light")
	}
	if ThemeDark.Toggled().Toggled() != ThemeDark {
		t.Error("toggling twice should return to the start")
	}
}

func TestParseTheme(t *testing.T) {
	if th, err := ParseTheme("Dark"); err != nil || th != ThemeDark {
		t.Errorf("ParseTheme(Dark) = %s, %v; want dark", th, err)
	}
	if _, err := ParseTheme("sepia"); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("ParseTheme(sepia) error = %v, want ErrInvalidTheme", err)
	}
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTaskPatch_ApplyOnlyTouchesSetFields(t *testing.T) {
	original := Task{
		ID:          "abc",
		Title:       "Old",
		Description: "keep me",
		DueDate:     "2025-01-01T00:00:00.000Z",
		Priority:    PriorityLow,
		Completed:   true,
	}
	title := "New"

	got := TaskPatch{Title: &title}.Apply(original)

	want := original
	want.Title = "New"
	if got != want {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	if !(TaskPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	done := true
	if (TaskPatch{Completed: &done}).IsEmpty() {
		t.Error("patch with Completed set should not be empty")
	}
}

func TestTask_Due(t *testing.T) {
	tests := []struct {
		name   string
		due    string
		wantOK bool
	}{
		{"empty", "", false},
		{"iso timestamp", "2025-03-04T00:00:00.000Z", true},
		{"calendar date", "2025-03-04", true},
		{"garbage", "next tuesday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Task{DueDate: tt.due}.Due()
			if ok != tt.wantOK {
				t.Errorf("Due() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := Task{DueDate: "2025-05-01T00:00:00.000Z"}
	future := Task{DueDate: "2025-07-01T00:00:00.000Z"}
	donePast := Task{DueDate: "2025-05-01T00:00:00.000Z", Completed: true}

	if !past.IsOverdue(now) {
		t.Error("past due incomplete task should be overdue")
	}
	if future.IsOverdue(now) {
		t.Error("future task should not be overdue")
	}
	if donePast.IsOverdue(now) {
		t.Error("completed task should never be overdue")
	}
	if (Task{DueDate: "soon"}).IsOverdue(now) {
		t.Error("unparseable due date should not be overdue")
	}
}

func TestTask_IsOverdueCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		dueDate string
		now     time.Time
		want    bool
	}{
		{"afternoon of due day", "2025-03-10T00:00:00.000Z", time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), false},
		{"last second of due day", "2025-03-10T00:00:00.000Z", time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC), false},
		{"just after due day", "2025-03-10T00:00:00.000Z", time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC), true},
		{"plain date on due day", "2025-03-10", time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), false},
		{"plain date next day", "2025-03-10", time.Date(2025, 3, 11, 9, 30, 0, 0, time.UTC), true},
		{"due day in local zone", "2025-03-10T00:00:00.000Z", time.Date(2025, 3, 10, 22, 0, 0, 0, time.FixedZone("PDT", -7*3600)), false},
		{"exact timestamp passed", "2025-03-10T09:00:00Z", time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), true},
		{"exact timestamp ahead", "2025-03-10T18:00:00Z", time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{DueDate: tt.dueDate}
			if got := task.IsOverdue(tt.now); got != tt.want {
				t.Errorf("IsOverdue(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestNormalizeDueDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"2025-03-04", "2025-03-04T00:00:00.000Z", false},
		{"2025-03-04T10:00:00Z", "2025-03-04T10:00:00Z", false},
		{"03/04/2025", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeDueDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeDueDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeDueDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
