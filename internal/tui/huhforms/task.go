package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/flowlist/internal/models"
	"github.com/thenoetrevino/flowlist/internal/tui/state"
)

var errTitleRequired = errors.New("title is required")

// ValidateTitle rejects blank titles
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errTitleRequired
	}
	return nil
}

// DueDateValidator accepts an empty value, a YYYY-MM-DD date, or the value
// the form started with
func DueDateValidator(original string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" || s == original {
			return nil
		}
		_, err := models.NormalizeDueDate(s)
		return err
	}
}

// CreateTaskForm creates a huh form for adding or editing a task.
// Fields write straight into fs.
func CreateTaskForm(fs *state.FormState, descriptionLines int, saveKey string) *huh.Form {
	submitTitle := "Add this task?"
	if fs.IsEditing() {
		submitTitle = "Save changes?"
	}

	priorities := make([]huh.Option[models.Priority], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		priorities = append(priorities, huh.NewOption(p.String(), p))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("What needs doing?").
			Validate(ValidateTitle).
			Value(&fs.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown welcome").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(&fs.Description),

		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorities...).
			Value(&fs.Priority),

		huh.NewInput().
			Key("due").
			Title("Due date").
			Placeholder(models.DateLayout).
			Validate(DueDateValidator(fs.OriginalDue())).
			Value(&fs.DueDate),

		huh.NewConfirm().
			Key("confirm").
			Title(submitTitle).
			Affirmative("Yes").
			Negative("No").
			Value(&fs.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap(saveKey)).WithShowHelp(false)
}
