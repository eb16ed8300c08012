package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/todod/internal/model"
)

const defaultProject = "Inbox"

// ValidationError reports rejected input. It is returned before any store
// write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("todo: invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// CreateInput carries the caller-supplied fields for a new task. Zero values
// mean "omitted": priority defaults to none, project to Inbox, due date and
// reminders to absent.
type CreateInput struct {
	Text      string
	UserID    string
	Priority  model.Priority
	DueDate   string
	Reminders []model.Reminder
	Project   string
}

// Normalize turns creation input into a complete task record with defaults
// applied. The returned task has no ID; the store assigns one on insert.
func Normalize(in CreateInput, now time.Time) (model.Task, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return model.Task{}, invalidf("text", "must not be empty")
	}
	if strings.TrimSpace(in.UserID) == "" {
		return model.Task{}, invalidf("userId", "must not be empty")
	}

	priority := in.Priority
	if priority == "" {
		priority = model.PriorityNone
	}
	if !priority.IsValid() {
		return model.Task{}, invalidf("priority", "unknown value %q", in.Priority)
	}

	task := model.Task{
		Text:        text,
		IsCompleted: false,
		UserID:      in.UserID,
		CreatedAt:   now.UTC().Truncate(time.Millisecond),
		Priority:    priority,
		Reminders:   []model.Reminder{},
		Project:     defaultProject,
	}

	if in.DueDate != "" {
		due, err := model.ParseDate(in.DueDate)
		if err != nil {
			return model.Task{}, invalidf("dueDate", "%q is not a calendar date", in.DueDate)
		}
		task.DueDate = &due
	}

	if len(in.Reminders) > 0 {
		for i, rem := range in.Reminders {
			if err := rem.Validate(); err != nil {
				return model.Task{}, invalidf("reminders", "entry %d: %v", i, err)
			}
		}
		task.Reminders = append(task.Reminders, in.Reminders...)
	}

	if project := strings.TrimSpace(in.Project); project != "" {
		task.Project = project
	}

	return task, nil
}

// Patch is a partial update. Only fields marked via Set are applied; the
// rest keep their prior values.
type Patch struct {
	Text        Field[string]
	IsCompleted Field[bool]
	Priority    Field[model.Priority]
	DueDate     Field[string]
	Reminders   Field[[]model.Reminder]
	Project     Field[string]
}

// Apply folds a patch into a task, validating each supplied field. Setting
// DueDate to "" clears it. Setting Project to an empty string falls back to
// Inbox so the stored record never carries an empty project.
func (p Patch) Apply(task *model.Task) error {
	if p.Text.IsSet() {
		text := strings.TrimSpace(p.Text.Value())
		if text == "" {
			return invalidf("text", "must not be empty")
		}
		task.Text = text
	}
	if p.IsCompleted.IsSet() {
		task.IsCompleted = p.IsCompleted.Value()
	}
	if p.Priority.IsSet() {
		priority := p.Priority.Value()
		if !priority.IsValid() {
			return invalidf("priority", "unknown value %q", priority)
		}
		task.Priority = priority
	}
	if p.DueDate.IsSet() {
		raw := p.DueDate.Value()
		if raw == "" {
			task.DueDate = nil
		} else {
			due, err := model.ParseDate(raw)
			if err != nil {
				return invalidf("dueDate", "%q is not a calendar date", raw)
			}
			task.DueDate = &due
		}
	}
	if p.Reminders.IsSet() {
		reminders := p.Reminders.Value()
		for i, rem := range reminders {
			if err := rem.Validate(); err != nil {
				return invalidf("reminders", "entry %d: %v", i, err)
			}
		}
		task.Reminders = make([]model.Reminder, 0, len(reminders))
		task.Reminders = append(task.Reminders, reminders...)
	}
	if p.Project.IsSet() {
		project := strings.TrimSpace(p.Project.Value())
		if project == "" {
			project = defaultProject
		}
		task.Project = project
	}
	return nil
}
