package todo

import (
	"fmt"

	"github.com/sandeepkv93/todod/internal/model"
	"github.com/sandeepkv93/todod/internal/storage"
)

// taskFromRecord maps a stored record into the typed domain entity. A record
// that fails enum or date parsing is corrupt; the normalizer never writes
// such values.
func taskFromRecord(rec storage.Task) (model.Task, error) {
	priority := model.Priority(rec.Priority)
	if !priority.IsValid() {
		return model.Task{}, fmt.Errorf("%w: stored value %q for task %s", model.ErrInvalidPriority, rec.Priority, rec.ID)
	}

	task := model.Task{
		ID:          rec.ID,
		Text:        rec.Text,
		IsCompleted: rec.IsCompleted,
		UserID:      rec.UserID,
		CreatedAt:   rec.CreatedAt,
		Priority:    priority,
		Reminders:   make([]model.Reminder, 0, len(rec.Reminders)),
		Project:     rec.Project,
	}

	if rec.DueDate != nil {
		due, err := model.ParseDate(*rec.DueDate)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %s: %w", rec.ID, err)
		}
		task.DueDate = &due
	}

	for _, rem := range rec.Reminders {
		channel := model.ReminderChannel(rem.Channel)
		if !channel.IsValid() {
			return model.Task{}, fmt.Errorf("%w: stored value %q for task %s", model.ErrInvalidReminderChannel, rem.Channel, rec.ID)
		}
		task.Reminders = append(task.Reminders, model.Reminder{At: rem.At, Channel: channel})
	}

	return task, nil
}

func recordFromTask(task model.Task) storage.Task {
	rec := storage.Task{
		ID:          task.ID,
		UserID:      task.UserID,
		Text:        task.Text,
		IsCompleted: task.IsCompleted,
		Priority:    string(task.Priority),
		Reminders:   make([]storage.Reminder, 0, len(task.Reminders)),
		Project:     task.Project,
		CreatedAt:   task.CreatedAt,
	}
	if task.DueDate != nil {
		due := task.DueDate.String()
		rec.DueDate = &due
	}
	for _, rem := range task.Reminders {
		rec.Reminders = append(rec.Reminders, storage.Reminder{At: rem.At, Channel: string(rem.Channel)})
	}
	return rec
}

func tasksFromRecords(records []storage.Task) ([]model.Task, error) {
	out := make([]model.Task, 0, len(records))
	for _, rec := range records {
		task, err := taskFromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, nil
}
