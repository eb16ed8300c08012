package storage

import "time"

// Task is the persisted record shape. Enum fields stay plain strings at this
// layer; the todo package converts to and from model types at the boundary.
type Task struct {
	ID          string
	UserID      string
	Text        string
	IsCompleted bool
	Priority    string
	DueDate     *string
	Reminders   []Reminder
	Project     string
	CreatedAt   time.Time
}

// Reminder mirrors the persisted reminder entries. The JSON tags match the
// stored column format: an array of {datetime, type} objects.
type Reminder struct {
	At      time.Time `json:"datetime"`
	Channel string    `json:"type"`
}

type TaskListFilter struct {
	UserID    string
	Priority  string
	DueDate   string
	Completed *bool
	Limit     int
	Offset    int
}
