package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPriority = errors.New("model: invalid task priority")

type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank orders priorities for display: high > medium > low > none.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Task is a single to-do item owned by exactly one user. ID is assigned by
// the store at creation; ID, UserID and CreatedAt never change afterwards.
type Task struct {
	ID          string
	Text        string
	IsCompleted bool
	UserID      string
	CreatedAt   time.Time
	Priority    Priority
	DueDate     *Date
	Reminders   []Reminder
	Project     string
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	if strings.TrimSpace(t.UserID) == "" {
		return errors.New("model: task user_id is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if strings.TrimSpace(t.Project) == "" {
		return errors.New("model: task project is required")
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.DueDate != nil && t.DueDate.IsZero() {
		return fmt.Errorf("%w: empty due date", ErrInvalidDate)
	}
	for _, rem := range t.Reminders {
		if err := rem.Validate(); err != nil {
			return err
		}
	}
	return nil
}
