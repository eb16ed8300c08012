package todo

import "github.com/sandeepkv93/todod/internal/model"

type DueStatus string

const (
	DueStatusOverdue  DueStatus = "overdue"
	DueStatusDueToday DueStatus = "dueToday"
	DueStatusUpcoming DueStatus = "upcoming"
)

// ClassifyDue buckets an incomplete task relative to a reference calendar
// date. Completed tasks belong to no bucket; ok reports whether the task was
// classified at all. Comparison is by calendar date only, never by
// timestamp.
func ClassifyDue(task model.Task, today model.Date) (DueStatus, bool) {
	if task.IsCompleted {
		return "", false
	}
	if task.DueDate == nil {
		return DueStatusUpcoming, true
	}
	switch {
	case task.DueDate.Before(today):
		return DueStatusOverdue, true
	case *task.DueDate == today:
		return DueStatusDueToday, true
	default:
		return DueStatusUpcoming, true
	}
}
