package todo

import (
	"math"

	"github.com/sandeepkv93/todod/internal/model"
)

type PriorityBreakdown struct {
	High   int
	Medium int
	Low    int
	None   int
}

type DueBreakdown struct {
	Overdue  int
	DueToday int
	Upcoming int
}

// Stats summarizes one user's task list. CompletionRate is a whole
// percentage in [0, 100].
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int
	Priority       PriorityBreakdown
	DueStatus      DueBreakdown
}

// Aggregate reduces a task list to summary counts in a single pass. The
// None and Upcoming counts are derived rather than counted directly, so the
// priority histogram always sums to Total and the due-status histogram to
// Pending.
func Aggregate(tasks []model.Task, today model.Date) Stats {
	var s Stats
	s.Total = len(tasks)
	for _, task := range tasks {
		if task.IsCompleted {
			s.Completed++
		}
		switch task.Priority {
		case model.PriorityHigh:
			s.Priority.High++
		case model.PriorityMedium:
			s.Priority.Medium++
		case model.PriorityLow:
			s.Priority.Low++
		}
		status, ok := ClassifyDue(task, today)
		if !ok {
			continue
		}
		switch status {
		case DueStatusOverdue:
			s.DueStatus.Overdue++
		case DueStatusDueToday:
			s.DueStatus.DueToday++
		}
	}
	s.Pending = s.Total - s.Completed
	s.Priority.None = s.Total - s.Priority.High - s.Priority.Medium - s.Priority.Low
	s.DueStatus.Upcoming = s.Pending - s.DueStatus.Overdue - s.DueStatus.DueToday
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
	}
	return s
}
