package todo

import (
	"sort"

	"github.com/sandeepkv93/todod/internal/model"
)

// SmartSort orders tasks for display without touching the input slice:
// incomplete before completed, then by priority rank, then by due date
// (dated before undated, earlier first), then newest creation first. Task id
// is the final tiebreak, which makes the order total and independent of the
// input permutation.
func SmartSort(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.Slice(out, func(i, j int) bool {
		return smartLess(out[i], out[j])
	})
	return out
}

func smartLess(a, b model.Task) bool {
	if a.IsCompleted != b.IsCompleted {
		return !a.IsCompleted
	}

	// Priority and due date only separate incomplete tasks; completed ones
	// drop straight to recency.
	if !a.IsCompleted {
		if aRank, bRank := a.Priority.Rank(), b.Priority.Rank(); aRank != bRank {
			return aRank > bRank
		}
		switch {
		case a.DueDate != nil && b.DueDate == nil:
			return true
		case a.DueDate == nil && b.DueDate != nil:
			return false
		case a.DueDate != nil && b.DueDate != nil:
			if a.DueDate.Before(*b.DueDate) {
				return true
			}
			if b.DueDate.Before(*a.DueDate) {
				return false
			}
		}
	}

	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}
