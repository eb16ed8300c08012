package todo

import (
	"context"
	"errors"

	"github.com/sandeepkv93/todod/internal/storage"
)

type BatchEntry struct {
	ID    string
	Patch Patch
}

// BatchReport records the outcome of each batch entry. Missing ids do not
// fail the call; they are listed so callers can observe the partial result.
type BatchReport struct {
	Applied []string
	Missing []string
}

// BatchUpdate applies each entry independently, in order. There is no
// cross-entry atomicity: an error midway returns with prior entries already
// persisted and the rest unapplied.
func (s *Service) BatchUpdate(ctx context.Context, entries []BatchEntry) (BatchReport, error) {
	report := BatchReport{
		Applied: make([]string, 0, len(entries)),
		Missing: make([]string, 0),
	}
	for _, entry := range entries {
		rec, err := s.repo.GetTask(ctx, entry.ID)
		if errors.Is(err, storage.ErrNotFound) {
			report.Missing = append(report.Missing, entry.ID)
			continue
		}
		if err != nil {
			return report, err
		}
		task, err := taskFromRecord(rec)
		if err != nil {
			return report, err
		}
		if err := entry.Patch.Apply(&task); err != nil {
			return report, err
		}
		if err := s.repo.UpdateTask(ctx, recordFromTask(task)); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Deleted between read and write; treat like a missing id.
				report.Missing = append(report.Missing, entry.ID)
				continue
			}
			return report, err
		}
		report.Applied = append(report.Applied, entry.ID)
	}
	return report, nil
}
