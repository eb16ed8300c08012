package todo

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/todod/internal/model"
	"github.com/sandeepkv93/todod/internal/storage"
)

// Service is the task core: it owns normalization, ordering, classification
// and aggregation, and treats the repository as an external collaborator.
// Store failures pass through unwrapped; the core never retries.
type Service struct {
	repo storage.Repository
	now  func() time.Time
}

func NewService(repo storage.Repository) *Service {
	return NewServiceWithClock(repo, time.Now)
}

func NewServiceWithClock(repo storage.Repository, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{repo: repo, now: clock}
}

// ListForUser returns the user's tasks in store order, newest created first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]model.Task, error) {
	if userID == "" {
		return nil, invalidf("userId", "must not be empty")
	}
	records, err := s.repo.ListTasks(ctx, storage.TaskListFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	return tasksFromRecords(records)
}

// ListForUserSmartSorted returns the user's tasks in display priority order.
func (s *Service) ListForUserSmartSorted(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SmartSort(tasks), nil
}

func (s *Service) ListByPriority(ctx context.Context, userID string, priority model.Priority) ([]model.Task, error) {
	if userID == "" {
		return nil, invalidf("userId", "must not be empty")
	}
	if !priority.IsValid() {
		return nil, invalidf("priority", "unknown value %q", priority)
	}
	records, err := s.repo.ListTasks(ctx, storage.TaskListFilter{UserID: userID, Priority: string(priority)})
	if err != nil {
		return nil, err
	}
	return tasksFromRecords(records)
}

func (s *Service) ListByDueDate(ctx context.Context, userID string, date model.Date) ([]model.Task, error) {
	if userID == "" {
		return nil, invalidf("userId", "must not be empty")
	}
	if date.IsZero() {
		return nil, invalidf("dueDate", "must not be empty")
	}
	records, err := s.repo.ListTasks(ctx, storage.TaskListFilter{UserID: userID, DueDate: date.String()})
	if err != nil {
		return nil, err
	}
	return tasksFromRecords(records)
}

// Create normalizes the input and inserts a new task, returning the
// store-assigned id.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	task, err := Normalize(in, s.now())
	if err != nil {
		return "", err
	}
	return s.repo.CreateTask(ctx, recordFromTask(task))
}

// Update applies a partial update to one task. Unknown ids surface as
// storage.ErrNotFound.
func (s *Service) Update(ctx context.Context, id string, patch Patch) error {
	rec, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return err
	}
	task, err := taskFromRecord(rec)
	if err != nil {
		return err
	}
	if err := patch.Apply(&task); err != nil {
		return err
	}
	return s.repo.UpdateTask(ctx, recordFromTask(task))
}

// ToggleCompletion flips a task's completion flag and nothing else.
func (s *Service) ToggleCompletion(ctx context.Context, id string) error {
	rec, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return err
	}
	rec.IsCompleted = !rec.IsCompleted
	return s.repo.UpdateTask(ctx, rec)
}

// Delete removes a task by id. Deleting an id that is already gone is a
// no-op, so the call is idempotent.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.DeleteTask(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

// Stats aggregates the user's full task list against the given reference
// date.
func (s *Service) Stats(ctx context.Context, userID string, today model.Date) (Stats, error) {
	tasks, err := s.ListForUser(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return Aggregate(tasks, today), nil
}
