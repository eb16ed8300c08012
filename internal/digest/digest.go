package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"time"

	"github.com/sandeepkv93/todod/internal/model"
	"github.com/sandeepkv93/todod/internal/storage"
	"github.com/sandeepkv93/todod/internal/todo"
)

const defaultTaskLimit = 5

// Sink receives a rendered digest for one user. Real delivery (mail, push)
// is an external collaborator; LogSink just writes it to the log.
type Sink interface {
	Deliver(ctx context.Context, userID, body string) error
}

type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	if log == nil {
		log = slog.Default()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, userID, body string) error {
	s.log.Info("daily digest", "user_id", userID, "body", body)
	return nil
}

// Digester renders a per-user summary of the day's tasks and hands it to
// the sink.
type Digester struct {
	svc   *todo.Service
	repo  storage.Repository
	sink  Sink
	log   *slog.Logger
	limit int
}

func NewDigester(svc *todo.Service, repo storage.Repository, sink Sink, log *slog.Logger) *Digester {
	if log == nil {
		log = slog.Default()
	}
	return &Digester{svc: svc, repo: repo, sink: sink, log: log, limit: defaultTaskLimit}
}

// RunOnce builds and delivers a digest for every user that has tasks. A
// failure for one user is logged and does not block the others.
func (d *Digester) RunOnce(ctx context.Context, now time.Time) error {
	today := model.DateOf(now)
	users, err := d.repo.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	for _, userID := range users {
		if err := d.digestUser(ctx, userID, today); err != nil {
			d.log.Warn("digest failed", "user_id", userID, "err", err)
		}
	}
	return nil
}

func (d *Digester) digestUser(ctx context.Context, userID string, today model.Date) error {
	stats, err := d.svc.Stats(ctx, userID, today)
	if err != nil {
		return err
	}
	if stats.Total == 0 {
		return nil
	}
	tasks, err := d.svc.ListForUserSmartSorted(ctx, userID)
	if err != nil {
		return err
	}
	body := BuildSummary(tasks, stats, today, d.limit)
	return d.sink.Deliver(ctx, userID, body)
}

// BuildSummary renders one user's digest: a stats headline followed by the
// top open tasks in smart-sort order. Pure; safe to unit test with fixed
// dates.
func BuildSummary(tasks []model.Task, stats todo.Stats, today model.Date, limit int) string {
	if limit <= 0 {
		limit = defaultTaskLimit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Daily summary for %s\n", today)
	fmt.Fprintf(&b, "%d tasks, %d done (%d%%), %d open", stats.Total, stats.Completed, stats.CompletionRate, stats.Pending)
	if stats.DueStatus.Overdue > 0 || stats.DueStatus.DueToday > 0 {
		fmt.Fprintf(&b, " - %d overdue, %d due today", stats.DueStatus.Overdue, stats.DueStatus.DueToday)
	}
	b.WriteString("\n")

	if stats.Pending == 0 {
		b.WriteString("All caught up.\n")
		return b.String()
	}

	b.WriteString("Top tasks:\n")
	listed := 0
	for _, task := range tasks {
		if task.IsCompleted {
			continue
		}
		if listed >= limit {
			break
		}
		b.WriteString("  " + formatTaskLine(task, today) + "\n")
		listed++
	}
	if remaining := stats.Pending - listed; remaining > 0 {
		fmt.Fprintf(&b, "  ...and %d more\n", remaining)
	}
	return b.String()
}

func formatTaskLine(task model.Task, today model.Date) string {
	marker := "-"
	suffix := ""
	if status, ok := todo.ClassifyDue(task, today); ok && task.DueDate != nil {
		switch status {
		case todo.DueStatusOverdue:
			marker = "!"
			suffix = fmt.Sprintf(" (due %s, overdue)", task.DueDate)
		case todo.DueStatusDueToday:
			marker = "*"
			suffix = " (due today)"
		default:
			suffix = fmt.Sprintf(" (due %s)", task.DueDate)
		}
	}
	return fmt.Sprintf("%s %s%s", marker, task.Text, suffix)
}
