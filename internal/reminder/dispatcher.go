package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sandeepkv93/todod/internal/model"
	"github.com/sandeepkv93/todod/internal/storage"
)

// Dispatcher feeds the engine from the store and hands fired events to the
// notifier. Refresh is expected to run periodically; already-scheduled
// reminders are remembered so a reload does not double-fire them.
type Dispatcher struct {
	repo     storage.Repository
	engine   *Engine
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDispatcher(repo storage.Repository, engine *Engine, notifier Notifier, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		repo:     repo,
		engine:   engine,
		notifier: notifier,
		log:      log,
		now:      time.Now,
		seen:     make(map[string]struct{}),
	}
}

// Refresh loads every incomplete task and schedules its future reminders.
// Reminders on completed tasks never fire.
func (d *Dispatcher) Refresh(ctx context.Context) error {
	pending := false
	records, err := d.repo.ListTasks(ctx, storage.TaskListFilter{Completed: &pending})
	if err != nil {
		return fmt.Errorf("load pending tasks: %w", err)
	}

	now := d.now().UTC()
	scheduled := 0
	for _, rec := range records {
		for _, rem := range rec.Reminders {
			if !rem.At.After(now) {
				continue
			}
			key := rec.ID + "|" + rem.At.UTC().Format(time.RFC3339Nano) + "|" + rem.Channel
			if d.markSeen(key) {
				continue
			}
			ev := Event{
				TaskID:  rec.ID,
				UserID:  rec.UserID,
				Text:    rec.Text,
				Channel: model.ReminderChannel(rem.Channel),
				At:      rem.At,
			}
			if err := d.engine.Schedule(ev); err != nil {
				d.unmarkSeen(key)
				d.log.Warn("skipping unschedulable reminder", "task_id", rec.ID, "err", err)
				continue
			}
			scheduled++
		}
	}
	if scheduled > 0 {
		d.log.Info("scheduled reminders", "count", scheduled)
	}
	return nil
}

// Run delivers fired events until the context is cancelled or the engine is
// stopped. Delivery failures are logged and do not stop the loop.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-d.engine.C():
			if !ok {
				return
			}
			if err := d.notifier.Notify(ctx, ev); err != nil {
				d.log.Warn("reminder delivery failed", "task_id", ev.TaskID, "user_id", ev.UserID, "err", err)
			}
		}
	}
}

// markSeen records a key and reports whether it was already present.
func (d *Dispatcher) markSeen(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

func (d *Dispatcher) unmarkSeen(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, key)
}
