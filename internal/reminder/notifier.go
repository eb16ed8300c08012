package reminder

import (
	"context"
	"log/slog"
)

// Notifier delivers a fired reminder. Actual email or push transport lives
// outside this module; the default implementation just logs.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, ev Event) error {
	n.log.Info("reminder due",
		"task_id", ev.TaskID,
		"user_id", ev.UserID,
		"channel", string(ev.Channel),
		"text", ev.Text,
	)
	return nil
}
