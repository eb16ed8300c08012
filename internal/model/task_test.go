package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	due := Date{Year: 2026, Month: time.March, Day: 1}
	task := Task{
		ID:        "task-1",
		Text:      "Write storage layer",
		UserID:    "user-1",
		CreatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
		Priority:  PriorityHigh,
		DueDate:   &due,
		Reminders: []Reminder{
			{At: time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC), Channel: ReminderChannelEmail},
		},
		Project: "Inbox",
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRequiredFields(t *testing.T) {
	base := Task{
		ID:        "task-1",
		Text:      "Task",
		UserID:    "user-1",
		CreatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
		Priority:  PriorityNone,
		Project:   "Inbox",
	}

	cases := []struct {
		name   string
		mutate func(*Task)
	}{
		{"missing id", func(in *Task) { in.ID = " " }},
		{"missing text", func(in *Task) { in.Text = "" }},
		{"missing user", func(in *Task) { in.UserID = "" }},
		{"missing project", func(in *Task) { in.Project = "  " }},
		{"missing created_at", func(in *Task) { in.CreatedAt = time.Time{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := base
			tc.mutate(&task)
			if err := task.Validate(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestTaskValidateInvalidPriority(t *testing.T) {
	task := Task{
		ID:        "task-1",
		Text:      "Task",
		UserID:    "user-1",
		CreatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
		Priority:  Priority("urgent"),
		Project:   "Inbox",
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}
}

func TestTaskValidateInvalidReminder(t *testing.T) {
	task := Task{
		ID:        "task-1",
		Text:      "Task",
		UserID:    "user-1",
		CreatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
		Priority:  PriorityLow,
		Project:   "Inbox",
		Reminders: []Reminder{
			{At: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC), Channel: ReminderChannel("sms")},
		},
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidReminderChannel) {
		t.Fatalf("expected ErrInvalidReminderChannel, got: %v", err)
	}
}

func TestPriorityRank(t *testing.T) {
	ranks := map[Priority]int{
		PriorityHigh:   3,
		PriorityMedium: 2,
		PriorityLow:    1,
		PriorityNone:   0,
	}
	for priority, want := range ranks {
		if got := priority.Rank(); got != want {
			t.Fatalf("rank of %q: got %d, want %d", priority, got, want)
		}
	}
	if Priority("bogus").Rank() != 0 {
		t.Fatal("unknown priority must rank as none")
	}
}

func TestPriorityIsValid(t *testing.T) {
	valid := []Priority{PriorityNone, PriorityLow, PriorityMedium, PriorityHigh}
	for _, item := range valid {
		if !item.IsValid() {
			t.Fatalf("expected valid priority: %q", item)
		}
	}
	if Priority("Medium").IsValid() {
		t.Fatal("priorities are case sensitive")
	}
}
