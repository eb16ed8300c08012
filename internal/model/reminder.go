package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidReminderChannel = errors.New("model: invalid reminder channel")

type ReminderChannel string

const (
	ReminderChannelNotification ReminderChannel = "notification"
	ReminderChannelEmail        ReminderChannel = "email"
)

func (c ReminderChannel) IsValid() bool {
	switch c {
	case ReminderChannelNotification, ReminderChannelEmail:
		return true
	default:
		return false
	}
}

// Reminder is one scheduled nudge attached to a task.
type Reminder struct {
	At      time.Time
	Channel ReminderChannel
}

func (r Reminder) Validate() error {
	if r.At.IsZero() {
		return errors.New("model: reminder time is required")
	}
	if !r.Channel.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidReminderChannel, r.Channel)
	}
	return nil
}
