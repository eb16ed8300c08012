package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the task store contract. CreateTask assigns the record id
// and returns it; every list is scoped by user via TaskListFilter.
type Repository interface {
	CreateTask(ctx context.Context, in Task) (string, error)
	GetTask(ctx context.Context, id string) (Task, error)
	UpdateTask(ctx context.Context, in Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error)
	ListUsers(ctx context.Context) ([]string, error)
}
