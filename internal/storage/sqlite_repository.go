package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) (string, error) {
	id := uuid.NewString()
	reminders, err := marshalReminders(in.Reminders)
	if err != nil {
		return "", err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, text, is_completed, priority, due_date, reminders, project, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, in.UserID, in.Text, boolInt(in.IsCompleted), in.Priority,
		nullString(in.DueDate), reminders, in.Project, in.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, text, is_completed, priority, due_date, reminders, project, created_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

// UpdateTask overwrites the mutable columns of a record. UserID and
// created_at are deliberately absent from the SET clause; both are immutable.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, in Task) error {
	reminders, err := marshalReminders(in.Reminders)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET text = ?, is_completed = ?, priority = ?, due_date = ?, reminders = ?, project = ?
		WHERE id = ?`,
		in.Text, boolInt(in.IsCompleted), in.Priority, nullString(in.DueDate), reminders, in.Project, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	query := `SELECT id, user_id, text, is_completed, priority, due_date, reminders, project, created_at FROM tasks`
	clauses := make([]string, 0, 4)
	args := make([]any, 0, 6)
	if filter.UserID != "" {
		clauses = append(clauses, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.Priority != "" {
		clauses = append(clauses, "priority = ?")
		args = append(args, filter.Priority)
	}
	if filter.DueDate != "" {
		clauses = append(clauses, "due_date = ?")
		args = append(args, filter.DueDate)
	}
	if filter.Completed != nil {
		clauses = append(clauses, "is_completed = ?")
		args = append(args, boolInt(*filter.Completed))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC, id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) ListUsers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT user_id FROM tasks ORDER BY user_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, scanErr
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func marshalReminders(reminders []Reminder) (string, error) {
	if len(reminders) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(reminders)
	if err != nil {
		return "", fmt.Errorf("marshal reminders: %w", err)
	}
	return string(raw), nil
}

func unmarshalReminders(raw string) ([]Reminder, error) {
	if raw == "" || raw == "[]" {
		return []Reminder{}, nil
	}
	var out []Reminder
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("unmarshal reminders: %w", err)
	}
	return out, nil
}

func nullString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var completed int
	var due sql.NullString
	var reminders string
	var createdMillis int64
	if err := s.Scan(&out.ID, &out.UserID, &out.Text, &completed, &out.Priority, &due, &reminders, &out.Project, &createdMillis); err != nil {
		return Task{}, err
	}
	parsed, err := unmarshalReminders(reminders)
	if err != nil {
		return Task{}, err
	}
	out.IsCompleted = completed == 1
	if due.Valid && due.String != "" {
		value := due.String
		out.DueDate = &value
	}
	out.Reminders = parsed
	out.CreatedAt = time.UnixMilli(createdMillis).UTC()
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
