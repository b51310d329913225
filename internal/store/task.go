// File: internal/store/task.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"task-management-api/internal/database"
	"task-management-api/internal/model"
)

func CreateTask(ctx context.Context, db database.DB, t *model.Task) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, completed, created_at, updated_at`,
		t.Title,
		t.Description,
		t.UserID,
	)
	if err := row.Scan(&t.ID, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return t, nil
}

func GetTask(ctx context.Context, db database.DB, scope Scope, taskID uuid.UUID) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, completed, user_id, created_at, updated_at
		 FROM tasks WHERE id = $1 AND ($2 OR user_id = $3)`,
		taskID,
		scope.Admin,
		scope.UserID,
	)
	t := &model.Task{}
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.UserID,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetTask: %w", err)
	}
	return t, nil
}

// ListTasks returns one page of tasks visible in the scope, newest first,
// together with the total number of matching rows.
func ListTasks(ctx context.Context, db database.DB, scope Scope, page, limit int) ([]model.Task, int, error) {
	offset := (page - 1) * limit
	rows, err := db.Query(ctx,
		`SELECT id, title, description, completed, user_id, created_at, updated_at
		 FROM tasks WHERE ($1 OR user_id = $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		scope.Admin,
		scope.UserID,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListTasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Completed,
			&t.UserID,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("ListTasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListTasks: %w", err)
	}

	var total int
	if err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE ($1 OR user_id = $2)`,
		scope.Admin,
		scope.UserID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListTasks: %w", err)
	}
	return tasks, total, nil
}

// UpdateTask writes the in-memory task row back and refreshes updated_at.
// The caller reads the task first and applies its changes; the read and the
// write are not wrapped in a transaction, so concurrent writers interleave
// with last-write-wins semantics.
func UpdateTask(ctx context.Context, db database.DB, scope Scope, t *model.Task) error {
	row := db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, completed = $3, updated_at = now()
		 WHERE id = $4 AND ($5 OR user_id = $6)
		 RETURNING updated_at`,
		t.Title,
		t.Description,
		t.Completed,
		t.ID,
		scope.Admin,
		scope.UserID,
	)
	if err := row.Scan(&t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("UpdateTask: %w", err)
	}
	return nil
}

// DeleteTask removes the task in a single scoped statement.
func DeleteTask(ctx context.Context, db database.DB, scope Scope, taskID uuid.UUID) error {
	var id uuid.UUID
	err := db.QueryRow(ctx,
		`DELETE FROM tasks WHERE id = $1 AND ($2 OR user_id = $3)
		 RETURNING id`,
		taskID,
		scope.Admin,
		scope.UserID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("DeleteTask: %w", err)
	}
	return nil
}
