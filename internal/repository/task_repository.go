package repository

import (
	"context"
	"encoding/json"
	"errors"

	"mes-workforce/internal/database"
	"mes-workforce/internal/domain/task"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (task.Task, error)
}

type PostgresTaskRepository struct {
	db database.DB
}

func NewPostgresTaskRepository(db database.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (task.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT t.id, t.name, t.type, t.status, t.work_center_id, COALESCE(wc.name, ''),
			t.due_date, t.estimated_hours, t.metadata, t.created_at, t.updated_at
		 FROM tasks t
		 LEFT JOIN work_centers wc ON wc.id = t.work_center_id
		 WHERE t.id = $1`,
		id,
	)

	var t task.Task
	var status string
	var meta []byte
	err := row.Scan(
		&t.ID, &t.Name, &t.Type, &status, &t.WorkCenterID, &t.WorkCenterName,
		&t.DueDate, &t.EstimatedHours, &meta, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, ErrTaskNotFound
		}
		return task.Task{}, err
	}
	t.Status = task.Status(status)

	if len(meta) > 0 {
		var m task.Metadata
		if err := json.Unmarshal(meta, &m); err != nil {
			return task.Task{}, err
		}
		t.Metadata = &m
	}
	return t, nil
}
