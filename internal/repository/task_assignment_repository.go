package repository

import (
	"context"
	"time"

	"mes-workforce/internal/database"
	"mes-workforce/internal/domain/assignment"

	"github.com/google/uuid"
)

// CompletedFilter optionally bounds completed-assignment queries by
// completion date.
type CompletedFilter struct {
	From *time.Time
	To   *time.Time
}

type TaskAssignmentRepository interface {
	CountByUserAndStatuses(ctx context.Context, userID uuid.UUID, statuses []assignment.Status) (int, error)
	FindCompletedByUser(ctx context.Context, userID uuid.UUID, f CompletedFilter) ([]assignment.Completed, error)
}

type PostgresTaskAssignmentRepository struct {
	db database.DB
}

func NewPostgresTaskAssignmentRepository(db database.DB) *PostgresTaskAssignmentRepository {
	return &PostgresTaskAssignmentRepository{db: db}
}

func (r *PostgresTaskAssignmentRepository) CountByUserAndStatuses(ctx context.Context, userID uuid.UUID, statuses []assignment.Status) (int, error) {
	ss := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ss = append(ss, string(s))
	}

	var n int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM task_assignments WHERE user_id = $1 AND status = ANY($2)`,
		userID, ss,
	)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresTaskAssignmentRepository) FindCompletedByUser(ctx context.Context, userID uuid.UUID, f CompletedFilter) ([]assignment.Completed, error) {
	query := `SELECT a.id, a.task_id, a.user_id, a.status, a.assigned_at, a.started_at, a.completed_at,
		a.estimated_hours, a.actual_hours, a.was_reassigned, t.due_date
	 FROM task_assignments a
	 JOIN tasks t ON t.id = a.task_id
	 WHERE a.user_id = $1 AND a.status = $2 AND a.completed_at IS NOT NULL`

	args := []any{userID, string(assignment.StatusCompleted)}
	if f.From != nil {
		args = append(args, *f.From)
		query += ` AND a.completed_at >= $3`
	}
	if f.To != nil {
		args = append(args, *f.To)
		if f.From != nil {
			query += ` AND a.completed_at <= $4`
		} else {
			query += ` AND a.completed_at <= $3`
		}
	}
	query += ` ORDER BY a.completed_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assignment.Completed, 0)
	for rows.Next() {
		var c assignment.Completed
		var status string
		if err := rows.Scan(
			&c.ID, &c.TaskID, &c.UserID, &status, &c.AssignedAt, &c.StartedAt, &c.CompletedAt,
			&c.EstimatedHours, &c.ActualHours, &c.WasReassigned, &c.TaskDueDate,
		); err != nil {
			return nil, err
		}
		c.Status = assignment.Status(status)
		out = append(out, c)
	}
	return out, rows.Err()
}
