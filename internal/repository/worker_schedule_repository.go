package repository

import (
	"context"
	"time"

	"mes-workforce/internal/database"
	"mes-workforce/internal/domain/schedule"

	"github.com/google/uuid"
)

type WorkerScheduleRepository interface {
	FindByWorkerAndDate(ctx context.Context, workerID uuid.UUID, date time.Time) ([]schedule.Entry, error)
	FindByWorkerAndDateRange(ctx context.Context, workerID uuid.UUID, from, to time.Time) ([]schedule.Entry, error)
}

type PostgresWorkerScheduleRepository struct {
	db database.DB
}

func NewPostgresWorkerScheduleRepository(db database.DB) *PostgresWorkerScheduleRepository {
	return &PostgresWorkerScheduleRepository{db: db}
}

const scheduleColumns = `id, worker_id, work_date, start_time, end_time, scheduled_hours, is_overtime`

func (r *PostgresWorkerScheduleRepository) FindByWorkerAndDate(ctx context.Context, workerID uuid.UUID, date time.Time) ([]schedule.Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+scheduleColumns+`
		 FROM worker_schedules
		 WHERE worker_id = $1 AND work_date = $2
		 ORDER BY start_time ASC`,
		workerID, date.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanScheduleEntries(rows)
}

func (r *PostgresWorkerScheduleRepository) FindByWorkerAndDateRange(ctx context.Context, workerID uuid.UUID, from, to time.Time) ([]schedule.Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+scheduleColumns+`
		 FROM worker_schedules
		 WHERE worker_id = $1 AND work_date >= $2 AND work_date < $3
		 ORDER BY work_date ASC, start_time ASC`,
		workerID, from.Format("2006-01-02"), to.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanScheduleEntries(rows)
}

func scanScheduleEntries(rows database.Rows) ([]schedule.Entry, error) {
	out := make([]schedule.Entry, 0)
	for rows.Next() {
		var e schedule.Entry
		if err := rows.Scan(&e.ID, &e.WorkerID, &e.Date, &e.StartTime, &e.EndTime, &e.ScheduledHours, &e.IsOvertime); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
