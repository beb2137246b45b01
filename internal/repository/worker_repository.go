package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"mes-workforce/internal/database"
	"mes-workforce/internal/domain/worker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrWorkerNotFound = errors.New("worker not found")

// WorkerFilter narrows the worker population for List. Zero values mean no
// restriction.
type WorkerFilter struct {
	Statuses     []worker.Status
	WorkCenterID *uuid.UUID
	Department   string
	ShiftType    string
	SkillName    string
}

type WorkerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (worker.Worker, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (worker.Worker, error)
	List(ctx context.Context, f WorkerFilter) ([]worker.Worker, error)
	Create(ctx context.Context, w worker.Worker) (worker.Worker, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status worker.Status) error
	ReplaceSkills(ctx context.Context, id uuid.UUID, skills []worker.Skill) error
	UpdatePerformance(ctx context.Context, id uuid.UUID, efficiency, qualityScore float64, tasksCompleted int, hoursWorked float64) error
}

type PostgresWorkerRepository struct {
	db database.DB
}

func NewPostgresWorkerRepository(db database.DB) *PostgresWorkerRepository {
	return &PostgresWorkerRepository{db: db}
}

const workerColumns = `w.id, w.user_id, w.employee_code, w.full_name, w.department, w.shift_type,
	w.status, w.work_center_id, w.weekly_hours_limit, w.daily_hours_limit,
	w.efficiency, w.quality_score, w.total_tasks_completed, w.total_hours_worked,
	w.day_availability, w.created_at, w.updated_at`

func (r *PostgresWorkerRepository) FindByID(ctx context.Context, id uuid.UUID) (worker.Worker, error) {
	return r.findOne(ctx, `SELECT `+workerColumns+` FROM workers w WHERE w.id = $1`, id)
}

func (r *PostgresWorkerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (worker.Worker, error) {
	return r.findOne(ctx, `SELECT `+workerColumns+` FROM workers w WHERE w.user_id = $1`, userID)
}

func (r *PostgresWorkerRepository) findOne(ctx context.Context, query string, arg any) (worker.Worker, error) {
	row := r.db.QueryRow(ctx, query, arg)

	w, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}

	skills, err := r.loadSkills(ctx, []uuid.UUID{w.ID})
	if err != nil {
		return worker.Worker{}, err
	}
	w.Skills = skills[w.ID]
	return w, nil
}

func (r *PostgresWorkerRepository) List(ctx context.Context, f WorkerFilter) ([]worker.Worker, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + workerColumns + ` FROM workers w`)

	args := make([]any, 0, 4)
	conds := make([]string, 0, 4)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.SkillName != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM worker_skills ws WHERE ws.worker_id = w.id AND lower(ws.name) = lower(`+arg(f.SkillName)+`))`)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		conds = append(conds, `w.status = ANY(`+arg(statuses)+`)`)
	}
	if f.WorkCenterID != nil {
		conds = append(conds, `w.work_center_id = `+arg(*f.WorkCenterID))
	}
	if f.Department != "" {
		conds = append(conds, `w.department = `+arg(f.Department))
	}
	if f.ShiftType != "" {
		conds = append(conds, `w.shift_type = `+arg(f.ShiftType))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY w.full_name ASC")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := make([]worker.Worker, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
		ids = append(ids, w.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := r.loadSkills(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range workers {
		workers[i].Skills = skills[workers[i].ID]
	}
	return workers, nil
}

func (r *PostgresWorkerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if !w.Status.Valid() {
		w.Status = worker.StatusAvailable
	}

	avail, err := marshalDayAvailability(w.DayAvailability)
	if err != nil {
		return worker.Worker{}, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO workers (id, user_id, employee_code, full_name, department, shift_type, status,
			work_center_id, weekly_hours_limit, daily_hours_limit, day_availability)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		w.ID, nullableUUID(w.UserID), w.EmployeeCode, w.FullName, w.Department, w.ShiftType,
		string(w.Status), w.WorkCenterID, w.WeeklyHoursLimit, w.DailyHoursLimit, avail,
	)
	if err != nil {
		return worker.Worker{}, err
	}

	if len(w.Skills) > 0 {
		if err := r.ReplaceSkills(ctx, w.ID, w.Skills); err != nil {
			return worker.Worker{}, err
		}
	}
	return r.FindByID(ctx, w.ID)
}

func (r *PostgresWorkerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status worker.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE workers SET status = $1, updated_at = now() WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

// ReplaceSkills swaps the worker's full skill set inside one transaction.
func (r *PostgresWorkerRepository) ReplaceSkills(ctx context.Context, id uuid.UUID, skills []worker.Skill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM workers WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrWorkerNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM worker_skills WHERE worker_id = $1`, id); err != nil {
		return err
	}

	for _, s := range skills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO worker_skills (id, worker_id, name, level, certified_at, cert_expires_at)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			uuid.New(), id, s.Name, string(s.Level), s.CertifiedAt, s.CertExpiresAt,
		); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `UPDATE workers SET updated_at = now() WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresWorkerRepository) UpdatePerformance(ctx context.Context, id uuid.UUID, efficiency, qualityScore float64, tasksCompleted int, hoursWorked float64) error {
	n, err := r.db.Exec(ctx,
		`UPDATE workers SET efficiency = $1, quality_score = $2, total_tasks_completed = $3,
			total_hours_worked = $4, updated_at = now()
		 WHERE id = $5`,
		efficiency, qualityScore, tasksCompleted, hoursWorked, id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

func (r *PostgresWorkerRepository) loadSkills(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]worker.Skill, error) {
	out := make(map[uuid.UUID][]worker.Skill, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT worker_id, name, level, certified_at, cert_expires_at
		 FROM worker_skills
		 WHERE worker_id = ANY($1)
		 ORDER BY name ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var workerID uuid.UUID
		var s worker.Skill
		var level string
		if err := rows.Scan(&workerID, &s.Name, &level, &s.CertifiedAt, &s.CertExpiresAt); err != nil {
			return nil, err
		}
		s.Level = worker.Proficiency(level)
		out[workerID] = append(out[workerID], s)
	}
	return out, rows.Err()
}

func scanWorker(row database.Row) (worker.Worker, error) {
	var w worker.Worker
	var userID *uuid.UUID
	var status string
	var avail []byte

	err := row.Scan(
		&w.ID, &userID, &w.EmployeeCode, &w.FullName, &w.Department, &w.ShiftType,
		&status, &w.WorkCenterID, &w.WeeklyHoursLimit, &w.DailyHoursLimit,
		&w.Efficiency, &w.QualityScore, &w.TotalTasksCompleted, &w.TotalHoursWorked,
		&avail, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, err
	}

	if userID != nil {
		w.UserID = *userID
	}
	w.Status = worker.Status(status)

	if len(avail) > 0 {
		m, err := unmarshalDayAvailability(avail)
		if err != nil {
			return worker.Worker{}, err
		}
		w.DayAvailability = m
	}
	return w, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func unmarshalDayAvailability(b []byte) (map[time.Weekday]bool, error) {
	var raw map[string]bool
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[time.Weekday]bool, len(raw))
	for name, allowed := range raw {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		out[day] = allowed
	}
	return out, nil
}

func marshalDayAvailability(m map[time.Weekday]bool) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw := make(map[string]bool, len(m))
	for day, allowed := range m {
		raw[strings.ToLower(day.String())] = allowed
	}
	return json.Marshal(raw)
}

func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
