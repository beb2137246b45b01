package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mes-workforce/internal/domain/assignment"
	"mes-workforce/internal/domain/schedule"
	"mes-workforce/internal/domain/worker"
	"mes-workforce/internal/repository"

	"github.com/google/uuid"
)

// WorkloadAnalysis describes a worker's current load for the week in
// progress. AvailableCapacity is floored at zero.
type WorkloadAnalysis struct {
	WorkerID          uuid.UUID `json:"worker_id"`
	WeekStart         time.Time `json:"week_start"`
	ActiveTasks       int       `json:"active_tasks"`
	ScheduledHours    float64   `json:"scheduled_hours"`
	OvertimeHours     float64   `json:"overtime_hours"`
	WeeklyHoursLimit  float64   `json:"weekly_hours_limit"`
	AvailableCapacity float64   `json:"available_capacity"`
	UtilizationRate   float64   `json:"utilization_rate"`
}

// PerformanceMetrics blends the worker's stored aggregates with figures
// derived from completed assignments.
type PerformanceMetrics struct {
	WorkerID             uuid.UUID `json:"worker_id"`
	Efficiency           float64   `json:"efficiency"`
	QualityScore         float64   `json:"quality_score"`
	TotalTasksCompleted  int       `json:"total_tasks_completed"`
	TotalHoursWorked     float64   `json:"total_hours_worked"`
	CompletedAssignments int       `json:"completed_assignments"`
	AvgTaskDurationHours float64   `json:"avg_task_duration_hours"`
	OnTimeRate           float64   `json:"on_time_rate"`
	ReworkRate           float64   `json:"rework_rate"`
}

// AvailabilityCheck is one availability question: a date, an optional HH:mm
// window, and optional hours of work to place.
type AvailabilityCheck struct {
	WorkerID    uuid.UUID
	Date        time.Time
	StartTime   string
	EndTime     string
	HoursNeeded *float64
}

// AvailabilityResult is a structured answer; an unavailable worker is an
// expected outcome, not an error.
type AvailabilityResult struct {
	Available bool             `json:"available"`
	Reason    string           `json:"reason,omitempty"`
	Conflicts []schedule.Entry `json:"conflicts,omitempty"`
}

// DateRange optionally bounds performance queries.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

type WorkloadUsecase interface {
	GetWorkerWorkload(ctx context.Context, workerID uuid.UUID) (WorkloadAnalysis, error)
	GetWorkerPerformance(ctx context.Context, workerID uuid.UUID, r DateRange) (PerformanceMetrics, error)
	CheckAvailability(ctx context.Context, check AvailabilityCheck) (AvailabilityResult, error)
}

type Workload struct {
	workers     repository.WorkerRepository
	schedules   repository.WorkerScheduleRepository
	assignments repository.TaskAssignmentRepository
	cache       MatchCache
	logger      *log.Logger

	now func() time.Time
}

func NewWorkloadUsecase(
	workers repository.WorkerRepository,
	schedules repository.WorkerScheduleRepository,
	assignments repository.TaskAssignmentRepository,
	cache MatchCache,
	logger *log.Logger,
) *Workload {
	return &Workload{
		workers:     workers,
		schedules:   schedules,
		assignments: assignments,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

func (u *Workload) GetWorkerWorkload(ctx context.Context, workerID uuid.UUID) (WorkloadAnalysis, error) {
	if u.cache != nil {
		var cached WorkloadAnalysis
		if found, err := u.cache.GetJSON(ctx, workloadCacheKey(workerID), &cached); err == nil && found {
			return cached, nil
		}
	}

	w, err := u.workers.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return WorkloadAnalysis{}, ErrWorkerNotFound
		}
		return WorkloadAnalysis{}, err
	}

	analysis, err := u.analyzeWorkload(ctx, w)
	if err != nil {
		return WorkloadAnalysis{}, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, workloadCacheKey(workerID), analysis, workloadCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("workload cache store failed | worker=%s err=%v", workerID, err)
		}
	}
	return analysis, nil
}

func (u *Workload) analyzeWorkload(ctx context.Context, w worker.Worker) (WorkloadAnalysis, error) {
	activeTasks := 0
	if w.UserID != uuid.Nil {
		n, err := u.assignments.CountByUserAndStatuses(ctx, w.UserID, assignment.ActiveStatuses())
		if err != nil {
			return WorkloadAnalysis{}, err
		}
		activeTasks = n
	}

	weekStart := schedule.WeekStart(u.now())
	weekEnd := weekStart.AddDate(0, 0, 7)

	entries, err := u.schedules.FindByWorkerAndDateRange(ctx, w.ID, weekStart, weekEnd)
	if err != nil {
		return WorkloadAnalysis{}, err
	}

	var scheduled, overtime float64
	for _, e := range entries {
		scheduled += e.ScheduledHours
		if e.IsOvertime {
			overtime += e.ScheduledHours
		}
	}

	capacity := w.WeeklyHoursLimit - scheduled
	if capacity < 0 {
		capacity = 0
	}
	utilization := 0.0
	if w.WeeklyHoursLimit > 0 {
		utilization = scheduled / w.WeeklyHoursLimit * 100
	}

	return WorkloadAnalysis{
		WorkerID:          w.ID,
		WeekStart:         weekStart,
		ActiveTasks:       activeTasks,
		ScheduledHours:    scheduled,
		OvertimeHours:     overtime,
		WeeklyHoursLimit:  w.WeeklyHoursLimit,
		AvailableCapacity: capacity,
		UtilizationRate:   utilization,
	}, nil
}

func (u *Workload) GetWorkerPerformance(ctx context.Context, workerID uuid.UUID, r DateRange) (PerformanceMetrics, error) {
	w, err := u.workers.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return PerformanceMetrics{}, ErrWorkerNotFound
		}
		return PerformanceMetrics{}, err
	}

	metrics := PerformanceMetrics{
		WorkerID:            w.ID,
		Efficiency:          w.Efficiency,
		QualityScore:        w.QualityScore,
		TotalTasksCompleted: w.TotalTasksCompleted,
		TotalHoursWorked:    w.TotalHoursWorked,
		// No completions means no evidence of lateness.
		OnTimeRate: 100,
	}

	if w.UserID == uuid.Nil {
		return metrics, nil
	}

	completed, err := u.assignments.FindCompletedByUser(ctx, w.UserID, repository.CompletedFilter{From: r.From, To: r.To})
	if err != nil {
		return PerformanceMetrics{}, err
	}
	metrics.CompletedAssignments = len(completed)
	if len(completed) == 0 {
		return metrics, nil
	}

	var durationSum float64
	var durationCount int
	var onTime, reworked int
	for _, c := range completed {
		if c.StartedAt != nil && c.CompletedAt != nil {
			durationSum += c.CompletedAt.Sub(*c.StartedAt).Hours()
			durationCount++
		}
		if c.CompletedAt != nil && (c.TaskDueDate == nil || !c.CompletedAt.After(*c.TaskDueDate)) {
			onTime++
		}
		if c.WasReassigned {
			reworked++
		}
	}

	if durationCount > 0 {
		metrics.AvgTaskDurationHours = durationSum / float64(durationCount)
	}
	metrics.OnTimeRate = float64(onTime) / float64(len(completed)) * 100
	metrics.ReworkRate = float64(reworked) / float64(len(completed)) * 100
	return metrics, nil
}

// CheckAvailability runs the sequential availability gates and short-circuits
// on the first failure: worker status, schedule conflicts for the requested
// window, remaining weekly capacity, then the per-day availability map.
func (u *Workload) CheckAvailability(ctx context.Context, check AvailabilityCheck) (AvailabilityResult, error) {
	w, err := u.workers.FindByID(ctx, check.WorkerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return AvailabilityResult{}, ErrWorkerNotFound
		}
		return AvailabilityResult{}, err
	}

	if !w.Status.Assignable() {
		return AvailabilityResult{
			Available: false,
			Reason:    fmt.Sprintf("Worker status is %s", w.Status),
		}, nil
	}

	if check.StartTime != "" && check.EndTime != "" {
		requested, err := schedule.ParseRange(check.StartTime, check.EndTime)
		if err != nil {
			return AvailabilityResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		entries, err := u.schedules.FindByWorkerAndDate(ctx, w.ID, check.Date)
		if err != nil {
			return AvailabilityResult{}, err
		}

		conflicts := make([]schedule.Entry, 0)
		for _, e := range entries {
			existing, err := schedule.ParseRange(e.StartTime, e.EndTime)
			if err != nil {
				continue
			}
			if requested.Overlaps(existing) {
				conflicts = append(conflicts, e)
			}
		}
		if len(conflicts) > 0 {
			return AvailabilityResult{
				Available: false,
				Reason:    "Schedule conflict",
				Conflicts: conflicts,
			}, nil
		}
	}

	if check.HoursNeeded != nil {
		analysis, err := u.analyzeWorkload(ctx, w)
		if err != nil {
			return AvailabilityResult{}, err
		}
		if *check.HoursNeeded > analysis.AvailableCapacity {
			return AvailabilityResult{
				Available: false,
				Reason: fmt.Sprintf("Insufficient capacity: %.1f hours needed, %.1f available",
					*check.HoursNeeded, analysis.AvailableCapacity),
			}, nil
		}
	}

	if !w.AvailableOn(check.Date.Weekday()) {
		return AvailabilityResult{
			Available: false,
			Reason:    fmt.Sprintf("Worker is not available on %s", check.Date.Weekday()),
		}, nil
	}

	return AvailabilityResult{Available: true}, nil
}
