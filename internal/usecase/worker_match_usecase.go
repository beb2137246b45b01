package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"mes-workforce/internal/domain/assignment"
	"mes-workforce/internal/domain/matching"
	"mes-workforce/internal/domain/worker"
	"mes-workforce/internal/repository"

	"github.com/google/uuid"
)

// FindOptions tunes the candidate finder. MinimumMatchScore of 0 means no
// floor.
type FindOptions struct {
	IncludeUnavailable bool
	WorkCenterID       *uuid.UUID
	MinimumMatchScore  float64
}

// BestMatchOptions tunes the best-match orchestration. The two refiners each
// replace the base ordering; when both are set, the performance sort runs
// last and its criterion wins.
type BestMatchOptions struct {
	ConsiderWorkload    bool
	ConsiderPerformance bool
	MaxCandidates       int
}

// bestMatchScoreFloor is the fixed minimum score the best-match path applies
// before refinement.
const bestMatchScoreFloor = 50.0

type WorkerMatchUsecase interface {
	FindWorkersWithSkills(ctx context.Context, reqs []matching.SkillRequirement, opts FindOptions) ([]matching.Match, error)
	FindBestMatchForTask(ctx context.Context, taskID uuid.UUID, opts BestMatchOptions) ([]matching.Match, error)
}

type WorkerMatch struct {
	workers     repository.WorkerRepository
	tasks       repository.TaskRepository
	assignments repository.TaskAssignmentRepository
	defaults    matching.TypeDefaults
	cache       MatchCache
	logger      *log.Logger

	now func() time.Time
}

func NewWorkerMatchUsecase(
	workers repository.WorkerRepository,
	tasks repository.TaskRepository,
	assignments repository.TaskAssignmentRepository,
	defaults matching.TypeDefaults,
	cache MatchCache,
	logger *log.Logger,
) *WorkerMatch {
	return &WorkerMatch{
		workers:     workers,
		tasks:       tasks,
		assignments: assignments,
		defaults:    defaults,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

// FindWorkersWithSkills scores the worker population against the given
// requirements and returns candidates ranked by descending match score.
func (u *WorkerMatch) FindWorkersWithSkills(ctx context.Context, reqs []matching.SkillRequirement, opts FindOptions) ([]matching.Match, error) {
	filter := repository.WorkerFilter{WorkCenterID: opts.WorkCenterID}
	if !opts.IncludeUnavailable {
		filter.Statuses = []worker.Status{worker.StatusAvailable, worker.StatusWorking}
	}

	population, err := u.workers.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := u.now()
	matches := make([]matching.Match, 0, len(population))
	for _, w := range population {
		m := matching.EvaluateAt(w, reqs, now)
		if opts.MinimumMatchScore > 0 && m.Score < opts.MinimumMatchScore {
			continue
		}
		matches = append(matches, m)
	}

	matching.SortByScore(matches)
	return matches, nil
}

// FindBestMatchForTask ranks candidates for a task: requirements come from
// task metadata plus the type-default table, candidates are scoped to the
// task's work center with a fixed score floor, then optionally re-ranked by
// workload or performance.
func (u *WorkerMatch) FindBestMatchForTask(ctx context.Context, taskID uuid.UUID, opts BestMatchOptions) ([]matching.Match, error) {
	if cached, ok := u.cachedBestMatch(ctx, taskID, opts); ok {
		return cached, nil
	}

	t, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	reqs := matching.ExtractRequirements(t, u.defaults)

	matches, err := u.FindWorkersWithSkills(ctx, reqs, FindOptions{
		WorkCenterID:      t.WorkCenterID,
		MinimumMatchScore: bestMatchScoreFloor,
	})
	if err != nil {
		return nil, err
	}

	if opts.ConsiderWorkload {
		counts, err := u.activeTaskCounts(ctx, matches)
		if err != nil {
			return nil, err
		}
		matching.RankByWorkload(matches, counts)
	}

	if opts.ConsiderPerformance {
		matching.RankByPerformance(matches)
	}

	if opts.MaxCandidates > 0 && len(matches) > opts.MaxCandidates {
		matches = matches[:opts.MaxCandidates]
	}

	if u.logger != nil {
		u.logger.Printf("best match | task=%s candidates=%d workload=%t performance=%t",
			taskID, len(matches), opts.ConsiderWorkload, opts.ConsiderPerformance)
	}

	u.storeBestMatch(ctx, taskID, opts, matches)
	return matches, nil
}

func (u *WorkerMatch) activeTaskCounts(ctx context.Context, matches []matching.Match) (map[string]int, error) {
	counts := make(map[string]int, len(matches))
	for _, m := range matches {
		if m.Worker.UserID == uuid.Nil {
			continue
		}
		n, err := u.assignments.CountByUserAndStatuses(ctx, m.Worker.UserID, assignment.ActiveStatuses())
		if err != nil {
			return nil, err
		}
		counts[m.Worker.ID.String()] = n
	}
	return counts, nil
}

func (u *WorkerMatch) cachedBestMatch(ctx context.Context, taskID uuid.UUID, opts BestMatchOptions) ([]matching.Match, bool) {
	if u.cache == nil {
		return nil, false
	}
	var out []matching.Match
	found, err := u.cache.GetJSON(ctx, bestMatchCacheKey(taskID, opts), &out)
	if err != nil || !found {
		return nil, false
	}
	return out, true
}

func (u *WorkerMatch) storeBestMatch(ctx context.Context, taskID uuid.UUID, opts BestMatchOptions, matches []matching.Match) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, bestMatchCacheKey(taskID, opts), matches, bestMatchCacheTTL); err != nil && u.logger != nil {
		u.logger.Printf("best match cache store failed | task=%s err=%v", taskID, err)
	}
}
