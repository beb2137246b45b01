package usecase

import (
	"context"
	"errors"
	"log"

	"mes-workforce/internal/domain/worker"
	"mes-workforce/internal/repository"

	"github.com/google/uuid"
)

// Domain event names emitted on worker mutations.
const (
	EventWorkerSkillsUpdated = "worker.skills.updated"
	EventWorkerStatusChanged = "worker.status.changed"
	EventWorkerUnavailable   = "worker.unavailable"
)

// EventEmitter is the fire-and-forget notification sink. Emission happens
// after a successful save and its outcome is never awaited.
type EventEmitter interface {
	Emit(event string, payload any)
}

type WorkforceUsecase interface {
	GetWorker(ctx context.Context, id uuid.UUID) (worker.Worker, error)
	ListWorkers(ctx context.Context, f repository.WorkerFilter) ([]worker.Worker, error)
	UpdateSkills(ctx context.Context, id uuid.UUID, skills []worker.Skill) (worker.Worker, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status worker.Status) (worker.Worker, error)
}

type Workforce struct {
	workers repository.WorkerRepository
	events  EventEmitter
	cache   MatchCache
	logger  *log.Logger
}

func NewWorkforceUsecase(workers repository.WorkerRepository, events EventEmitter, cache MatchCache, logger *log.Logger) *Workforce {
	return &Workforce{workers: workers, events: events, cache: cache, logger: logger}
}

func (u *Workforce) GetWorker(ctx context.Context, id uuid.UUID) (worker.Worker, error) {
	w, err := u.workers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return worker.Worker{}, ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}
	return w, nil
}

func (u *Workforce) ListWorkers(ctx context.Context, f repository.WorkerFilter) ([]worker.Worker, error) {
	return u.workers.List(ctx, f)
}

func (u *Workforce) UpdateSkills(ctx context.Context, id uuid.UUID, skills []worker.Skill) (worker.Worker, error) {
	for _, s := range skills {
		if s.Name == "" || !s.Level.Valid() {
			return worker.Worker{}, ErrInvalidInput
		}
	}

	if err := u.workers.ReplaceSkills(ctx, id, skills); err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return worker.Worker{}, ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}

	w, err := u.workers.FindByID(ctx, id)
	if err != nil {
		return worker.Worker{}, err
	}

	u.invalidateRankings(ctx, id)
	u.emit(EventWorkerSkillsUpdated, map[string]any{
		"worker_id":   w.ID,
		"skill_count": len(w.Skills),
	})
	return w, nil
}

func (u *Workforce) UpdateStatus(ctx context.Context, id uuid.UUID, status worker.Status) (worker.Worker, error) {
	if !status.Valid() {
		return worker.Worker{}, ErrInvalidInput
	}

	if err := u.workers.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return worker.Worker{}, ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}

	w, err := u.workers.FindByID(ctx, id)
	if err != nil {
		return worker.Worker{}, err
	}

	u.invalidateRankings(ctx, id)
	u.emit(EventWorkerStatusChanged, map[string]any{
		"worker_id": w.ID,
		"status":    w.Status,
	})
	if !status.Assignable() {
		u.emit(EventWorkerUnavailable, map[string]any{
			"worker_id": w.ID,
			"status":    w.Status,
		})
	}
	return w, nil
}

func (u *Workforce) invalidateRankings(ctx context.Context, workerID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, workloadCacheKey(workerID)); err != nil && u.logger != nil {
		u.logger.Printf("cache invalidation failed | worker=%s err=%v", workerID, err)
	}
	if err := u.cache.DeleteByPattern(ctx, "bestmatch:*"); err != nil && u.logger != nil {
		u.logger.Printf("cache invalidation failed | pattern=bestmatch:* err=%v", err)
	}
}

func (u *Workforce) emit(event string, payload any) {
	if u.events == nil {
		return
	}
	u.events.Emit(event, payload)
}
