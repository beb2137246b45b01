package usecase

import (
	"context"
	"encoding/json"
	"time"

	"mes-workforce/internal/domain/assignment"
	"mes-workforce/internal/domain/schedule"
	"mes-workforce/internal/domain/task"
	"mes-workforce/internal/domain/worker"
	"mes-workforce/internal/repository"

	"github.com/google/uuid"
)

type mockWorkerRepo struct {
	workers []worker.Worker
	listErr error
	findErr error

	lastFilter   repository.WorkerFilter
	statusSet    map[uuid.UUID]worker.Status
	skillsSet    map[uuid.UUID][]worker.Skill
	replaceErr   error
	updateStatus error
}

func (m *mockWorkerRepo) FindByID(_ context.Context, id uuid.UUID) (worker.Worker, error) {
	if m.findErr != nil {
		return worker.Worker{}, m.findErr
	}
	for _, w := range m.workers {
		if w.ID == id {
			if st, ok := m.statusSet[id]; ok {
				w.Status = st
			}
			if sk, ok := m.skillsSet[id]; ok {
				w.Skills = sk
			}
			return w, nil
		}
	}
	return worker.Worker{}, repository.ErrWorkerNotFound
}

func (m *mockWorkerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (worker.Worker, error) {
	for _, w := range m.workers {
		if w.UserID == userID {
			return w, nil
		}
	}
	return worker.Worker{}, repository.ErrWorkerNotFound
}

func (m *mockWorkerRepo) List(_ context.Context, f repository.WorkerFilter) ([]worker.Worker, error) {
	m.lastFilter = f
	if m.listErr != nil {
		return nil, m.listErr
	}

	out := make([]worker.Worker, 0, len(m.workers))
	for _, w := range m.workers {
		if len(f.Statuses) > 0 {
			ok := false
			for _, st := range f.Statuses {
				if w.Status == st {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}
		if f.WorkCenterID != nil {
			if w.WorkCenterID == nil || *w.WorkCenterID != *f.WorkCenterID {
				continue
			}
		}
		out = append(out, w)
	}
	return out, nil
}

func (m *mockWorkerRepo) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	m.workers = append(m.workers, w)
	return w, nil
}

func (m *mockWorkerRepo) UpdateStatus(_ context.Context, id uuid.UUID, status worker.Status) error {
	if m.updateStatus != nil {
		return m.updateStatus
	}
	if _, err := m.FindByID(context.Background(), id); err != nil {
		return err
	}
	if m.statusSet == nil {
		m.statusSet = map[uuid.UUID]worker.Status{}
	}
	m.statusSet[id] = status
	return nil
}

func (m *mockWorkerRepo) ReplaceSkills(_ context.Context, id uuid.UUID, skills []worker.Skill) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	if _, err := m.FindByID(context.Background(), id); err != nil {
		return err
	}
	if m.skillsSet == nil {
		m.skillsSet = map[uuid.UUID][]worker.Skill{}
	}
	m.skillsSet[id] = skills
	return nil
}

func (m *mockWorkerRepo) UpdatePerformance(context.Context, uuid.UUID, float64, float64, int, float64) error {
	return nil
}

func taskFixture(wcID uuid.UUID, taskType string) task.Task {
	return task.Task{
		ID:           uuid.New(),
		Name:         "Fixture Task",
		Type:         taskType,
		Status:       task.StatusPending,
		WorkCenterID: &wcID,
	}
}

type mockTaskRepo struct {
	task task.Task
	err  error
}

func (m mockTaskRepo) FindByID(_ context.Context, id uuid.UUID) (task.Task, error) {
	if m.err != nil {
		return task.Task{}, m.err
	}
	if m.task.ID != id {
		return task.Task{}, repository.ErrTaskNotFound
	}
	return m.task, nil
}

type mockAssignmentRepo struct {
	counts    map[uuid.UUID]int
	completed []assignment.Completed
	err       error
}

func (m mockAssignmentRepo) CountByUserAndStatuses(_ context.Context, userID uuid.UUID, _ []assignment.Status) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.counts[userID], nil
}

func (m mockAssignmentRepo) FindCompletedByUser(context.Context, uuid.UUID, repository.CompletedFilter) ([]assignment.Completed, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.completed, nil
}

type mockScheduleRepo struct {
	entries []schedule.Entry
	err     error
}

func (m mockScheduleRepo) FindByWorkerAndDate(_ context.Context, workerID uuid.UUID, date time.Time) ([]schedule.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]schedule.Entry, 0)
	for _, e := range m.entries {
		if e.WorkerID == workerID && schedule.SameDay(e.Date, date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m mockScheduleRepo) FindByWorkerAndDateRange(_ context.Context, workerID uuid.UUID, from, to time.Time) ([]schedule.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]schedule.Entry, 0)
	for _, e := range m.entries {
		if e.WorkerID == workerID && !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockCache struct {
	store           map[string][]byte
	deleted         []string
	deletedPatterns []string
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.store, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	return nil
}

type emittedEvent struct {
	Event   string
	Payload any
}

type mockEmitter struct {
	events []emittedEvent
}

func (m *mockEmitter) Emit(event string, payload any) {
	m.events = append(m.events, emittedEvent{Event: event, Payload: payload})
}
