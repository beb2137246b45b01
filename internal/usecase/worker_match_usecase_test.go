package usecase

import (
	"context"
	"errors"
	"testing"

	"mes-workforce/internal/domain/matching"
	"mes-workforce/internal/domain/worker"
	"mes-workforce/internal/repository"

	"github.com/google/uuid"
)

func assemblyWorker(name string, status worker.Status, skills ...worker.Skill) worker.Worker {
	return worker.Worker{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		FullName: name,
		Status:   status,
		Skills:   skills,
	}
}

func TestFindWorkersWithSkills_ExcludesUnavailableByDefault(t *testing.T) {
	available := assemblyWorker("Available", worker.StatusAvailable,
		worker.Skill{Name: "Assembly", Level: worker.ProficiencyAdvanced})
	sick := assemblyWorker("Sick", worker.StatusSickLeave,
		worker.Skill{Name: "Assembly", Level: worker.ProficiencyExpert})

	repo := &mockWorkerRepo{workers: []worker.Worker{available, sick}}
	uc := NewWorkerMatchUsecase(repo, mockTaskRepo{}, mockAssignmentRepo{}, nil, nil, nil)

	reqs := []matching.SkillRequirement{{Name: "Assembly", Required: true}}
	matches, err := uc.FindWorkersWithSkills(context.Background(), reqs, FindOptions{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 1 || matches[0].Worker.ID != available.ID {
		t.Fatalf("expected only the available worker, got %d matches", len(matches))
	}

	matches, err = uc.FindWorkersWithSkills(context.Background(), reqs, FindOptions{IncludeUnavailable: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected both workers when including unavailable, got %d", len(matches))
	}
}

func TestFindWorkersWithSkills_SortedAndFloored(t *testing.T) {
	lvl := worker.ProficiencyIntermediate
	reqs := []matching.SkillRequirement{{Name: "Assembly", MinLevel: &lvl, Required: true}}

	strong := assemblyWorker("Strong", worker.StatusAvailable,
		worker.Skill{Name: "Assembly", Level: worker.ProficiencyExpert})
	weak := assemblyWorker("Weak", worker.StatusAvailable,
		worker.Skill{Name: "Assembly", Level: worker.ProficiencyBeginner})
	none := assemblyWorker("None", worker.StatusAvailable)

	repo := &mockWorkerRepo{workers: []worker.Worker{weak, none, strong}}
	uc := NewWorkerMatchUsecase(repo, mockTaskRepo{}, mockAssignmentRepo{}, nil, nil, nil)

	matches, err := uc.FindWorkersWithSkills(context.Background(), reqs, FindOptions{MinimumMatchScore: 30})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected only workers above the floor, got %d", len(matches))
	}
	if matches[0].Worker.ID != strong.ID {
		t.Fatalf("expected the strong worker first")
	}
}

func TestFindBestMatchForTask_TaskNotFound(t *testing.T) {
	uc := NewWorkerMatchUsecase(&mockWorkerRepo{}, mockTaskRepo{err: repository.ErrTaskNotFound}, mockAssignmentRepo{}, nil, nil, nil)

	_, err := uc.FindBestMatchForTask(context.Background(), uuid.New(), BestMatchOptions{})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func bestMatchFixture() (*mockWorkerRepo, mockTaskRepo, mockAssignmentRepo, worker.Worker, worker.Worker) {
	// Assembly task defaults: Assembly intermediate (required) plus
	// Quality Control beginner (optional).
	wcID := uuid.New()
	tk := taskFixture(wcID, "assembly")

	busyExpert := assemblyWorker("Busy Expert", worker.StatusAvailable,
		worker.Skill{Name: "Assembly", Level: worker.ProficiencyExpert},
		worker.Skill{Name: "Quality Control", Level: worker.ProficiencyAdvanced})
	busyExpert.WorkCenterID = &wcID
	busyExpert.Efficiency = 95
	busyExpert.QualityScore = 95

	idleSolid := assemblyWorker("Idle Solid", worker.StatusAvailable,
		worker.Skill{Name: "Assembly", Level: worker.ProficiencyIntermediate})
	idleSolid.WorkCenterID = &wcID
	idleSolid.Efficiency = 60
	idleSolid.QualityScore = 60

	elsewhere := assemblyWorker("Elsewhere", worker.StatusAvailable,
		worker.Skill{Name: "Assembly", Level: worker.ProficiencyExpert})

	workers := &mockWorkerRepo{workers: []worker.Worker{busyExpert, idleSolid, elsewhere}}
	assignments := mockAssignmentRepo{counts: map[uuid.UUID]int{
		busyExpert.UserID: 4,
		idleSolid.UserID:  0,
	}}

	return workers, mockTaskRepo{task: tk}, assignments, busyExpert, idleSolid
}

func TestFindBestMatchForTask_ScopedToWorkCenterAndSorted(t *testing.T) {
	workers, tasks, assignments, busyExpert, idleSolid := bestMatchFixture()
	uc := NewWorkerMatchUsecase(workers, tasks, assignments, matching.DefaultTypeSkills(), nil, nil)

	matches, err := uc.FindBestMatchForTask(context.Background(), tasks.task.ID, BestMatchOptions{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 in-center candidates, got %d", len(matches))
	}
	if matches[0].Worker.ID != busyExpert.ID || matches[1].Worker.ID != idleSolid.ID {
		t.Fatalf("expected score ordering busyExpert then idleSolid")
	}
}

func TestFindBestMatchForTask_WorkloadRefinerReordersByActiveTasks(t *testing.T) {
	workers, tasks, assignments, busyExpert, idleSolid := bestMatchFixture()
	uc := NewWorkerMatchUsecase(workers, tasks, assignments, matching.DefaultTypeSkills(), nil, nil)

	matches, err := uc.FindBestMatchForTask(context.Background(), tasks.task.ID, BestMatchOptions{ConsiderWorkload: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if matches[0].Worker.ID != idleSolid.ID {
		t.Fatalf("workload refiner must put the idle worker first")
	}
	if matches[1].Worker.ID != busyExpert.ID {
		t.Fatalf("busy worker must rank last under the workload refiner")
	}
}

func TestFindBestMatchForTask_PerformanceRefinerWinsWhenBothSet(t *testing.T) {
	workers, tasks, assignments, busyExpert, _ := bestMatchFixture()
	uc := NewWorkerMatchUsecase(workers, tasks, assignments, matching.DefaultTypeSkills(), nil, nil)

	matches, err := uc.FindBestMatchForTask(context.Background(), tasks.task.ID, BestMatchOptions{
		ConsiderWorkload:    true,
		ConsiderPerformance: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// The performance sort runs last and replaces the workload ordering.
	if matches[0].Worker.ID != busyExpert.ID {
		t.Fatalf("performance refiner must win when both flags are set")
	}
}

func TestFindBestMatchForTask_MaxCandidates(t *testing.T) {
	workers, tasks, assignments, _, _ := bestMatchFixture()
	uc := NewWorkerMatchUsecase(workers, tasks, assignments, matching.DefaultTypeSkills(), nil, nil)

	matches, err := uc.FindBestMatchForTask(context.Background(), tasks.task.ID, BestMatchOptions{MaxCandidates: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected truncation to 1 candidate, got %d", len(matches))
	}
}

func TestFindBestMatchForTask_CachesResult(t *testing.T) {
	workers, tasks, assignments, _, _ := bestMatchFixture()
	cache := newMockCache()
	uc := NewWorkerMatchUsecase(workers, tasks, assignments, matching.DefaultTypeSkills(), cache, nil)

	first, err := uc.FindBestMatchForTask(context.Background(), tasks.task.ID, BestMatchOptions{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.store) != 1 {
		t.Fatalf("expected one cached ranking, got %d", len(cache.store))
	}

	// Second call must come from the cache even after the population changes.
	workers.workers = nil
	second, err := uc.FindBestMatchForTask(context.Background(), tasks.task.ID, BestMatchOptions{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected cached result, got %d matches", len(second))
	}
}

func TestFindBestMatchForTask_CacheKeyVariesWithOptions(t *testing.T) {
	id := uuid.New()
	base := bestMatchCacheKey(id, BestMatchOptions{})
	wl := bestMatchCacheKey(id, BestMatchOptions{ConsiderWorkload: true})
	perf := bestMatchCacheKey(id, BestMatchOptions{ConsiderPerformance: true})
	capped := bestMatchCacheKey(id, BestMatchOptions{MaxCandidates: 3})

	seen := map[string]bool{base: true}
	for _, k := range []string{wl, perf, capped} {
		if seen[k] {
			t.Fatalf("cache keys must differ per option set: %q", k)
		}
		seen[k] = true
	}
}
