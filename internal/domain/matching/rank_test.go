package matching

import (
	"testing"

	"mes-workforce/internal/domain/worker"

	"github.com/google/uuid"
)

func matchWith(id uuid.UUID, score, efficiency, quality float64) Match {
	return Match{
		Worker: worker.Worker{ID: id, Efficiency: efficiency, QualityScore: quality},
		Score:  score,
	}
}

func TestSortByScore_DescendingStable(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	matches := []Match{
		matchWith(a, 40, 0, 0),
		matchWith(b, 90, 0, 0),
		matchWith(c, 90, 0, 0),
	}

	SortByScore(matches)

	if matches[0].Worker.ID != b || matches[1].Worker.ID != c {
		t.Fatalf("equal scores must keep incoming order")
	}
	if matches[2].Worker.ID != a {
		t.Fatalf("lowest score must sort last")
	}
}

func TestRankByWorkload_AscendingCountThenScore(t *testing.T) {
	busy, idle, idleLow := uuid.New(), uuid.New(), uuid.New()
	matches := []Match{
		matchWith(busy, 95, 0, 0),
		matchWith(idleLow, 60, 0, 0),
		matchWith(idle, 80, 0, 0),
	}
	counts := map[string]int{
		busy.String(): 3,
		idle.String(): 0,
		// idleLow absent from the map ranks as unloaded.
	}

	RankByWorkload(matches, counts)

	if matches[0].Worker.ID != idle {
		t.Fatalf("expected unloaded high-score worker first, got %v", matches[0].Worker.ID)
	}
	if matches[1].Worker.ID != idleLow {
		t.Fatalf("expected unloaded low-score worker second, got %v", matches[1].Worker.ID)
	}
	if matches[2].Worker.ID != busy {
		t.Fatalf("expected loaded worker last even with the best score")
	}
}

func TestRankByPerformance_BlendsScoreAndAggregates(t *testing.T) {
	strong, weak := uuid.New(), uuid.New()
	matches := []Match{
		// 0.7*80 + 0.3*((50+50)/2) = 71
		matchWith(weak, 80, 50, 50),
		// 0.7*75 + 0.3*((95+95)/2) = 81
		matchWith(strong, 75, 95, 95),
	}

	RankByPerformance(matches)

	if matches[0].Worker.ID != strong {
		t.Fatalf("history blend must outrank raw score")
	}
}
