package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// MatchCache is the small cache surface the matching and workload usecases
// rely on. The redis adapter implements it; a nil cache disables caching.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	workloadCacheTTL  = 30 * time.Second
	bestMatchCacheTTL = 60 * time.Second
)

func workloadCacheKey(workerID uuid.UUID) string {
	return "workload:" + workerID.String()
}

func bestMatchCacheKey(taskID uuid.UUID, o BestMatchOptions) string {
	key := "bestmatch:" + taskID.String()
	if o.ConsiderWorkload {
		key += ":wl"
	}
	if o.ConsiderPerformance {
		key += ":perf"
	}
	if o.MaxCandidates > 0 {
		key += ":n" + strconv.Itoa(o.MaxCandidates)
	}
	return key
}
