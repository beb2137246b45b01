package matching

import "sort"

const (
	performanceSkillWeight = 0.7
	performanceHistWeight  = 0.3
)

// SortByScore orders matches descending by score. The sort is stable so
// equal scores keep their incoming order.
func SortByScore(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}

// RankByWorkload re-orders matches by ascending active task count, breaking
// ties by descending match score. taskCounts is keyed by worker ID string.
// Workers missing from the map rank as unloaded.
func RankByWorkload(matches []Match, taskCounts map[string]int) {
	sort.SliceStable(matches, func(i, j int) bool {
		ci := taskCounts[matches[i].Worker.ID.String()]
		cj := taskCounts[matches[j].Worker.ID.String()]
		if ci != cj {
			return ci < cj
		}
		return matches[i].Score > matches[j].Score
	})
}

// RankByPerformance re-orders matches descending by a blend of match score
// and the worker's stored efficiency/quality aggregates.
func RankByPerformance(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return performanceRank(matches[i]) > performanceRank(matches[j])
	})
}

func performanceRank(m Match) float64 {
	hist := (m.Worker.Efficiency + m.Worker.QualityScore) / 2
	return performanceSkillWeight*m.Score + performanceHistWeight*hist
}
