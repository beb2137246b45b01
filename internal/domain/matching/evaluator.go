package matching

import (
	"time"

	"mes-workforce/internal/domain/worker"
)

// SkillRequirement describes one skill a task needs. MinLevel and the flags
// are optional; a Required skill disqualifies a candidate who lacks it
// regardless of the numeric score.
type SkillRequirement struct {
	Name        string
	MinLevel    *worker.Proficiency
	Required    bool
	RequireCert bool
}

// Match is the evaluation of one worker against a requirement set. Score is
// normalized to 0..100. LevelSatisfied is the hard eligibility gate: it flips
// false only when a required skill is absent, not when a present skill is
// below the requested level.
type Match struct {
	Worker             worker.Worker
	Score              float64
	MatchedSkills      []string
	MissingSkills      []string
	LevelSatisfied     bool
	CertificationValid bool
	Available          bool
}

// Eligible reports whether the candidate passes the required-skill gate.
func (m Match) Eligible() bool {
	return m.LevelSatisfied
}

const (
	hasSkillCredit = 0.5
	levelBonusStep = 0.1
)

// Evaluate scores a worker's skill set against a requirement list.
//
// Per requirement: a missing skill contributes 0 (and clears LevelSatisfied
// when required); a present skill with no level constraint contributes 1.0;
// at or above the requested level it contributes 1.0 plus 0.1 per excess
// ordinal level; below it, partial credit 0.5 x (worker level / required
// level). A required certification that is absent or expired halves the
// contribution. The final score is the per-requirement average scaled to 100
// and clamped to [0,100]; an empty requirement list scores 0.
func Evaluate(w worker.Worker, reqs []SkillRequirement) Match {
	return EvaluateAt(w, reqs, time.Now())
}

// EvaluateAt is Evaluate with an explicit evaluation instant for
// certification validity.
func EvaluateAt(w worker.Worker, reqs []SkillRequirement, now time.Time) Match {
	m := Match{
		Worker:             w,
		MatchedSkills:      make([]string, 0, len(reqs)),
		MissingSkills:      make([]string, 0),
		LevelSatisfied:     true,
		CertificationValid: true,
		Available:          w.Status == worker.StatusAvailable,
	}

	if len(reqs) == 0 {
		return m
	}

	var sum float64
	for _, req := range reqs {
		skill, ok := w.SkillByName(req.Name)
		if !ok {
			m.MissingSkills = append(m.MissingSkills, req.Name)
			if req.Required {
				m.LevelSatisfied = false
			}
			continue
		}

		m.MatchedSkills = append(m.MatchedSkills, req.Name)

		score := hasSkillCredit
		if req.MinLevel != nil {
			reqOrd := req.MinLevel.Ordinal()
			wOrd := skill.Level.Ordinal()
			if reqOrd <= 0 {
				score = 1.0
			} else if wOrd >= reqOrd {
				score = 1.0 + levelBonusStep*float64(wOrd-reqOrd)
			} else {
				score = hasSkillCredit * (float64(wOrd) / float64(reqOrd))
			}
		} else {
			score = 1.0
		}

		if req.RequireCert && !skill.CertificationValidAt(now) {
			score /= 2
			m.CertificationValid = false
		}

		sum += score
	}

	m.Score = clampScore(sum / float64(len(reqs)) * 100)
	return m
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
