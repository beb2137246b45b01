package dto

import (
	"mes-workforce/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchResponse struct {
	WorkerID           uuid.UUID `json:"worker_id"`
	WorkerName         string    `json:"worker_name"`
	Status             string    `json:"status"`
	MatchScore         float64   `json:"match_score"`
	MatchedSkills      []string  `json:"matched_skills"`
	MissingSkills      []string  `json:"missing_skills"`
	SkillLevelMatch    bool      `json:"skill_level_match"`
	CertificationValid bool      `json:"certification_valid"`
	Available          bool      `json:"available"`
}

func NewMatchResponse(m matching.Match) MatchResponse {
	return MatchResponse{
		WorkerID:           m.Worker.ID,
		WorkerName:         m.Worker.FullName,
		Status:             string(m.Worker.Status),
		MatchScore:         m.Score,
		MatchedSkills:      m.MatchedSkills,
		MissingSkills:      m.MissingSkills,
		SkillLevelMatch:    m.LevelSatisfied,
		CertificationValid: m.CertificationValid,
		Available:          m.Available,
	}
}

func NewMatchResponses(matches []matching.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, NewMatchResponse(m))
	}
	return out
}
