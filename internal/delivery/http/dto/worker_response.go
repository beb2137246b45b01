package dto

import (
	"time"

	"mes-workforce/internal/domain/worker"

	"github.com/google/uuid"
)

type SkillResponse struct {
	Name          string     `json:"name"`
	Level         string     `json:"level"`
	CertifiedAt   *time.Time `json:"certified_at,omitempty"`
	CertExpiresAt *time.Time `json:"cert_expires_at,omitempty"`
}

type WorkerResponse struct {
	ID                  uuid.UUID       `json:"id"`
	EmployeeCode        string          `json:"employee_code"`
	FullName            string          `json:"full_name"`
	Department          string          `json:"department,omitempty"`
	ShiftType           string          `json:"shift_type,omitempty"`
	Status              string          `json:"status"`
	WorkCenterID        *uuid.UUID      `json:"work_center_id,omitempty"`
	Skills              []SkillResponse `json:"skills"`
	WeeklyHoursLimit    float64         `json:"weekly_hours_limit"`
	DailyHoursLimit     float64         `json:"daily_hours_limit"`
	Efficiency          float64         `json:"efficiency"`
	QualityScore        float64         `json:"quality_score"`
	TotalTasksCompleted int             `json:"total_tasks_completed"`
	TotalHoursWorked    float64         `json:"total_hours_worked"`
}

func NewWorkerResponse(w worker.Worker) WorkerResponse {
	skills := make([]SkillResponse, 0, len(w.Skills))
	for _, s := range w.Skills {
		skills = append(skills, SkillResponse{
			Name:          s.Name,
			Level:         string(s.Level),
			CertifiedAt:   s.CertifiedAt,
			CertExpiresAt: s.CertExpiresAt,
		})
	}

	return WorkerResponse{
		ID:                  w.ID,
		EmployeeCode:        w.EmployeeCode,
		FullName:            w.FullName,
		Department:          w.Department,
		ShiftType:           w.ShiftType,
		Status:              string(w.Status),
		WorkCenterID:        w.WorkCenterID,
		Skills:              skills,
		WeeklyHoursLimit:    w.WeeklyHoursLimit,
		DailyHoursLimit:     w.DailyHoursLimit,
		Efficiency:          w.Efficiency,
		QualityScore:        w.QualityScore,
		TotalTasksCompleted: w.TotalTasksCompleted,
		TotalHoursWorked:    w.TotalHoursWorked,
	}
}
