package dto

import (
	"time"

	"mes-workforce/internal/domain/schedule"
	"mes-workforce/internal/usecase"

	"github.com/google/uuid"
)

type ScheduleEntryResponse struct {
	ID             uuid.UUID `json:"id"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	ScheduledHours float64   `json:"scheduled_hours"`
	IsOvertime     bool      `json:"is_overtime"`
}

type AvailabilityResponse struct {
	Available bool                    `json:"available"`
	Reason    string                  `json:"reason,omitempty"`
	Conflicts []ScheduleEntryResponse `json:"conflicts,omitempty"`
}

func NewAvailabilityResponse(r usecase.AvailabilityResult) AvailabilityResponse {
	out := AvailabilityResponse{Available: r.Available, Reason: r.Reason}
	if len(r.Conflicts) > 0 {
		out.Conflicts = make([]ScheduleEntryResponse, 0, len(r.Conflicts))
		for _, e := range r.Conflicts {
			out.Conflicts = append(out.Conflicts, newScheduleEntryResponse(e))
		}
	}
	return out
}

func newScheduleEntryResponse(e schedule.Entry) ScheduleEntryResponse {
	return ScheduleEntryResponse{
		ID:             e.ID,
		Date:           e.Date.Format(time.DateOnly),
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		ScheduledHours: e.ScheduledHours,
		IsOvertime:     e.IsOvertime,
	}
}
