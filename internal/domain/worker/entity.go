package worker

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusWorking   Status = "working"
	StatusBreak     Status = "break"
	StatusOffDuty   Status = "off_duty"
	StatusSickLeave Status = "sick_leave"
	StatusVacation  Status = "vacation"
	StatusTraining  Status = "training"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusWorking, StatusBreak, StatusOffDuty,
		StatusSickLeave, StatusVacation, StatusTraining:
		return true
	}
	return false
}

// Assignable reports whether a worker in this status can take new work.
func (s Status) Assignable() bool {
	return s == StatusAvailable || s == StatusWorking
}

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Ordinal maps proficiency levels onto the 1..4 scale used by the match
// evaluator. Unknown levels map to 0.
func (p Proficiency) Ordinal() int {
	switch p {
	case ProficiencyBeginner:
		return 1
	case ProficiencyIntermediate:
		return 2
	case ProficiencyAdvanced:
		return 3
	case ProficiencyExpert:
		return 4
	}
	return 0
}

func (p Proficiency) Valid() bool {
	return p.Ordinal() > 0
}

// Skill is one named competency a worker holds, optionally backed by a
// certification with a validity window.
type Skill struct {
	Name          string
	Level         Proficiency
	CertifiedAt   *time.Time
	CertExpiresAt *time.Time
}

// CertificationValidAt reports whether the skill carries a certification that
// is still valid at the given instant.
func (s Skill) CertificationValidAt(now time.Time) bool {
	if s.CertifiedAt == nil {
		return false
	}
	if s.CertExpiresAt != nil && s.CertExpiresAt.Before(now) {
		return false
	}
	return true
}

// Worker is a person eligible for task assignment.
type Worker struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	EmployeeCode string
	FullName     string
	Department   string
	ShiftType    string
	Status       Status
	WorkCenterID *uuid.UUID

	Skills []Skill

	WeeklyHoursLimit float64
	DailyHoursLimit  float64

	// Running performance aggregates, maintained by assignment-completion
	// workflows and read here for ranking.
	Efficiency          float64
	QualityScore        float64
	TotalTasksCompleted int
	TotalHoursWorked    float64

	// DayAvailability marks weekdays a worker is explicitly unavailable on.
	// A missing entry means no restriction for that day.
	DayAvailability map[time.Weekday]bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SkillByName returns the worker's skill matching name case-insensitively.
func (w Worker) SkillByName(name string) (Skill, bool) {
	for _, s := range w.Skills {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Skill{}, false
}

// AvailableOn reports whether the worker's per-day availability map permits
// work on the given weekday. Workers without a map have no day restrictions.
func (w Worker) AvailableOn(day time.Weekday) bool {
	if w.DayAvailability == nil {
		return true
	}
	allowed, ok := w.DayAvailability[day]
	if !ok {
		return true
	}
	return allowed
}
