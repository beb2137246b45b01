package task

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// MetadataSkill is one skill requirement carried in task metadata. Required
// defaults to true when the flag is omitted.
type MetadataSkill struct {
	Name                  string  `json:"name"`
	MinimumLevel          *string `json:"minimumLevel,omitempty"`
	Required              *bool   `json:"required,omitempty"`
	CertificationRequired bool    `json:"certificationRequired,omitempty"`
}

// Metadata is the structured portion of a task's free-form metadata column
// that this service reads.
type Metadata struct {
	RequiredSkills []MetadataSkill `json:"requiredSkills,omitempty"`
}

type Task struct {
	ID             uuid.UUID
	Name           string
	Type           string
	Status         Status
	WorkCenterID   *uuid.UUID
	WorkCenterName string
	DueDate        *time.Time
	EstimatedHours float64
	Metadata       *Metadata
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
