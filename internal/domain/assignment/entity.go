package assignment

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusDeclined   Status = "declined"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusReassigned Status = "reassigned"
)

// ActiveStatuses are the lifecycle states that count toward a worker's
// current workload.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusAssigned, StatusInProgress}
}

// Assignment links a worker's user identity to a task. This service reads
// assignments for workload and performance analysis; lifecycle transitions
// are owned by the assignment workflow.
type Assignment struct {
	ID             uuid.UUID
	TaskID         uuid.UUID
	UserID         uuid.UUID
	Status         Status
	AssignedAt     time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	EstimatedHours float64
	ActualHours    float64
	WasReassigned  bool
}

// Completed is an assignment joined with the due date of its task, as needed
// for on-time analysis.
type Completed struct {
	Assignment
	TaskDueDate *time.Time
}
