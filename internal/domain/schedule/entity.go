package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one planned shift for a worker. StartTime and EndTime are clock
// strings in HH:mm form; Date carries the calendar day.
type Entry struct {
	ID             uuid.UUID
	WorkerID       uuid.UUID
	Date           time.Time
	StartTime      string
	EndTime        string
	ScheduledHours float64
	IsOvertime     bool
}
