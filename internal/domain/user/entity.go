package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a portal account (supervisor or planner) that calls this API.
// Workers link to users through Worker.UserID for assignment bookkeeping.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
