package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a recruiter account. It owns jobs, candidates and meetings.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
