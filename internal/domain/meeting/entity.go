package meeting

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is a scheduled interview or call with a candidate. JobID is nil
// for meetings not tied to a specific posting.
type Meeting struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	CandidateID uuid.UUID
	JobID       *uuid.UUID
	Title       string
	StartsAt    time.Time
	EndsAt      time.Time
	Location    string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m Meeting) Overlaps(startsAt, endsAt time.Time) bool {
	return m.StartsAt.Before(endsAt) && startsAt.Before(m.EndsAt)
}
