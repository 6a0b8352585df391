package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive      Status = "Active"
	StatusInactive    Status = "Inactive"
	StatusShortlisted Status = "Shortlisted"
	StatusArchived    Status = "Archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusShortlisted, StatusArchived:
		return true
	}
	return false
}

// Profile is one resume-bank entry. YearsExperience is nil when the resume
// carried no usable experience figure; scoring treats that as missing data,
// not as zero years.
type Profile struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	FullName        string
	Email           string
	Skills          []string
	YearsExperience *int
	CurrentRole     string
	DesiredRole     string
	Location        string
	Tags            []string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p Profile) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
