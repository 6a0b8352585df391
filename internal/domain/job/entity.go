package job

import (
	"time"

	"github.com/google/uuid"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "Entry"
	ExperienceJunior ExperienceLevel = "Junior"
	ExperienceMid    ExperienceLevel = "Mid"
	ExperienceSenior ExperienceLevel = "Senior"
	ExperienceLead   ExperienceLevel = "Lead"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntry, ExperienceJunior, ExperienceMid, ExperienceSenior, ExperienceLead:
		return true
	}
	return false
}

// Band is the years-of-experience window a level implies. MaxYears 0 means
// open-ended above MinYears.
type Band struct {
	MinYears int
	MaxYears int
}

// Band maps an experience level to its implied band (Mid = 3-6 years).
// Unknown levels return ok=false; callers treat that as no experience signal.
func (l ExperienceLevel) Band() (Band, bool) {
	switch l {
	case ExperienceEntry:
		return Band{MinYears: 0, MaxYears: 1}, true
	case ExperienceJunior:
		return Band{MinYears: 1, MaxYears: 3}, true
	case ExperienceMid:
		return Band{MinYears: 3, MaxYears: 6}, true
	case ExperienceSenior:
		return Band{MinYears: 6, MaxYears: 10}, true
	case ExperienceLead:
		return Band{MinYears: 8, MaxYears: 0}, true
	}
	return Band{}, false
}

type Status string

const (
	StatusDraft  Status = "Draft"
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusClosed:
		return true
	}
	return false
}

// Requirement is one weighted skill demand of a job. Weight is 0..10;
// requirement order matters for display only, never for scoring.
type Requirement struct {
	Skill  string
	Level  SkillLevel
	Weight float64
}

type Job struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Title           string
	Description     string
	Location        string
	ExperienceLevel ExperienceLevel
	Status          Status
	Requirements    []Requirement
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
