package pipeline

import (
	"time"

	"github.com/google/uuid"
)

type Stage string

const (
	StageApplied   Stage = "Applied"
	StageScreening Stage = "Screening"
	StageInterview Stage = "Interview"
	StageOffer     Stage = "Offer"
	StageHired     Stage = "Hired"
	StageRejected  Stage = "Rejected"
)

func (s Stage) Valid() bool {
	switch s {
	case StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected:
		return true
	}
	return false
}

// Terminal stages accept no further transitions.
func (s Stage) Terminal() bool {
	return s == StageHired || s == StageRejected
}

var stageOrder = map[Stage]int{
	StageApplied:   0,
	StageScreening: 1,
	StageInterview: 2,
	StageOffer:     3,
	StageHired:     4,
}

// CanTransition reports whether an application may move from one stage to
// the next. Forward moves advance one stage at a time; Rejected is reachable
// from any non-terminal stage.
func CanTransition(from, to Stage) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from.Terminal() {
		return false
	}
	if to == StageRejected {
		return true
	}
	fo, ok := stageOrder[from]
	if !ok {
		return false
	}
	to2, ok := stageOrder[to]
	if !ok {
		return false
	}
	return to2 == fo+1
}

// Application is one candidate's progress through a job's hiring pipeline.
type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	Stage       Stage
	Source      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type StageChange struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	FromStage     Stage
	ToStage       Stage
	ChangedAt     time.Time
}
