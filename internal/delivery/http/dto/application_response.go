package dto

import (
	"talentdesk/internal/domain/pipeline"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Stage       string    `json:"stage"`
	Source      string    `json:"source"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type StageChangeResponse struct {
	FromStage string `json:"from_stage"`
	ToStage   string `json:"to_stage"`
	ChangedAt string `json:"changed_at"`
}

func NewApplicationResponse(a pipeline.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		Stage:       string(a.Stage),
		Source:      a.Source,
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

func NewApplicationListResponse(apps []pipeline.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

func NewStageHistoryResponse(changes []pipeline.StageChange) []StageChangeResponse {
	out := make([]StageChangeResponse, 0, len(changes))
	for _, sc := range changes {
		out = append(out, StageChangeResponse{
			FromStage: string(sc.FromStage),
			ToStage:   string(sc.ToStage),
			ChangedAt: formatTime(sc.ChangedAt),
		})
	}
	return out
}
