package dto

import (
	"time"

	"talentdesk/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID              uuid.UUID             `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Location        string                `json:"location"`
	ExperienceLevel string                `json:"experience_level"`
	Status          string                `json:"status"`
	Requirements    []RequirementResponse `json:"requirements"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

type RequirementResponse struct {
	Skill  string  `json:"skill"`
	Level  string  `json:"level"`
	Weight float64 `json:"weight"`
}

func NewJobResponse(j job.Job) JobResponse {
	reqs := make([]RequirementResponse, 0, len(j.Requirements))
	for _, r := range j.Requirements {
		reqs = append(reqs, RequirementResponse{Skill: r.Skill, Level: string(r.Level), Weight: r.Weight})
	}
	return JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Location:        j.Location,
		ExperienceLevel: string(j.ExperienceLevel),
		Status:          string(j.Status),
		Requirements:    reqs,
		CreatedAt:       formatTime(j.CreatedAt),
		UpdatedAt:       formatTime(j.UpdatedAt),
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
