package dto

import (
	"talentdesk/internal/domain/candidate"

	"github.com/google/uuid"
)

type CandidateResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Skills          []string  `json:"skills"`
	YearsExperience *int      `json:"years_experience"`
	CurrentRole     string    `json:"current_role"`
	DesiredRole     string    `json:"desired_role"`
	Location        string    `json:"location"`
	Tags            []string  `json:"tags"`
	Status          string    `json:"status"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

func NewCandidateResponse(c candidate.Profile) CandidateResponse {
	return CandidateResponse{
		ID:              c.ID,
		FullName:        c.FullName,
		Email:           c.Email,
		Skills:          c.Skills,
		YearsExperience: c.YearsExperience,
		CurrentRole:     c.CurrentRole,
		DesiredRole:     c.DesiredRole,
		Location:        c.Location,
		Tags:            c.Tags,
		Status:          string(c.Status),
		CreatedAt:       formatTime(c.CreatedAt),
		UpdatedAt:       formatTime(c.UpdatedAt),
	}
}

func NewCandidateListResponse(profiles []candidate.Profile) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(profiles))
	for _, c := range profiles {
		out = append(out, NewCandidateResponse(c))
	}
	return out
}
