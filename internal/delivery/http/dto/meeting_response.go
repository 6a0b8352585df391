package dto

import (
	"talentdesk/internal/domain/meeting"

	"github.com/google/uuid"
)

type MeetingResponse struct {
	ID          uuid.UUID  `json:"id"`
	CandidateID uuid.UUID  `json:"candidate_id"`
	JobID       *uuid.UUID `json:"job_id"`
	Title       string     `json:"title"`
	StartsAt    string     `json:"starts_at"`
	EndsAt      string     `json:"ends_at"`
	Location    string     `json:"location"`
	Notes       string     `json:"notes"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

func NewMeetingResponse(m meeting.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		JobID:       m.JobID,
		Title:       m.Title,
		StartsAt:    formatTime(m.StartsAt),
		EndsAt:      formatTime(m.EndsAt),
		Location:    m.Location,
		Notes:       m.Notes,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func NewMeetingListResponse(meetings []meeting.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, NewMeetingResponse(m))
	}
	return out
}
