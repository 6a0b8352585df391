package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talentdesk/internal/domain/meeting"
	"talentdesk/internal/repository"

	"github.com/google/uuid"
)

type MeetingInput struct {
	CandidateID uuid.UUID
	JobID       *uuid.UUID
	Title       string
	StartsAt    time.Time
	EndsAt      time.Time
	Location    string
	Notes       string
}

type MeetingUsecase interface {
	Schedule(ctx context.Context, ownerID uuid.UUID, in MeetingInput) (meeting.Meeting, error)
	Reschedule(ctx context.Context, ownerID, meetingID uuid.UUID, in MeetingInput) (meeting.Meeting, error)
	Cancel(ctx context.Context, ownerID, meetingID uuid.UUID) error
	Get(ctx context.Context, ownerID, meetingID uuid.UUID) (meeting.Meeting, error)
	Agenda(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]meeting.Meeting, error)
	ListForCandidate(ctx context.Context, ownerID, candidateID uuid.UUID) ([]meeting.Meeting, error)
}

type Meetings struct {
	meetings   repository.MeetingRepository
	candidates repository.CandidateRepository
}

func NewMeetingUsecase(meetings repository.MeetingRepository, candidates repository.CandidateRepository) *Meetings {
	return &Meetings{meetings: meetings, candidates: candidates}
}

func (u *Meetings) Schedule(ctx context.Context, ownerID uuid.UUID, in MeetingInput) (meeting.Meeting, error) {
	m, err := u.validate(ctx, ownerID, in)
	if err != nil {
		return meeting.Meeting{}, err
	}

	overlap, err := u.meetings.ExistsOverlap(ctx, ownerID, m.StartsAt, m.EndsAt, uuid.Nil)
	if err != nil {
		return meeting.Meeting{}, ErrInternal
	}
	if overlap {
		return meeting.Meeting{}, ErrMeetingOverlap
	}

	m.ID = uuid.New()
	if err := u.meetings.Create(ctx, m); err != nil {
		return meeting.Meeting{}, ErrInternal
	}
	return u.reload(ctx, m.ID, ownerID)
}

func (u *Meetings) Reschedule(ctx context.Context, ownerID, meetingID uuid.UUID, in MeetingInput) (meeting.Meeting, error) {
	if meetingID == uuid.Nil {
		return meeting.Meeting{}, ErrMeetingNotFound
	}
	if _, err := u.meetings.GetByID(ctx, meetingID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return meeting.Meeting{}, ErrMeetingNotFound
		}
		return meeting.Meeting{}, ErrInternal
	}

	m, err := u.validate(ctx, ownerID, in)
	if err != nil {
		return meeting.Meeting{}, err
	}

	overlap, err := u.meetings.ExistsOverlap(ctx, ownerID, m.StartsAt, m.EndsAt, meetingID)
	if err != nil {
		return meeting.Meeting{}, ErrInternal
	}
	if overlap {
		return meeting.Meeting{}, ErrMeetingOverlap
	}

	m.ID = meetingID
	if err := u.meetings.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return meeting.Meeting{}, ErrMeetingNotFound
		}
		return meeting.Meeting{}, ErrInternal
	}
	return u.reload(ctx, meetingID, ownerID)
}

func (u *Meetings) reload(ctx context.Context, meetingID, ownerID uuid.UUID) (meeting.Meeting, error) {
	m, err := u.meetings.GetByID(ctx, meetingID, ownerID)
	if err != nil {
		return meeting.Meeting{}, ErrInternal
	}
	return m, nil
}

func (u *Meetings) Cancel(ctx context.Context, ownerID, meetingID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.meetings.Delete(ctx, meetingID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMeetingNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Meetings) Get(ctx context.Context, ownerID, meetingID uuid.UUID) (meeting.Meeting, error) {
	if ownerID == uuid.Nil {
		return meeting.Meeting{}, ErrUnauthorized
	}
	m, err := u.meetings.GetByID(ctx, meetingID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return meeting.Meeting{}, ErrMeetingNotFound
		}
		return meeting.Meeting{}, ErrInternal
	}
	return m, nil
}

func (u *Meetings) Agenda(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]meeting.Meeting, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if !to.After(from) {
		return nil, ErrInvalidInput
	}
	out, err := u.meetings.ListByOwnerBetween(ctx, ownerID, from, to)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Meetings) ListForCandidate(ctx context.Context, ownerID, candidateID uuid.UUID) ([]meeting.Meeting, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}
	if c.OwnerID != ownerID {
		return nil, ErrCandidateNotFound
	}
	out, err := u.meetings.ListByCandidate(ctx, ownerID, candidateID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Meetings) validate(ctx context.Context, ownerID uuid.UUID, in MeetingInput) (meeting.Meeting, error) {
	if ownerID == uuid.Nil {
		return meeting.Meeting{}, ErrUnauthorized
	}
	title := strings.TrimSpace(in.Title)
	if title == "" || in.CandidateID == uuid.Nil {
		return meeting.Meeting{}, ErrInvalidInput
	}
	if in.StartsAt.IsZero() || !in.EndsAt.After(in.StartsAt) {
		return meeting.Meeting{}, ErrInvalidInput
	}

	c, err := u.candidates.GetByID(ctx, in.CandidateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return meeting.Meeting{}, ErrCandidateNotFound
		}
		return meeting.Meeting{}, ErrInternal
	}
	if c.OwnerID != ownerID {
		return meeting.Meeting{}, ErrCandidateNotFound
	}

	return meeting.Meeting{
		OwnerID:     ownerID,
		CandidateID: in.CandidateID,
		JobID:       in.JobID,
		Title:       title,
		StartsAt:    in.StartsAt.UTC(),
		EndsAt:      in.EndsAt.UTC(),
		Location:    strings.TrimSpace(in.Location),
		Notes:       strings.TrimSpace(in.Notes),
	}, nil
}
