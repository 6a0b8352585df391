package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/domain/job"
	"talentdesk/internal/domain/pipeline"
	"talentdesk/internal/repository"

	"github.com/google/uuid"
)

// IntakeInput is a public job application: no authentication, candidate
// identified by email within the job owner's resume bank.
type IntakeInput struct {
	JobID           uuid.UUID
	FullName        string
	Email           string
	Skills          []string
	YearsExperience *int
	CurrentRole     string
	DesiredRole     string
	Location        string
}

type IntakeUsecase interface {
	Apply(ctx context.Context, in IntakeInput) (pipeline.Application, error)
}

type Intake struct {
	jobs         repository.JobRepository
	candidates   repository.CandidateRepository
	applications repository.ApplicationRepository
	invalidator  SearchInvalidator
	notifier     Notifier
	logger       *log.Logger
}

func NewIntakeUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository, applications repository.ApplicationRepository, invalidator SearchInvalidator, notifier Notifier, logger *log.Logger) *Intake {
	return &Intake{jobs: jobs, candidates: candidates, applications: applications, invalidator: invalidator, notifier: notifier, logger: logger}
}

func (u *Intake) Apply(ctx context.Context, in IntakeInput) (pipeline.Application, error) {
	if in.JobID == uuid.Nil {
		return pipeline.Application{}, ErrJobNotFound
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.FullName)
	if email == "" || name == "" {
		return pipeline.Application{}, ErrInvalidInput
	}
	if in.YearsExperience != nil && *in.YearsExperience < 0 {
		return pipeline.Application{}, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return pipeline.Application{}, ErrJobNotFound
		}
		return pipeline.Application{}, ErrInternal
	}
	if j.Status != job.StatusOpen {
		return pipeline.Application{}, ErrJobNotOpen
	}

	cand, err := u.findOrCreateCandidate(ctx, j.OwnerID, in, email, name)
	if err != nil {
		return pipeline.Application{}, err
	}

	if _, err := u.applications.GetByJobAndCandidate(ctx, j.ID, cand.ID); err == nil {
		return pipeline.Application{}, ErrDuplicateApplication
	} else if !errors.Is(err, repository.ErrNotFound) {
		return pipeline.Application{}, ErrInternal
	}

	app := pipeline.Application{
		ID:          uuid.New(),
		JobID:       j.ID,
		CandidateID: cand.ID,
		Stage:       pipeline.StageApplied,
		Source:      "public_intake",
	}
	if err := u.applications.Create(ctx, app); err != nil {
		return pipeline.Application{}, ErrInternal
	}

	if u.invalidator != nil {
		_ = u.invalidator.InvalidateSearchesForOwner(ctx, j.OwnerID.String())
	}
	if u.notifier != nil {
		u.notifier.NotifyUser(j.OwnerID, EventApplicationReceived, StageChangedPayload{
			ApplicationID: app.ID,
			JobID:         j.ID,
			CandidateID:   cand.ID,
			ToStage:       string(pipeline.StageApplied),
		})
	}

	created, err := u.applications.GetByID(ctx, app.ID)
	if err != nil {
		return pipeline.Application{}, ErrInternal
	}
	return created, nil
}

// findOrCreateCandidate reuses an existing profile with the same email in
// the owner's bank; a repeat applicant keeps one profile across jobs.
func (u *Intake) findOrCreateCandidate(ctx context.Context, ownerID uuid.UUID, in IntakeInput, email, name string) (candidate.Profile, error) {
	existing, err := u.candidates.FindByOwnerEmail(ctx, ownerID, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return candidate.Profile{}, ErrInternal
	}

	now := time.Now().UTC()
	c := candidate.Profile{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		FullName:        name,
		Email:           email,
		Skills:          trimAll(in.Skills),
		YearsExperience: in.YearsExperience,
		CurrentRole:     strings.TrimSpace(in.CurrentRole),
		DesiredRole:     strings.TrimSpace(in.DesiredRole),
		Location:        strings.TrimSpace(in.Location),
		Status:          candidate.StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.candidates.Create(ctx, c); err != nil {
		// A concurrent application may have created the profile first.
		existing, exErr := u.candidates.FindByOwnerEmail(ctx, ownerID, email)
		if exErr == nil {
			return existing, nil
		}
		return candidate.Profile{}, ErrInternal
	}
	return c, nil
}
