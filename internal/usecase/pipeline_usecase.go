package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"talentdesk/internal/domain/job"
	"talentdesk/internal/domain/pipeline"
	"talentdesk/internal/repository"

	"github.com/google/uuid"
)

// Notifier pushes an event to one user's live connections. Delivery is best
// effort; a user with no open sockets just misses it.
type Notifier interface {
	NotifyUser(userID uuid.UUID, event string, payload any)
}

const (
	EventApplicationReceived = "application_received"
	EventStageChanged        = "stage_changed"
)

type StageChangedPayload struct {
	ApplicationID uuid.UUID `json:"application_id"`
	JobID         uuid.UUID `json:"job_id"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	FromStage     string    `json:"from_stage"`
	ToStage       string    `json:"to_stage"`
}

type PipelineUsecase interface {
	ListByJob(ctx context.Context, ownerID, jobID uuid.UUID) ([]pipeline.Application, error)
	AdvanceStage(ctx context.Context, ownerID, applicationID uuid.UUID, toStage string) (pipeline.Application, error)
	History(ctx context.Context, ownerID, applicationID uuid.UUID) ([]pipeline.StageChange, error)
}

type Pipeline struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	notifier     Notifier
	logger       *log.Logger
}

func NewPipelineUsecase(applications repository.ApplicationRepository, jobs repository.JobRepository, notifier Notifier, logger *log.Logger) *Pipeline {
	return &Pipeline{applications: applications, jobs: jobs, notifier: notifier, logger: logger}
}

func (u *Pipeline) ListByJob(ctx context.Context, ownerID, jobID uuid.UUID) ([]pipeline.Application, error) {
	if _, err := u.ownedJob(ctx, ownerID, jobID); err != nil {
		return nil, err
	}
	out, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Pipeline) AdvanceStage(ctx context.Context, ownerID, applicationID uuid.UUID, toStage string) (pipeline.Application, error) {
	to := pipeline.Stage(strings.TrimSpace(toStage))
	if !to.Valid() {
		return pipeline.Application{}, ErrInvalidStageTransition
	}

	app, err := u.ownedApplication(ctx, ownerID, applicationID)
	if err != nil {
		return pipeline.Application{}, err
	}

	if !pipeline.CanTransition(app.Stage, to) {
		return pipeline.Application{}, ErrInvalidStageTransition
	}

	if err := u.applications.UpdateStage(ctx, applicationID, app.Stage, to); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The guarded update lost to a concurrent transition.
			return pipeline.Application{}, ErrInvalidStageTransition
		}
		return pipeline.Application{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.NotifyUser(ownerID, EventStageChanged, StageChangedPayload{
			ApplicationID: app.ID,
			JobID:         app.JobID,
			CandidateID:   app.CandidateID,
			FromStage:     string(app.Stage),
			ToStage:       string(to),
		})
	}

	updated, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		return pipeline.Application{}, ErrInternal
	}
	return updated, nil
}

func (u *Pipeline) History(ctx context.Context, ownerID, applicationID uuid.UUID) ([]pipeline.StageChange, error) {
	if _, err := u.ownedApplication(ctx, ownerID, applicationID); err != nil {
		return nil, err
	}
	out, err := u.applications.ListStageHistory(ctx, applicationID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Pipeline) ownedApplication(ctx context.Context, ownerID, applicationID uuid.UUID) (pipeline.Application, error) {
	if ownerID == uuid.Nil {
		return pipeline.Application{}, ErrUnauthorized
	}
	if applicationID == uuid.Nil {
		return pipeline.Application{}, ErrApplicationNotFound
	}
	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return pipeline.Application{}, ErrApplicationNotFound
		}
		return pipeline.Application{}, ErrInternal
	}
	if _, err := u.ownedJob(ctx, ownerID, app.JobID); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return pipeline.Application{}, ErrApplicationNotFound
		}
		return pipeline.Application{}, err
	}
	return app, nil
}

func (u *Pipeline) ownedJob(ctx context.Context, ownerID, jobID uuid.UUID) (job.Job, error) {
	if ownerID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.OwnerID != ownerID {
		return job.Job{}, ErrJobNotFound
	}
	return j, nil
}
