package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"talentdesk/internal/domain/job"
	"talentdesk/internal/repository"

	"github.com/google/uuid"
)

type JobInput struct {
	Title           string
	Description     string
	Location        string
	ExperienceLevel string
	Status          string
	Requirements    []RequirementInput
}

type RequirementInput struct {
	Skill  string
	Level  string
	Weight float64
}

type JobUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in JobInput) (job.Job, error)
	Update(ctx context.Context, ownerID, jobID uuid.UUID, in JobInput) (job.Job, error)
	Delete(ctx context.Context, ownerID, jobID uuid.UUID) error
	Get(ctx context.Context, ownerID, jobID uuid.UUID) (job.Job, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]job.Job, error)
}

type Jobs struct {
	jobs        repository.JobRepository
	invalidator SearchInvalidator
	logger      *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, invalidator SearchInvalidator, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, invalidator: invalidator, logger: logger}
}

func (u *Jobs) Create(ctx context.Context, ownerID uuid.UUID, in JobInput) (job.Job, error) {
	if ownerID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	j, err := buildJob(in)
	if err != nil {
		return job.Job{}, err
	}
	j.ID = uuid.New()
	j.OwnerID = ownerID
	j.CreatedAt = time.Now().UTC()
	j.UpdatedAt = j.CreatedAt

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	return u.reload(ctx, j.ID)
}

func (u *Jobs) Update(ctx context.Context, ownerID, jobID uuid.UUID, in JobInput) (job.Job, error) {
	existing, err := u.ownedJob(ctx, ownerID, jobID)
	if err != nil {
		return job.Job{}, err
	}

	j, err := buildJob(in)
	if err != nil {
		return job.Job{}, err
	}
	j.ID = existing.ID
	j.OwnerID = existing.OwnerID

	if err := u.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	u.invalidateJob(ctx, jobID)
	return u.reload(ctx, jobID)
}

func (u *Jobs) Delete(ctx context.Context, ownerID, jobID uuid.UUID) error {
	if _, err := u.ownedJob(ctx, ownerID, jobID); err != nil {
		return err
	}
	if err := u.jobs.Delete(ctx, jobID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	u.invalidateJob(ctx, jobID)
	return nil
}

func (u *Jobs) Get(ctx context.Context, ownerID, jobID uuid.UUID) (job.Job, error) {
	return u.ownedJob(ctx, ownerID, jobID)
}

func (u *Jobs) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]job.Job, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 50 || offset < 0 {
		return nil, ErrInvalidInput
	}
	out, err := u.jobs.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Jobs) ownedJob(ctx context.Context, ownerID, jobID uuid.UUID) (job.Job, error) {
	if ownerID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return job.Job{}, ErrJobNotFound
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

func (u *Jobs) reload(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) invalidateJob(ctx context.Context, jobID uuid.UUID) {
	if u.invalidator == nil {
		return
	}
	if err := u.invalidator.InvalidateSearchesForJob(ctx, jobID.String()); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] search invalidation failed for %s: %v", jobID, err)
	}
}

func buildJob(in JobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, ErrInvalidInput
	}

	status := job.StatusDraft
	if s := strings.TrimSpace(in.Status); s != "" {
		status = job.Status(s)
		if !status.Valid() {
			return job.Job{}, ErrInvalidInput
		}
	}

	var level job.ExperienceLevel
	if s := strings.TrimSpace(in.ExperienceLevel); s != "" {
		level = job.ExperienceLevel(s)
		if !level.Valid() {
			return job.Job{}, ErrInvalidInput
		}
	}

	reqs := make([]job.Requirement, 0, len(in.Requirements))
	for _, r := range in.Requirements {
		skill := strings.TrimSpace(r.Skill)
		if skill == "" {
			return job.Job{}, ErrInvalidInput
		}
		lvl := job.SkillLevel(strings.TrimSpace(r.Level))
		if !lvl.Valid() {
			return job.Job{}, ErrInvalidInput
		}
		if r.Weight < 0 || r.Weight > 10 {
			return job.Job{}, ErrInvalidInput
		}
		reqs = append(reqs, job.Requirement{Skill: skill, Level: lvl, Weight: r.Weight})
	}

	return job.Job{
		Title:           title,
		Description:     strings.TrimSpace(in.Description),
		Location:        strings.TrimSpace(in.Location),
		ExperienceLevel: level,
		Status:          status,
		Requirements:    reqs,
	}, nil
}
