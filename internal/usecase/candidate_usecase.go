package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/repository"

	"github.com/google/uuid"
)

type CandidateInput struct {
	FullName        string
	Email           string
	Skills          []string
	YearsExperience *int
	CurrentRole     string
	DesiredRole     string
	Location        string
	Tags            []string
	Status          string
}

type CandidateUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CandidateInput) (candidate.Profile, error)
	Update(ctx context.Context, ownerID, candidateID uuid.UUID, in CandidateInput) (candidate.Profile, error)
	Delete(ctx context.Context, ownerID, candidateID uuid.UUID) error
	Get(ctx context.Context, ownerID, candidateID uuid.UUID) (candidate.Profile, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]candidate.Profile, error)
}

type Candidates struct {
	candidates  repository.CandidateRepository
	invalidator SearchInvalidator
	logger      *log.Logger
}

func NewCandidateUsecase(candidates repository.CandidateRepository, invalidator SearchInvalidator, logger *log.Logger) *Candidates {
	return &Candidates{candidates: candidates, invalidator: invalidator, logger: logger}
}

func (u *Candidates) Create(ctx context.Context, ownerID uuid.UUID, in CandidateInput) (candidate.Profile, error) {
	if ownerID == uuid.Nil {
		return candidate.Profile{}, ErrUnauthorized
	}
	c, err := buildCandidate(in)
	if err != nil {
		return candidate.Profile{}, err
	}
	c.ID = uuid.New()
	c.OwnerID = ownerID
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt

	if err := u.candidates.Create(ctx, c); err != nil {
		return candidate.Profile{}, ErrInternal
	}
	u.invalidateOwner(ctx, ownerID)
	return u.reload(ctx, c.ID)
}

func (u *Candidates) Update(ctx context.Context, ownerID, candidateID uuid.UUID, in CandidateInput) (candidate.Profile, error) {
	existing, err := u.ownedCandidate(ctx, ownerID, candidateID)
	if err != nil {
		return candidate.Profile{}, err
	}

	c, err := buildCandidate(in)
	if err != nil {
		return candidate.Profile{}, err
	}
	c.ID = existing.ID
	c.OwnerID = existing.OwnerID

	if err := u.candidates.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, ErrInternal
	}
	u.invalidateOwner(ctx, ownerID)
	return u.reload(ctx, candidateID)
}

func (u *Candidates) Delete(ctx context.Context, ownerID, candidateID uuid.UUID) error {
	if _, err := u.ownedCandidate(ctx, ownerID, candidateID); err != nil {
		return err
	}
	if err := u.candidates.Delete(ctx, candidateID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCandidateNotFound
		}
		return ErrInternal
	}
	u.invalidateOwner(ctx, ownerID)
	return nil
}

func (u *Candidates) Get(ctx context.Context, ownerID, candidateID uuid.UUID) (candidate.Profile, error) {
	return u.ownedCandidate(ctx, ownerID, candidateID)
}

func (u *Candidates) List(ctx context.Context, ownerID uuid.UUID) ([]candidate.Profile, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.candidates.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Candidates) ownedCandidate(ctx context.Context, ownerID, candidateID uuid.UUID) (candidate.Profile, error) {
	if ownerID == uuid.Nil {
		return candidate.Profile{}, ErrUnauthorized
	}
	if candidateID == uuid.Nil {
		return candidate.Profile{}, ErrCandidateNotFound
	}
	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, ErrInternal
	}
	if c.OwnerID != ownerID {
		return candidate.Profile{}, ErrCandidateNotFound
	}
	return c, nil
}

func (u *Candidates) reload(ctx context.Context, candidateID uuid.UUID) (candidate.Profile, error) {
	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return candidate.Profile{}, ErrInternal
	}
	return c, nil
}

func (u *Candidates) invalidateOwner(ctx context.Context, ownerID uuid.UUID) {
	if u.invalidator == nil {
		return
	}
	if err := u.invalidator.InvalidateSearchesForOwner(ctx, ownerID.String()); err != nil && u.logger != nil {
		u.logger.Printf("[Candidates] search invalidation failed for %s: %v", ownerID, err)
	}
}

func buildCandidate(in CandidateInput) (candidate.Profile, error) {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return candidate.Profile{}, ErrInvalidInput
	}
	if in.YearsExperience != nil && *in.YearsExperience < 0 {
		return candidate.Profile{}, ErrInvalidInput
	}

	status := candidate.StatusActive
	if s := strings.TrimSpace(in.Status); s != "" {
		status = candidate.Status(s)
		if !status.Valid() {
			return candidate.Profile{}, ErrInvalidInput
		}
	}

	return candidate.Profile{
		FullName:        name,
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		Skills:          trimAll(in.Skills),
		YearsExperience: in.YearsExperience,
		CurrentRole:     strings.TrimSpace(in.CurrentRole),
		DesiredRole:     strings.TrimSpace(in.DesiredRole),
		Location:        strings.TrimSpace(in.Location),
		Tags:            trimAll(in.Tags),
		Status:          status,
	}, nil
}
