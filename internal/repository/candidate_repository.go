package repository

import (
	"context"
	"errors"

	"talentdesk/internal/database"
	"talentdesk/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CandidateRepository interface {
	Create(ctx context.Context, c candidate.Profile) error
	Update(ctx context.Context, c candidate.Profile) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error)
	// ListByOwner returns the owner's full candidate snapshot; the search
	// engine scores it in memory.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]candidate.Profile, error)
	FindByOwnerEmail(ctx context.Context, ownerID uuid.UUID, email string) (candidate.Profile, error)
}

const candidateColumns = `id, owner_id, full_name, email, skills, years_experience,
	current_title, desired_title, location, tags, status, created_at, updated_at`

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates
		 (id, owner_id, full_name, email, skills, years_experience, current_title, desired_title, location, tags, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.OwnerID, c.FullName, c.Email, c.Skills, c.YearsExperience,
		c.CurrentRole, c.DesiredRole, c.Location, c.Tags, string(c.Status),
	)
	return err
}

func (r *PostgresCandidateRepository) Update(ctx context.Context, c candidate.Profile) error {
	n, err := r.db.Exec(ctx,
		`UPDATE candidates
		 SET full_name=$1, email=$2, skills=$3, years_experience=$4, current_title=$5,
		     desired_title=$6, location=$7, tags=$8, status=$9, updated_at=now()
		 WHERE id=$10 AND owner_id=$11`,
		c.FullName, c.Email, c.Skills, c.YearsExperience, c.CurrentRole,
		c.DesiredRole, c.Location, c.Tags, string(c.Status), c.ID, c.OwnerID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id=$1 AND owner_id=$2`, id, ownerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id=$1`, id)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]candidate.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE owner_id=$1 ORDER BY id ASC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Profile, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresCandidateRepository) FindByOwnerEmail(ctx context.Context, ownerID uuid.UUID, email string) (candidate.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE owner_id=$1 AND email=$2`,
		ownerID, email,
	)
	return scanCandidate(row)
}

func scanCandidate(row database.Row) (candidate.Profile, error) {
	var c candidate.Profile
	var status string
	err := row.Scan(&c.ID, &c.OwnerID, &c.FullName, &c.Email, &c.Skills, &c.YearsExperience,
		&c.CurrentRole, &c.DesiredRole, &c.Location, &c.Tags, &status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, ErrNotFound
		}
		return candidate.Profile{}, err
	}
	c.Status = candidate.Status(status)
	return c, nil
}
