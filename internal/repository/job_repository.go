package repository

import (
	"context"
	"errors"

	"talentdesk/internal/database"
	"talentdesk/internal/domain/job"

	"github.com/jackc/pgx/v5"
	"github.com/google/uuid"
)

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	Update(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO jobs (id, owner_id, title, description, location, experience_level, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		j.ID, j.OwnerID, j.Title, j.Description, j.Location, string(j.ExperienceLevel), string(j.Status),
	)
	if err != nil {
		return err
	}

	if err := insertRequirements(ctx, tx, j.ID, j.Requirements); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	n, err := tx.Exec(ctx,
		`UPDATE jobs
		 SET title=$1, description=$2, location=$3, experience_level=$4, status=$5, updated_at=now()
		 WHERE id=$6 AND owner_id=$7`,
		j.Title, j.Description, j.Location, string(j.ExperienceLevel), string(j.Status), j.ID, j.OwnerID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM job_requirements WHERE job_id=$1`, j.ID); err != nil {
		return err
	}
	if err := insertRequirements(ctx, tx, j.ID, j.Requirements); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertRequirements(ctx context.Context, tx database.Tx, jobID uuid.UUID, reqs []job.Requirement) error {
	for i, req := range reqs {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_requirements (job_id, ordinal, skill, level, weight)
			 VALUES ($1, $2, $3, $4, $5)`,
			jobID, i, req.Skill, string(req.Level), req.Weight,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id=$1 AND owner_id=$2`, id, ownerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	var j job.Job
	var level, status string
	err := r.db.QueryRow(ctx,
		`SELECT id, owner_id, title, description, location, experience_level, status, created_at, updated_at
		 FROM jobs WHERE id=$1`,
		id,
	).Scan(&j.ID, &j.OwnerID, &j.Title, &j.Description, &j.Location, &level, &status, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, err
	}
	j.ExperienceLevel = job.ExperienceLevel(level)
	j.Status = job.Status(status)

	reqs, err := r.requirementsByJobIDs(ctx, []uuid.UUID{j.ID})
	if err != nil {
		return job.Job{}, err
	}
	j.Requirements = reqs[j.ID]
	return j, nil
}

func (r *PostgresJobRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, owner_id, title, description, location, experience_level, status, created_at, updated_at
		 FROM jobs WHERE owner_id=$1
		 ORDER BY created_at DESC, id ASC
		 LIMIT $2 OFFSET $3`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var j job.Job
		var level, status string
		if err := rows.Scan(&j.ID, &j.OwnerID, &j.Title, &j.Description, &j.Location, &level, &status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		j.ExperienceLevel = job.ExperienceLevel(level)
		j.Status = job.Status(status)
		out = append(out, j)
		ids = append(ids, j.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reqs, err := r.requirementsByJobIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Requirements = reqs[out[i].ID]
	}
	return out, nil
}

func (r *PostgresJobRepository) requirementsByJobIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]job.Requirement, error) {
	out := make(map[uuid.UUID][]job.Requirement, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT job_id, skill, level, weight
		 FROM job_requirements
		 WHERE job_id = ANY($1)
		 ORDER BY job_id, ordinal ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID uuid.UUID
		var skill, level string
		var weight float64
		if err := rows.Scan(&jobID, &skill, &level, &weight); err != nil {
			return nil, err
		}
		out[jobID] = append(out[jobID], job.Requirement{
			Skill:  skill,
			Level:  job.SkillLevel(level),
			Weight: weight,
		})
	}
	return out, rows.Err()
}
