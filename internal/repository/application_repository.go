package repository

import (
	"context"
	"errors"

	"talentdesk/internal/database"
	"talentdesk/internal/domain/pipeline"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a pipeline.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (pipeline.Application, error)
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (pipeline.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]pipeline.Application, error)
	// UpdateStage moves an application and records the transition in the
	// stage history within one transaction.
	UpdateStage(ctx context.Context, id uuid.UUID, from, to pipeline.Stage) error
	ListStageHistory(ctx context.Context, applicationID uuid.UUID) ([]pipeline.StageChange, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a pipeline.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, candidate_id, stage, source)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.JobID, a.CandidateID, string(a.Stage), a.Source,
	)
	return err
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (pipeline.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, candidate_id, stage, source, created_at, updated_at
		 FROM applications WHERE id=$1`,
		id,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) GetByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (pipeline.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, candidate_id, stage, source, created_at, updated_at
		 FROM applications WHERE job_id=$1 AND candidate_id=$2`,
		jobID, candidateID,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]pipeline.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, candidate_id, stage, source, created_at, updated_at
		 FROM applications WHERE job_id=$1
		 ORDER BY created_at DESC, id ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pipeline.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) UpdateStage(ctx context.Context, id uuid.UUID, from, to pipeline.Stage) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Guard on the current stage so a concurrent transition loses cleanly.
	n, err := tx.Exec(ctx,
		`UPDATE applications SET stage=$1, updated_at=now() WHERE id=$2 AND stage=$3`,
		string(to), id, string(from),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO application_stage_history (application_id, from_stage, to_stage)
		 VALUES ($1, $2, $3)`,
		id, string(from), string(to),
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresApplicationRepository) ListStageHistory(ctx context.Context, applicationID uuid.UUID) ([]pipeline.StageChange, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, application_id, from_stage, to_stage, changed_at
		 FROM application_stage_history WHERE application_id=$1
		 ORDER BY changed_at ASC, id ASC`,
		applicationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pipeline.StageChange, 0)
	for rows.Next() {
		var sc pipeline.StageChange
		var from, to string
		if err := rows.Scan(&sc.ID, &sc.ApplicationID, &from, &to, &sc.ChangedAt); err != nil {
			return nil, err
		}
		sc.FromStage = pipeline.Stage(from)
		sc.ToStage = pipeline.Stage(to)
		out = append(out, sc)
	}
	return out, rows.Err()
}

func scanApplication(row database.Row) (pipeline.Application, error) {
	var a pipeline.Application
	var stage string
	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &stage, &a.Source, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pipeline.Application{}, ErrNotFound
		}
		return pipeline.Application{}, err
	}
	a.Stage = pipeline.Stage(stage)
	return a, nil
}
