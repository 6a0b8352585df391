package repository

import (
	"context"
	"errors"
	"time"

	"talentdesk/internal/database"
	"talentdesk/internal/domain/meeting"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MeetingRepository interface {
	Create(ctx context.Context, m meeting.Meeting) error
	Update(ctx context.Context, m meeting.Meeting) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (meeting.Meeting, error)
	ListByOwnerBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]meeting.Meeting, error)
	ListByCandidate(ctx context.Context, ownerID, candidateID uuid.UUID) ([]meeting.Meeting, error)
	// ExistsOverlap reports whether the owner already has a meeting whose
	// interval intersects [startsAt, endsAt). excludeID skips the meeting
	// being rescheduled; pass uuid.Nil on create.
	ExistsOverlap(ctx context.Context, ownerID uuid.UUID, startsAt, endsAt time.Time, excludeID uuid.UUID) (bool, error)
}

const meetingColumns = `id, owner_id, candidate_id, job_id, title, starts_at, ends_at, location, notes, created_at, updated_at`

type PostgresMeetingRepository struct {
	db database.DB
}

func NewPostgresMeetingRepository(db database.DB) *PostgresMeetingRepository {
	return &PostgresMeetingRepository{db: db}
}

func (r *PostgresMeetingRepository) Create(ctx context.Context, m meeting.Meeting) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO meetings (id, owner_id, candidate_id, job_id, title, starts_at, ends_at, location, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.OwnerID, m.CandidateID, m.JobID, m.Title, m.StartsAt, m.EndsAt, m.Location, m.Notes,
	)
	return err
}

func (r *PostgresMeetingRepository) Update(ctx context.Context, m meeting.Meeting) error {
	n, err := r.db.Exec(ctx,
		`UPDATE meetings
		 SET candidate_id=$1, job_id=$2, title=$3, starts_at=$4, ends_at=$5, location=$6, notes=$7, updated_at=now()
		 WHERE id=$8 AND owner_id=$9`,
		m.CandidateID, m.JobID, m.Title, m.StartsAt, m.EndsAt, m.Location, m.Notes, m.ID, m.OwnerID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresMeetingRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM meetings WHERE id=$1 AND owner_id=$2`, id, ownerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresMeetingRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (meeting.Meeting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+meetingColumns+` FROM meetings WHERE id=$1 AND owner_id=$2`,
		id, ownerID,
	)
	return scanMeeting(row)
}

func (r *PostgresMeetingRepository) ListByOwnerBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]meeting.Meeting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+meetingColumns+` FROM meetings
		 WHERE owner_id=$1 AND starts_at < $3 AND ends_at > $2
		 ORDER BY starts_at ASC, id ASC`,
		ownerID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMeetings(rows)
}

func (r *PostgresMeetingRepository) ListByCandidate(ctx context.Context, ownerID, candidateID uuid.UUID) ([]meeting.Meeting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+meetingColumns+` FROM meetings
		 WHERE owner_id=$1 AND candidate_id=$2
		 ORDER BY starts_at ASC, id ASC`,
		ownerID, candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMeetings(rows)
}

func (r *PostgresMeetingRepository) ExistsOverlap(ctx context.Context, ownerID uuid.UUID, startsAt, endsAt time.Time, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM meetings
		   WHERE owner_id=$1 AND id<>$2 AND starts_at < $4 AND ends_at > $3
		 )`,
		ownerID, excludeID, startsAt, endsAt,
	).Scan(&exists)
	return exists, err
}

func collectMeetings(rows database.Rows) ([]meeting.Meeting, error) {
	out := make([]meeting.Meeting, 0)
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMeeting(row database.Row) (meeting.Meeting, error) {
	var m meeting.Meeting
	err := row.Scan(
		&m.ID, &m.OwnerID, &m.CandidateID, &m.JobID, &m.Title,
		&m.StartsAt, &m.EndsAt, &m.Location, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return meeting.Meeting{}, ErrNotFound
		}
		return meeting.Meeting{}, err
	}
	return m, nil
}
