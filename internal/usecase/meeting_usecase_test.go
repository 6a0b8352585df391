package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/domain/meeting"
	"talentdesk/internal/repository"

	"github.com/google/uuid"
)

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]meeting.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: map[uuid.UUID]meeting.Meeting{}}
}

func (r *fakeMeetingRepo) Create(ctx context.Context, m meeting.Meeting) error {
	r.meetings[m.ID] = m
	return nil
}

func (r *fakeMeetingRepo) Update(ctx context.Context, m meeting.Meeting) error {
	old, ok := r.meetings[m.ID]
	if !ok || old.OwnerID != m.OwnerID {
		return repository.ErrNotFound
	}
	r.meetings[m.ID] = m
	return nil
}

func (r *fakeMeetingRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	m, ok := r.meetings[id]
	if !ok || m.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(r.meetings, id)
	return nil
}

func (r *fakeMeetingRepo) GetByID(ctx context.Context, id, ownerID uuid.UUID) (meeting.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok || m.OwnerID != ownerID {
		return meeting.Meeting{}, repository.ErrNotFound
	}
	return m, nil
}

func (r *fakeMeetingRepo) ListByOwnerBetween(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]meeting.Meeting, error) {
	var out []meeting.Meeting
	for _, m := range r.meetings {
		if m.OwnerID == ownerID && m.StartsAt.Before(to) && m.EndsAt.After(from) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMeetingRepo) ListByCandidate(ctx context.Context, ownerID, candidateID uuid.UUID) ([]meeting.Meeting, error) {
	var out []meeting.Meeting
	for _, m := range r.meetings {
		if m.OwnerID == ownerID && m.CandidateID == candidateID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMeetingRepo) ExistsOverlap(ctx context.Context, ownerID uuid.UUID, startsAt, endsAt time.Time, excludeID uuid.UUID) (bool, error) {
	for _, m := range r.meetings {
		if m.OwnerID != ownerID || m.ID == excludeID {
			continue
		}
		if m.StartsAt.Before(endsAt) && m.EndsAt.After(startsAt) {
			return true, nil
		}
	}
	return false, nil
}

func meetingFixture() (uuid.UUID, candidate.Profile, *searchCandidateRepo) {
	ownerID := uuid.New()
	c := candidate.Profile{ID: uuid.New(), OwnerID: ownerID, FullName: "Ada Okafor", Status: candidate.StatusActive}
	candidates := &searchCandidateRepo{byID: map[uuid.UUID]candidate.Profile{c.ID: c}}
	return ownerID, c, candidates
}

func meetingAt(c candidate.Profile, start time.Time, d time.Duration) MeetingInput {
	return MeetingInput{
		CandidateID: c.ID,
		Title:       "Technical interview",
		StartsAt:    start,
		EndsAt:      start.Add(d),
	}
}

func TestMeetingSchedule(t *testing.T) {
	ownerID, c, candidates := meetingFixture()
	u := NewMeetingUsecase(newFakeMeetingRepo(), candidates)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	m, err := u.Schedule(context.Background(), ownerID, meetingAt(c, start, time.Hour))
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if m.ID == uuid.Nil || m.Title != "Technical interview" || !m.StartsAt.Equal(start) {
		t.Fatalf("unexpected meeting: %+v", m)
	}
}

func TestMeetingSchedule_RejectsOverlap(t *testing.T) {
	ownerID, c, candidates := meetingFixture()
	u := NewMeetingUsecase(newFakeMeetingRepo(), candidates)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	if _, err := u.Schedule(context.Background(), ownerID, meetingAt(c, start, time.Hour)); err != nil {
		t.Fatalf("first Schedule: %v", err)
	}

	// Half an hour into the existing slot.
	if _, err := u.Schedule(context.Background(), ownerID, meetingAt(c, start.Add(30*time.Minute), time.Hour)); !errors.Is(err, ErrMeetingOverlap) {
		t.Fatalf("err = %v, want ErrMeetingOverlap", err)
	}

	// Back to back is fine; the interval is half-open.
	if _, err := u.Schedule(context.Background(), ownerID, meetingAt(c, start.Add(time.Hour), time.Hour)); err != nil {
		t.Fatalf("adjacent Schedule: %v", err)
	}
}

func TestMeetingReschedule_ExcludesItselfFromOverlap(t *testing.T) {
	ownerID, c, candidates := meetingFixture()
	u := NewMeetingUsecase(newFakeMeetingRepo(), candidates)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	m, err := u.Schedule(context.Background(), ownerID, meetingAt(c, start, time.Hour))
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	// Shifting within its own slot must not conflict with itself.
	moved, err := u.Reschedule(context.Background(), ownerID, m.ID, meetingAt(c, start.Add(15*time.Minute), time.Hour))
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if !moved.StartsAt.Equal(start.Add(15 * time.Minute)) {
		t.Fatalf("reschedule did not move the meeting: %+v", moved)
	}

	other, err := u.Schedule(context.Background(), ownerID, meetingAt(c, start.Add(3*time.Hour), time.Hour))
	if err != nil {
		t.Fatalf("second Schedule: %v", err)
	}
	if _, err := u.Reschedule(context.Background(), ownerID, other.ID, meetingAt(c, start.Add(30*time.Minute), time.Hour)); !errors.Is(err, ErrMeetingOverlap) {
		t.Fatalf("err = %v, want ErrMeetingOverlap", err)
	}
}

func TestMeetingSchedule_Validation(t *testing.T) {
	ownerID, c, candidates := meetingFixture()
	u := NewMeetingUsecase(newFakeMeetingRepo(), candidates)
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	in := meetingAt(c, start, time.Hour)
	in.Title = "  "
	if _, err := u.Schedule(context.Background(), ownerID, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank title: err = %v", err)
	}

	in = meetingAt(c, start, -time.Hour)
	if _, err := u.Schedule(context.Background(), ownerID, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("end before start: err = %v", err)
	}

	in = meetingAt(candidate.Profile{ID: uuid.New()}, start, time.Hour)
	if _, err := u.Schedule(context.Background(), ownerID, in); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("unknown candidate: err = %v", err)
	}

	if _, err := u.Schedule(context.Background(), uuid.Nil, meetingAt(c, start, time.Hour)); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("missing owner: err = %v", err)
	}

	// A candidate owned by someone else is invisible.
	foreign := candidate.Profile{ID: uuid.New(), OwnerID: uuid.New()}
	candidates.byID[foreign.ID] = foreign
	if _, err := u.Schedule(context.Background(), ownerID, meetingAt(foreign, start, time.Hour)); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("foreign candidate: err = %v", err)
	}
}

func TestMeetingAgenda(t *testing.T) {
	ownerID, c, candidates := meetingFixture()
	u := NewMeetingUsecase(newFakeMeetingRepo(), candidates)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if _, err := u.Schedule(context.Background(), ownerID, meetingAt(c, day.Add(10*time.Hour), time.Hour)); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if _, err := u.Schedule(context.Background(), ownerID, meetingAt(c, day.Add(72*time.Hour), time.Hour)); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	agenda, err := u.Agenda(context.Background(), ownerID, day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Agenda: %v", err)
	}
	if len(agenda) != 1 {
		t.Fatalf("one meeting falls inside the window, got %d", len(agenda))
	}

	if _, err := u.Agenda(context.Background(), ownerID, day, day); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty window: err = %v", err)
	}
}

func TestMeetingCancel(t *testing.T) {
	ownerID, c, candidates := meetingFixture()
	u := NewMeetingUsecase(newFakeMeetingRepo(), candidates)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	m, err := u.Schedule(context.Background(), ownerID, meetingAt(c, start, time.Hour))
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if err := u.Cancel(context.Background(), ownerID, m.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := u.Get(context.Background(), ownerID, m.ID); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("cancelled meeting still readable: err = %v", err)
	}
	if err := u.Cancel(context.Background(), ownerID, m.ID); !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("double cancel: err = %v", err)
	}
}
