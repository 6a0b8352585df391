package usecase

import (
	"context"
	"errors"
	"testing"

	"talentdesk/internal/domain/job"
	"talentdesk/internal/domain/pipeline"

	"github.com/google/uuid"
)

func pipelineFixture() (job.Job, pipeline.Application, *Pipeline, *recordNotifier) {
	j := job.Job{ID: uuid.New(), OwnerID: uuid.New(), Title: "Backend Engineer", Status: job.StatusOpen}
	jobs := &searchJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}

	app := pipeline.Application{
		ID:          uuid.New(),
		JobID:       j.ID,
		CandidateID: uuid.New(),
		Stage:       pipeline.StageApplied,
	}
	applications := newFakeApplicationRepo()
	applications.apps[app.ID] = app

	notifier := &recordNotifier{}
	return j, app, NewPipelineUsecase(applications, jobs, notifier, nil), notifier
}

func TestPipelineAdvanceStage(t *testing.T) {
	j, app, u, notifier := pipelineFixture()

	updated, err := u.AdvanceStage(context.Background(), j.OwnerID, app.ID, "Screening")
	if err != nil {
		t.Fatalf("AdvanceStage: %v", err)
	}
	if updated.Stage != pipeline.StageScreening {
		t.Fatalf("stage = %s, want Screening", updated.Stage)
	}
	if len(notifier.events) != 1 || notifier.events[0] != EventStageChanged {
		t.Fatalf("owner not notified of the transition: %+v", notifier.events)
	}
}

func TestPipelineAdvanceStage_InvalidTransitions(t *testing.T) {
	j, app, u, _ := pipelineFixture()

	cases := []string{"Offer", "Applied", "Sourcing", "  "}
	for _, to := range cases {
		if _, err := u.AdvanceStage(context.Background(), j.OwnerID, app.ID, to); !errors.Is(err, ErrInvalidStageTransition) {
			t.Errorf("to %q: err = %v, want ErrInvalidStageTransition", to, err)
		}
	}
}

func TestPipelineAdvanceStage_RejectedFromAnyStage(t *testing.T) {
	j, app, u, _ := pipelineFixture()

	updated, err := u.AdvanceStage(context.Background(), j.OwnerID, app.ID, "Rejected")
	if err != nil {
		t.Fatalf("AdvanceStage: %v", err)
	}
	if updated.Stage != pipeline.StageRejected {
		t.Fatalf("stage = %s, want Rejected", updated.Stage)
	}

	// Terminal: nothing moves out of Rejected.
	if _, err := u.AdvanceStage(context.Background(), j.OwnerID, app.ID, "Screening"); !errors.Is(err, ErrInvalidStageTransition) {
		t.Fatalf("err = %v, want ErrInvalidStageTransition", err)
	}
}

func TestPipelineOwnership(t *testing.T) {
	j, app, u, _ := pipelineFixture()

	if _, err := u.AdvanceStage(context.Background(), uuid.New(), app.ID, "Screening"); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("foreign owner: err = %v", err)
	}
	if _, err := u.AdvanceStage(context.Background(), uuid.Nil, app.ID, "Screening"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("missing owner: err = %v", err)
	}
	if _, err := u.ListByJob(context.Background(), uuid.New(), j.ID); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("foreign job list: err = %v", err)
	}
	if _, err := u.History(context.Background(), j.OwnerID, uuid.New()); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("unknown application history: err = %v", err)
	}
}

func TestPipelineListByJob(t *testing.T) {
	j, app, u, _ := pipelineFixture()

	apps, err := u.ListByJob(context.Background(), j.OwnerID, j.ID)
	if err != nil {
		t.Fatalf("ListByJob: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != app.ID {
		t.Fatalf("unexpected applications: %+v", apps)
	}
}
