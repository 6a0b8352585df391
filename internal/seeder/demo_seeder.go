package seeder

import (
	"context"
	"time"

	"talentdesk/internal/database"
	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/domain/job"
	"talentdesk/internal/domain/user"
	"talentdesk/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@talentdesk.local"
	demoPassword = "demo-password"
)

// DemoSeeder loads one recruiter account with a small job board and resume
// bank, enough to exercise search and the pipeline locally.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo-data" }

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	users := repository.NewPostgresUserRepository(db)

	exists, err := users.ExistsByEmail(ctx, demoEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := user.User{
		ID:           uuid.New(),
		Email:        demoEmail,
		PasswordHash: string(hash),
		FullName:     "Demo Recruiter",
	}
	if err := users.CreateUser(ctx, owner); err != nil {
		return err
	}

	jobs := repository.NewPostgresJobRepository(db)
	now := time.Now().UTC()
	for _, j := range demoJobs(owner.ID, now) {
		if err := jobs.Create(ctx, j); err != nil {
			return err
		}
	}

	candidates := repository.NewPostgresCandidateRepository(db)
	for _, c := range demoCandidates(owner.ID, now) {
		if err := candidates.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func demoJobs(ownerID uuid.UUID, now time.Time) []job.Job {
	return []job.Job{
		{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			Title:           "Senior Backend Engineer",
			Description:     "Own Go services behind the recruiting platform.",
			Location:        "Berlin",
			ExperienceLevel: job.ExperienceSenior,
			Status:          job.StatusOpen,
			Requirements: []job.Requirement{
				{Skill: "Go", Level: job.LevelAdvanced, Weight: 9},
				{Skill: "PostgreSQL", Level: job.LevelIntermediate, Weight: 6},
				{Skill: "Kubernetes", Level: job.LevelIntermediate, Weight: 4},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			Title:           "Frontend Developer",
			Description:     "React work on the recruiter dashboard.",
			Location:        "Remote",
			ExperienceLevel: job.ExperienceMid,
			Status:          job.StatusOpen,
			Requirements: []job.Requirement{
				{Skill: "JavaScript", Level: job.LevelAdvanced, Weight: 8},
				{Skill: "React", Level: job.LevelAdvanced, Weight: 8},
				{Skill: "CSS", Level: job.LevelIntermediate, Weight: 3},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func demoCandidates(ownerID uuid.UUID, now time.Time) []candidate.Profile {
	years := func(n int) *int { return &n }

	return []candidate.Profile{
		{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			FullName:        "Ada Okafor",
			Email:           "ada@example.com",
			Skills:          []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
			YearsExperience: years(8),
			CurrentRole:     "Backend Engineer",
			DesiredRole:     "Senior Backend Engineer",
			Location:        "Berlin",
			Tags:            []string{"referral"},
			Status:          candidate.StatusActive,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			FullName:        "Tomas Lindqvist",
			Email:           "tomas@example.com",
			Skills:          []string{"JavaScript", "React", "TypeScript"},
			YearsExperience: years(4),
			CurrentRole:     "Frontend Developer",
			Location:        "Stockholm",
			Status:          candidate.StatusActive,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:       uuid.New(),
			OwnerID:  ownerID,
			FullName: "Priya Raman",
			Email:    "priya@example.com",
			Skills:   []string{"Go", "Python"},
			// No experience figure on the resume.
			CurrentRole: "Software Engineer",
			Location:    "Berlin",
			Status:      candidate.StatusShortlisted,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
