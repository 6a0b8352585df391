package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talentdesk/internal/config"
	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/domain/job"
	"talentdesk/internal/repository"

	"github.com/google/uuid"
)

type searchJobRepo struct {
	jobs map[uuid.UUID]job.Job
}

func (r *searchJobRepo) Create(ctx context.Context, j job.Job) error { return nil }
func (r *searchJobRepo) Update(ctx context.Context, j job.Job) error { return nil }
func (r *searchJobRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (r *searchJobRepo) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return job.Job{}, repository.ErrNotFound
}
func (r *searchJobRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]job.Job, error) {
	return nil, nil
}

type searchCandidateRepo struct {
	profiles []candidate.Profile
	byID     map[uuid.UUID]candidate.Profile
	err      error
	calls    int
}

func (r *searchCandidateRepo) Create(ctx context.Context, c candidate.Profile) error { return nil }
func (r *searchCandidateRepo) Update(ctx context.Context, c candidate.Profile) error { return nil }
func (r *searchCandidateRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (r *searchCandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (candidate.Profile, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return candidate.Profile{}, repository.ErrNotFound
}
func (r *searchCandidateRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]candidate.Profile, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.profiles, nil
}
func (r *searchCandidateRepo) FindByOwnerEmail(ctx context.Context, ownerID uuid.UUID, email string) (candidate.Profile, error) {
	return candidate.Profile{}, repository.ErrNotFound
}

// memoryCache is an in-process SearchCache stand-in. Not safe for concurrent
// use; the tests call it from one goroutine.
type memoryCache struct {
	entries map[string][]byte
	locks   map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, locks: map[string]string{}}
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	delete(c.locks, key)
	return nil
}

func (c *memoryCache) SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if _, ok := c.locks[key]; ok {
		return false, nil
	}
	c.locks[key] = value
	return true, nil
}

func searchConfig() config.SearchConfig {
	return config.SearchConfig{
		ExperienceDecayPerYear: 10,
		ParallelThreshold:      1000,
		Workers:                4,
		CacheTTL:               time.Minute,
	}
}

func searchFixture() (uuid.UUID, job.Job, []candidate.Profile) {
	ownerID := uuid.New()
	j := job.Job{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Title:           "Backend Engineer",
		Location:        "Berlin",
		ExperienceLevel: job.ExperienceMid,
		Status:          job.StatusOpen,
		Requirements: []job.Requirement{
			{Skill: "Go", Level: job.LevelAdvanced, Weight: 9},
			{Skill: "PostgreSQL", Level: job.LevelIntermediate, Weight: 6},
		},
	}

	four, one := 4, 1
	profiles := []candidate.Profile{
		{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			FullName:        "Ada Okafor",
			Skills:          []string{"Golang", "Postgres"},
			YearsExperience: &four,
			CurrentRole:     "Backend Engineer",
			Location:        "Berlin",
			Tags:            []string{"referral"},
			Status:          candidate.StatusActive,
		},
		{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			FullName:        "Tomas Lindqvist",
			Skills:          []string{"Go"},
			YearsExperience: &one,
			Location:        "Stockholm",
			Status:          candidate.StatusActive,
		},
		{
			ID:       uuid.New(),
			OwnerID:  ownerID,
			FullName: "Archived Ace",
			Skills:   []string{"Go", "PostgreSQL"},
			Location: "Berlin",
			Status:   candidate.StatusArchived,
		},
	}
	return ownerID, j, profiles
}

func newSearchUsecase(jobs *searchJobRepo, candidates *searchCandidateRepo, cache SearchCache, cfg config.SearchConfig) *CandidateSearch {
	return NewCandidateSearchUsecase(jobs, candidates, cache, cfg, nil)
}

func TestSearch_RanksAndExplains(t *testing.T) {
	ownerID, j, profiles := searchFixture()
	jobs := &searchJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}
	candidates := &searchCandidateRepo{profiles: profiles}
	u := newSearchUsecase(jobs, candidates, nil, searchConfig())

	res, err := u.Search(context.Background(), SearchParams{OwnerID: ownerID, JobID: j.ID})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if res.TotalCandidates != 2 {
		t.Fatalf("archived profile must not be counted, total = %d", res.TotalCandidates)
	}
	if res.Candidates[0].Candidate.FullName != "Ada Okafor" {
		t.Fatalf("best match first, got %s", res.Candidates[0].Candidate.FullName)
	}
	top := res.Candidates[0].Score
	if top.Overall != 100 || top.Confidence != 100 {
		t.Fatalf("full match expected, got %+v", top)
	}
	if len(res.Candidates[0].Reasons) == 0 {
		t.Fatal("matches must carry reasons")
	}
	second := res.Candidates[1].Score
	if second.Overall >= top.Overall {
		t.Fatalf("partial match must score below full match, got %v", second.Overall)
	}

	if res.Criteria.JobTitle != "Backend Engineer" || res.Criteria.SortBy != "score" || res.Criteria.SortOrder != "desc" {
		t.Fatalf("criteria echo wrong: %+v", res.Criteria)
	}
	if res.Page.Page != 1 || res.Page.Limit != 20 {
		t.Fatalf("default page info wrong: %+v", res.Page)
	}
}

func TestSearch_MinScoreFilter(t *testing.T) {
	ownerID, j, profiles := searchFixture()
	jobs := &searchJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}
	u := newSearchUsecase(jobs, &searchCandidateRepo{profiles: profiles}, nil, searchConfig())

	res, err := u.Search(context.Background(), SearchParams{OwnerID: ownerID, JobID: j.ID, MinScore: 90})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.TotalCandidates != 1 || res.Candidates[0].Candidate.FullName != "Ada Okafor" {
		t.Fatalf("minScore filter kept %d candidates", res.TotalCandidates)
	}
}

func TestSearch_InvalidFilters(t *testing.T) {
	ownerID, j, profiles := searchFixture()
	jobs := &searchJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}
	u := newSearchUsecase(jobs, &searchCandidateRepo{profiles: profiles}, nil, searchConfig())

	five, two := 5, 2
	bad := []SearchParams{
		{MinScore: 150},
		{MinScore: -1},
		{Statuses: []string{"Hired"}},
		{MinYears: &five, MaxYears: &two},
		{SortBy: "salary"},
		{SortOrder: "sideways"},
		{Limit: 101},
		{Page: -1},
	}
	for i, p := range bad {
		p.OwnerID = ownerID
		p.JobID = j.ID
		if _, err := u.Search(context.Background(), p); !errors.Is(err, ErrInvalidFilter) {
			t.Errorf("case %d: err = %v, want ErrInvalidFilter", i, err)
		}
	}
}

func TestSearch_JobOwnershipAndExistence(t *testing.T) {
	ownerID, j, profiles := searchFixture()
	jobs := &searchJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}
	u := newSearchUsecase(jobs, &searchCandidateRepo{profiles: profiles}, nil, searchConfig())

	if _, err := u.Search(context.Background(), SearchParams{JobID: j.ID}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("missing owner: err = %v", err)
	}
	if _, err := u.Search(context.Background(), SearchParams{OwnerID: ownerID}); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("missing job id: err = %v", err)
	}
	if _, err := u.Search(context.Background(), SearchParams{OwnerID: ownerID, JobID: uuid.New()}); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("unknown job: err = %v", err)
	}
	if _, err := u.Search(context.Background(), SearchParams{OwnerID: uuid.New(), JobID: j.ID}); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("foreign job must look missing: err = %v", err)
	}
}

func TestSearch_SnapshotUnavailable(t *testing.T) {
	ownerID, j, _ := searchFixture()
	jobs := &searchJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}
	u := newSearchUsecase(jobs, &searchCandidateRepo{err: errors.New("connection refused")}, nil, searchConfig())

	if _, err := u.Search(context.Background(), SearchParams{OwnerID: ownerID, JobID: j.ID}); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestSearch_CacheHitSkipsRecompute(t *testing.T) {
	ownerID, j, profiles := searchFixture()
	jobs := &searchJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}
	candidates := &searchCandidateRepo{profiles: profiles}
	cache := newMemoryCache()
	u := newSearchUsecase(jobs, candidates, cache, searchConfig())

	params := SearchParams{OwnerID: ownerID, JobID: j.ID, MinScore: 50}

	first, err := u.Search(context.Background(), params)
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	if candidates.calls != 1 {
		t.Fatalf("first search should load the snapshot once, calls = %d", candidates.calls)
	}

	// Break the snapshot source; the cached result must carry the request.
	candidates.err = errors.New("connection refused")
	second, err := u.Search(context.Background(), SearchParams{OwnerID: ownerID, JobID: j.ID, MinScore: 50})
	if err != nil {
		t.Fatalf("cached search: %v", err)
	}
	if second.TotalCandidates != first.TotalCandidates {
		t.Fatalf("cached total %d differs from computed %d", second.TotalCandidates, first.TotalCandidates)
	}
	if second.SearchTime != first.SearchTime {
		t.Fatalf("cached results keep the original search time")
	}
	if candidates.calls != 1 {
		t.Fatalf("cache hit must not reload the snapshot, calls = %d", candidates.calls)
	}
}

func TestSearch_SerialAndParallelAgree(t *testing.T) {
	ownerID, j, _ := searchFixture()

	profiles := make([]candidate.Profile, 0, 40)
	for i := 0; i < 40; i++ {
		years := i % 12
		p := candidate.Profile{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			FullName:        "Candidate",
			Skills:          []string{"Go"},
			YearsExperience: &years,
			Status:          candidate.StatusActive,
		}
		if i%3 == 0 {
			p.Skills = append(p.Skills, "PostgreSQL")
			p.Location = "Berlin"
		}
		profiles = append(profiles, p)
	}

	jobs := &searchJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}

	serialCfg := searchConfig()
	serialCfg.ParallelThreshold = 1000
	parallelCfg := searchConfig()
	parallelCfg.ParallelThreshold = 2

	params := SearchParams{OwnerID: ownerID, JobID: j.ID, Limit: 100}

	serial, err := newSearchUsecase(jobs, &searchCandidateRepo{profiles: profiles}, nil, serialCfg).Search(context.Background(), params)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	parallel, err := newSearchUsecase(jobs, &searchCandidateRepo{profiles: profiles}, nil, parallelCfg).Search(context.Background(), params)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if serial.TotalCandidates != parallel.TotalCandidates {
		t.Fatalf("totals differ: %d vs %d", serial.TotalCandidates, parallel.TotalCandidates)
	}
	for i := range serial.Candidates {
		a, b := serial.Candidates[i], parallel.Candidates[i]
		if a.Candidate.ID != b.Candidate.ID || a.Score != b.Score {
			t.Fatalf("rank %d differs between serial and parallel scoring", i)
		}
	}
}
