package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"talentdesk/internal/config"
	"talentdesk/internal/domain/candidate"
	"talentdesk/internal/domain/job"
	"talentdesk/internal/domain/scoring"
	"talentdesk/internal/repository"
	"talentdesk/internal/search"

	"github.com/google/uuid"
)

// SearchParams is one ranked-search request against a job. Zero values mean
// "no constraint" except Page and Limit, which default to 1 and 20.
type SearchParams struct {
	OwnerID uuid.UUID
	JobID   uuid.UUID

	MinScore  float64
	Statuses  []string
	Tags      []string
	Skills    []string
	MinYears  *int
	MaxYears  *int
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// SearchCriteria echoes the normalized request back so clients can render
// the filters that actually applied.
type SearchCriteria struct {
	JobID     uuid.UUID `json:"jobId"`
	JobTitle  string    `json:"jobTitle"`
	MinScore  float64   `json:"minScore"`
	Statuses  []string  `json:"statuses"`
	Tags      []string  `json:"tags"`
	Skills    []string  `json:"skills"`
	MinYears  *int      `json:"minYears"`
	MaxYears  *int      `json:"maxYears"`
	SortBy    string    `json:"sortBy"`
	SortOrder string    `json:"sortOrder"`
}

type SearchResult struct {
	Candidates      []scoring.CandidateMatch
	TotalCandidates int
	Criteria        SearchCriteria
	Page            scoring.PageInfo

	// SearchTime covers scoring and ranking only, not snapshot loading or
	// transport. Cached results keep the time of the search that produced
	// them.
	SearchTime time.Duration
}

type CandidateSearchUsecase interface {
	Search(ctx context.Context, p SearchParams) (SearchResult, error)
}

type CandidateSearch struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	cache      SearchCache
	cfg        config.SearchConfig
	logger     *log.Logger
}

func NewCandidateSearchUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository, cache SearchCache, cfg config.SearchConfig, logger *log.Logger) *CandidateSearch {
	return &CandidateSearch{jobs: jobs, candidates: candidates, cache: cache, cfg: cfg, logger: logger}
}

func (u *CandidateSearch) Search(ctx context.Context, p SearchParams) (SearchResult, error) {
	if p.OwnerID == uuid.Nil {
		return SearchResult{}, ErrUnauthorized
	}
	if p.JobID == uuid.Nil {
		return SearchResult{}, ErrJobNotFound
	}

	filters, key, order, page, err := normalizeSearch(&p)
	if err != nil {
		return SearchResult{}, err
	}

	j, err := u.jobs.GetByID(ctx, p.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return SearchResult{}, ErrJobNotFound
		}
		return SearchResult{}, ErrInternal
	}
	// Jobs owned by someone else are indistinguishable from missing ones.
	if j.OwnerID != p.OwnerID {
		return SearchResult{}, ErrJobNotFound
	}

	cacheKey := CandidateSearchCacheKey(p, jobFingerprint(j))
	lockKey := CandidateSearchLockKey(cacheKey)

	if u.cache != nil {
		var cached SearchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logf("[Search] Cache HIT: %s", cacheKey)
			return cached, nil
		}
		u.logf("[Search] Cache MISS: %s", cacheKey)
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
			u.logf("[Search] Lock acquired: %s", lockKey)
		} else if err == nil && !ok {
			// Another request is computing the same search. Give it a
			// moment, then fall through and compute anyway.
			time.Sleep(300 * time.Millisecond)
			var cached SearchResult
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				u.logf("[Search] Cache HIT: %s", cacheKey)
				return cached, nil
			}
			u.logf("[Search] Lock wait fallback: %s", lockKey)
		}
	}

	profiles, err := u.candidates.ListByOwner(ctx, p.OwnerID)
	if err != nil {
		return SearchResult{}, ErrDataUnavailable
	}

	started := time.Now()
	matches := u.scoreAll(ctx, profiles, j)
	window, total, info := scoring.Rank(matches, filters, key, order, page)
	elapsed := time.Since(started)

	result := SearchResult{
		Candidates:      window,
		TotalCandidates: total,
		Criteria:        buildCriteria(p, j, key, order),
		Page:            info,
		SearchTime:      elapsed,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, result, u.cacheTTL())
		u.logf("[Search] Cache SET: %s", cacheKey)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return result, nil
}

// scoreAll computes every candidate's match. Results land in index-keyed
// slots, so the parallel path is byte-identical to the serial one.
func (u *CandidateSearch) scoreAll(ctx context.Context, profiles []candidate.Profile, j job.Job) []scoring.CandidateMatch {
	extractor := scoring.Extractor{
		Canonical:    search.CanonicalSkill,
		DecayPerYear: u.cfg.ExperienceDecayPerYear,
	}

	workers := 1
	if threshold := u.cfg.ParallelThreshold; threshold > 0 && len(profiles) >= threshold {
		workers = u.cfg.Workers
	}

	matches := make([]scoring.CandidateMatch, len(profiles))
	scoring.ForEach(ctx, len(profiles), workers, func(_ context.Context, i int) {
		f := extractor.Extract(profiles[i], j)
		matches[i] = scoring.CandidateMatch{
			Candidate: profiles[i],
			Score:     scoring.Compute(f),
			Reasons:   scoring.BuildReasons(f, profiles[i], j),
		}
	})
	return matches
}

func normalizeSearch(p *SearchParams) (scoring.Filters, scoring.SortKey, scoring.SortOrder, scoring.PageRequest, error) {
	var zero scoring.Filters

	if p.MinScore < 0 || p.MinScore > 100 {
		return zero, "", "", scoring.PageRequest{}, ErrInvalidFilter
	}
	if p.Page < 0 || p.Limit < 0 || p.Limit > 100 {
		return zero, "", "", scoring.PageRequest{}, ErrInvalidFilter
	}
	if p.MinYears != nil && *p.MinYears < 0 {
		return zero, "", "", scoring.PageRequest{}, ErrInvalidFilter
	}
	if p.MaxYears != nil && *p.MaxYears < 0 {
		return zero, "", "", scoring.PageRequest{}, ErrInvalidFilter
	}
	if p.MinYears != nil && p.MaxYears != nil && *p.MinYears > *p.MaxYears {
		return zero, "", "", scoring.PageRequest{}, ErrInvalidFilter
	}

	statuses := make([]candidate.Status, 0, len(p.Statuses))
	for _, s := range p.Statuses {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		st := candidate.Status(s)
		if !st.Valid() {
			return zero, "", "", scoring.PageRequest{}, ErrInvalidFilter
		}
		statuses = append(statuses, st)
	}

	key := scoring.SortByScore
	if s := strings.TrimSpace(p.SortBy); s != "" {
		key = scoring.SortKey(strings.ToLower(s))
		if !key.Valid() {
			return zero, "", "", scoring.PageRequest{}, ErrInvalidFilter
		}
	}
	order := scoring.OrderDesc
	if s := strings.TrimSpace(p.SortOrder); s != "" {
		order = scoring.SortOrder(strings.ToLower(s))
		if !order.Valid() {
			return zero, "", "", scoring.PageRequest{}, ErrInvalidFilter
		}
	}

	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = 20
	}
	p.SortBy = string(key)
	p.SortOrder = string(order)

	filters := scoring.Filters{
		MinScore: p.MinScore,
		Statuses: statuses,
		Tags:     trimAll(p.Tags),
		Skills:   trimAll(p.Skills),
		MinYears: p.MinYears,
		MaxYears: p.MaxYears,
	}
	return filters, key, order, scoring.PageRequest{Page: p.Page, Limit: p.Limit}, nil
}

func buildCriteria(p SearchParams, j job.Job, key scoring.SortKey, order scoring.SortOrder) SearchCriteria {
	return SearchCriteria{
		JobID:     j.ID,
		JobTitle:  j.Title,
		MinScore:  p.MinScore,
		Statuses:  trimAll(p.Statuses),
		Tags:      trimAll(p.Tags),
		Skills:    trimAll(p.Skills),
		MinYears:  p.MinYears,
		MaxYears:  p.MaxYears,
		SortBy:    string(key),
		SortOrder: string(order),
	}
}

// jobFingerprint hashes the scoring-relevant parts of a job, so cached
// searches go stale the moment an edit would change any score.
func jobFingerprint(j job.Job) string {
	var b strings.Builder
	b.WriteString(j.Title)
	b.WriteByte('|')
	b.WriteString(j.Location)
	b.WriteByte('|')
	b.WriteString(string(j.ExperienceLevel))
	for _, r := range j.Requirements {
		fmt.Fprintf(&b, "|%s:%s:%g", r.Skill, r.Level, r.Weight)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:8])
}

func (u *CandidateSearch) cacheTTL() time.Duration {
	if u.cfg.CacheTTL > 0 {
		return u.cfg.CacheTTL
	}
	return 2 * time.Minute
}

func (u *CandidateSearch) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
