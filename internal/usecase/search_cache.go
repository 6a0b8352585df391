package usecase

import (
	"context"
	"time"
)

// SearchCache is the slice of the cache the search orchestrator needs. A nil
// or unavailable cache degrades to a miss on every call.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// SearchInvalidator drops cached search results after job or candidate
// writes make them stale.
type SearchInvalidator interface {
	InvalidateSearchesForJob(ctx context.Context, jobID string) error
	InvalidateSearchesForOwner(ctx context.Context, ownerID string) error
}
