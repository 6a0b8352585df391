package usecase

import (
	"context"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type HealthUsecase interface {
	Check(ctx context.Context) (HealthStatus, bool)
}

// Health reports component liveness. The cache is optional infrastructure,
// so a down cache degrades the report without failing the check.
type Health struct {
	db    Pinger
	cache Pinger
}

func NewHealthUsecase(db, cache Pinger) *Health {
	return &Health{db: db, cache: cache}
}

func (u *Health) Check(ctx context.Context) (HealthStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{Database: "ok", Cache: "ok"}
	healthy := true

	if u.db == nil || u.db.Ping(ctx) != nil {
		status.Database = "unavailable"
		healthy = false
	}
	if u.cache == nil || u.cache.Ping(ctx) != nil {
		status.Cache = "unavailable"
	}
	return status, healthy
}
