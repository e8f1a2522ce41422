package usecase

import "context"

// Pinger is the connectivity probe of a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	// Check returns per-dependency statuses and overall health.
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	db         Pinger                          // nil when persistence is disabled
	cacheCheck func(ctx context.Context) error // nil when Redis is not configured
}

func NewHealthUsecase(db Pinger, cacheCheck func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{db: db, cacheCheck: cacheCheck}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	statuses := map[string]string{"server": "ok"}
	healthy := true

	if u.db != nil {
		if err := u.db.Ping(ctx); err != nil {
			statuses["database"] = "unreachable"
			healthy = false
		} else {
			statuses["database"] = "ok"
		}
	} else {
		statuses["database"] = "disabled"
	}

	if u.cacheCheck != nil {
		// Degraded cache is not fatal: limiter and duplicate guard fall
		// back to their in-memory stores.
		if err := u.cacheCheck(ctx); err != nil {
			statuses["cache"] = "unreachable"
		} else {
			statuses["cache"] = "ok"
		}
	}

	return statuses, healthy
}
