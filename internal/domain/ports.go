package domain

import (
	"context"
	"time"
)

// RateLimiter counts hits per key inside a fixed window.
type RateLimiter interface {
	// Allow records one hit for key and reports whether it is within quota,
	// along with the hits left and the time the current window resets.
	Allow(ctx context.Context, key string) (allowed bool, remaining int, resetAt time.Time, err error)
}

// TokenVerifier verifies a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// HealthChecker reports whether a collaborator is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
