package contracts

import (
	"context"
	"time"
)

type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}

type ResourceLimiter interface {
	// Allow counts one hit for resource within group and reports whether it
	// stays under maxQuota for the current window.
	Allow(ctx context.Context, group, resource string, window time.Duration, maxQuota int) (bool, time.Duration, error)
}
