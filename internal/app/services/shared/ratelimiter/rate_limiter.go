package ratelimiter

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed window counter stored in Redis with a TTL equal
// to the window duration.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
	now   func() time.Time
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{
		redis: redis,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (l *ResourceLimiter) Allow(ctx context.Context, group, resource string, window time.Duration, maxQuota int) (bool, time.Duration, error) {
	if maxQuota <= 0 {
		return true, 0, nil
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	group = strings.ToUpper(strings.TrimSpace(group))
	windowSec := int64(window / time.Second)
	if windowSec <= 0 {
		windowSec = 60
	}

	if resource == "" || group == "" {
		return false, time.Duration(windowSec) * time.Second, nil
	}

	now := l.now()
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	count, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("ResourceLimiter.Allow increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, 0, err
	}

	if count > int64(maxQuota) {
		nextWindowStart := (windowID + 1) * windowSec
		retryAfter := time.Duration(nextWindowStart-now.Unix()) * time.Second
		return false, retryAfter, nil
	}
	return true, 0, nil
}
