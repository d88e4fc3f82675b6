package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error)
	// IncrementWithTTL increments key and sets ttl when the key is new.
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
