package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "analytics:report:"

func (r *implRepository) GetReport(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.redis.Get(ctx, keyPrefix+key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached report: %w", err)
	}
	return []byte(val), true, nil
}

func (r *implRepository) SaveReport(ctx context.Context, key string, data []byte) error {
	if err := r.redis.Set(ctx, keyPrefix+key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}
