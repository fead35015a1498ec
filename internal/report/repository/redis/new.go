package redis

import (
	"time"

	"analytics-srv/internal/report/repository"
	"analytics-srv/pkg/log"
	pkgredis "analytics-srv/pkg/redis"
)

// DefaultTTL bounds how long a cached report stays fresh.
const DefaultTTL = 10 * time.Minute

type implRepository struct {
	l     log.Logger
	redis pkgredis.IRedis
	ttl   time.Duration
}

// New - Factory
func New(l log.Logger, r pkgredis.IRedis, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{l: l, redis: r, ttl: ttl}
}
