package di

import (
	"log/slog"

	"stockevent_backend/internal/platform/cache"
	"stockevent_backend/internal/platform/config"
	platformredis "stockevent_backend/internal/platform/redis"
)

// NewCacheStore creates the shared cache store.
// If Redis is unavailable, it returns a store that degrades to a miss on
// every read, so the application keeps serving from the provider.
func NewCacheStore(cfg config.Config) *cache.Store {
	rdb, err := platformredis.NewRedisClient(cfg)
	if err != nil {
		slog.Warn("redis unavailable, running without cache", "error", err)
		return cache.NewStore(nil)
	}
	return cache.NewStore(rdb)
}
