package app

import (
	"context"
	"strings"

	"github.com/neharvard/interactive-storytelling-server/internal/clients/redis"
	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

type Clients struct {
	AnalyticsCache *redis.AnalyticsCache
}

// wireClients connects optional backends. A Redis outage at startup disables the
// analytics cache instead of failing the process.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")

	var out Clients
	if strings.TrimSpace(cfg.Redis.Addr) == "" {
		log.Info("REDIS_ADDR not set; analytics cache disabled")
		return out
	}
	cache, err := redis.NewAnalyticsCache(ctx, log, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		log.Warn("analytics cache unavailable; continuing without it", "addr", cfg.Redis.Addr, "error", err)
		return out
	}
	out.AnalyticsCache = cache
	return out
}

func (c Clients) Close() {
	if c.AnalyticsCache != nil {
		_ = c.AnalyticsCache.Close()
	}
}
