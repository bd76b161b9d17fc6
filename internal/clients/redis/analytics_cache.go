package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/neharvard/interactive-storytelling-server/internal/platform/logger"
)

const (
	keyPrefix    = "analytics:"
	genKeyPrefix = "analytics:gen:"
	// genTTL bounds how long an idle story's generation counter is kept. It only
	// has to outlive in-flight reads.
	genTTL = 24 * time.Hour
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// AnalyticsCache stores derived analytics views in one Redis hash per story
// (field = view name) so a single DEL invalidates every view of that story.
type AnalyticsCache struct {
	log *logger.Logger
	rdb goredis.UniversalClient
	ttl time.Duration
}

func NewAnalyticsCache(ctx context.Context, log *logger.Logger, cfg Config) (*AnalyticsCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newAnalyticsCache(log, rdb, cfg.TTL), nil
}

func newAnalyticsCache(log *logger.Logger, rdb goredis.UniversalClient, ttl time.Duration) *AnalyticsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AnalyticsCache{
		log: log.With("client", "RedisAnalyticsCache"),
		rdb: rdb,
		ttl: ttl,
	}
}

func storyKey(storyID string) string { return keyPrefix + storyID }

func genKey(storyID string) string { return genKeyPrefix + storyID }

var errStaleGeneration = errors.New("analytics cache generation moved")

// Get decodes the cached view into dst and returns the story's current
// generation. It reports false on a miss.
func (c *AnalyticsCache) Get(ctx context.Context, storyID, view string, dst any) (int64, bool, error) {
	if c == nil || c.rdb == nil {
		return 0, false, nil
	}
	var (
		hget *goredis.StringCmd
		gget *goredis.StringCmd
	)
	_, err := c.rdb.Pipelined(ctx, func(p goredis.Pipeliner) error {
		hget = p.HGet(ctx, storyKey(storyID), view)
		gget = p.Get(ctx, genKey(storyID))
		return nil
	})
	if err != nil && !errors.Is(err, goredis.Nil) {
		return 0, false, err
	}

	gen, err := gget.Int64()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return 0, false, err
	}
	raw, err := hget.Bytes()
	if errors.Is(err, goredis.Nil) {
		return gen, false, nil
	}
	if err != nil {
		return gen, false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return gen, false, fmt.Errorf("decode cached %s: %w", view, err)
	}
	return gen, true, nil
}

// Set stores the view only while the story is still at generation gen. A write
// that raced with Invalidate is dropped silently.
func (c *AnalyticsCache) Set(ctx context.Context, storyID, view string, gen int64, v any) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	key, gk := storyKey(storyID), genKey(storyID)
	err = c.rdb.Watch(ctx, func(tx *goredis.Tx) error {
		cur, err := tx.Get(ctx, gk).Int64()
		if errors.Is(err, goredis.Nil) {
			cur = 0
		} else if err != nil {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(p goredis.Pipeliner) error {
			p.HSet(ctx, key, view, raw)
			p.Expire(ctx, key, c.ttl)
			return nil
		})
		return err
	}, gk)
	if errors.Is(err, errStaleGeneration) || errors.Is(err, goredis.TxFailedErr) {
		c.log.Debug("dropped stale analytics view", "story_id", storyID, "view", view, "gen", gen)
		return nil
	}
	return err
}

// Invalidate drops every cached view of the story and advances its generation.
func (c *AnalyticsCache) Invalidate(ctx context.Context, storyID string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	gk := genKey(storyID)
	_, err := c.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Incr(ctx, gk)
		p.Expire(ctx, gk, genTTL)
		p.Del(ctx, storyKey(storyID))
		return nil
	})
	return err
}

func (c *AnalyticsCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
