package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/profolio/profolio/internal/domain"
	"github.com/profolio/profolio/internal/observability"
	"github.com/profolio/profolio/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	lookupPositionsKey    = "lookup:positions"
	lookupTechnologiesKey = "lookup:technologies"
)

// LookupResolver resolves position/technology id sets against the lookup
// tables. Unknown ids are dropped, not errors; the tables are authoritative.
type LookupResolver interface {
	PositionsByIDs(ctx context.Context, ids []uint) ([]domain.Position, error)
	TechnologiesByIDs(ctx context.Context, ids []uint) ([]domain.Technology, error)
	AllPositions(ctx context.Context) ([]domain.Position, error)
	AllTechnologies(ctx context.Context) ([]domain.Technology, error)
}

// RedisLookupCache is a read-through cache over the lookup tables. The
// tables are tiny and read-mostly, so whole-table entries with a TTL are
// enough. With a nil client every call falls through to the repository.
type RedisLookupCache struct {
	repo repository.LookupRepository
	rdb  redis.UniversalClient
	ttl  time.Duration
}

func NewRedisLookupCache(repo repository.LookupRepository, rdb redis.UniversalClient, ttl time.Duration) *RedisLookupCache {
	return &RedisLookupCache{repo: repo, rdb: rdb, ttl: ttl}
}

func (c *RedisLookupCache) AllPositions(ctx context.Context) ([]domain.Position, error) {
	return cachedTable(ctx, c, lookupPositionsKey, c.repo.AllPositions)
}

func (c *RedisLookupCache) AllTechnologies(ctx context.Context) ([]domain.Technology, error) {
	return cachedTable(ctx, c, lookupTechnologiesKey, c.repo.AllTechnologies)
}

func (c *RedisLookupCache) PositionsByIDs(ctx context.Context, ids []uint) ([]domain.Position, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	all, err := c.AllPositions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Position, 0, len(ids))
	for _, id := range ids {
		for _, p := range all {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (c *RedisLookupCache) TechnologiesByIDs(ctx context.Context, ids []uint) ([]domain.Technology, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	all, err := c.AllTechnologies(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Technology, 0, len(ids))
	for _, id := range ids {
		for _, t := range all {
			if t.ID == id {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func cachedTable[T any](ctx context.Context, c *RedisLookupCache, key string, load func() ([]T, error)) ([]T, error) {
	if c.rdb != nil {
		raw, err := c.rdb.Get(ctx, key).Result()
		if err == nil {
			var out []T
			if jsonErr := json.Unmarshal([]byte(raw), &out); jsonErr == nil {
				observability.RecordLookupCacheEvent(ctx, key, "hit")
				return out, nil
			}
			// Corrupt entry: fall through and overwrite below.
		} else if !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("lookup cache read: %w", err)
		}
		observability.RecordLookupCacheEvent(ctx, key, "miss")
	}
	out, err := load()
	if err != nil {
		return nil, err
	}
	if c.rdb != nil {
		if raw, err := json.Marshal(out); err == nil {
			// Best-effort backfill; a write failure only costs the cache hit.
			_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
		}
	}
	return out, nil
}
