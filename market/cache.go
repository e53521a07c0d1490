package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const DefaultCacheTTL = 5 * time.Minute

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type RedisCache struct {
	rdb redis.Cmdable
}

func NewRedisCache(rdb redis.Cmdable) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

type memoryEntry struct {
	value   string
	expires time.Time
}

// MemoryCache is a process-local Cache used when redis is not configured.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{value: value, expires: c.now().Add(ttl)}
	return nil
}

// Cached serves quotes from cache, falling through to next on a miss.
// Cache failures are logged and never fail a quote.
type Cached struct {
	next  Quoter
	cache Cache
	ttl   time.Duration
	log   zerolog.Logger
}

func NewCached(next Quoter, cache Cache, ttl time.Duration, log zerolog.Logger) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{next: next, cache: cache, ttl: ttl, log: log}
}

func priceKey(symbol string) string {
	return fmt.Sprintf("stock:%s:price", symbol)
}

func (c *Cached) Quote(ctx context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	key := priceKey(symbol)

	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("quote cache read failed")
	}
	if ok {
		var q Quote
		if err := json.Unmarshal([]byte(raw), &q); err == nil {
			q.Cached = true
			return q, nil
		}
		c.log.Warn().Str("key", key).Msg("discarding malformed cached quote")
	}

	q, err := c.next.Quote(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}
	b, err := json.Marshal(q)
	if err == nil {
		err = c.cache.Set(ctx, key, string(b), c.ttl)
	}
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("quote cache write failed")
	}
	return q, nil
}
