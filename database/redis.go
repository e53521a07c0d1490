package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Redis is a Store keeping one hash per user collection, plus one
// counters hash per user.
type Redis struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedis(rdb redis.Cmdable, prefix string) *Redis {
	if prefix == "" {
		prefix = "cashtrack"
	}
	return &Redis{rdb: rdb, prefix: prefix}
}

func (r *Redis) collectionKey(userID, collection string) string {
	return fmt.Sprintf("%s:users:%s:%s", r.prefix, userID, collection)
}

func (r *Redis) countersKey(userID string) string {
	return fmt.Sprintf("%s:users:%s:counters", r.prefix, userID)
}

func (r *Redis) Set(ctx context.Context, userID, collection, key string, value []byte) error {
	if err := checkKey(userID, collection, key); err != nil {
		return err
	}
	if err := r.rdb.HSet(ctx, r.collectionKey(userID, collection), key, value).Err(); err != nil {
		return fmt.Errorf("hset %s/%s: %w", collection, key, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, userID, collection string) (map[string][]byte, error) {
	if err := checkScope(userID, collection); err != nil {
		return nil, err
	}
	entries, err := r.rdb.HGetAll(ctx, r.collectionKey(userID, collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", collection, err)
	}
	out := make(map[string][]byte, len(entries))
	for k, v := range entries {
		out[k] = []byte(v)
	}
	return out, nil
}

func (r *Redis) Delete(ctx context.Context, userID, collection, key string) (bool, error) {
	if err := checkKey(userID, collection, key); err != nil {
		return false, err
	}
	n, err := r.rdb.HDel(ctx, r.collectionKey(userID, collection), key).Result()
	if err != nil {
		return false, fmt.Errorf("hdel %s/%s: %w", collection, key, err)
	}
	return n > 0, nil
}

func (r *Redis) NextID(ctx context.Context, userID, collection string) (int64, error) {
	if err := checkScope(userID, collection); err != nil {
		return 0, err
	}
	n, err := r.rdb.HIncrBy(ctx, r.countersKey(userID), collection, 1).Result()
	if err != nil {
		return 0, fmt.Errorf("hincrby %s: %w", collection, err)
	}
	return n, nil
}
