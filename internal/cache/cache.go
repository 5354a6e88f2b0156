// Package cache is the shared admin-side store: one redis-backed cache
// keyed by collection name, read through by every dashboard variant and
// explicitly invalidated by mutations. Both dashboards therefore see the
// same data instead of each holding private copies.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Collection keys.
const (
	KeyUsers = "admin:users"
	KeyTips  = "admin:tips"
	KeyStats = "admin:stats"
)

// DefaultTTL bounds staleness for reads that race a mutation in another
// admin session; invalidation handles the local session.
const DefaultTTL = 30 * time.Second

type Store struct {
	rdb *redis.Client
}

// Shared is nil when REDIS_ADDR is not set; all methods are nil-safe and
// degrade to cache misses.
var Shared *Store

func Init(ctx context.Context, addr, password string) (*Store, error) {
	const op = "cache.Init"
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{rdb: rdb}, nil
}

func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	const op = "cache.Get"
	if s == nil {
		return false, nil
	}
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (s *Store) Set(ctx context.Context, key string, value any) error {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, data, DefaultTTL).Err()
}

// Invalidate drops the given collection keys after a successful mutation.
func (s *Store) Invalidate(ctx context.Context, keys ...string) error {
	if s == nil {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}
