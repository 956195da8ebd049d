package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/dataset"
)

const cacheKey = "guide:dataset:entry"

// Store persists the single dataset cache entry in Redis. The key carries no
// Redis TTL; freshness is the loader's policy, not the store's.
type Store struct {
	rdb *redis.Client
}

func New(url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Store{rdb: rdb}, nil
}

// NewWithClient wraps an existing client; used by tests.
func NewWithClient(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

// Read returns the stored entry, or (nil, nil) when the key is absent or its
// payload no longer decodes. A corrupted entry reads as a miss, never as an
// error the caller has to handle.
func (s *Store) Read(ctx context.Context) (*dataset.CacheEntry, error) {
	val, err := s.rdb.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry dataset.CacheEntry
	if err := json.Unmarshal(val, &entry); err != nil {
		return nil, nil
	}
	return &entry, nil
}

func (s *Store) Write(ctx context.Context, entry *dataset.CacheEntry) error {
	bytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cacheKey, bytes, 0).Err()
}
