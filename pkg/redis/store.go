package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/uaparse/pkg/cache"
	"github.com/dmitrymomot/uaparse/pkg/useragent"
)

var _ cache.Store = (*ResultStore)(nil)

// ResultStore keeps classification results in Redis so several processes
// share one warm cache.
type ResultStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

type storedResult struct {
	UA     string           `json:"ua"`
	Result useragent.Result `json:"result"`
}

// NewResultStore creates a store writing under prefix with the given TTL.
// A zero TTL keeps entries until they are evicted by Redis.
func NewResultStore(client redis.UniversalClient, prefix string, ttl time.Duration) *ResultStore {
	return &ResultStore{client: client, prefix: prefix, ttl: ttl}
}

// NewResultStoreFromConfig uses cfg.KeyPrefix and cfg.TTL.
func NewResultStoreFromConfig(client redis.UniversalClient, cfg Config) *ResultStore {
	return NewResultStore(client, cfg.KeyPrefix, cfg.TTL)
}

// Key returns the Redis key for ua: the prefix followed by the hex hash.
func (s *ResultStore) Key(ua string) string {
	return s.prefix + strconv.FormatUint(cache.Key(ua), 16)
}

// Get loads the result for ua. A missing key or an entry stored for a
// different string with the same hash is a miss.
func (s *ResultStore) Get(ctx context.Context, ua string) (useragent.Result, bool, error) {
	data, err := s.client.Get(ctx, s.Key(ua)).Bytes()
	if errors.Is(err, redis.Nil) {
		return useragent.Result{}, false, nil
	}
	if err != nil {
		return useragent.Result{}, false, errors.Join(ErrStoreRead, err)
	}
	return decodeStored(data, ua)
}

// decodeStored unpacks a stored value. A value written for another string
// that hashes to the same key is a miss.
func decodeStored(data []byte, ua string) (useragent.Result, bool, error) {
	var stored storedResult
	if err := json.Unmarshal(data, &stored); err != nil {
		return useragent.Result{}, false, errors.Join(ErrStoreRead, err)
	}
	if stored.UA != ua {
		return useragent.Result{}, false, nil
	}
	return stored.Result, true, nil
}

// Set writes the result for ua with the configured TTL.
func (s *ResultStore) Set(ctx context.Context, ua string, res useragent.Result) error {
	data, err := json.Marshal(storedResult{UA: ua, Result: res})
	if err != nil {
		return errors.Join(ErrStoreWrite, err)
	}
	if err := s.client.Set(ctx, s.Key(ua), data, s.ttl).Err(); err != nil {
		return errors.Join(ErrStoreWrite, err)
	}
	return nil
}
