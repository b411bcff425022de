package booking

import (
	"context"
	"encoding/json"
	"time"

	"staybook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// IdempotencyStore records completed checkout results so a retried
// request with the same key replays the original result instead of
// authorizing a second payment.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*CheckoutResult, bool)
	Save(ctx context.Context, key string, result *CheckoutResult)
}

// RedisIdempotencyStore implements IdempotencyStore on Redis. Lookups
// and writes are best effort: a cache failure degrades to a fresh
// checkout rather than failing the request.
type RedisIdempotencyStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisIdempotencyStore constructs a store with a 24h record TTL.
func NewRedisIdempotencyStore(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{
		Client: client,
		TTL:    24 * time.Hour,
	}
}

func (s *RedisIdempotencyStore) key(key string) string {
	return "checkout:idempotency:" + key
}

func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (*CheckoutResult, bool) {
	data, err := s.Client.Get(ctx, s.key(key)).Result()
	if err != nil {
		return nil, false
	}
	var result CheckoutResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		utils.GetLogger().Warn("failed to decode stored checkout result", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &result, true
}

func (s *RedisIdempotencyStore) Save(ctx context.Context, key string, result *CheckoutResult) {
	data, err := json.Marshal(result)
	if err != nil {
		utils.GetLogger().Warn("failed to encode checkout result", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.Client.Set(ctx, s.key(key), data, s.TTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to store checkout result", zap.String("key", key), zap.Error(err))
	}
}
