package basket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps baskets in Redis so sessions survive process
// restarts and are shared across instances.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func basketKey(sessionID string) string {
	return "basket:" + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (Basket, error) {
	raw, err := s.Client.Get(ctx, basketKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Basket{}, nil
	}
	if err != nil {
		return nil, err
	}

	var b Basket
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, b Basket) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, basketKey(sessionID), raw, s.TTL).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, basketKey(sessionID)).Err()
}
