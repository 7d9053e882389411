package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisTokenStore struct {
	client redis.Cmdable
	key    string
}

// NewRedisTokenStore returns a [TokenStore] keeping the token in a single
// redis string under key. The key has no expiry; the API decides when a
// token stops being valid.
func NewRedisTokenStore(client redis.Cmdable, key string) TokenStore {
	return &redisTokenStore{client: client, key: key}
}

func (r *redisTokenStore) Load(ctx context.Context) (string, bool, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get session token: %w", err)
	}
	return token, token != "", nil
}

func (r *redisTokenStore) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("redis set session token: %w", err)
	}
	return nil
}

func (r *redisTokenStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del session token: %w", err)
	}
	return nil
}
