package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "auth:denylist:"

// TokenDenylist records staff tokens that were explicitly invalidated before
// their embedded expiry. Checked on every staff identity resolution.
type TokenDenylist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

type redisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist returns a Redis-backed denylist. Entries expire with the
// token they shadow, so the set stays bounded without a reaper.
func NewRedisDenylist(client *redis.Client) TokenDenylist {
	return &redisDenylist{client: client}
}

func (d *redisDenylist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistKeyPrefix+token, "1", ttl).Err()
}

func (d *redisDenylist) Contains(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
