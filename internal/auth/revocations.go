package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedPrefix = "revoked:"

// Revocations records logged-out token IDs until they would have expired.
type Revocations interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// NewRevocations returns a Redis-backed store, or a no-op store when
// client is nil.
func NewRevocations(client *redis.Client) Revocations {
	if client == nil {
		return noopRevocations{}
	}
	return &redisRevocations{client: client}
}

type redisRevocations struct {
	client *redis.Client
}

func (r *redisRevocations) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedPrefix+jti, "1", ttl).Err()
}

func (r *redisRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type noopRevocations struct{}

func (noopRevocations) Revoke(context.Context, string, time.Duration) error { return nil }

func (noopRevocations) IsRevoked(context.Context, string) (bool, error) { return false, nil }
