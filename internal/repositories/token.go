package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/fiton/internal/logger"
)

const revokedTokenPrefix = "revoked_token:"

// TokenRevocationRepository keeps ids of logged-out tokens in Redis until they expire.
type TokenRevocationRepository struct {
	client redis.Cmdable
}

func NewTokenRevocationRepository(client redis.Cmdable) *TokenRevocationRepository {
	return &TokenRevocationRepository{client: client}
}

// Revoke marks the token id as revoked for ttl. Tokens that already expired are skipped.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := revokedTokenPrefix + tokenID
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.FromContext(ctx).Infow("redis set",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token id was revoked.
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenPrefix + tokenID
	err := r.client.Get(ctx, key).Err()

	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	logger.FromContext(ctx).Infow("redis get",
		"key", key,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return true, nil
}
