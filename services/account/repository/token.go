package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/codeforher/backend/internal/pkg/apperr"
)

func refreshTokenKey(userID string) string {
	return fmt.Sprintf("refresh_token:%s", userID)
}

// StoreRefreshToken stores the active refresh token for a user. Issuing a new
// one replaces the previous token, which revokes it.
func (r *AccountRepo) StoreRefreshToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, refreshTokenKey(userID), token, ttl); err != nil {
		return fmt.Errorf("%w: failed to store refresh token: %v", apperr.ErrPersistence, err)
	}
	return nil
}

// GetRefreshToken returns the active refresh token for a user
func (r *AccountRepo) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	token, err := r.redisClient.Get(ctx, refreshTokenKey(userID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: refresh token not found", apperr.ErrNotFound)
		}
		return "", fmt.Errorf("%w: failed to get refresh token: %v", apperr.ErrPersistence, err)
	}
	return token, nil
}

// DeleteRefreshToken revokes the active refresh token for a user
func (r *AccountRepo) DeleteRefreshToken(ctx context.Context, userID string) error {
	if err := r.redisClient.Delete(ctx, refreshTokenKey(userID)); err != nil {
		return fmt.Errorf("%w: failed to delete refresh token: %v", apperr.ErrPersistence, err)
	}
	return nil
}
