package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Jong-Youl/LINK/domain"
)

// RefreshTokenRepositoryImpl implements domain.RefreshTokenRepository using Redis
type RefreshTokenRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(client *redis.Client, ttl time.Duration) domain.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{
		client: client,
		prefix: "refresh:",
		ttl:    ttl,
	}
}

// Save implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) Save(ctx context.Context, token *domain.RefreshToken) error {
	key := r.prefix + token.Token
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal refresh token: %w", err)
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// Find implements domain.RefreshTokenRepository. Absence means the token
// was never issued, already revoked, or expired out of the store.
func (r *RefreshTokenRepositoryImpl) Find(ctx context.Context, token string) (*domain.RefreshToken, error) {
	key := r.prefix + token
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}

	var rt domain.RefreshToken
	if err := json.Unmarshal([]byte(data), &rt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal refresh token: %w", err)
	}

	// Double-check the embedded expiry in case the store TTL lags
	if rt.ExpiresAt.Before(time.Now()) {
		r.client.Del(ctx, key)
		return nil, domain.ErrTokenExpired
	}

	return &rt, nil
}

// Delete implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) Delete(ctx context.Context, token string) error {
	key := r.prefix + token
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}
