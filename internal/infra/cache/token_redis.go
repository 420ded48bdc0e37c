package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/customer-service/internal/domain/auth"
)

const (
	keyPrefix    = "token:"
	valueRevoked = "revoked"
)

// TokenRedisStore keeps issued token ids as keys that expire with the token.
type TokenRedisStore struct {
	client *redis.Client
}

func NewTokenRedisStore(client *redis.Client) *TokenRedisStore {
	return &TokenRedisStore{client: client}
}

// NewRedisClient parses a redis:// URL and checks connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *TokenRedisStore) Save(
	ctx context.Context,
	jti string,
	customerID uint,
	expiresAt time.Time,
) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, keyPrefix+jti, strconv.FormatUint(uint64(customerID), 10), ttl).Err()
}

func (s *TokenRedisStore) IsActive(
	ctx context.Context,
	jti string,
) (bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val != valueRevoked, nil
}

// Revoke overwrites the value but keeps the remaining TTL.
func (s *TokenRedisStore) Revoke(
	ctx context.Context,
	jti string,
) error {
	err := s.client.SetXX(ctx, keyPrefix+jti, valueRevoked, redis.KeepTTL).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// Compile-time check
var _ auth.TokenStore = (*TokenRedisStore)(nil)
