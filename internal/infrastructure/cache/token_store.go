package cache

import (
	"context"
	"fmt"
	"time"

	"clinic-records/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the set of issued tokens that are still allowed.
// A token that is missing from the store is treated as revoked.
type TokenStore interface {
	Store(ctx context.Context, tokenType jwt.TokenType, doctorID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenType jwt.TokenType, doctorID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenType jwt.TokenType, doctorID uuid.UUID, tokenID string) error
	Ping(ctx context.Context) error
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

// TokenKey formats keys as "<type>_token:<doctorID>:<tokenID>".
func TokenKey(tokenType jwt.TokenType, doctorID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, doctorID, tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, tokenType jwt.TokenType, doctorID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, TokenKey(tokenType, doctorID, tokenID), tokenID, ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, doctorID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, TokenKey(tokenType, doctorID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, doctorID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, TokenKey(tokenType, doctorID, tokenID)).Err()
}

func (s *redisTokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
