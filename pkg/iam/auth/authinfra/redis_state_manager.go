package authinfra

import (
	"context"
	"errors"
	"time"

	"github.com/1dhruvsingh/ResumeAI/pkg/iam/auth"
	"github.com/go-redis/redis/v8"
)

const stateKeyPrefix = "oauth:state:"

type RedisStateManager struct {
	client *redis.Client
}

// NewRedisStateManager creates a new Redis-backed OAuth state manager
func NewRedisStateManager(client *redis.Client) *RedisStateManager {
	return &RedisStateManager{client: client}
}

func (m *RedisStateManager) StoreState(ctx context.Context, state, verifier string, ttl time.Duration) error {
	return m.client.Set(ctx, stateKeyPrefix+state, verifier, ttl).Err()
}

// ConsumeState reads and deletes the state in one transaction so a state can
// only be redeemed once.
func (m *RedisStateManager) ConsumeState(ctx context.Context, state string) (string, error) {
	key := stateKeyPrefix + state

	pipe := m.client.TxPipeline()
	get := pipe.Get(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	verifier, err := get.Result()
	if errors.Is(err, redis.Nil) {
		return "", auth.ErrInvalidOAuthState()
	}
	if err != nil {
		return "", err
	}
	return verifier, nil
}
