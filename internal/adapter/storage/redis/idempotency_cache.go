package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ride-escrow-network/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache. It maps a
// (signer, reference) key to the address of the job it created.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: "ride:request:",
	}
}

// Lookup returns the job created for key, or "" when none is cached.
func (c *IdempotencyCache) Lookup(ctx context.Context, key string) (domain.Address, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis idempotency lookup: %w", err)
	}
	return domain.Address(val), nil
}

// Remember records the job created for key. The first mapping wins: a
// reference can never be re-pointed at another job.
func (c *IdempotencyCache) Remember(ctx context.Context, key string, job domain.Address, ttl time.Duration) error {
	if job == "" {
		return errors.New("redis idempotency remember: empty job address")
	}
	if err := c.client.SetNX(ctx, c.prefix+key, job.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency remember: %w", err)
	}
	return nil
}
