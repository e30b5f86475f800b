package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var errEmptyNonce = errors.New("signer and nonce are required")

// NonceStore implements ports.NonceStore. A nonce is single use per signer
// until its TTL lapses.
type NonceStore struct {
	client *goredis.Client
	prefix string
}

// NewNonceStore creates a new Redis-backed nonce store.
func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{
		client: client,
		prefix: "ride:nonce:",
	}
}

func (s *NonceStore) key(signer, nonce string) string {
	return s.prefix + signer + ":" + nonce
}

// CheckAndSet claims nonce for signer. It reports false when the nonce was
// already claimed within ttl.
func (s *NonceStore) CheckAndSet(ctx context.Context, signer string, nonce string, ttl time.Duration) (bool, error) {
	if signer == "" || nonce == "" {
		return false, errEmptyNonce
	}
	claimed, err := s.client.SetNX(ctx, s.key(signer, nonce), time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis nonce claim: %w", err)
	}
	return claimed, nil
}
