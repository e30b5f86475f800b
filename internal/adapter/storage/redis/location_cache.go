package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ride-escrow-network/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// LocationCache implements ports.LocationCache. Entries expire so a driver
// that stops reporting drops out of the cache.
type LocationCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewLocationCache creates a new Redis-backed driver location cache.
func NewLocationCache(client *goredis.Client, ttl time.Duration) *LocationCache {
	return &LocationCache{
		client: client,
		prefix: "ride:location:",
		ttl:    ttl,
	}
}

// Set writes the driver's latest position.
func (c *LocationCache) Set(ctx context.Context, driverUUID string, loc ports.CachedLocation) error {
	payload, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("encode location: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+driverUUID, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis location set: %w", err)
	}
	return nil
}

// Get returns the cached position, or nil when there is none.
func (c *LocationCache) Get(ctx context.Context, driverUUID string) (*ports.CachedLocation, error) {
	raw, err := c.client.Get(ctx, c.prefix+driverUUID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis location get: %w", err)
	}

	var loc ports.CachedLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, fmt.Errorf("decode location: %w", err)
	}
	return &loc, nil
}

// Delete evicts the driver's entry.
func (c *LocationCache) Delete(ctx context.Context, driverUUID string) error {
	if err := c.client.Del(ctx, c.prefix+driverUUID).Err(); err != nil {
		return fmt.Errorf("redis location delete: %w", err)
	}
	return nil
}
