package redis

import (
	"context"
	"fmt"
	"time"

	"ride-escrow-network/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// incrWindow bumps a window counter and arms its expiry on the first hit, so
// a counter never outlives its window even if the client dies mid-request.
var incrWindow = goredis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore struct {
	client goredis.Scripter
	prefix string
	now    func() time.Time
}

func NewRateLimitStore(client goredis.Scripter) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "ride:ratelimit:",
		now:    time.Now,
	}
}

// Allow counts one request against key. The counter key carries the window
// index, so each window starts from zero.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	windowSec := int64(window / time.Second)
	if windowSec < 1 {
		windowSec = 1
	}
	windowID := s.now().Unix() / windowSec
	counter := fmt.Sprintf("%s%s:%d", s.prefix, key, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	count, err := incrWindow.Run(ctx, s.client, []string{counter}, ttl.Milliseconds()).Int64()
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", key, err)
	}

	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(limit-count, 0),
		ResetAt:   (windowID + 1) * windowSec,
	}, nil
}
