package middleware

import (
	"strconv"
	"time"

	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule caps requests per caller within one fixed window.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Requests per window for each route group. Location pings are the chattiest
// signed traffic a driver produces.
var defaultGroupLimits = map[string]int64{
	"config":          30,
	"infras":          30,
	"drivers":         60,
	"driver_location": 600,
	"jobs":            120,
	"catalog":         20,
	"accounts":        20,
	"reads":           300,
}

// RateLimitRules returns one rule per route group over a shared window.
// Entries in overrides replace the default limit; a limit <= 0 removes the
// group, which leaves its routes unlimited.
func RateLimitRules(window time.Duration, overrides map[string]int64) map[string]RateLimitRule {
	if window <= 0 {
		window = time.Minute
	}
	rules := make(map[string]RateLimitRule, len(defaultGroupLimits))
	for group, limit := range defaultGroupLimits {
		rules[group] = RateLimitRule{Limit: limit, Window: window}
	}
	for group, limit := range overrides {
		if limit <= 0 {
			delete(rules, group)
			continue
		}
		rules[group] = RateLimitRule{Limit: limit, Window: window}
	}
	return rules
}

// RateLimiter limits one route group. A store failure lets the request
// through.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := callerKey(c)
		result, err := store.Allow(c.Request.Context(), caller+":"+group, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request")
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			h.Set("Retry-After", strconv.FormatInt(max(result.ResetAt-time.Now().Unix(), 1), 10))
			log.Debug().Str("group", group).Str("caller", caller).Msg("rate limited")
			abort(c, apperror.ErrRateLimitExceeded())
			return
		}
		c.Next()
	}
}

// callerKey identifies the caller by the claimed signer, falling back to the
// client address. The header is read before authentication so unsigned
// floods are limited too.
func callerKey(c *gin.Context) string {
	if s := c.GetHeader(HeaderSigner); s != "" && len(s) <= 128 {
		return s
	}
	return c.ClientIP()
}
