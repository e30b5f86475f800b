package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ride-escrow-network/internal/adapter/http/middleware"
	redisStore "ride-escrow-network/internal/adapter/storage/redis"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRateLimitRouter(store ports.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	r.GET("/test", middleware.RateLimiter(store, "test", rule, log), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newRedisStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func get(router *gin.Engine, signer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	if signer != "" {
		req.Header.Set(middleware.HeaderSigner, signer)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t))

	for i := 0; i < 3; i++ {
		w := get(router, "")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t))

	// Use up the limit
	for i := 0; i < 3; i++ {
		get(router, "")
	}

	w := get(router, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_SeparateSigners(t *testing.T) {
	router := setupRateLimitRouter(newRedisStore(t))
	a := strings.Repeat("a", 64)
	b := strings.Repeat("b", 64)

	for i := 0; i < 3; i++ {
		get(router, a)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(router, a).Code)
	assert.Equal(t, http.StatusOK, get(router, b).Code)
}

func TestRateLimiter_StoreFailureAllows(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRateLimitStore(ctrl)
	store.EXPECT().Allow(gomock.Any(), gomock.Any(), int64(3), time.Minute).Return(nil, errors.New("redis down"))

	w := get(setupRateLimitRouter(store), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitRules(t *testing.T) {
	rules := middleware.RateLimitRules(0, nil)
	for _, group := range []string{"config", "infras", "drivers", "driver_location", "jobs", "catalog", "accounts", "reads"} {
		rule, ok := rules[group]
		assert.True(t, ok, group)
		assert.Positive(t, rule.Limit)
		assert.Equal(t, time.Minute, rule.Window)
	}

	rules = middleware.RateLimitRules(30*time.Second, map[string]int64{"jobs": 5, "reads": 0, "exports": 2})
	assert.Equal(t, middleware.RateLimitRule{Limit: 5, Window: 30 * time.Second}, rules["jobs"])
	assert.Equal(t, int64(2), rules["exports"].Limit)
	_, ok := rules["reads"]
	assert.False(t, ok)
	assert.Equal(t, 30*time.Second, rules["config"].Window)
}
