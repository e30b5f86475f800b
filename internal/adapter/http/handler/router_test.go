package handler

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"ride-escrow-network/internal/adapter/events/rabbitmq"
	"ride-escrow-network/internal/adapter/http/middleware"
	"ride-escrow-network/internal/adapter/metrics"
	"ride-escrow-network/internal/adapter/storage/memory"
	redisStorage "ride-escrow-network/internal/adapter/storage/redis"
	"ride-escrow-network/internal/core/domain"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/internal/service"
	"ride-escrow-network/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKey struct {
	pub  domain.Pubkey
	priv ed25519.PrivateKey
}

func newTestKey(t *testing.T) testKey {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return testKey{pub: domain.Pubkey(hex.EncodeToString(pub)), priv: priv}
}

type testServer struct {
	router *gin.Engine
	sig    *service.Ed25519SignatureService
	nonce  atomic.Int64
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := memory.NewStore()
	clock := service.SystemClock{}
	log := zerolog.Nop()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	sig := service.NewEd25519SignatureService()

	router := SetupRouter(RouterDeps{
		ConfigSvc:  service.NewConfigService(store, clock, log),
		InfraSvc:   service.NewInfraService(store, clock, m, log),
		DriverSvc:  service.NewDriverService(store, redisStorage.NewLocationCache(rdb, time.Minute), clock, log),
		JobSvc:     service.NewJobService(store, redisStorage.NewIdempotencyCache(rdb), redisStorage.NewLocationCache(rdb, time.Minute), rabbitmq.Nop{}, m, clock, time.Hour, log),
		CatalogSvc: service.NewCatalogService(store, clock, log),
		LedgerSvc:  service.NewLedgerService(store, log),

		SigSvc:         sig,
		NonceStore:     redisStorage.NewNonceStore(rdb),
		Auth:           middleware.AuthOptions{TimestampDrift: time.Minute, NonceTTL: 5 * time.Minute},
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{store, redisStorage.NewHealthCheck(rdb)},
		HTTPMetrics:    m,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		MaxBodyBytes:   4096,
		Logger:         log,
	})
	return &testServer{router: router, sig: sig}
}

func (s *testServer) do(method, path, body string, key *testKey) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if key != nil {
		nonce := fmt.Sprintf("n-%d", s.nonce.Add(1))
		ts := time.Now().Unix()
		canonical := s.sig.BuildCanonicalString(method, path, ts, nonce, []byte(body))
		req.Header.Set(middleware.HeaderSigner, string(key.pub))
		req.Header.Set(middleware.HeaderSignature, hex.EncodeToString(ed25519.Sign(key.priv, []byte(canonical))))
		req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(middleware.HeaderNonce, nonce)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestRouter_SignedMutationsAndPublicReads(t *testing.T) {
	srv := newTestServer(t)
	admin := newTestKey(t)
	stranger := newTestKey(t)

	w := srv.do(http.MethodGet, "/api/v1/global", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(http.MethodPost, "/api/v1/global", `{"platform_fee_basis_point":100,"new_entry_fee_cent":500}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeInvalidSigner, decode(t, w)["error_code"])

	w = srv.do(http.MethodPost, "/api/v1/global", `{"platform_fee_basis_point":100,"new_entry_fee_cent":500}`, &admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, string(admin.pub), data(t, w)["update_authority"])

	w = srv.do(http.MethodGet, "/api/v1/global", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(http.MethodPost, "/api/v1/global", `{"platform_fee_basis_point":200}`, &stranger)
	assert.Equal(t, http.StatusForbidden, w.Code)

	account := domain.WalletAddress(stranger.pub).String()
	w = srv.do(http.MethodPost, "/api/v1/accounts/"+account+"/topup", `{"amount_cent":1200}`, &admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = srv.do(http.MethodGet, "/api/v1/accounts/"+account+"/balance", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1200, data(t, w)["balance_cent"])
}

func TestRouter_ReplayedRequestRejected(t *testing.T) {
	srv := newTestServer(t)
	admin := newTestKey(t)

	body := `{"platform_fee_basis_point":100,"new_entry_fee_cent":0}`
	ts := time.Now().Unix()
	canonical := srv.sig.BuildCanonicalString(http.MethodPost, "/api/v1/global", ts, "once", []byte(body))
	signature := hex.EncodeToString(ed25519.Sign(admin.priv, []byte(canonical)))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/global", bytes.NewBufferString(body))
		req.Header.Set(middleware.HeaderSigner, string(admin.pub))
		req.Header.Set(middleware.HeaderSignature, signature)
		req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(middleware.HeaderNonce, "once")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send().Code)
	w := send()
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeNonceUsed, decode(t, w)["error_code"])
}

func TestRouter_TamperedBodyRejected(t *testing.T) {
	srv := newTestServer(t)
	admin := newTestKey(t)

	ts := time.Now().Unix()
	canonical := srv.sig.BuildCanonicalString(http.MethodPost, "/api/v1/global", ts, "n", []byte(`{"platform_fee_basis_point":100}`))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/global", bytes.NewBufferString(`{"platform_fee_basis_point":0}`))
	req.Header.Set(middleware.HeaderSigner, string(admin.pub))
	req.Header.Set(middleware.HeaderSignature, hex.EncodeToString(ed25519.Sign(admin.priv, []byte(canonical))))
	req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(middleware.HeaderNonce, "n")

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeInvalidSignature, decode(t, w)["error_code"])
}

func TestRouter_OversizedBody(t *testing.T) {
	srv := newTestServer(t)
	admin := newTestKey(t)

	body := fmt.Sprintf(`{"name":"%s"}`, bytes.Repeat([]byte("a"), 5000))
	w := srv.do(http.MethodPost, "/api/v1/catalog/passenger-types", body, &admin)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	deps := decode(t, w)["dependencies"].(map[string]interface{})
	assert.Contains(t, deps, "memory")
	assert.Contains(t, deps, "redis")

	srv.do(http.MethodGet, "/api/v1/catalog/vehicles/0", "", nil)

	w = srv.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `ride_http_requests_total{method="GET",route="/api/v1/catalog/:kind/:id",status="404"}`)
}
