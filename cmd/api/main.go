package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ride-escrow-network/config"
	"ride-escrow-network/internal/adapter/events/rabbitmq"
	httpHandler "ride-escrow-network/internal/adapter/http/handler"
	"ride-escrow-network/internal/adapter/http/middleware"
	"ride-escrow-network/internal/adapter/metrics"
	"ride-escrow-network/internal/adapter/storage/memory"
	pgStorage "ride-escrow-network/internal/adapter/storage/postgres"
	redisStorage "ride-escrow-network/internal/adapter/storage/redis"
	"ride-escrow-network/internal/core/ports"
	"ride-escrow-network/internal/service"
	"ride-escrow-network/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("store", cfg.Store.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Ride Escrow Network")

	ctx := context.Background()

	// Record store
	var (
		store    ports.RecordStore
		checkers []ports.HealthChecker
	)
	switch cfg.Store.Driver {
	case "memory":
		mem := memory.NewStore()
		store = mem
		checkers = append(checkers, mem)
		log.Warn().Msg("Using in-memory record store, state is lost on restart")
	default:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		store = pgStorage.NewRecordStore(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL connected")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	var rateLimitStore ports.RateLimitStore
	if cfg.Limits.Enabled {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}
	locationCache := redisStorage.NewLocationCache(rdb, cfg.Ride.LocationCacheTTL)
	checkers = append(checkers, redisStorage.NewHealthCheck(rdb))

	// Job events
	var events ports.EventPublisher = rabbitmq.Nop{}
	if cfg.RabbitMQ.Enabled {
		client, err := rabbitmq.Connect(ctx, cfg.RabbitMQ, logger.Component(log, "events"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}
		defer client.Close()
		publisher, err := rabbitmq.NewPublisher(client.Chan, cfg.RabbitMQ.Exchange, logger.Component(log, "events"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to declare job event exchange")
		}
		events = publisher
		log.Info().Str("exchange", cfg.RabbitMQ.Exchange).Msg("RabbitMQ connected")
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	clock := service.SystemClock{}

	// Initialize business services
	configSvc := service.NewConfigService(store, clock, logger.Component(log, "config"))
	infraSvc := service.NewInfraService(store, clock, m, logger.Component(log, "infra"))
	driverSvc := service.NewDriverService(store, locationCache, clock, logger.Component(log, "driver"))
	jobSvc := service.NewJobService(store, idempotencyCache, locationCache, events, m, clock, cfg.Ride.IdempotencyTTL, logger.Component(log, "job-engine"))
	catalogSvc := service.NewCatalogService(store, clock, logger.Component(log, "catalog"))
	ledgerSvc := service.NewLedgerService(store, logger.Component(log, "ledger"))

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ConfigSvc:  configSvc,
		InfraSvc:   infraSvc,
		DriverSvc:  driverSvc,
		JobSvc:     jobSvc,
		CatalogSvc: catalogSvc,
		LedgerSvc:  ledgerSvc,

		SigSvc:     service.NewEd25519SignatureService(),
		NonceStore: nonceStore,
		Auth: middleware.AuthOptions{
			TimestampDrift: cfg.Auth.TimestampDrift,
			NonceTTL:       cfg.Auth.NonceTTL,
		},
		RateLimitStore: rateLimitStore,
		RateLimits:     middleware.RateLimitRules(cfg.Limits.Window, cfg.Limits.Groups),
		HealthCheckers: checkers,
		HTTPMetrics:    m,
		MetricsHandler: promhttp.Handler(),
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
