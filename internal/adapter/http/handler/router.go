package handler

import (
	"net/http"
	"time"

	"ride-escrow-network/internal/adapter/http/middleware"
	"ride-escrow-network/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ConfigSvc  ports.ConfigService
	InfraSvc   ports.InfraService
	DriverSvc  ports.DriverService
	JobSvc     ports.JobService
	CatalogSvc ports.CatalogService
	LedgerSvc  ports.LedgerService

	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	Auth           middleware.AuthOptions
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	RateLimits     map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	HTTPMetrics    middleware.HTTPRecorder // nil = request metrics disabled
	MetricsHandler http.Handler            // served at /metrics when set
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}
	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	r.Use(middleware.MaxBodySize(maxBody))

	// Health check pings the store and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	rules := deps.RateLimits
	if rules == nil {
		rules = middleware.RateLimitRules(time.Minute, nil)
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Mutations are signed; reads are public.
	signed := middleware.SignatureAuth(deps.SigSvc, deps.NonceStore, deps.Auth, deps.Logger)
	reads := rl("reads")

	v1 := r.Group("/api/v1")

	configHandler := NewConfigHandler(deps.ConfigSvc)
	global := v1.Group("/global")
	{
		global.GET("", reads, configHandler.GetGlobal)
		global.POST("", rl("config"), signed, configHandler.InitOrUpdateGlobal)
		global.POST("/authority", rl("config"), signed, configHandler.ChangeGlobalAuthority)
	}

	infraHandler := NewInfraHandler(deps.InfraSvc)
	countries := v1.Group("/countries/:code")
	{
		countries.GET("", reads, configHandler.GetCountry)
		countries.PUT("", rl("config"), signed, configHandler.InitOrUpdateCountry)
		countries.POST("/authority", rl("config"), signed, configHandler.UpdateCountryAuthority)

		countries.POST("/infras/:side", rl("infras"), signed, infraHandler.InitInfra)
		infra := countries.Group("/infras/:side/:count")
		{
			infra.GET("", reads, infraHandler.GetInfra)
			infra.GET("/company/:version", reads, infraHandler.GetCompany)
			infra.PUT("/company", rl("infras"), signed, infraHandler.UpdateCompany)
			infra.PUT("/basis-point", rl("infras"), signed, infraHandler.UpdateBasisPoint)
			infra.POST("/authority", rl("infras"), signed, infraHandler.UpdateAuthority)
			infra.POST("/approve", rl("infras"), signed, infraHandler.Approve)
			infra.POST("/freeze", rl("infras"), signed, infraHandler.Freeze)
			infra.POST("/unfreeze", rl("infras"), signed, infraHandler.Unfreeze)
		}
	}

	driverHandler := NewDriverHandler(deps.DriverSvc)
	drivers := v1.Group("/drivers")
	{
		drivers.POST("", rl("drivers"), signed, driverHandler.StartWork)
		drivers.GET("/:uuid", reads, driverHandler.GetDriver)
		drivers.PUT("/:uuid/location", rl("driver_location"), signed, driverHandler.UpdateLocation)
		drivers.DELETE("/:uuid", rl("drivers"), signed, driverHandler.EndWork)
	}

	jobHandler := NewJobHandler(deps.JobSvc)
	jobs := v1.Group("/jobs")
	{
		jobs.POST("", rl("jobs"), signed, jobHandler.RequestJob)
		job := jobs.Group("/:code/:infra/:job")
		{
			job.GET("", reads, jobHandler.GetJob)
			job.POST("/accept", rl("jobs"), signed, jobHandler.AcceptJob)
			job.POST("/arrive", rl("jobs"), signed, jobHandler.MarkArrived)
			job.POST("/start", rl("jobs"), signed, jobHandler.StartRide)
			job.POST("/complete", rl("jobs"), signed, jobHandler.CompleteJob)
			job.POST("/cancel", rl("jobs"), signed, jobHandler.CancelJob)
			job.POST("/dispute", rl("jobs"), signed, jobHandler.RaiseDispute)
			job.POST("/resolve", rl("jobs"), signed, jobHandler.ResolveDispute)
		}
	}

	catalogHandler := NewCatalogHandler(deps.CatalogSvc)
	catalog := v1.Group("/catalog")
	{
		catalog.POST("/services", rl("catalog"), signed, catalogHandler.AddService)
		catalog.POST("/passenger-types", rl("catalog"), signed, catalogHandler.AddPassengerType)
		catalog.POST("/vehicles", rl("catalog"), signed, catalogHandler.AddVehicle)
		catalog.GET("/:kind/:id", reads, catalogHandler.GetEntry)
		catalog.POST("/:kind/:id/approve", rl("catalog"), signed, catalogHandler.ApproveEntry)
	}

	accountHandler := NewAccountHandler(deps.LedgerSvc)
	accounts := v1.Group("/accounts/:address")
	{
		accounts.GET("/balance", reads, accountHandler.GetBalance)
		accounts.POST("/topup", rl("accounts"), signed, accountHandler.Topup)
	}

	return r
}
