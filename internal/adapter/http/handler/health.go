package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"ride-escrow-network/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const healthProbeTimeout = 2 * time.Second

type probeResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck probes the record store and caches concurrently, each under
// its own deadline. One failing probe turns the service "degraded" with 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		results := make([]probeResult, len(checkers))
		var wg sync.WaitGroup
		for i, checker := range checkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = probe(c.Request.Context(), checker)
			}()
		}
		wg.Wait()

		status, code := "healthy", http.StatusOK
		deps := make(map[string]probeResult, len(checkers))
		for i, checker := range checkers {
			deps[checker.Name()] = results[i]
			if results[i].Error != "" {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{"status": status, "dependencies": deps})
	}
}

func probe(ctx context.Context, checker ports.HealthChecker) probeResult {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	start := time.Now()
	err := checker.Ping(ctx)
	res := probeResult{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		res.Status, res.Error = "unhealthy", err.Error()
	}
	return res
}
