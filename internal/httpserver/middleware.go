package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/huamanraj/visitLogger-backend/internal/obs"
	"github.com/huamanraj/visitLogger-backend/internal/ratelimit"
)

// corsMiddleware allows any origin. The snippet runs on arbitrary
// third-party sites, so the beacon and snippet endpoints must be open.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Next()
	}
}

func maintenanceMiddleware(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}
		switch c.Request.URL.Path {
		case "/", "/healthz", "/api/status":
			c.Next()
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service under maintenance"})
			c.Abort()
		}
	}
}

// timeoutMiddleware puts one fixed deadline on every request. Store calls
// see it through the request context; there is no per-operation tuning and
// no cleanup of a write that may or may not have landed when the deadline
// hit.
func timeoutMiddleware(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func observabilityMiddleware(stats *obs.Stats) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		stats.ObserveHTTP(c.Writer.Status(), time.Since(start))
	}
}

// rateLimitMiddleware rejects callers over the per-IP ceiling for a scope.
// Over-ceiling requests get a 429 immediately; nothing queues.
func rateLimitMiddleware(limiter *ratelimit.Limiter, stats *obs.Stats, scope string, ceiling int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), scope, c.ClientIP(), ceiling)
		if err != nil {
			log.Printf("ratelimit: %s: %v", scope, err)
		}
		if !ok {
			stats.ObserveRateLimited()
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
