package testkit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huamanraj/visitLogger-backend/internal/config"
	"github.com/huamanraj/visitLogger-backend/internal/httpserver"
	"github.com/huamanraj/visitLogger-backend/internal/obs"
	"github.com/huamanraj/visitLogger-backend/internal/ratelimit"
)

type Server struct {
	DB     *gorm.DB
	Config config.Config
	Stats  *obs.Stats
	Redis  *miniredis.Miniredis
	HTTP   *httptest.Server
}

type ServerOption func(*serverOptions)

type serverOptions struct {
	ratePerMin      int
	trackRatePerMin int
	maintenance     bool
}

// WithRateLimits backs the server with a miniredis limiter at the given
// per-minute ceilings.
func WithRateLimits(api, track int) ServerOption {
	return func(o *serverOptions) {
		o.ratePerMin = api
		o.trackRatePerMin = track
	}
}

func WithMaintenanceMode() ServerOption {
	return func(o *serverOptions) { o.maintenance = true }
}

// NewServer starts an httptest server with an in-memory database, no geo
// enrichment and, unless WithRateLimits is given, no rate limiter.
func NewServer(t testing.TB, opts ...ServerOption) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var o serverOptions
	for _, opt := range opts {
		opt(&o)
	}

	db := OpenTestDB(t)
	stats := obs.New()
	cfg := config.Config{
		HTTPAddr:        "127.0.0.1:0",
		PublicBaseURL:   "http://tracker.test",
		RatePerMin:      o.ratePerMin,
		TrackRatePerMin: o.trackRatePerMin,
		RequestTimeout:  5 * time.Second,
		MaintenanceMode: o.maintenance,
	}

	var (
		mr      *miniredis.Miniredis
		limiter *ratelimit.Limiter
	)
	if o.ratePerMin > 0 || o.trackRatePerMin > 0 {
		mr = miniredis.RunT(t)
		rdb, err := ratelimit.NewRedisClient(mr.Addr(), "", 0)
		if err != nil {
			t.Fatalf("NewRedisClient: %v", err)
		}
		t.Cleanup(func() { _ = rdb.Close() })
		limiter = ratelimit.New(rdb)
	}

	srv := httpserver.New(cfg, db, limiter, nil, stats)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return &Server{
		DB:     db,
		Config: cfg,
		Stats:  stats,
		Redis:  mr,
		HTTP:   ts,
	}
}
