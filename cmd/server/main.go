package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/huamanraj/visitLogger-backend/internal/config"
	"github.com/huamanraj/visitLogger-backend/internal/db"
	"github.com/huamanraj/visitLogger-backend/internal/enrich"
	"github.com/huamanraj/visitLogger-backend/internal/httpserver"
	"github.com/huamanraj/visitLogger-backend/internal/migrate"
	"github.com/huamanraj/visitLogger-backend/internal/obs"
	"github.com/huamanraj/visitLogger-backend/internal/ratelimit"
)

func main() {
	// A local .env is a development convenience, its absence is fine.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("config: %s", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.NewGorm(ctx, cfg.PostgresURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer sqlDB.Close()

	migCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := migrate.AutoMigrate(migCtx, gdb); err != nil {
		cancel()
		log.Fatalf("db migrate: %v", err)
	}
	cancel()

	var limiter *ratelimit.Limiter
	if cfg.RedisAddr != "" {
		rdb, err := ratelimit.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatalf("redis ping: %v", err)
		}
		cancel()
		defer rdb.Close()
		limiter = ratelimit.New(rdb)
	} else {
		log.Printf("REDIS_ADDR not set, rate limiting disabled")
	}

	geoip, err := enrich.NewGeoIP(cfg.GeoIPCityMMDB)
	if err != nil {
		log.Fatalf("geoip: %v", err)
	}
	if geoip != nil {
		defer geoip.Close()
	}

	stats := obs.New()
	srv := httpserver.New(cfg, gdb, limiter, geoip, stats)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Printf("http listening on %s", cfg.HTTPAddr)

	select {
	case <-ctx.Done():
		log.Printf("shutdown requested")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
}
