package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window per-caller request ceiling backed by Redis.
// One INCR per request; the first hit in a window sets the key expiry so
// stale windows clean themselves up. Requests over the ceiling are
// rejected outright, never queued.
//
// A nil *Limiter allows everything, so callers can wire it only when
// Redis is configured (same convention as running without geoip).
type Limiter struct {
	rdb    *redis.Client
	window time.Duration
}

type Option func(*Limiter)

func WithWindow(window time.Duration) Option {
	return func(l *Limiter) {
		if window > 0 {
			l.window = window
		}
	}
}

func New(rdb *redis.Client, opts ...Option) *Limiter {
	l := &Limiter{
		rdb:    rdb,
		window: time.Minute,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Allow reports whether one more request from caller may pass under the
// given ceiling for the named scope. Redis being unreachable fails open:
// dropping beacons because the limiter is down would lose real data.
func (l *Limiter) Allow(ctx context.Context, scope, caller string, ceiling int) (bool, error) {
	if l == nil || l.rdb == nil || ceiling <= 0 {
		return true, nil
	}

	windowStart := time.Now().UTC().Truncate(l.window).Unix()
	key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, caller, windowStart)

	pipe := l.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, err
	}
	return incr.Val() <= int64(ceiling), nil
}
