package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/itsatony/w4b_v3/server/beeview/api/resources"
	"github.com/itsatony/w4b_v3/server/beeview/internal/errors"
	"github.com/itsatony/w4b_v3/server/beeview/internal/monitoring"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

const rateLimitKeyPrefix = "beeview:ratelimit:"

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// RateLimiter is a fixed-window request counter per client IP kept in redis
type RateLimiter struct {
	client     *redis.Client
	config     RateLimitConfig
	monitoring *monitoring.Service
}

func NewRateLimiter(client *redis.Client, config RateLimitConfig, mon *monitoring.Service) *RateLimiter {
	return &RateLimiter{
		client:     client,
		config:     config,
		monitoring: mon,
	}
}

// Allow counts one request for key and reports whether it is within the limit.
// The window key is created with its TTL and incremented in one transaction,
// so a counter never exists without an expiry.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitKeyPrefix + key
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, redisKey, 0, l.config.Window)
		incr = pipe.Incr(ctx, redisKey)
		return nil
	})
	if err != nil {
		return true, err
	}
	return incr.Val() <= int64(l.config.Limit), nil
}

// Limit rejects clients over the limit with 429. Requests pass when redis fails.
func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		allowed, err := l.Allow(r.Context(), ip)
		if err != nil {
			nuts.L.Warnf("[RateLimiter] Redis error for %s: %v", ip, err)
		}
		if !allowed {
			if l.monitoring != nil {
				l.monitoring.RecordEvent(monitoring.EventRateLimited, map[string]string{"ip": ip, "path": r.URL.Path})
			}
			apiErr := errors.NewRateLimitError("too many requests, slow down", nil).WithRequestID(nuts.NID("req", 12))
			w.Header().Set("Retry-After", retryAfter(l.config.Window))
			resources.WriteErrorPage(w, "Too Many Requests", apiErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfter(window time.Duration) string {
	seconds := int(window / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}
