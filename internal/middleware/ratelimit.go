package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/config"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/redis"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/constants"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/httpx"
)

type Limiter interface {
	CheckRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (*redis.RateLimitResult, error)
}

type RateLimit struct {
	limiter Limiter
	cfg     config.RateLimitConfig
}

// NewRateLimit returns a limiter that is inert unless cfg.Enabled is set and
// a backing store is available.
func NewRateLimit(limiter Limiter, cfg config.RateLimitConfig) *RateLimit {
	return &RateLimit{
		limiter: limiter,
		cfg:     cfg,
	}
}

// PerIP limits requests per client IP. Store errors let the request through.
func (rl *RateLimit) PerIP(next http.Handler) http.Handler {
	if !rl.cfg.Enabled || rl.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		res, err := rl.limiter.CheckRateLimit(r.Context(), "ip:"+clientIP(r), rl.cfg.Requests, rl.cfg.Window)
		if err != nil {
			logger.Warn().Err(err).Msg("Rate limit check failed, allowing request")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(rl.cfg.Requests, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))

		if !res.Allowed {
			retryAfter := int(time.Until(res.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			logger.Warn().Msg("Rate limit exceeded")
			httpx.WriteError(w, http.StatusTooManyRequests, constants.MsgTooManyRequests)
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
