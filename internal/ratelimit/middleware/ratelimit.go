// Package middleware enforces per-IP request limits in front of the KYC
// endpoints.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"kycsim/internal/ratelimit"
	dErrors "kycsim/pkg/domain-errors"
	"kycsim/pkg/platform/httputil"
	"kycsim/pkg/requestcontext"
)

// Middleware checks each request against a sliding-window bucket keyed by
// client IP. Store failures fail open; the simulator keeps serving.
type Middleware struct {
	store    ratelimit.BucketStore
	logger   *slog.Logger
	limit    int
	window   time.Duration
	disabled bool
}

// Option configures a Middleware.
type Option func(*Middleware)

// WithDisabled switches rate limiting off entirely, for tests and demos.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// New constructs the rate limit middleware.
func New(store ratelimit.BucketStore, logger *slog.Logger, limit int, window time.Duration, opts ...Option) *Middleware {
	m := &Middleware{
		store:  store,
		logger: logger,
		limit:  limit,
		window: window,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit wraps next with the per-IP check.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)

		result, err := m.store.Allow(ctx, "ip:"+ip, m.limit, m.window)
		if err != nil {
			m.logger.ErrorContext(ctx, "rate limit check failed", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, result)

		if !result.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(result)))
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func addRateLimitHeaders(w http.ResponseWriter, result *ratelimit.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func retryAfterSeconds(result *ratelimit.Result) int {
	secs := int(time.Until(result.ResetAt).Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return secs
}
