// Package ratelimit protects the simulator's HTTP surface with sliding-window
// request limits keyed by client IP. Limits are ambient infrastructure; they
// never change what a verification returns.
package ratelimit

import (
	"context"
	"time"
)

// Result reports the outcome of one rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// BucketStore counts requests per key over a sliding window. Implementations
// must be safe for concurrent use.
type BucketStore interface {
	// Allow records one request against key and reports whether it fits
	// inside limit over the trailing window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error)

	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}
