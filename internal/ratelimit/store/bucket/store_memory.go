// Package bucket provides sliding-window request counters backing the rate
// limit middleware.
package bucket

import (
	"context"
	"sync"
	"time"

	"kycsim/internal/ratelimit"
)

// InMemoryBucketStore is a process-local sliding window counter. It is the
// default for single-instance deployments; distributed deployments should use
// RedisBucketStore so replicas share state.
type InMemoryBucketStore struct {
	mu      sync.Mutex
	buckets map[string][]time.Time

	// now is swappable so tests can move time without sleeping.
	now func() time.Time
}

// NewInMemoryBucketStore creates an empty in-memory bucket store.
func NewInMemoryBucketStore() *InMemoryBucketStore {
	return &InMemoryBucketStore{
		buckets: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow records one request against key and reports whether it fits inside
// limit over the trailing window.
func (s *InMemoryBucketStore) Allow(_ context.Context, key string, limit int, window time.Duration) (*ratelimit.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stamps := pruneBefore(s.buckets[key], now.Add(-window))

	if len(stamps) >= limit {
		s.buckets[key] = stamps
		return &ratelimit.Result{
			Allowed:   false,
			Limit:     limit,
			Remaining: 0,
			ResetAt:   stamps[0].Add(window),
		}, nil
	}

	stamps = append(stamps, now)
	s.buckets[key] = stamps
	return &ratelimit.Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(stamps),
		ResetAt:   stamps[0].Add(window),
	}, nil
}

// Reset clears the counter for key.
func (s *InMemoryBucketStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

func pruneBefore(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(stamps); i++ {
		if stamps[i].After(cutoff) {
			break
		}
	}
	return stamps[i:]
}
