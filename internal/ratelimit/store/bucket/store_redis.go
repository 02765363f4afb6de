package bucket

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"kycsim/internal/ratelimit"
)

const redisKeyPrefix = "kycsim:rl:"

// RedisBucketStore is a Redis-backed sliding window counter. Each key maps to
// a sorted set of request timestamps scored by unix nanoseconds, so replicas
// sharing the same Redis observe one combined window.
type RedisBucketStore struct {
	client *redis.Client
}

// NewRedisBucketStore wraps an externally managed Redis client.
func NewRedisBucketStore(client *redis.Client) *RedisBucketStore {
	return &RedisBucketStore{client: client}
}

// Allow records one request against key and reports whether it fits inside
// limit over the trailing window. The trim, count, and insert run in one
// pipeline so concurrent callers cannot observe a partially updated window.
func (s *RedisBucketStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*ratelimit.Result, error) {
	now := time.Now()
	redisKey := redisKeyPrefix + key
	cutoff := now.Add(-window).UnixNano()

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", cutoff))
	countCmd := pipe.ZCard(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit window trim: %w", err)
	}

	count := int(countCmd.Val())
	if count >= limit {
		oldest, err := s.oldestStamp(ctx, redisKey, now)
		if err != nil {
			return nil, err
		}
		return &ratelimit.Result{
			Allowed:   false,
			Limit:     limit,
			Remaining: 0,
			ResetAt:   oldest.Add(window),
		}, nil
	}

	pipe = s.client.TxPipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit window record: %w", err)
	}

	oldest, err := s.oldestStamp(ctx, redisKey, now)
	if err != nil {
		return nil, err
	}
	return &ratelimit.Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - count - 1,
		ResetAt:   oldest.Add(window),
	}, nil
}

// Reset clears the counter for key.
func (s *RedisBucketStore) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, redisKeyPrefix+key).Err()
}

func (s *RedisBucketStore) oldestStamp(ctx context.Context, redisKey string, fallback time.Time) (time.Time, error) {
	entries, err := s.client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
	if err != nil {
		return time.Time{}, fmt.Errorf("rate limit window head: %w", err)
	}
	if len(entries) == 0 {
		return fallback, nil
	}
	return time.Unix(0, int64(entries[0].Score)), nil
}
