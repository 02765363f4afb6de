package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycsim/internal/ratelimit"
	"kycsim/internal/ratelimit/store/bucket"
	"kycsim/pkg/platform/middleware/metadata"
	"kycsim/pkg/testutil"
)

type failingStore struct{}

func (failingStore) Allow(_ context.Context, _ string, _ int, _ time.Duration) (*ratelimit.Result, error) {
	return nil, errors.New("store unavailable")
}

func (failingStore) Reset(_ context.Context, _ string) error { return nil }

func newLimitedHandler(t *testing.T, limit int, opts ...Option) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := New(bucket.NewInMemoryBucketStore(), logger, limit, time.Minute, opts...)

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return metadata.ClientMetadata(m.RateLimit(inner))
}

func TestRateLimitAllowsUpToLimit(t *testing.T) {
	handler := newLimitedHandler(t, 2)

	for range 2 {
		req := testutil.NewJSONRequest(t, http.MethodGet, "/kyc/providers", nil)
		rr := testutil.DoRequest(handler, req)
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Equal(t, "2", rr.Header().Get("X-RateLimit-Limit"))
	}

	req := testutil.NewJSONRequest(t, http.MethodGet, "/kyc/providers", nil)
	rr := testutil.DoRequest(handler, req)
	testutil.AssertStatus(t, rr, http.StatusTooManyRequests)
	testutil.AssertErrorCode(t, rr, "rate_limited")
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitKeysByClientIP(t *testing.T) {
	handler := newLimitedHandler(t, 1)

	first := testutil.NewJSONRequest(t, http.MethodGet, "/kyc/providers", nil)
	first.Header.Set("X-Forwarded-For", "203.0.113.7")
	testutil.AssertStatus(t, testutil.DoRequest(handler, first), http.StatusOK)

	blocked := testutil.NewJSONRequest(t, http.MethodGet, "/kyc/providers", nil)
	blocked.Header.Set("X-Forwarded-For", "203.0.113.7")
	testutil.AssertStatus(t, testutil.DoRequest(handler, blocked), http.StatusTooManyRequests)

	other := testutil.NewJSONRequest(t, http.MethodGet, "/kyc/providers", nil)
	other.Header.Set("X-Forwarded-For", "198.51.100.9")
	testutil.AssertStatus(t, testutil.DoRequest(handler, other), http.StatusOK)
}

func TestRateLimitDisabled(t *testing.T) {
	handler := newLimitedHandler(t, 1, WithDisabled(true))

	for range 5 {
		req := testutil.NewJSONRequest(t, http.MethodGet, "/kyc/providers", nil)
		rr := testutil.DoRequest(handler, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimitFailsOpenOnStoreError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := New(failingStore{}, logger, 1, time.Minute)

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := metadata.ClientMetadata(m.RateLimit(inner))

	req := testutil.NewJSONRequest(t, http.MethodGet, "/kyc/providers", nil)
	rr := testutil.DoRequest(handler, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
