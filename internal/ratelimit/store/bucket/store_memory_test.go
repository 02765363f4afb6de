package bucket

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	testLimit  = 5
	testWindow = time.Minute
)

type InMemoryBucketStoreSuite struct {
	suite.Suite
	store *InMemoryBucketStore
	ctx   context.Context
	now   time.Time
}

func TestInMemoryBucketStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryBucketStoreSuite))
}

func (s *InMemoryBucketStoreSuite) SetupTest() {
	s.store = NewInMemoryBucketStore()
	s.ctx = context.Background()
	s.now = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	s.store.now = func() time.Time { return s.now }
}

func (s *InMemoryBucketStoreSuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *InMemoryBucketStoreSuite) TestAllow() {
	s.Run("first request allowed", func() {
		result, err := s.store.Allow(s.ctx, "ip:first", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(testLimit, result.Limit)
		s.Equal(testLimit-1, result.Remaining)
	})

	s.Run("requests beyond limit rejected", func() {
		for range testLimit {
			result, err := s.store.Allow(s.ctx, "ip:burst", testLimit, testWindow)
			s.Require().NoError(err)
			s.True(result.Allowed)
		}
		result, err := s.store.Allow(s.ctx, "ip:burst", testLimit, testWindow)
		s.Require().NoError(err)
		s.False(result.Allowed)
		s.Equal(0, result.Remaining)
	})

	s.Run("keys are independent", func() {
		for range testLimit {
			_, err := s.store.Allow(s.ctx, "ip:a", testLimit, testWindow)
			s.Require().NoError(err)
		}
		result, err := s.store.Allow(s.ctx, "ip:b", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
	})
}

func (s *InMemoryBucketStoreSuite) TestWindowSlides() {
	for range testLimit {
		_, err := s.store.Allow(s.ctx, "ip:slide", testLimit, testWindow)
		s.Require().NoError(err)
	}

	result, err := s.store.Allow(s.ctx, "ip:slide", testLimit, testWindow)
	s.Require().NoError(err)
	s.False(result.Allowed)

	s.advance(testWindow + time.Second)

	result, err = s.store.Allow(s.ctx, "ip:slide", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
	s.Equal(testLimit-1, result.Remaining)
}

func (s *InMemoryBucketStoreSuite) TestResetAtTracksOldestStamp() {
	result, err := s.store.Allow(s.ctx, "ip:reset-at", testLimit, testWindow)
	s.Require().NoError(err)
	first := s.now

	s.advance(10 * time.Second)
	result, err = s.store.Allow(s.ctx, "ip:reset-at", testLimit, testWindow)
	s.Require().NoError(err)
	s.Equal(first.Add(testWindow), result.ResetAt)
}

func (s *InMemoryBucketStoreSuite) TestReset() {
	for range testLimit {
		_, err := s.store.Allow(s.ctx, "ip:reset", testLimit, testWindow)
		s.Require().NoError(err)
	}

	s.Require().NoError(s.store.Reset(s.ctx, "ip:reset"))

	result, err := s.store.Allow(s.ctx, "ip:reset", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

func (s *InMemoryBucketStoreSuite) TestConcurrentAllow() {
	store := NewInMemoryBucketStore()
	const workers = 20

	var wg sync.WaitGroup
	allowed := make([]bool, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := store.Allow(context.Background(), "ip:concurrent", testLimit, testWindow)
			s.NoError(err)
			allowed[i] = result.Allowed
		}(i)
	}
	wg.Wait()

	count := 0
	for _, ok := range allowed {
		if ok {
			count++
		}
	}
	s.Equal(testLimit, count)
}
