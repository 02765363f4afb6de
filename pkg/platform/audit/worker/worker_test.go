package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "kycsim/pkg/platform/audit"
	"kycsim/pkg/platform/audit/store/memory"
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
	err    error
}

func (s *recordingSink) Publish(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestWorker(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("persists and forwards events", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		sink := &recordingSink{}
		inbox := make(chan audit.Event, 4)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- New(store, sink, inbox, logger).Run(ctx) }()

		inbox <- audit.Event{Action: audit.ActionFlowStarted, FlowID: "flow-1"}
		inbox <- audit.Event{Action: audit.ActionFlowCompleted, FlowID: "flow-1"}

		require.Eventually(t, func() bool { return sink.count() == 2 }, time.Second, 5*time.Millisecond)
		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)

		events, err := store.ListRecent(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("sink failure does not stop the worker", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		sink := &recordingSink{err: errors.New("broker down")}
		inbox := make(chan audit.Event, 4)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = New(store, sink, inbox, logger).Run(ctx) }()

		inbox <- audit.Event{Action: audit.ActionFlowStarted, FlowID: "flow-2"}

		require.Eventually(t, func() bool {
			events, err := store.ListRecent(context.Background(), 10)
			return err == nil && len(events) == 1
		}, time.Second, 5*time.Millisecond)
	})
}
