package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "kycsim/pkg/platform/audit"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("append and list preserve order", func(t *testing.T) {
		store := NewInMemoryStore()
		for i := range 3 {
			err := store.Append(ctx, audit.Event{
				Action: audit.ActionStepCompleted,
				FlowID: fmt.Sprintf("flow-%d", i),
			})
			require.NoError(t, err)
		}

		events, err := store.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "flow-0", events[0].FlowID)
		assert.Equal(t, "flow-2", events[2].FlowID)
	})

	t.Run("list respects limit", func(t *testing.T) {
		store := NewInMemoryStore()
		for i := range 5 {
			require.NoError(t, store.Append(ctx, audit.Event{FlowID: fmt.Sprintf("flow-%d", i)}))
		}

		events, err := store.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "flow-3", events[0].FlowID)
		assert.Equal(t, "flow-4", events[1].FlowID)
	})

	t.Run("cap bounds retained events", func(t *testing.T) {
		store := NewInMemoryStore()
		store.cap = 3
		for i := range 10 {
			require.NoError(t, store.Append(ctx, audit.Event{FlowID: fmt.Sprintf("flow-%d", i)}))
		}

		events, err := store.ListRecent(ctx, 100)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "flow-7", events[0].FlowID)
	})

	t.Run("clear empties the store", func(t *testing.T) {
		store := NewInMemoryStore()
		require.NoError(t, store.Append(ctx, audit.Event{FlowID: "flow-x"}))
		store.Clear()

		events, err := store.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
