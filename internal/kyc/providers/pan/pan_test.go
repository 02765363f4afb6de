package pan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycsim/internal/kyc/providers"
	"kycsim/internal/platform/clock"
)

func TestVerify(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("always verifies, any input", func(t *testing.T) {
		clk := clock.NewFake(start)
		p := New(clk, 1500*time.Millisecond)

		for _, input := range []string{"ABCDE1234F", "", "not-a-pan"} {
			result, err := p.Verify(context.Background(), input)
			require.NoError(t, err)
			assert.True(t, result.Verified)
			assert.Equal(t, input, result.PANNumber)
			assert.NotEmpty(t, result.Name)
			assert.False(t, result.CompletedAt.IsZero())
		}
	})

	t.Run("suspends for the configured latency", func(t *testing.T) {
		clk := clock.NewFake(start)
		p := New(clk, 1500*time.Millisecond)

		result, err := p.Verify(context.Background(), "ABCDE1234F")
		require.NoError(t, err)
		assert.Equal(t, []time.Duration{1500 * time.Millisecond}, clk.Sleeps())
		assert.Equal(t, start.Add(1500*time.Millisecond), result.CompletedAt)
	})

	t.Run("cancelled context surfaces as provider error", func(t *testing.T) {
		clk := clock.NewFake(start)
		p := New(clk, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Verify(ctx, "ABCDE1234F")
		require.Error(t, err)
		assert.Equal(t, providers.ErrorCancelled, providers.GetCategory(err))
	})
}
