package offlineaadhaar

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycsim/internal/kyc/providers"
	"kycsim/internal/platform/clock"
)

func TestVerify(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("verifies attributes without exposing the number", func(t *testing.T) {
		clk := clock.NewFake(start)
		p := New(clk, 2*time.Second)

		result, err := p.Verify(context.Background(), "123456789012")
		require.NoError(t, err)

		assert.True(t, result.Verified)
		assert.True(t, strings.HasPrefix(result.KYCID, "OKYC_"))
		for _, attr := range []string{"name", "date_of_birth", "gender", "address", "photo"} {
			assert.True(t, result.Attributes[attr], attr)
		}
		assert.NotEmpty(t, result.Compliance)
		assert.Equal(t, start.Add(2*time.Second), result.CompletedAt)
	})

	t.Run("cancelled context maps to cancelled category", func(t *testing.T) {
		clk := clock.NewFake(start)
		p := New(clk, 2*time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Verify(ctx, "123456789012")
		require.Error(t, err)
		assert.Equal(t, providers.ErrorCancelled, providers.GetCategory(err))
	})
}
