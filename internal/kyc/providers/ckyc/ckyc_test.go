package ckyc

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycsim/internal/platform/clock"
)

// forcedRand returns a fixed Float64 so tests pick the branch directly.
type forcedRand struct {
	value float64
}

func (f forcedRand) Float64() float64     { return f.value }
func (f forcedRand) Int63n(n int64) int64 { return n / 2 }

func newTestProvider(rng Rand) *Provider {
	clk := clock.NewFake(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	return New(clk, 1800*time.Millisecond, rng, 0.4)
}

func TestLookup(t *testing.T) {
	t.Run("hit branch returns synthetic registry record", func(t *testing.T) {
		p := newTestProvider(forcedRand{value: 0.1})

		result, err := p.Lookup(context.Background(), "ABCDE1234F")
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Regexp(t, regexp.MustCompile(`^CKYC\d{12}$`), result.RegistryNumber)
		assert.Equal(t, "2022-09-18", result.PriorKYCDate)
		assert.NotEmpty(t, result.Institution)
	})

	t.Run("miss branch returns not found", func(t *testing.T) {
		p := newTestProvider(forcedRand{value: 0.9})

		result, err := p.Lookup(context.Background(), "ABCDE1234F")
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Empty(t, result.RegistryNumber)
		assert.False(t, result.CompletedAt.IsZero())
	})

	t.Run("boundary value counts as miss", func(t *testing.T) {
		p := newTestProvider(forcedRand{value: 0.4})

		result, err := p.Lookup(context.Background(), "ABCDE1234F")
		require.NoError(t, err)
		assert.False(t, result.Found)
	})

	t.Run("hit rate approximates 40 percent over many trials", func(t *testing.T) {
		p := newTestProvider(rand.New(rand.NewSource(1)))

		const trials = 10000
		found := 0
		for range trials {
			result, err := p.Lookup(context.Background(), "ABCDE1234F")
			require.NoError(t, err)
			if result.Found {
				found++
			}
		}

		ratio := float64(found) / trials
		assert.InDelta(t, 0.4, ratio, 0.03)
	})
}
