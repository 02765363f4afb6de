package aadhaar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycsim/internal/platform/clock"
)

const sandboxOTP = "123456"

func newTestProvider() (*Provider, *clock.Fake) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	return New(clk, 2*time.Second, sandboxOTP), clk
}

func TestVerify(t *testing.T) {
	t.Run("wrong otp returns not verified with reason", func(t *testing.T) {
		p, _ := newTestProvider()

		for _, otp := range []string{"000000", "12345", "", "123457"} {
			result, err := p.Verify(context.Background(), "123412341234", otp)
			require.NoError(t, err)
			assert.False(t, result.Verified, otp)
			assert.Equal(t, "Invalid OTP", result.Reason)
			assert.Empty(t, result.AadhaarNumber)
			assert.False(t, result.CompletedAt.IsZero())
		}
	})

	t.Run("accepted otp verifies with masked number", func(t *testing.T) {
		p, _ := newTestProvider()

		result, err := p.Verify(context.Background(), "123412341234", sandboxOTP)
		require.NoError(t, err)
		assert.True(t, result.Verified)
		assert.Equal(t, "XXXXXXXX1234", result.AadhaarNumber)
		assert.NotEmpty(t, result.Name)
		assert.NotEmpty(t, result.DateOfBirth)
		assert.NotEmpty(t, result.Address)
		assert.Empty(t, result.Reason)
	})

	t.Run("suspends for the configured latency", func(t *testing.T) {
		p, clk := newTestProvider()

		_, err := p.Verify(context.Background(), "123412341234", sandboxOTP)
		require.NoError(t, err)
		assert.Equal(t, []time.Duration{2 * time.Second}, clk.Sleeps())
	})
}
