package digilocker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycsim/internal/platform/clock"
)

func TestVerify(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	p := New(clk, 1800*time.Millisecond)

	result, err := p.Verify(context.Background(), "DL-2048-XYZ")
	require.NoError(t, err)

	assert.True(t, result.Verified)
	assert.Equal(t, "DL-2048-XYZ", result.DigilockerID)
	assert.Equal(t, []string{"aadhaar", "pan_card", "driving_license", "voter_id"}, result.Available)

	require.Len(t, result.Documents, 4)
	assert.True(t, result.Documents["aadhaar"].Verified)
	assert.True(t, result.Documents["pan_card"].Verified)
	assert.False(t, result.Documents["voter_id"].Verified)
	assert.NotEmpty(t, result.Documents["aadhaar"].IssuedOn)

	t.Run("results are independent copies", func(t *testing.T) {
		second, err := p.Verify(context.Background(), "DL-2048-XYZ")
		require.NoError(t, err)
		delete(second.Documents, "pan_card")

		third, err := p.Verify(context.Background(), "DL-2048-XYZ")
		require.NoError(t, err)
		assert.Len(t, third.Documents, 4)
	})
}
