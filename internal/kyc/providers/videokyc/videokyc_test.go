package videokyc

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycsim/internal/platform/clock"
)

func TestVerify(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	p := New(clk, 2500*time.Millisecond)

	result, err := p.Verify(context.Background(), "Rahul Kumar")
	require.NoError(t, err)

	assert.True(t, result.Verified)
	assert.True(t, strings.HasPrefix(result.KYCID, "VKYC_"))
	assert.Len(t, result.KYCID, len("VKYC_")+12)
	assert.Equal(t, "KYC Officer #1234", result.OfficerName)
	assert.True(t, result.Attributes["live_photo"])
	assert.True(t, result.Attributes["recording_stored"])
	assert.NotEmpty(t, result.Compliance)
}
