package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskAadhaar(t *testing.T) {
	t.Run("reveals only last four digits", func(t *testing.T) {
		assert.Equal(t, "XXXXXXXX1234", MaskAadhaar("123412341234"))
	})

	t.Run("short values pass through", func(t *testing.T) {
		assert.Equal(t, "1234", MaskAadhaar("1234"))
		assert.Equal(t, "", MaskAadhaar(""))
	})
}

func TestParseMethod(t *testing.T) {
	for _, valid := range []string{"pan", "aadhaar", "digilocker", "ckyc", "video_kyc", "offline_aadhaar"} {
		m, ok := ParseMethod(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Method(valid), m)
	}

	_, ok := ParseMethod("passport")
	assert.False(t, ok)
}
