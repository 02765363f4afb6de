package providers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	kind Kind
}

func (s stubProvider) Kind() Kind { return s.kind }

func (s stubProvider) Capabilities() Capabilities {
	return Capabilities{Kind: s.kind, Latency: time.Second}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(stubProvider{kind: KindPAN}))
	require.NoError(t, r.Register(stubProvider{kind: KindAadhaar}))

	t.Run("duplicate registration rejected", func(t *testing.T) {
		err := r.Register(stubProvider{kind: KindPAN})
		assert.Error(t, err)
	})

	t.Run("get by kind", func(t *testing.T) {
		p, ok := r.Get(KindAadhaar)
		require.True(t, ok)
		assert.Equal(t, KindAadhaar, p.Kind())

		_, ok = r.Get(KindCKYC)
		assert.False(t, ok)
	})

	t.Run("all preserves registration order", func(t *testing.T) {
		all := r.All()
		require.Len(t, all, 2)
		assert.Equal(t, KindPAN, all[0].Kind())
		assert.Equal(t, KindAadhaar, all[1].Kind())
	})
}

func TestProviderError(t *testing.T) {
	cause := errors.New("socket closed")
	err := NewProviderError(ErrorTimeout, KindCKYC, "registry lookup", cause)

	assert.Equal(t, ErrorTimeout, GetCategory(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ckyc")

	t.Run("uncategorized errors default to internal", func(t *testing.T) {
		assert.Equal(t, ErrorInternal, GetCategory(errors.New("plain")))
	})
}
