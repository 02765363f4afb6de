// Package offlineaadhaar simulates privacy-preserving Offline Aadhaar XML
// verification. Always succeeds with a fixed attribute set.
package offlineaadhaar

import (
	"context"
	"time"

	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/providers"
	"kycsim/internal/platform/clock"
)

// Provider is the simulated offline Aadhaar XML source.
type Provider struct {
	clk     clock.Clock
	latency time.Duration
}

func New(clk clock.Clock, latency time.Duration) *Provider {
	return &Provider{clk: clk, latency: latency}
}

func (p *Provider) Kind() providers.Kind {
	return providers.KindOfflineAadhaar
}

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Kind:        providers.KindOfflineAadhaar,
		DisplayName: "Offline Aadhaar XML",
		Attributes:  []string{"name", "date_of_birth", "gender", "address", "photo"},
		Compliance:  "UIDAI Circular on Offline Aadhaar XML",
		Latency:     p.latency,
	}
}

// Verify waits the simulated latency and returns a completed verification.
// The Aadhaar number itself never leaves the device in the real method, so
// the result carries only attribute flags.
func (p *Provider) Verify(ctx context.Context, aadhaarNumber string) (*models.AttributeResult, error) {
	_ = aadhaarNumber
	if err := p.clk.Sleep(ctx, p.latency); err != nil {
		return nil, providers.NewProviderError(providers.ErrorCancelled, providers.KindOfflineAadhaar, "verification interrupted", err)
	}

	now := p.clk.Now()
	return &models.AttributeResult{
		Verified: true,
		KYCID:    providers.SimID("OKYC", now),
		Attributes: map[string]bool{
			"name":          true,
			"date_of_birth": true,
			"gender":        true,
			"address":       true,
			"photo":         true,
		},
		Compliance:  "UIDAI Circular on Offline Aadhaar XML",
		CompletedAt: now,
	}, nil
}
