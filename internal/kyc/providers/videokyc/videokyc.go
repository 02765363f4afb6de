// Package videokyc simulates a V-CIP (video customer identification) session.
// The sandbox session always succeeds with a fixed attribute set and officer.
package videokyc

import (
	"context"
	"time"

	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/providers"
	"kycsim/internal/platform/clock"
)

const officerName = "KYC Officer #1234"

// Provider is the simulated video KYC source.
type Provider struct {
	clk     clock.Clock
	latency time.Duration
}

func New(clk clock.Clock, latency time.Duration) *Provider {
	return &Provider{clk: clk, latency: latency}
}

func (p *Provider) Kind() providers.Kind {
	return providers.KindVideoKYC
}

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Kind:        providers.KindVideoKYC,
		DisplayName: "Video KYC (V-CIP)",
		Attributes:  []string{"live_photo", "pan_card", "address_proof", "geo_tagging", "recording_stored"},
		Compliance:  "RBI Notification dated 03-08-2021",
		Latency:     p.latency,
	}
}

// Verify waits the simulated latency and returns a completed session record.
func (p *Provider) Verify(ctx context.Context, applicantName string) (*models.AttributeResult, error) {
	if err := p.clk.Sleep(ctx, p.latency); err != nil {
		return nil, providers.NewProviderError(providers.ErrorCancelled, providers.KindVideoKYC, "session interrupted", err)
	}

	now := p.clk.Now()
	return &models.AttributeResult{
		Verified: true,
		KYCID:    providers.SimID("VKYC", now),
		Attributes: map[string]bool{
			"live_photo":       true,
			"pan_card":         true,
			"address_proof":    true,
			"geo_tagging":      true,
			"recording_stored": true,
		},
		OfficerName: officerName,
		Compliance:  "RBI Notification dated 03-08-2021",
		CompletedAt: now,
	}, nil
}
