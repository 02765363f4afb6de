// Package pan simulates PAN verification against the income-tax database.
// The sandbox always verifies: there is no failure path, any PAN input is
// accepted and answered with fixed demo demographics.
package pan

import (
	"context"
	"time"

	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/providers"
	"kycsim/internal/platform/clock"
)

const (
	fallbackName = "Rahul Kumar"
	fallbackDOB  = "1985-04-12"
)

// Provider is the simulated PAN verification source.
type Provider struct {
	clk     clock.Clock
	latency time.Duration
}

func New(clk clock.Clock, latency time.Duration) *Provider {
	return &Provider{clk: clk, latency: latency}
}

func (p *Provider) Kind() providers.Kind {
	return providers.KindPAN
}

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Kind:        providers.KindPAN,
		DisplayName: "PAN Verification",
		Attributes:  []string{"name", "date_of_birth"},
		Compliance:  "Income Tax Act, 1961",
		Latency:     p.latency,
	}
}

// Verify waits the simulated latency and returns a verified result for any
// PAN number.
func (p *Provider) Verify(ctx context.Context, panNumber string) (*models.PANResult, error) {
	if err := p.clk.Sleep(ctx, p.latency); err != nil {
		return nil, providers.NewProviderError(providers.ErrorCancelled, providers.KindPAN, "verification interrupted", err)
	}

	return &models.PANResult{
		Verified:    true,
		PANNumber:   panNumber,
		Name:        fallbackName,
		DateOfBirth: fallbackDOB,
		Status:      "Active",
		CompletedAt: p.clk.Now(),
	}, nil
}
