// Package digilocker simulates a DigiLocker document pull. The locker always
// succeeds and exposes the same fixed document set with fixed issue dates;
// voter ID is deliberately left unverified to give demo UIs a mixed state.
package digilocker

import (
	"context"
	"time"

	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/providers"
	"kycsim/internal/platform/clock"
)

var availableDocuments = []string{"aadhaar", "pan_card", "driving_license", "voter_id"}

var documentStates = map[string]models.DigilockerDocument{
	"aadhaar":         {Verified: true, IssuedOn: "2019-03-14"},
	"pan_card":        {Verified: true, IssuedOn: "2017-08-02"},
	"driving_license": {Verified: true, IssuedOn: "2021-11-20"},
	"voter_id":        {Verified: false, IssuedOn: "2015-01-09"},
}

// Provider is the simulated DigiLocker source.
type Provider struct {
	clk     clock.Clock
	latency time.Duration
}

func New(clk clock.Clock, latency time.Duration) *Provider {
	return &Provider{clk: clk, latency: latency}
}

func (p *Provider) Kind() providers.Kind {
	return providers.KindDigilocker
}

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Kind:        providers.KindDigilocker,
		DisplayName: "DigiLocker KYC",
		Attributes:  availableDocuments,
		Compliance:  "Digital Locker under Digital India initiative",
		Latency:     p.latency,
	}
}

// Verify waits the simulated latency and returns the fixed locker contents.
func (p *Provider) Verify(ctx context.Context, digilockerID string) (*models.DigilockerResult, error) {
	if err := p.clk.Sleep(ctx, p.latency); err != nil {
		return nil, providers.NewProviderError(providers.ErrorCancelled, providers.KindDigilocker, "document pull interrupted", err)
	}

	docs := make(map[string]models.DigilockerDocument, len(documentStates))
	for name, doc := range documentStates {
		docs[name] = doc
	}

	return &models.DigilockerResult{
		Verified:     true,
		DigilockerID: digilockerID,
		Available:    append([]string(nil), availableDocuments...),
		Documents:    docs,
		CompletedAt:  p.clk.Now(),
	}, nil
}
