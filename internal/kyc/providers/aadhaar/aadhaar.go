// Package aadhaar simulates UIDAI OTP-based e-KYC. A single accepted OTP is
// configured at construction; any other value yields a structured
// not-verified result, never an error, and there is no retry tracking.
package aadhaar

import (
	"context"
	"time"

	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/providers"
	"kycsim/internal/platform/clock"
)

const invalidOTPReason = "Invalid OTP"

// Fixed demographics returned on a successful match.
const (
	demoName    = "Rahul Kumar"
	demoDOB     = "1985-04-12"
	demoAddress = "42 MG Road, Bengaluru, Karnataka 560001"
)

// Provider is the simulated Aadhaar e-KYC source.
type Provider struct {
	clk         clock.Clock
	latency     time.Duration
	acceptedOTP string
}

func New(clk clock.Clock, latency time.Duration, acceptedOTP string) *Provider {
	return &Provider{clk: clk, latency: latency, acceptedOTP: acceptedOTP}
}

func (p *Provider) Kind() providers.Kind {
	return providers.KindAadhaar
}

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Kind:        providers.KindAadhaar,
		DisplayName: "Aadhaar e-KYC (UIDAI)",
		Attributes:  []string{"name", "date_of_birth", "address"},
		Compliance:  "RBI Master Direction on KYC, 2016",
		Latency:     p.latency,
	}
}

// Verify waits the simulated latency, then compares otp against the single
// accepted value. A mismatch is returned as data with reason "Invalid OTP";
// a match returns fixed demographics with the Aadhaar number masked to its
// last four digits. The input must be the raw, unmasked number.
func (p *Provider) Verify(ctx context.Context, aadhaarNumber, otp string) (*models.AadhaarResult, error) {
	if err := p.clk.Sleep(ctx, p.latency); err != nil {
		return nil, providers.NewProviderError(providers.ErrorCancelled, providers.KindAadhaar, "verification interrupted", err)
	}

	if otp != p.acceptedOTP {
		return &models.AadhaarResult{
			Verified:    false,
			Reason:      invalidOTPReason,
			CompletedAt: p.clk.Now(),
		}, nil
	}

	return &models.AadhaarResult{
		Verified:      true,
		AadhaarNumber: models.MaskAadhaar(aadhaarNumber),
		Name:          demoName,
		DateOfBirth:   demoDOB,
		Address:       demoAddress,
		CompletedAt:   p.clk.Now(),
	}, nil
}
