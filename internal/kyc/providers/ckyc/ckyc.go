// Package ckyc simulates a Central KYC Registry lookup. Whether a prior
// record exists is a Bernoulli trial with a fixed hit rate; two lookups are
// independent. The randomness source is injected so tests can force both
// branches deterministically.
package ckyc

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/providers"
	"kycsim/internal/platform/clock"
)

const (
	priorKYCDate     = "2022-09-18"
	priorInstitution = "State Bank of India"
)

// Rand is the slice of math/rand the registry simulation needs.
type Rand interface {
	Float64() float64
	Int63n(n int64) int64
}

// SystemRand draws from the process-wide math/rand source, which is safe for
// concurrent lookups.
type SystemRand struct{}

func (SystemRand) Float64() float64     { return rand.Float64() }
func (SystemRand) Int63n(n int64) int64 { return rand.Int63n(n) }

// Provider is the simulated central registry.
type Provider struct {
	clk     clock.Clock
	latency time.Duration
	rng     Rand
	hitRate float64
}

func New(clk clock.Clock, latency time.Duration, rng Rand, hitRate float64) *Provider {
	return &Provider{clk: clk, latency: latency, rng: rng, hitRate: hitRate}
}

func (p *Provider) Kind() providers.Kind {
	return providers.KindCKYC
}

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Kind:        providers.KindCKYC,
		DisplayName: "Central KYC Registry (CKYCR)",
		Attributes:  []string{"name", "father_name", "address", "pan", "identity_proof"},
		Compliance:  "Prevention of Money Laundering (Maintenance of Records) Rules, 2005",
		Latency:     p.latency,
	}
}

// Lookup waits the simulated latency, then reports an existing registry
// record with probability hitRate. Found records carry a synthetic
// 12-digit CKYC number and a fixed prior KYC date and institution.
func (p *Provider) Lookup(ctx context.Context, panNumber string) (*models.CKYCResult, error) {
	if err := p.clk.Sleep(ctx, p.latency); err != nil {
		return nil, providers.NewProviderError(providers.ErrorCancelled, providers.KindCKYC, "registry lookup interrupted", err)
	}

	if p.rng.Float64() >= p.hitRate {
		return &models.CKYCResult{
			Found:       false,
			CompletedAt: p.clk.Now(),
		}, nil
	}

	return &models.CKYCResult{
		Found:          true,
		RegistryNumber: p.registryNumber(),
		PriorKYCDate:   priorKYCDate,
		Institution:    priorInstitution,
		CompletedAt:    p.clk.Now(),
	}, nil
}

// registryNumber mimics the CKYCR number format: "CKYC" plus twelve digits.
func (p *Provider) registryNumber() string {
	const span = int64(900000000000) // keeps the first digit non-zero
	return fmt.Sprintf("CKYC%d", 100000000000+p.rng.Int63n(span))
}
