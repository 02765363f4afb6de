// Package service orchestrates the simulated verification providers behind a
// single façade. Transport concerns live in the handler; provider internals
// stay behind small interfaces so tests can substitute them.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"kycsim/internal/kyc/metrics"
	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/providers"
	audit "kycsim/pkg/platform/audit"
	"kycsim/pkg/requestcontext"
)

// PANVerifier simulates PAN verification.
type PANVerifier interface {
	Verify(ctx context.Context, panNumber string) (*models.PANResult, error)
}

// AadhaarVerifier simulates Aadhaar OTP e-KYC.
type AadhaarVerifier interface {
	Verify(ctx context.Context, aadhaarNumber, otp string) (*models.AadhaarResult, error)
}

// DigilockerVerifier simulates a DigiLocker document pull.
type DigilockerVerifier interface {
	Verify(ctx context.Context, digilockerID string) (*models.DigilockerResult, error)
}

// CKYCRegistry simulates a central registry lookup.
type CKYCRegistry interface {
	Lookup(ctx context.Context, panNumber string) (*models.CKYCResult, error)
}

// AttributeVerifier simulates an assisted method (video KYC, offline Aadhaar).
type AttributeVerifier interface {
	Verify(ctx context.Context, input string) (*models.AttributeResult, error)
}

// CertificateIssuer mints the derived certificate artifact.
type CertificateIssuer interface {
	Issue(now time.Time) (*models.Certificate, error)
}

// Emitter abstracts the audit pipeline so tests can run without a worker.
type Emitter interface {
	Emit(event audit.Event)
}

// Service exposes every simulated verification plus the orchestrated flow.
type Service struct {
	pan            PANVerifier
	aadhaar        AadhaarVerifier
	digilocker     DigilockerVerifier
	ckyc           CKYCRegistry
	videoKYC       AttributeVerifier
	offlineAadhaar AttributeVerifier
	issuer         CertificateIssuer
	registry       *providers.Registry

	// sandboxOTP is what the orchestrated flow feeds the Aadhaar step.
	// The flow has always ignored the caller-supplied OTP; see CompleteFlow.
	sandboxOTP string

	logger  *slog.Logger
	metrics *metrics.Metrics
	emitter Emitter
	tracer  trace.Tracer
}

// Config wires the service's collaborators.
type Config struct {
	PAN            PANVerifier
	Aadhaar        AadhaarVerifier
	Digilocker     DigilockerVerifier
	CKYC           CKYCRegistry
	VideoKYC       AttributeVerifier
	OfflineAadhaar AttributeVerifier
	Issuer         CertificateIssuer
	Registry       *providers.Registry
	SandboxOTP     string
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Emitter        Emitter
}

func New(cfg Config) *Service {
	return &Service{
		pan:            cfg.PAN,
		aadhaar:        cfg.Aadhaar,
		digilocker:     cfg.Digilocker,
		ckyc:           cfg.CKYC,
		videoKYC:       cfg.VideoKYC,
		offlineAadhaar: cfg.OfflineAadhaar,
		issuer:         cfg.Issuer,
		registry:       cfg.Registry,
		sandboxOTP:     cfg.SandboxOTP,
		logger:         cfg.Logger,
		metrics:        cfg.Metrics,
		emitter:        cfg.Emitter,
		tracer:         otel.Tracer("kycsim/kyc"),
	}
}

// VerifyPAN runs a single simulated PAN verification.
func (s *Service) VerifyPAN(ctx context.Context, panNumber string) (*models.PANResult, error) {
	result, err := s.pan.Verify(ctx, panNumber)
	if err != nil {
		return nil, err
	}
	s.observe(ctx, providers.KindPAN, result.Verified)
	return result, nil
}

// VerifyAadhaar runs a single simulated Aadhaar OTP verification with the
// caller's OTP. Only the orchestrated flow substitutes the sandbox OTP.
func (s *Service) VerifyAadhaar(ctx context.Context, aadhaarNumber, otp string) (*models.AadhaarResult, error) {
	result, err := s.aadhaar.Verify(ctx, aadhaarNumber, otp)
	if err != nil {
		return nil, err
	}
	s.observe(ctx, providers.KindAadhaar, result.Verified)
	return result, nil
}

// VerifyDigilocker runs a single simulated DigiLocker pull.
func (s *Service) VerifyDigilocker(ctx context.Context, digilockerID string) (*models.DigilockerResult, error) {
	result, err := s.digilocker.Verify(ctx, digilockerID)
	if err != nil {
		return nil, err
	}
	s.observe(ctx, providers.KindDigilocker, result.Verified)
	return result, nil
}

// CheckCKYC runs a single simulated registry lookup.
func (s *Service) CheckCKYC(ctx context.Context, panNumber string) (*models.CKYCResult, error) {
	result, err := s.ckyc.Lookup(ctx, panNumber)
	if err != nil {
		return nil, err
	}
	s.observe(ctx, providers.KindCKYC, result.Found)
	return result, nil
}

// VerifyVideoKYC runs a simulated V-CIP session.
func (s *Service) VerifyVideoKYC(ctx context.Context, applicantName string) (*models.AttributeResult, error) {
	result, err := s.videoKYC.Verify(ctx, applicantName)
	if err != nil {
		return nil, err
	}
	s.observe(ctx, providers.KindVideoKYC, result.Verified)
	return result, nil
}

// VerifyOfflineAadhaar runs a simulated offline Aadhaar XML verification.
func (s *Service) VerifyOfflineAadhaar(ctx context.Context, aadhaarNumber string) (*models.AttributeResult, error) {
	result, err := s.offlineAadhaar.Verify(ctx, aadhaarNumber)
	if err != nil {
		return nil, err
	}
	s.observe(ctx, providers.KindOfflineAadhaar, result.Verified)
	return result, nil
}

// Providers lists the registered provider capabilities for discovery.
func (s *Service) Providers() []providers.Capabilities {
	all := s.registry.All()
	out := make([]providers.Capabilities, 0, len(all))
	for _, p := range all {
		out = append(out, p.Capabilities())
	}
	return out
}

func (s *Service) observe(ctx context.Context, kind providers.Kind, verified bool) {
	if s.metrics != nil {
		s.metrics.ObserveVerification(string(kind), verified)
	}
	if s.emitter != nil {
		outcome := "verified"
		if !verified {
			outcome = "rejected"
		}
		s.emitter.Emit(audit.Event{
			Action:    audit.ActionVerificationPerformed,
			RequestID: requestcontext.RequestID(ctx),
			Method:    string(kind),
			Outcome:   outcome,
		})
	}
}
