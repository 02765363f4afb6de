package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"kycsim/internal/kyc/models"
	audit "kycsim/pkg/platform/audit"
	"kycsim/pkg/requestcontext"
)

// FlowRequest is the input for an orchestrated KYC flow.
type FlowRequest struct {
	Method    models.Method
	Personal  models.PersonalData
	Documents models.Documents
	// OTP is accepted for interface compatibility with the UI form but is
	// not used: the flow substitutes the sandbox OTP. See CompleteFlow.
	OTP string
}

// CompleteFlow runs the four verification steps in strict sequence:
// PAN, then Aadhaar, then the CKYC registry lookup, then certificate
// generation. Any step error aborts the remaining steps and yields a failure
// outcome carrying only the error message; partial results are discarded.
//
// Two long-standing behaviors are reproduced deliberately:
//   - the Aadhaar step runs with the fixed sandbox OTP, not the
//     caller-supplied one, so the flow verifies regardless of req.OTP;
//   - the Aadhaar verified flag is not inspected before proceeding, so a
//     rejected OTP would not halt the pipeline either.
//
// Both look like defects in the system this simulator reproduces; demo UIs
// depend on the resulting always-verified behavior, so they stay.
func (s *Service) CompleteFlow(ctx context.Context, req FlowRequest) *models.FlowOutcome {
	flowID := uuid.NewString()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "kyc.complete_flow")
	span.SetAttributes(
		attribute.String("kyc.flow_id", flowID),
		attribute.String("kyc.method", string(req.Method)),
	)
	defer span.End()

	s.emit(audit.Event{
		Action:    audit.ActionFlowStarted,
		FlowID:    flowID,
		RequestID: requestID,
		Method:    string(req.Method),
	})

	outcome, err := s.runFlow(ctx, flowID, requestID, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "kyc flow failed",
			"flow_id", flowID,
			"request_id", requestID,
			"error", err,
		)
		s.emit(audit.Event{
			Action:    audit.ActionFlowFailed,
			FlowID:    flowID,
			RequestID: requestID,
			Detail:    err.Error(),
		})
		if s.metrics != nil {
			s.metrics.ObserveFlow(false, time.Since(start))
		}
		return &models.FlowOutcome{
			FlowID:      flowID,
			Success:     false,
			Error:       err.Error(),
			CompletedAt: time.Now(),
		}
	}

	s.logger.InfoContext(ctx, "kyc flow completed",
		"flow_id", flowID,
		"request_id", requestID,
		"certificate_id", outcome.Certificate.CertificateID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	s.emit(audit.Event{
		Action:    audit.ActionFlowCompleted,
		FlowID:    flowID,
		RequestID: requestID,
		Outcome:   outcome.KYCStatus,
	})
	if s.metrics != nil {
		s.metrics.ObserveFlow(true, time.Since(start))
	}
	return outcome
}

// runFlow executes the pipeline steps; the caller translates any error into
// the single failure outcome.
func (s *Service) runFlow(ctx context.Context, flowID, requestID string, req FlowRequest) (*models.FlowOutcome, error) {
	panResult, err := flowStep(ctx, s, flowID, requestID, "pan", func(ctx context.Context) (*models.PANResult, error) {
		return s.pan.Verify(ctx, req.Documents.PANNumber)
	})
	if err != nil {
		return nil, err
	}

	aadhaarResult, err := flowStep(ctx, s, flowID, requestID, "aadhaar", func(ctx context.Context) (*models.AadhaarResult, error) {
		return s.aadhaar.Verify(ctx, req.Documents.AadhaarNumber, s.sandboxOTP)
	})
	if err != nil {
		return nil, err
	}

	ckycResult, err := flowStep(ctx, s, flowID, requestID, "ckyc", func(ctx context.Context) (*models.CKYCResult, error) {
		return s.ckyc.Lookup(ctx, req.Documents.PANNumber)
	})
	if err != nil {
		return nil, err
	}

	cert, err := flowStep(ctx, s, flowID, requestID, "certificate", func(ctx context.Context) (*models.Certificate, error) {
		return s.issuer.Issue(requestcontext.Now(ctx))
	})
	if err != nil {
		return nil, err
	}

	summary := Summarize([]Attempt{
		{Method: string(models.MethodPAN), Verified: panResult.Verified},
		{Method: string(models.MethodAadhaar), Verified: aadhaarResult.Verified},
		{Method: string(models.MethodCKYC), Verified: ckycResult.Found},
	})

	return &models.FlowOutcome{
		FlowID:      flowID,
		Success:     true,
		KYCStatus:   "Verified",
		PAN:         panResult,
		Aadhaar:     aadhaarResult,
		CKYC:        ckycResult,
		Certificate: cert,
		Summary:     &summary,
		CompletedAt: time.Now(),
	}, nil
}

// flowStep wraps one pipeline step with a span and an audit event.
func flowStep[T any](ctx context.Context, s *Service, flowID, requestID, step string, fn func(context.Context) (*T, error)) (*T, error) {
	ctx, span := s.tracer.Start(ctx, "kyc.step."+step)
	defer span.End()

	result, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.emit(audit.Event{
		Action:    audit.ActionStepCompleted,
		FlowID:    flowID,
		RequestID: requestID,
		Method:    step,
	})
	return result, nil
}

func (s *Service) emit(event audit.Event) {
	if s.emitter != nil {
		s.emitter.Emit(event)
	}
}
