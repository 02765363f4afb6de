// Package handler exposes the KYC simulator over HTTP. All endpoints speak
// JSON and translate provider failures into the shared error envelope.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/providers"
	"kycsim/internal/kyc/service"
	dErrors "kycsim/pkg/domain-errors"
	audit "kycsim/pkg/platform/audit"
	"kycsim/pkg/platform/httputil"
	"kycsim/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_service.go -package=mocks Service

// Service defines the interface for KYC simulator operations.
type Service interface {
	VerifyPAN(ctx context.Context, panNumber string) (*models.PANResult, error)
	VerifyAadhaar(ctx context.Context, aadhaarNumber, otp string) (*models.AadhaarResult, error)
	VerifyDigilocker(ctx context.Context, digilockerID string) (*models.DigilockerResult, error)
	CheckCKYC(ctx context.Context, panNumber string) (*models.CKYCResult, error)
	VerifyVideoKYC(ctx context.Context, applicantName string) (*models.AttributeResult, error)
	VerifyOfflineAadhaar(ctx context.Context, aadhaarNumber string) (*models.AttributeResult, error)
	CompleteFlow(ctx context.Context, req service.FlowRequest) *models.FlowOutcome
	Providers() []providers.Capabilities
}

// Handler wires KYC endpoints to the simulator service.
type Handler struct {
	service    Service
	auditStore audit.Store
	logger     *slog.Logger
}

// New constructs a KYC handler with its dependencies. auditStore may be nil,
// in which case the audit listing endpoint reports unavailable.
func New(service Service, auditStore audit.Store, logger *slog.Logger) *Handler {
	return &Handler{
		service:    service,
		auditStore: auditStore,
		logger:     logger,
	}
}

// Register mounts KYC endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/kyc/verify/pan", h.HandleVerifyPAN)
	r.Post("/kyc/verify/aadhaar", h.HandleVerifyAadhaar)
	r.Post("/kyc/verify/digilocker", h.HandleVerifyDigilocker)
	r.Post("/kyc/verify/video", h.HandleVerifyVideoKYC)
	r.Post("/kyc/verify/offline-aadhaar", h.HandleVerifyOfflineAadhaar)
	r.Post("/kyc/registry/ckyc", h.HandleCheckCKYC)
	r.Post("/kyc/flow", h.HandleCompleteFlow)
	r.Get("/kyc/providers", h.HandleListProviders)
	r.Get("/kyc/audit/events", h.HandleListAuditEvents)
}

// HandleVerifyPAN handles POST /kyc/verify/pan requests.
func (h *Handler) HandleVerifyPAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PANRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.VerifyPAN(ctx, req.PANNumber)
	if err != nil {
		h.writeProviderError(ctx, w, requestID, "pan verification failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleVerifyAadhaar handles POST /kyc/verify/aadhaar requests. An OTP
// mismatch is not an error; it comes back as an unverified result.
func (h *Handler) HandleVerifyAadhaar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AadhaarRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.VerifyAadhaar(ctx, req.AadhaarNumber, req.OTP)
	if err != nil {
		h.writeProviderError(ctx, w, requestID, "aadhaar verification failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleVerifyDigilocker handles POST /kyc/verify/digilocker requests.
func (h *Handler) HandleVerifyDigilocker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DigilockerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.VerifyDigilocker(ctx, req.DigilockerID)
	if err != nil {
		h.writeProviderError(ctx, w, requestID, "digilocker verification failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleVerifyVideoKYC handles POST /kyc/verify/video requests.
func (h *Handler) HandleVerifyVideoKYC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VideoKYCRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.VerifyVideoKYC(ctx, req.ApplicantName)
	if err != nil {
		h.writeProviderError(ctx, w, requestID, "video kyc failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleVerifyOfflineAadhaar handles POST /kyc/verify/offline-aadhaar requests.
func (h *Handler) HandleVerifyOfflineAadhaar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[OfflineAadhaarRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.VerifyOfflineAadhaar(ctx, req.AadhaarNumber)
	if err != nil {
		h.writeProviderError(ctx, w, requestID, "offline aadhaar verification failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleCheckCKYC handles POST /kyc/registry/ckyc requests.
func (h *Handler) HandleCheckCKYC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CKYCRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CheckCKYC(ctx, req.PANNumber)
	if err != nil {
		h.writeProviderError(ctx, w, requestID, "ckyc lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleCompleteFlow handles POST /kyc/flow requests. Step failures do not
// map to HTTP errors; the outcome itself reports success or failure and the
// status is 200 either way.
func (h *Handler) HandleCompleteFlow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[FlowRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcome := h.service.CompleteFlow(ctx, req.ToFlowRequest())

	h.logger.InfoContext(ctx, "kyc flow completed",
		"request_id", requestID,
		"flow_id", outcome.FlowID,
		"success", outcome.Success,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, outcome)
}

// HandleListProviders handles GET /kyc/providers requests.
func (h *Handler) HandleListProviders(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, ProvidersResponse{Providers: h.service.Providers()})
}

// HandleListAuditEvents handles GET /kyc/audit/events requests.
func (h *Handler) HandleListAuditEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if h.auditStore == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "audit store is not configured"))
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be an integer between 1 and 1000"))
			return
		}
		limit = parsed
	}

	events, err := h.auditStore.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit events",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, AuditEventsResponse{Events: events})
}

func (h *Handler) writeProviderError(ctx context.Context, w http.ResponseWriter, requestID, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestID,
		"category", string(providers.GetCategory(err)),
		"error", err,
	)
	httputil.WriteError(w, toDomainError(err))
}

// toDomainError maps normalized provider failures onto the shared error
// taxonomy so the envelope stays uniform across endpoints.
func toDomainError(err error) error {
	if code := dErrors.CodeOf(err); code != dErrors.CodeInternal {
		return err
	}

	switch providers.GetCategory(err) {
	case providers.ErrorBadData:
		return dErrors.Wrap(err, dErrors.CodeValidation, "provider returned invalid data")
	case providers.ErrorNotFound:
		return dErrors.Wrap(err, dErrors.CodeNotFound, "record not found")
	case providers.ErrorCancelled:
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "request cancelled")
	case providers.ErrorTimeout:
		return dErrors.Wrap(err, dErrors.CodeInternal, "provider timed out")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "verification failed")
	}
}
