// Package httptransport assembles the HTTP surface: middleware chain, KYC
// endpoints, health, and metrics.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	kychandler "kycsim/internal/kyc/handler"
	rlmiddleware "kycsim/internal/ratelimit/middleware"
	"kycsim/pkg/platform/httputil"
	"kycsim/pkg/platform/middleware/metadata"
	"kycsim/pkg/platform/middleware/requestid"
	"kycsim/pkg/platform/middleware/requesttime"
)

// HealthChecker reports whether an optional backing service is reachable.
type HealthChecker func(r *http.Request) error

// NewRouter wires all public endpoints. Health and metrics sit outside the
// rate limiter so probes are never throttled.
func NewRouter(kyc *kychandler.Handler, limiter *rlmiddleware.Middleware, checks map[string]HealthChecker) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", healthHandler(checks))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(limiter.RateLimit)
		kyc.Register(r)
	})

	return r
}

func healthHandler(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		healthy := true
		for name, check := range checks {
			if err := check(r); err != nil {
				status[name] = err.Error()
				healthy = false
				continue
			}
			status[name] = "ok"
		}
		if !healthy {
			status["status"] = "degraded"
			httputil.WriteJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, status)
	}
}
