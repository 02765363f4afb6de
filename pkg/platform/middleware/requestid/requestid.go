// Package requestid assigns a correlation ID to every HTTP request.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"kycsim/pkg/requestcontext"
)

// Header is the wire name of the correlation ID header.
const Header = "X-Request-ID"

// Middleware propagates the caller's request ID, minting one when the header
// is absent, and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
