package handler

import (
	"kycsim/internal/kyc/providers"
	audit "kycsim/pkg/platform/audit"
)

// ProvidersResponse lists the registered provider capabilities.
type ProvidersResponse struct {
	Providers []providers.Capabilities `json:"providers"`
}

// AuditEventsResponse lists recent audit events, most recent last.
type AuditEventsResponse struct {
	Events []audit.Event `json:"events"`
}
