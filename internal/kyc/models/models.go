// Package models defines the result records the KYC simulator produces.
// Records are plain values, timestamped at completion, and never mutated
// after they are returned.
package models

import "time"

// Method selects which simulated verification a caller wants.
type Method string

const (
	MethodPAN            Method = "pan"
	MethodAadhaar        Method = "aadhaar"
	MethodDigilocker     Method = "digilocker"
	MethodCKYC           Method = "ckyc"
	MethodVideoKYC       Method = "video_kyc"
	MethodOfflineAadhaar Method = "offline_aadhaar"
)

// ParseMethod maps a wire string to a Method.
func ParseMethod(s string) (Method, bool) {
	switch Method(s) {
	case MethodPAN, MethodAadhaar, MethodDigilocker, MethodCKYC, MethodVideoKYC, MethodOfflineAadhaar:
		return Method(s), true
	}
	return "", false
}

// PersonalData is the demographic block callers submit with a flow request.
// The simulator echoes parts of it back; nothing is validated against a real
// registry.
type PersonalData struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
}

// Documents carries the identifiers the simulated providers consume.
type Documents struct {
	PANNumber     string `json:"pan_number"`
	AadhaarNumber string `json:"aadhaar_number"`
	DigilockerID  string `json:"digilocker_id"`
}

// PANResult is the outcome of a simulated PAN verification. The sandbox
// provider always verifies.
type PANResult struct {
	Verified    bool      `json:"verified"`
	PANNumber   string    `json:"pan_number"`
	Name        string    `json:"name"`
	DateOfBirth string    `json:"date_of_birth"`
	Status      string    `json:"status"`
	CompletedAt time.Time `json:"completed_at"`
}

// AadhaarResult is the outcome of a simulated Aadhaar OTP verification.
// AadhaarNumber is masked to the last four digits on success.
type AadhaarResult struct {
	Verified      bool      `json:"verified"`
	Reason        string    `json:"reason,omitempty"`
	AadhaarNumber string    `json:"aadhaar_number,omitempty"`
	Name          string    `json:"name,omitempty"`
	DateOfBirth   string    `json:"date_of_birth,omitempty"`
	Address       string    `json:"address,omitempty"`
	CompletedAt   time.Time `json:"completed_at"`
}

// DigilockerDocument is one document visible in the simulated locker.
type DigilockerDocument struct {
	Verified bool   `json:"verified"`
	IssuedOn string `json:"issued_on"`
}

// DigilockerResult lists the documents the simulated locker exposes.
type DigilockerResult struct {
	Verified     bool                          `json:"verified"`
	DigilockerID string                        `json:"digilocker_id"`
	Available    []string                      `json:"available_documents"`
	Documents    map[string]DigilockerDocument `json:"documents"`
	CompletedAt  time.Time                     `json:"completed_at"`
}

// CKYCResult reports whether a prior KYC record exists in the simulated
// central registry. Found is a Bernoulli trial, independent per call.
type CKYCResult struct {
	Found          bool      `json:"found"`
	RegistryNumber string    `json:"registry_number,omitempty"`
	PriorKYCDate   string    `json:"prior_kyc_date,omitempty"`
	Institution    string    `json:"institution,omitempty"`
	CompletedAt    time.Time `json:"completed_at"`
}

// AttributeResult is the outcome of an assisted verification method (video
// KYC, offline Aadhaar XML) recovered from the original demo backend.
type AttributeResult struct {
	Verified    bool            `json:"verified"`
	KYCID       string          `json:"kyc_id"`
	Attributes  map[string]bool `json:"verified_attributes"`
	OfficerName string          `json:"officer_name,omitempty"`
	Compliance  string          `json:"compliance"`
	CompletedAt time.Time       `json:"completed_at"`
}

// Certificate is the derived artifact issued after a completed flow.
// ValidUntil is IssuedAt plus exactly 5*365 days; the original system did
// not account for leap years and neither does this one.
type Certificate struct {
	CertificateID string    `json:"certificate_id"`
	IssuedAt      time.Time `json:"issued_at"`
	ValidUntil    time.Time `json:"valid_until"`
	Claims        []string  `json:"claims"`
	Status        string    `json:"status"`
	Token         string    `json:"token,omitempty"`
}

// FlowOutcome aggregates all step results of one orchestrated flow
// invocation. On failure only Error is populated; partial results are
// discarded.
type FlowOutcome struct {
	FlowID      string         `json:"flow_id"`
	Success     bool           `json:"success"`
	KYCStatus   string         `json:"kyc_status,omitempty"`
	PAN         *PANResult     `json:"pan,omitempty"`
	Aadhaar     *AadhaarResult `json:"aadhaar,omitempty"`
	CKYC        *CKYCResult    `json:"ckyc,omitempty"`
	Certificate *Certificate   `json:"certificate,omitempty"`
	Summary     *Summary       `json:"summary,omitempty"`
	Error       string         `json:"error,omitempty"`
	CompletedAt time.Time      `json:"completed_at"`
}

// Summary condenses a set of verification attempts the way the original
// demo backend reported them.
type Summary struct {
	MethodsUsed      int      `json:"total_methods_used"`
	MethodsCompleted []string `json:"methods_completed"`
	AllVerified      bool     `json:"all_verified"`
	Score            float64  `json:"kyc_score"`
}
