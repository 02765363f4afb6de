package models

import "strings"

// MaskAadhaar replaces all but the last four characters of a raw Aadhaar
// number with 'X'. Callers must pass the raw, unmasked number; re-masking an
// already-masked value is not supported.
func MaskAadhaar(aadhaar string) string {
	if len(aadhaar) <= 4 {
		return aadhaar
	}
	return strings.Repeat("X", len(aadhaar)-4) + aadhaar[len(aadhaar)-4:]
}
