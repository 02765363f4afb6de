// Package sentinel holds shared sentinel errors for infrastructure facts.
// Platform clients return these (optionally wrapped) so callers can branch
// with errors.Is instead of inspecting driver error text.
//
// For validation failures use pkg/domain-errors directly.
package sentinel

import "errors"

var (
	// ErrUnavailable reports that a backing service cannot be reached.
	ErrUnavailable = errors.New("unavailable")
)
