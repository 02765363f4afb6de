package providers

import (
	"errors"
	"fmt"
)

// ErrorCategory normalizes provider failures. The simulator itself only ever
// fails on cancelled contexts, but callers embedding real providers behind
// the same interface get a stable taxonomy.
type ErrorCategory string

const (
	// ErrorTimeout indicates the provider took too long to respond.
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorCancelled indicates the caller abandoned the request.
	ErrorCancelled ErrorCategory = "cancelled"

	// ErrorBadData indicates the provider returned invalid data.
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorNotFound indicates the requested record doesn't exist.
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorInternal indicates an unexpected internal error.
	ErrorInternal ErrorCategory = "internal"
)

// ProviderError wraps provider failures with normalized categorization.
type ProviderError struct {
	Category   ErrorCategory
	Kind       Kind
	Message    string
	Underlying error
}

func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("provider %s [%s]: %s: %v", e.Kind, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("provider %s [%s]: %s", e.Kind, e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// NewProviderError creates a normalized provider error.
func NewProviderError(category ErrorCategory, kind Kind, message string, underlying error) *ProviderError {
	return &ProviderError{
		Category:   category,
		Kind:       kind,
		Message:    message,
		Underlying: underlying,
	}
}

// GetCategory extracts the error category from an error.
func GetCategory(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}

// Sentinel errors for common cases.
var (
	ErrProviderNotFound = errors.New("provider not found")
)
