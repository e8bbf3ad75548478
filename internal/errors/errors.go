// Package errors defines the typed failure taxonomy shared by the core
// services. Every failure is raised synchronously to the caller; the core
// never retries and never leaves partial state behind.
package errors

// DomainError is a business-rule failure with a stable machine code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewValidationError builds a field-specific validation failure.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}
