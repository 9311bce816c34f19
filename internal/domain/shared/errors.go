package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...any) *DomainError {
	return NewDomainError("VALIDATION_ERROR", fmt.Sprintf(format, args...))
}

// NewIntegrityError creates an integrity error for a broken required reference
func NewIntegrityError(format string, args ...any) *DomainError {
	return NewDomainError("INTEGRITY_ERROR", fmt.Sprintf(format, args...))
}

// ErrInternal is returned when a failure must not leak detail to the caller.
var ErrInternal = NewDomainError("INTERNAL_ERROR", "Internal server error")
