package domain

import (
	"errors"
	"fmt"
)

// DomainError is a client-side domain error with a structured code.
//
// Codes follow the format TL-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "TL-STATE-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another DomainError by code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// State errors: the store was used without the data an operation needs.
var (
	// ErrNoAccount indicates an operation needs an active account.
	ErrNoAccount = NewDomainError("TL-STATE-4000", "no active account")

	// ErrNoSession indicates an operation needs an active session.
	ErrNoSession = NewDomainError("TL-STATE-4001", "no active session")
)

// Account errors.
var (
	// ErrInvalidPoints indicates a negative points amount.
	ErrInvalidPoints = NewDomainError("TL-ACCT-4000", "points amount must not be negative")

	// ErrInvalidAccount indicates account data outside its invariants.
	ErrInvalidAccount = NewDomainError("TL-ACCT-4001", "invalid account")

	// ErrPointsOverflow indicates a points total that does not fit in an int.
	ErrPointsOverflow = NewDomainError("TL-ACCT-4002", "points amount too large")
)

// Session and credential errors.
var (
	// ErrSessionMalformed indicates a session hash that failed validation.
	ErrSessionMalformed = NewDomainError("TL-SESS-4000", "malformed session hash")

	// ErrPasswordMismatch indicates the password confirmation differs.
	ErrPasswordMismatch = NewDomainError("TL-CRED-4000", "Passwords do not match")
)

// Resource errors.
var (
	// ErrNotFound indicates the service returned no matching resource.
	ErrNotFound = NewDomainError("TL-RES-4040", "resource not found")
)
