package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewDomainError("TL-TEST-1000", "test message"),
			expected: "[TL-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      ErrSessionMalformed.WithDetails("TOO_SHORT"),
			expected: "[TL-SESS-4000] malformed session hash: TOO_SHORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	detailed := ErrNoAccount.WithDetails("add points")

	if !errors.Is(detailed, ErrNoAccount) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(detailed, ErrNoSession) {
		t.Error("errors.Is should not match a different code")
	}
	if errors.Is(detailed, fmt.Errorf("no active account")) {
		t.Error("errors.Is should not match a plain error")
	}

	wrapped := fmt.Errorf("store: %w", detailed)
	if !errors.Is(wrapped, ErrNoAccount) {
		t.Error("errors.Is should see through fmt.Errorf wrapping")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := ErrInvalidAccount.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(fmt.Errorf("wrap: %w", ErrNotFound)); got != "TL-RES-4040" {
		t.Errorf("GetErrorCode(wrapped) = %q", got)
	}
	if got := GetErrorCode(ErrPasswordMismatch); got != "TL-CRED-4000" {
		t.Errorf("GetErrorCode() = %q", got)
	}
	if got := GetErrorCode(errors.New("plain")); got != "" {
		t.Errorf("GetErrorCode(plain) = %q, want empty", got)
	}
}
