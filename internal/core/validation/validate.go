package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Length bounds, in characters.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 16
	PasswordMinLength = 3
	EmailMinLength    = 6
	EmailMaxLength    = 254
	SessionLength     = 64
	JSONMinLength     = 3
	NumberMaxLength   = 32
)

var (
	// usernamePattern matches e.g. jared_123, jaredtiala, j_tiala.
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,16}$`)
	// passwordPattern only rejects text spanning several lines. A single
	// trailing line terminator is accepted.
	passwordPattern = regexp.MustCompile(`^[^\n\x0B\x0C\r\x{85}\x{2028}\x{2029}]*(?:\r\n|[\n\x0B\x0C\r\x{85}\x{2028}\x{2029}])?$`)
	// emailPattern requires an explicit domain with a letter-only TLD.
	emailPattern = regexp.MustCompile(`^[\w%+.-]+@[\w%+.-]+\.[A-Za-z.]{2,}$`)
	// sessionPattern matches a lowercase hex SHA-256 digest.
	sessionPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)
	// jsonPattern is a smoke test for a brace-delimited body.
	jsonPattern = regexp.MustCompile(`(?s)\{.+\}`)
	// numberPattern matches e.g. 121 or 15.519.
	numberPattern = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)

	// ErrUnknownField is returned by Validate for a field it does not know.
	ErrUnknownField = errors.New("validation: unknown field")
)

// ValidateUsername checks length, charset and pattern, in that order.
func ValidateUsername(text string) FailureReason {
	n := length(text)
	if n > UsernameMaxLength {
		return TooLong
	}
	if n < UsernameMinLength {
		return TooShort
	}
	if hasRuneOutside(text, isUsernameRune) {
		return HasIllegal
	}
	if !usernamePattern.MatchString(text) {
		return NoMatch
	}
	return None
}

// ValidatePassword only enforces a minimum length on single-line text.
func ValidatePassword(text string) FailureReason {
	if length(text) < PasswordMinLength {
		return TooShort
	}
	if !passwordPattern.MatchString(text) {
		return NoMatch
	}
	return None
}

// ValidateEmail checks length, charset, the "@" separator and a conservative
// local@domain.tld pattern, in that order.
func ValidateEmail(text string) FailureReason {
	n := length(text)
	if n > EmailMaxLength {
		return TooLong
	}
	if n < EmailMinLength {
		return TooShort
	}
	if hasRuneOutside(text, isEmailRune) {
		return HasIllegal
	}
	if !strings.ContainsRune(text, '@') {
		return NoDomain
	}
	if !emailPattern.MatchString(text) {
		return NoMatch
	}
	return None
}

// ValidateSession requires exactly 64 lowercase hex characters.
func ValidateSession(text string) FailureReason {
	n := length(text)
	if n > SessionLength {
		return TooLong
	}
	if n < SessionLength {
		return TooShort
	}
	if !sessionPattern.MatchString(text) {
		return NoMatch
	}
	return None
}

// ValidateJSON is a crude well-formedness check for a response body.
// It is not a parser.
func ValidateJSON(text string) FailureReason {
	if length(text) < JSONMinLength {
		return TooShort
	}
	if !jsonPattern.MatchString(text) {
		return NoMatch
	}
	return None
}

// ValidateNumber accepts unsigned integers and decimals.
func ValidateNumber(text string) FailureReason {
	if length(text) > NumberMaxLength {
		return TooLong
	}
	if !numberPattern.MatchString(text) {
		return NoMatch
	}
	return None
}

// Validate dispatches to the Validate function for field.
func Validate(field Field, text string) (FailureReason, error) {
	switch field {
	case FieldUsername:
		return ValidateUsername(text), nil
	case FieldPassword:
		return ValidatePassword(text), nil
	case FieldEmail:
		return ValidateEmail(text), nil
	case FieldSession:
		return ValidateSession(text), nil
	case FieldJSON:
		return ValidateJSON(text), nil
	case FieldNumber:
		return ValidateNumber(text), nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}
