package validation

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// passwordStripper removes control, illegal, newline and combining-mark runes.
// Invalid UTF-8 reaches the predicate as utf8.RuneError and is removed too.
var passwordStripper = runes.Remove(runes.Predicate(isPasswordStripped))

// SanitizeUsername drops every character outside [A-Za-z0-9_] and lowercases
// the rest.
func SanitizeUsername(text string) string {
	return strings.ToLower(keepOnly(text, isUsernameRune))
}

// SanitizePassword strips characters that cannot be typed back reliably.
// Case is preserved.
func SanitizePassword(text string) string {
	out, _, err := transform.String(passwordStripper, text)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if isPasswordStripped(r) {
				return -1
			}
			return r
		}, text)
	}
	return out
}

// SanitizeEmail trims surrounding whitespace and drops characters outside
// the email charset. Case is preserved.
func SanitizeEmail(text string) string {
	return keepOnly(strings.TrimSpace(text), isEmailRune)
}

// Sanitize dispatches to the Sanitize function for field. Fields without
// one are returned unchanged.
func Sanitize(field Field, text string) string {
	switch field {
	case FieldUsername:
		return SanitizeUsername(text)
	case FieldPassword:
		return SanitizePassword(text)
	case FieldEmail:
		return SanitizeEmail(text)
	default:
		return text
	}
}

func keepOnly(text string, allowed func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if allowed(r) {
			return r
		}
		return -1
	}, text)
}
