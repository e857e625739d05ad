package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// emailSymbols are the non-alphanumeric characters allowed in an email.
const emailSymbols = ".@!#$%&'*+-/=?^_`{|}~"

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isUsernameRune(r rune) bool {
	return isASCIIAlnum(r) || r == '_'
}

func isEmailRune(r rune) bool {
	return isASCIIAlnum(r) || strings.ContainsRune(emailSymbols, r)
}

// hasRuneOutside reports whether text contains a rune rejected by allowed.
func hasRuneOutside(text string, allowed func(rune) bool) bool {
	return strings.IndexFunc(text, func(r rune) bool { return !allowed(r) }) >= 0
}

func isNewline(r rune) bool {
	switch r {
	case '\n', '\r', '\u000B', '\u000C', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// isIllegal matches unassigned code points, noncharacters and the
// replacement rune produced for invalid UTF-8.
func isIllegal(r rune) bool {
	if r == utf8.RuneError {
		return true
	}
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	if r&0xFFFE == 0xFFFE {
		return true
	}
	return !unicode.In(r, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C)
}

// isNonBase matches combining marks.
func isNonBase(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me)
}

func isPasswordStripped(r rune) bool {
	return unicode.IsControl(r) || isIllegal(r) || isNewline(r) || isNonBase(r)
}

// length counts characters, not bytes.
func length(text string) int {
	return utf8.RuneCountInString(text)
}
