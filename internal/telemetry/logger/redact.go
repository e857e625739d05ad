package logger

import (
	"log/slog"
	"strings"
)

// Sensitive key patterns that should be redacted.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"session",
	"hash",
	"credential",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// digestLength is the length of a hex SHA-256 digest. Session hashes and
// password digests both have this shape.
const digestLength = 64

// redactSensitive masks digests wherever they appear and fully redacts
// values stored under sensitive keys.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()

		keyLower := strings.ToLower(a.Key)
		for _, pattern := range sensitiveKeyPatterns {
			if strings.Contains(keyLower, pattern) {
				if strVal != "" {
					return slog.String(a.Key, redactedValue)
				}
				return a
			}
		}

		if IsSensitiveValue(strVal) {
			return slog.String(a.Key, maskValue(strVal))
		}
		if strings.Contains(strVal, "/") {
			return slog.String(a.Key, RedactPath(strVal))
		}
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// maskValue keeps the first and last 3 characters of a digest.
func maskValue(value string) string {
	if len(value) <= 6 {
		return "***"
	}
	return value[:3] + "..." + value[len(value)-3:]
}

// RedactString masks value if it looks like a digest.
func RedactString(value string) string {
	if IsSensitiveValue(value) {
		return maskValue(value)
	}
	return value
}

// RedactPath masks every digest segment of a request path, so
// "/sessions/jared/<sha256>" can be logged.
func RedactPath(path string) string {
	segments := strings.Split(path, "/")
	changed := false
	for i, seg := range segments {
		if IsSensitiveValue(seg) {
			segments[i] = maskValue(seg)
			changed = true
		}
	}
	if !changed {
		return path
	}
	return strings.Join(segments, "/")
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

// IsSensitiveValue reports whether value is a 64 character hex digest.
func IsSensitiveValue(value string) bool {
	if len(value) != digestLength {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
