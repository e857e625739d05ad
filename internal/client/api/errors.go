package api

import (
	"errors"
	"fmt"

	"github.com/yndnr/teeline-go/internal/core/validation"
	"github.com/yndnr/teeline-go/internal/telemetry/logger"
)

var (
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("transport failure")
	// ErrProtocol matches every *ProtocolError.
	ErrProtocol = errors.New("protocol failure")
	// ErrUncacheableMethod is returned by SendCached for CREATE and UPDATE.
	ErrUncacheableMethod = errors.New("api: only FETCH requests can be cached")
	// ErrFieldMissing is returned by Response.Decode for an absent key.
	ErrFieldMissing = errors.New("field missing from response")
)

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	Method Method
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, logger.RedactPath(e.Path), e.Err)
}

// Unwrap exposes both ErrTransport and the underlying error.
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// ProtocolKind classifies a ProtocolError.
type ProtocolKind int

const (
	// KindStatus means the HTTP status was not 200.
	KindStatus ProtocolKind = iota
	// KindInvalidJSON means the body failed validation.ValidateJSON.
	KindInvalidJSON
	// KindDecode means the body is not a JSON object with an integer
	// "error" field.
	KindDecode
)

func (k ProtocolKind) String() string {
	switch k {
	case KindStatus:
		return "unexpected status"
	case KindInvalidJSON:
		return "invalid json"
	case KindDecode:
		return "undecodable body"
	default:
		return fmt.Sprintf("ProtocolKind(%d)", int(k))
	}
}

// ProtocolError reports a response that is not a usable envelope.
type ProtocolError struct {
	Kind       ProtocolKind
	Method     Method
	Path       string
	StatusCode int                      // set for KindStatus
	Reason     validation.FailureReason // set for KindInvalidJSON
	Err        error                    // set for KindDecode
}

func (e *ProtocolError) Error() string {
	prefix := fmt.Sprintf("%s %s: %s", e.Method, logger.RedactPath(e.Path), e.Kind)
	switch {
	case e.Kind == KindStatus:
		return fmt.Sprintf("%s %d", prefix, e.StatusCode)
	case e.Kind == KindInvalidJSON:
		return fmt.Sprintf("%s (%s)", prefix, e.Reason)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	default:
		return prefix
	}
}

// Unwrap exposes ErrProtocol and, for decode failures, the decoder error.
func (e *ProtocolError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrProtocol}
	}
	return []error{ErrProtocol, e.Err}
}
