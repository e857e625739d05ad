package domain

import (
	"github.com/yndnr/teeline-go/internal/core/validation"
)

// Session is the authenticated session issued by the service.
type Session struct {
	// Hash is 64 lowercase hex characters.
	Hash string `json:"session_hash"`
}

// NewSession validates hash and wraps it in a Session.
func NewSession(hash string) (Session, error) {
	if reason := validation.ValidateSession(hash); reason.Failed() {
		return Session{}, ErrSessionMalformed.
			WithDetails(reason.String()).
			WithCause(&validation.Error{Field: validation.FieldSession, Reason: reason})
	}
	return Session{Hash: hash}, nil
}

// String returns a shortened form that is safe to print.
func (s Session) String() string {
	if len(s.Hash) <= 8 {
		return "***"
	}
	return s.Hash[:4] + "..." + s.Hash[len(s.Hash)-4:]
}
