package command

import (
	"errors"
	"fmt"

	"github.com/yndnr/teeline-go/internal/client/api"
	"github.com/yndnr/teeline-go/internal/core/domain"
	"github.com/yndnr/teeline-go/internal/core/service"
	"github.com/yndnr/teeline-go/internal/core/validation"
)

// Describe turns an error from the client stack into the sentence a user
// should see.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var verr *validation.Error
	var remote *service.RemoteError
	var transport *api.TransportError
	var protocol *api.ProtocolError

	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.As(err, &remote):
		return remote.Error()
	case signedOut(err):
		return "You are not logged in. Run 'login' first or pass --username and --password."
	case errors.As(err, &transport):
		return fmt.Sprintf("Could not reach the server: %v", transport.Err)
	case errors.As(err, &protocol):
		if protocol.Kind == api.KindStatus {
			return fmt.Sprintf("The server returned HTTP %d", protocol.StatusCode)
		}
		return "The server sent a response that could not be read"
	default:
		return err.Error()
	}
}

// signedOut reports whether err means the store has no session or account.
func signedOut(err error) bool {
	switch domain.GetErrorCode(err) {
	case domain.ErrNoSession.Code, domain.ErrNoAccount.Code:
		return true
	}
	return false
}
