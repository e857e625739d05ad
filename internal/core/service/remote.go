package service

import (
	"context"
	"fmt"

	"github.com/yndnr/teeline-go/internal/client/api"
	"github.com/yndnr/teeline-go/internal/core/domain"
)

// Sender sends one request to the service.
type Sender interface {
	Send(ctx context.Context, req api.Request) (*api.Response, error)
}

// CachingSender can also answer FETCH requests from a cache.
type CachingSender interface {
	Sender
	SendCached(ctx context.Context, req api.Request) (*api.Response, error)
}

// RemoteError is an envelope whose status is not the one the flow
// expected. Message is the service's user-facing text.
type RemoteError struct {
	Status  domain.Status
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected response: %s", e.Status)
}

// expectStatus returns a *RemoteError unless resp carries want.
func expectStatus(resp *api.Response, want domain.Status) error {
	if resp.Status != want {
		return &RemoteError{Status: resp.Status, Message: resp.Message}
	}
	return nil
}
