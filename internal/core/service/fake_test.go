package service

import (
	"context"
	"errors"
	"sync"

	"github.com/yndnr/teeline-go/internal/client/api"
)

var errOffline = errors.New("offline")

// fakeClient answers requests from canned envelopes keyed by
// "METHOD path". Unknown requests fail with errOffline.
type fakeClient struct {
	mu        sync.Mutex
	bodies    map[string]string
	sent      []string
	cached    []string
	cookieGen int
}

func newFakeClient() *fakeClient {
	return &fakeClient{bodies: make(map[string]string)}
}

func (f *fakeClient) on(method api.Method, path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies[method.String()+" "+path] = body
}

func (f *fakeClient) Send(_ context.Context, req api.Request) (*api.Response, error) {
	key := req.Method.String() + " " + req.Path

	f.mu.Lock()
	f.sent = append(f.sent, key)
	body, ok := f.bodies[key]
	f.mu.Unlock()

	if !ok {
		return nil, &api.TransportError{Method: req.Method, Path: req.Path, Err: errOffline}
	}
	return api.ParseResponse([]byte(body))
}

func (f *fakeClient) SendCached(ctx context.Context, req api.Request) (*api.Response, error) {
	f.mu.Lock()
	f.cached = append(f.cached, req.Path)
	f.mu.Unlock()
	return f.Send(ctx, req)
}

func (f *fakeClient) ResetCookies() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cookieGen++
	return nil
}

func (f *fakeClient) sentRequests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}
