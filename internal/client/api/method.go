package api

import (
	"fmt"
	"net/http"
	"strings"
)

// Method is the closed set of request kinds the service understands.
type Method int

const (
	// Fetch reads a resource.
	Fetch Method = iota
	// Create creates a resource.
	Create
	// Update modifies a resource.
	Update
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Fetch:
		return "FETCH"
	case Create:
		return "CREATE"
	case Update:
		return "UPDATE"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Verb returns the HTTP verb used on the wire.
func (m Method) Verb() string {
	switch m {
	case Create:
		return http.MethodPost
	case Update:
		return http.MethodPut
	default:
		return http.MethodGet
	}
}


// Request is one call against the service.
type Request struct {
	Path   string
	Method Method
}

// NewFetch returns a FETCH request for path.
func NewFetch(path string) Request {
	return Request{Path: path, Method: Fetch}
}

// NewCreate returns a CREATE request for path.
func NewCreate(path string) Request {
	return Request{Path: path, Method: Create}
}

// NewUpdate returns an UPDATE request for path.
func NewUpdate(path string) Request {
	return Request{Path: path, Method: Update}
}

// CacheKey returns the key SendCached files the response under.
func (r Request) CacheKey() string {
	return CacheKey(r.Path)
}

// CacheKey lowercases path.
func CacheKey(path string) string {
	return strings.ToLower(path)
}
