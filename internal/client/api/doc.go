// Package api is the HTTP client for the Teeline service.
//
// Every endpoint answers with a JSON envelope whose integer "error" field
// carries an application status (see domain.Status) and whose "message"
// field carries user-facing text. Client.Send performs one round-trip and
// reports every outcome explicitly: a *Response on success, a
// *TransportError when the connection fails and a *ProtocolError when the
// service answers with something that is not a valid envelope.
//
// Client.SendCached memoizes FETCH responses by lowercased path for the
// life of the Client. Concurrent misses for one path share a single
// round-trip.
//
// Dispatcher and Queue provide the callback contract: requests run on
// their own goroutines and each callback runs exactly once on whichever
// goroutine drains the Queue.
package api
