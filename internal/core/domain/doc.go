// Package domain defines the client-side models for Teeline.
//
// Domain models are plain values without IO dependencies:
//
//   - Account: profile snapshot and the points-to-level rollover
//   - Session: validated session hash
//   - Status: envelope status codes returned by the service
//   - Game, Goal, Section, Lesson, LeaderboardEntry: catalog resources
//   - Errors: domain error codes
//
// Password digests and Gravatar URLs live in credentials.go.
package domain
