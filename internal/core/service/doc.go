// Package service holds the client-side state and the flows built on it.
//
// This package contains:
//
//   - Store: the signed-in Account and Session plus the reload flag
//   - AccountService: login, registration, profile updates and points
//   - CatalogService: games, sections, lessons, goals and the leaderboard
//
// Services depend on small interfaces (Sender, CachingSender, LevelSyncer)
// rather than on api.Client, so tests substitute fakes.
package service
