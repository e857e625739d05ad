// Package cache holds memoized values keyed by string.
//
// Two backends implement Cache:
//
//   - Memory: a sharded map guarded by RWMutexes; Get returns the stored
//     value itself, so pointers keep their identity.
//   - Badger: badger/v3 opened in in-memory mode; values pass through a
//     Codec, so Get returns an equal copy.
//
// Entries never expire. Invalidate and Purge are the only ways to drop
// them.
package cache
