// Package logger provides structured logging for teeline-cli.
//
// It wraps log/slog:
//
//   - logger.go: Logger interface, configuration and level control
//   - context.go: request ID propagation through context.Context
//   - redact.go: masking of passwords, session hashes and digests
//
// Components accept a Logger and fall back to NewNop in tests.
package logger
