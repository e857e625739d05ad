// Package repl implements the interactive shell of teeline-cli.
//
//   - repl.go: the read-eval-print loop and built-in lines
//   - split.go: shell-style splitting of a line into arguments
//   - completer.go: prefix completion over the command tree
//   - history.go: in-memory history for the session
//
// The loop knows nothing about commands. It hands each line's arguments to
// an Executor, so one Runtime (and its signed-in Store) serves every line.
package repl
