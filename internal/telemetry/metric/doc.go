// Package metric holds the Prometheus metrics of the Teeline client.
//
// A Registry owns its own prometheus.Registry, so tests and REPL sessions
// never share counters through the global default registry. The CLI reads
// the current values back through Snapshot for the "stats" command.
package metric
