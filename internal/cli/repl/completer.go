package repl

import (
	"sort"
	"strings"
)

// builtins are the lines the loop handles itself.
var builtins = []string{"complete", "exit", "history", "quit"}

// Completer suggests command lines for a prefix.
type Completer struct {
	commands []string
}

// NewCompleter creates a completer over commands plus the built-ins.
// Entries may contain spaces for subcommands, e.g. "update email".
func NewCompleter(commands []string) *Completer {
	seen := make(map[string]struct{}, len(commands)+len(builtins))
	all := make([]string, 0, len(commands)+len(builtins))
	for _, c := range append(append([]string{}, commands...), builtins...) {
		if _, ok := seen[c]; ok || c == "" {
			continue
		}
		seen[c] = struct{}{}
		all = append(all, c)
	}
	sort.Strings(all)
	return &Completer{commands: all}
}

// Complete returns the commands starting with prefix, sorted. Runs of
// spaces in prefix count as one.
func (c *Completer) Complete(prefix string) []string {
	prefix = strings.Join(strings.Fields(prefix), " ")

	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
