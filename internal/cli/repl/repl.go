package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Executor runs one parsed command line.
type Executor func(ctx context.Context, args []string) error

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     *bufio.Reader
	output    io.Writer
	prompt    string
	exec      Executor
	completer *Completer
	history   *History
	describe  func(error) string
}

// Option configures a REPL.
type Option func(*REPL)

// WithInput reads lines from r.
func WithInput(r io.Reader) Option {
	return func(rp *REPL) { rp.input = bufio.NewReader(r) }
}

// WithOutput writes prompts and errors to w.
func WithOutput(w io.Writer) Option {
	return func(rp *REPL) { rp.output = w }
}

// WithPrompt sets the prompt.
func WithPrompt(p string) Option {
	return func(rp *REPL) { rp.prompt = p }
}

// WithCompleter sets the completer used by the complete built-in.
func WithCompleter(c *Completer) Option {
	return func(rp *REPL) { rp.completer = c }
}

// WithHistory sets the history.
func WithHistory(h *History) Option {
	return func(rp *REPL) { rp.history = h }
}

// WithErrorFormatter controls how command errors are printed.
func WithErrorFormatter(fn func(error) string) Option {
	return func(rp *REPL) { rp.describe = fn }
}

// New creates a REPL that runs lines through exec.
func New(exec Executor, opts ...Option) *REPL {
	r := &REPL{
		input:     bufio.NewReader(os.Stdin),
		output:    os.Stdout,
		prompt:    "teeline> ",
		exec:      exec,
		completer: NewCompleter(nil),
		history:   NewHistory(DefaultHistorySize),
		describe:  func(err error) string { return err.Error() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reader returns the buffered input. Commands that prompt for more input
// must read from it so that no buffered line is lost.
func (r *REPL) Reader() io.Reader {
	return r.input
}

// History returns the session history.
func (r *REPL) History() *History {
	return r.history
}

// Run reads lines until exit, EOF or ctx is done. Command errors are
// printed and do not stop the loop.
func (r *REPL) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.output, r.prompt)

		line, err := r.input.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.history.Add(line)

		args, err := Split(line)
		if err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
			continue
		}

		if done := r.builtin(args); done {
			if args[0] == "exit" || args[0] == "quit" {
				return nil
			}
			continue
		}

		if err := r.exec(ctx, args); err != nil {
			fmt.Fprintf(r.output, "Error: %s\n", r.describe(err))
		}
	}
}

// builtin handles lines the loop answers itself.
func (r *REPL) builtin(args []string) bool {
	switch args[0] {
	case "exit", "quit":
		return true
	case "history":
		for i, e := range r.history.Entries() {
			fmt.Fprintf(r.output, "%4d  %s\n", i+1, e)
		}
		return true
	case "complete":
		prefix := strings.Join(args[1:], " ")
		for _, s := range r.completer.Complete(prefix) {
			fmt.Fprintln(r.output, s)
		}
		return true
	}
	return false
}
