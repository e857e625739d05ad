package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

type recorder struct {
	calls [][]string
	err   error
}

func (r *recorder) exec(_ context.Context, args []string) error {
	r.calls = append(r.calls, args)
	return r.err
}

func run(t *testing.T, input string, rec *recorder, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	opts = append([]Option{WithInput(strings.NewReader(input)), WithOutput(&out)}, opts...)
	if err := New(rec.exec, opts...).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestREPL_Exit(t *testing.T) {
	for _, input := range []string{"exit\nwhoami\n", "quit\n", ""} {
		rec := &recorder{}
		run(t, input, rec)
		if len(rec.calls) != 0 {
			t.Errorf("input %q executed %v", input, rec.calls)
		}
	}
}

func TestREPL_Executes(t *testing.T) {
	rec := &recorder{}
	out := run(t, "\n  \nlogin jared 'my secret'\ngames -o json", rec)

	if len(rec.calls) != 2 {
		t.Fatalf("calls = %v", rec.calls)
	}
	if strings.Join(rec.calls[0], "|") != "login|jared|my secret" {
		t.Errorf("first call = %q", rec.calls[0])
	}
	if strings.Join(rec.calls[1], "|") != "games|-o|json" {
		t.Errorf("last line without newline should run, got %q", rec.calls[1])
	}
	if strings.Count(out, "teeline> ") != 5 {
		t.Errorf("prompts in %q", out)
	}
}

func TestREPL_ErrorsDoNotStop(t *testing.T) {
	rec := &recorder{err: errors.New("boom")}
	out := run(t, "whoami\ngames\n", rec, WithErrorFormatter(func(err error) string {
		return "described " + err.Error()
	}))

	if len(rec.calls) != 2 {
		t.Errorf("calls = %v", rec.calls)
	}
	if strings.Count(out, "Error: described boom") != 2 {
		t.Errorf("output = %q", out)
	}
}

func TestREPL_Builtins(t *testing.T) {
	rec := &recorder{}
	out := run(t, "games\nhistory\ncomplete up\nlogin 'oops\n", rec,
		WithPrompt(""),
		WithCompleter(NewCompleter([]string{"update", "update email", "games"})))

	want := "   1  games\n   2  history\nupdate\nupdate email\nError: unterminated quote\n\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if len(rec.calls) != 1 {
		t.Errorf("only games should reach the executor, got %v", rec.calls)
	}
}

func TestREPL_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New((&recorder{}).exec, WithInput(strings.NewReader("games\n")), WithOutput(io.Discard))
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestREPL_ReaderSharesBuffer(t *testing.T) {
	var got string
	var r *REPL
	exec := func(_ context.Context, args []string) error {
		line, _ := r.Reader().(interface{ ReadString(byte) (string, error) }).ReadString('\n')
		got = line
		return nil
	}
	r = New(exec, WithInput(strings.NewReader("login jared\nsecret\nexit\n")), WithOutput(io.Discard))
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != "secret\n" {
		t.Errorf("command read %q from the shared reader", got)
	}
	if r.History().Len() != 2 {
		t.Errorf("history = %v", r.History().Entries())
	}
}
