package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teeline-go/internal/cli/repl"
)

// ShellCommand starts the interactive shell. Every line runs against the
// same Runtime, so a login lasts until logout or exit.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Start an interactive shell",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Serve Prometheus metrics on this address while the shell runs",
			},
		},
		Action: shellAction,
	}
}

func shellAction(c *cli.Context) error {
	if c.NArg() > 0 {
		return cli.Exit(fmt.Sprintf("unknown command %q, see --help", c.Args().First()), 2)
	}
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}

	stopWatch, err := rt.WatchConfig()
	if err != nil {
		rt.Logger.Warn("config watch disabled", "error", err)
	} else {
		defer stopWatch()
	}

	if addr := c.String("metrics-addr"); addr != "" {
		if err := serveMetrics(rt, addr); err != nil {
			return err
		}
	}

	var in io.Reader = os.Stdin
	if c.App.Reader != nil {
		in = c.App.Reader
	}
	out := writer(c)

	var shell *repl.REPL
	exec := func(ctx context.Context, args []string) error {
		if args[0] == "shell" {
			return errors.New("already in the shell")
		}
		app := AppWithRuntime(rt)
		app.Reader = shell.Reader()
		app.Writer = out
		app.ErrWriter = out
		app.ExitErrHandler = func(*cli.Context, error) {}
		return app.RunContext(ctx, append([]string{"teeline-cli"}, args...))
	}

	shell = repl.New(exec,
		repl.WithInput(in),
		repl.WithOutput(out),
		repl.WithCompleter(repl.NewCompleter(commandLines(commands()))),
		repl.WithErrorFormatter(Describe),
	)

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return shell.Run(ctx)
}

// commandLines lists every command path, e.g. "update email".
func commandLines(cmds []*cli.Command) []string {
	var lines []string
	for _, cmd := range cmds {
		lines = append(lines, cmd.Name)
		for _, sub := range commandLines(cmd.Subcommands) {
			lines = append(lines, cmd.Name+" "+sub)
		}
	}
	return lines
}

// serveMetrics exposes the runtime's registry at /metrics on addr until
// the runtime is closed.
func serveMetrics(rt *Runtime, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", rt.Metrics.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			rt.Logger.Warn("metrics server stopped", "error", err)
		}
	}()
	rt.Logger.Info("serving metrics", "addr", ln.Addr().String())

	rt.OnClose(srv.Shutdown)
	return nil
}
