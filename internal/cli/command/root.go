package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teeline-go/internal/cli/config"
	"github.com/yndnr/teeline-go/internal/cli/output"
	"github.com/yndnr/teeline-go/internal/infra/buildinfo"
)

const (
	metaRuntime = "runtime"
	metaOwned   = "runtime.owned"
)

// App creates the CLI application. Each run builds its own Runtime from
// flags and config, and closes it afterwards.
func App() *cli.App {
	return newApp(nil)
}

// AppWithRuntime creates an application bound to an existing Runtime. The
// shell uses it so every line shares one Store and cache. The Runtime is
// not closed when the run ends.
func AppWithRuntime(rt *Runtime) *cli.App {
	return newApp(rt)
}

func newApp(rt *Runtime) *cli.App {
	app := &cli.App{
		Name:                 "teeline-cli",
		Usage:                "Command-line client for the Teeline learning service",
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		Commands:             commands(),
		EnableBashCompletion: true,
		Metadata:             map[string]any{},
		Before:               before,
		After:                after,
	}
	if rt != nil {
		app.Metadata[metaRuntime] = rt
	} else {
		// No command starts the shell.
		app.Action = shellAction
	}
	return app
}

func commands() []*cli.Command {
	return []*cli.Command{
		LoginCommand(),
		RegisterCommand(),
		LogoutCommand(),
		WhoamiCommand(),
		AvatarCommand(),
		UpdateCommand(),
		PointsCommand(),
		GamesCommand(),
		SectionsCommand(),
		LessonsCommand(),
		LessonCommand(),
		GoalsCommand(),
		LeaderboardCommand(),
		OverviewCommand(),
		ValidateCommand(),
		SanitizeCommand(),
		ShellCommand(),
		StatsCommand(),
		CacheCommand(),
		ConfigCommand(),
		VersionCommand(),
	}
}

// globalFlags returns the global CLI flags. Unset flags fall back to the
// config file and TEELINE_ environment variables.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.teeline/cli.yaml)",
		},
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Service base URL",
		},
		&cli.StringFlag{
			Name:  "user-agent",
			Usage: "User-Agent sent with every request",
		},
		&cli.StringFlag{
			Name:  "ca",
			Usage: "PEM file or directory of extra trusted root certificates",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout, 0 for none",
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Response cache backend: memory, badger",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "Log in as this user before commands that need a session",
			EnvVars: []string{"TEELINE_USERNAME"},
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "Password for --username",
			EnvVars: []string{"TEELINE_PASSWORD"},
		},
	}
}

// flagKeys maps global flags to config keys.
var flagKeys = map[string]string{
	"server":     "server.url",
	"user-agent": "server.agent",
	"ca":         "server.ca",
	"cache":      "cache.backend",
	"output":     "output.format",
	"log-level":  "log.level",
}

// overrides collects explicitly set global flags as config keys.
func overrides(c *cli.Context) map[string]any {
	m := map[string]any{}
	for flag, key := range flagKeys {
		if c.IsSet(flag) {
			m[key] = c.String(flag)
		}
	}
	if c.IsSet("timeout") {
		m["server.timeout"] = c.Duration("timeout").String()
	}
	return m
}

func before(c *cli.Context) error {
	if _, ok := c.App.Metadata[metaRuntime].(*Runtime); ok {
		return nil
	}

	cfg, loader, err := config.Load(c.String("config"), overrides(c))
	if err != nil {
		return err
	}

	var opts []RuntimeOption
	if c.IsSet("log-level") {
		opts = append(opts, WithPinnedLogLevel())
	}
	if c.App.ErrWriter != nil {
		opts = append(opts, WithLogOutput(c.App.ErrWriter))
	}

	rt, err := NewRuntime(cfg, loader, opts...)
	if err != nil {
		return err
	}
	c.App.Metadata[metaRuntime] = rt
	c.App.Metadata[metaOwned] = true
	return nil
}

func after(c *cli.Context) error {
	owned, _ := c.App.Metadata[metaOwned].(bool)
	rt, ok := c.App.Metadata[metaRuntime].(*Runtime)
	if !owned || !ok {
		return nil
	}
	delete(c.App.Metadata, metaRuntime)
	delete(c.App.Metadata, metaOwned)
	return rt.Close()
}

// runtimeFrom returns the Runtime installed by before.
func runtimeFrom(c *cli.Context) (*Runtime, error) {
	rt, ok := c.App.Metadata[metaRuntime].(*Runtime)
	if !ok {
		return nil, fmt.Errorf("client not initialised")
	}
	return rt, nil
}

// printer builds the output printer for c. --output wins over the config.
func printer(c *cli.Context, rt *Runtime) (*output.Printer, error) {
	name := rt.Settings().Output.Format
	if c.IsSet("output") {
		name = c.String("output")
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(writer(c), format, c.Bool("wide")), nil
}

func writer(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

// commandContext returns the run context, bounded by the configured
// timeout plus slack for rate limiting.
func commandContext(c *cli.Context, rt *Runtime) (context.Context, context.CancelFunc) {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if d := rt.Settings().Server.Timeout; d > 0 {
		return context.WithTimeout(ctx, 2*d+time.Second)
	}
	return context.WithCancel(ctx)
}

// setup is the common prologue of commands that talk to the service.
func setup(c *cli.Context) (*Runtime, *output.Printer, context.Context, context.CancelFunc, error) {
	rt, err := runtimeFrom(c)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	p, err := printer(c, rt)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ctx, cancel := commandContext(c, rt)
	return rt, p, ctx, cancel, nil
}
