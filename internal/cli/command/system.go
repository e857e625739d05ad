package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/teeline-go/internal/infra/buildinfo"
)

// StatsCommand prints the client metrics gathered so far. In the shell
// they cover the whole session.
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show request, cache and level-sync counters",
		Action: func(c *cli.Context) error {
			rt, err := runtimeFrom(c)
			if err != nil {
				return err
			}
			p, err := printer(c, rt)
			if err != nil {
				return err
			}

			samples, err := rt.Metrics.Snapshot()
			if err != nil {
				return err
			}
			return p.Print(samples)
		},
	}
}

// CacheInfo is the output of cache info.
type CacheInfo struct {
	Backend string `json:"backend"`
	Entries int    `json:"entries"`
}

// CacheCommand inspects and clears the response cache.
func CacheCommand() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Response cache operations",
		Subcommands: []*cli.Command{
			{
				Name:  "info",
				Usage: "Show the cache backend and entry count",
				Action: func(c *cli.Context) error {
					rt, err := runtimeFrom(c)
					if err != nil {
						return err
					}
					p, err := printer(c, rt)
					if err != nil {
						return err
					}
					return p.Print(CacheInfo{Backend: rt.Settings().Cache.Backend, Entries: rt.Client.CacheLen()})
				},
			},
			{
				Name:      "purge",
				Usage:     "Drop cached responses, or only PATH when given",
				ArgsUsage: "[PATH]",
				Action: func(c *cli.Context) error {
					rt, err := runtimeFrom(c)
					if err != nil {
						return err
					}
					p, err := printer(c, rt)
					if err != nil {
						return err
					}
					if c.NArg() > 0 {
						rt.Client.Invalidate(c.Args().First())
						return p.Message("Dropped %s", c.Args().First())
					}
					rt.Client.Purge()
					return p.Message("Cache cleared")
				},
			},
		},
	}
}

// VersionCommand prints build information.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			rt, err := runtimeFrom(c)
			if err != nil {
				return err
			}
			p, err := printer(c, rt)
			if err != nil {
				return err
			}
			return p.Print(buildinfo.Get())
		},
	}
}
