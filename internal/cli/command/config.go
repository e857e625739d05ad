package command

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teeline-go/internal/cli/config"
	"github.com/yndnr/teeline-go/internal/cli/output"
)

// ConfigCommand shows and checks CLI configuration.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "path",
				Usage:  "Show the config file in use",
				Action: configPath,
			},
			{
				Name:      "validate",
				Usage:     "Validate a config file",
				ArgsUsage: "[FILE]",
				Action:    configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	p, err := printer(c, rt)
	if err != nil {
		return err
	}

	if p.Format() != output.FormatTable || rt.Loader == nil {
		return p.Print(rt.Settings())
	}

	all := rt.Loader.All()
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := &output.Table{Headers: []string{"KEY", "VALUE"}}
	for _, k := range keys {
		table.AddRow(k, fmt.Sprint(all[k]))
	}
	return p.Print(table)
}

func configPath(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	p, err := printer(c, rt)
	if err != nil {
		return err
	}

	if rt.Loader == nil || rt.Loader.FilePath() == "" {
		return p.Message("No config file (looked for %s)", config.DefaultConfigPath())
	}
	return p.Message("%s", rt.Loader.FilePath())
}

func configValidate(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	p, err := printer(c, rt)
	if err != nil {
		return err
	}

	path := c.Args().First()
	if path == "" && rt.Loader != nil {
		path = rt.Loader.FilePath()
	}
	if path == "" {
		return p.Message("No config file to validate, defaults are in use")
	}

	if _, _, err := config.Load(path, nil); err != nil {
		return err
	}
	return p.Message("Configuration file is valid: %s", path)
}
