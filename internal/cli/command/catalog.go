package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teeline-go/internal/client/api"
	"github.com/yndnr/teeline-go/internal/core/domain"
)

// listCommand builds a command that prints whatever fetch returns.
func listCommand(name, usage string, fetch func(ctx context.Context, c *cli.Context, rt *Runtime) (any, error)) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(c *cli.Context) error {
			rt, p, ctx, cancel, err := setup(c)
			if err != nil {
				return err
			}
			defer cancel()

			data, err := fetch(ctx, c, rt)
			if err != nil {
				return err
			}
			return p.Print(data)
		},
	}
}

// GamesCommand lists practice games.
func GamesCommand() *cli.Command {
	return listCommand("games", "List practice games", func(ctx context.Context, c *cli.Context, rt *Runtime) (any, error) {
		return rt.Catalog.Games(ctx)
	})
}

// SectionsCommand lists lesson sections.
func SectionsCommand() *cli.Command {
	return listCommand("sections", "List lesson sections", func(ctx context.Context, c *cli.Context, rt *Runtime) (any, error) {
		return rt.Catalog.Sections(ctx)
	})
}

// LeaderboardCommand shows the leaderboard.
func LeaderboardCommand() *cli.Command {
	return listCommand("leaderboard", "Show the leaderboard", func(ctx context.Context, c *cli.Context, rt *Runtime) (any, error) {
		return rt.Catalog.Leaderboard(ctx)
	})
}

// GoalsCommand lists goals.
func GoalsCommand() *cli.Command {
	cmd := listCommand("goals", "List goals", func(ctx context.Context, c *cli.Context, rt *Runtime) (any, error) {
		if c.Bool("recent") {
			return rt.Catalog.RecentGoals(ctx)
		}
		return rt.Catalog.Goals(ctx)
	})
	cmd.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "recent", Usage: "Only recently achieved goals"},
	}
	return cmd
}

// LessonsCommand lists the lessons of a section.
func LessonsCommand() *cli.Command {
	cmd := listCommand("lessons", "List the lessons of a section", func(ctx context.Context, c *cli.Context, rt *Runtime) (any, error) {
		id, err := intArg(c, "SECTION_ID")
		if err != nil {
			return nil, err
		}
		return rt.Catalog.SectionLessons(ctx, id)
	})
	cmd.ArgsUsage = "SECTION_ID"
	return cmd
}

// LessonCommand shows one lesson. When signed in, lessons above the
// account's level are refused.
func LessonCommand() *cli.Command {
	cmd := listCommand("lesson", "Show a lesson", func(ctx context.Context, c *cli.Context, rt *Runtime) (any, error) {
		id, err := intArg(c, "LESSON_ID")
		if err != nil {
			return nil, err
		}

		if c.String("username") != "" {
			if _, err := currentAccount(ctx, c, rt); err != nil {
				return nil, err
			}
		}
		lesson, err := rt.Catalog.Lesson(ctx, id)
		if err != nil {
			return nil, err
		}
		if account, ok := rt.Store.Account(); ok && !lesson.Unlocked(account.Level) {
			return nil, fmt.Errorf("lesson %d unlocks at level %d, you are level %d",
				id, lesson.RequiredLevel, account.Level)
		}
		return lesson, nil
	})
	cmd.ArgsUsage = "LESSON_ID"
	return cmd
}

func intArg(c *cli.Context, name string) (int, error) {
	if c.NArg() != 1 {
		return 0, cli.Exit(fmt.Sprintf("usage: %s %s", c.Command.Name, name), 2)
	}
	n, err := strconv.Atoi(c.Args().First())
	if err != nil || n < 0 {
		return 0, cli.Exit(fmt.Sprintf("invalid %s %q", name, c.Args().First()), 2)
	}
	return n, nil
}

// OverviewRow is one line of the overview command.
type OverviewRow struct {
	Resource string `json:"resource"`
	Count    int    `json:"count"`
	Error    string `json:"error,omitempty"`
}

// OverviewCommand fetches the home screen resources concurrently.
func OverviewCommand() *cli.Command {
	return &cli.Command{
		Name:   "overview",
		Usage:  "Fetch games, sections, recent goals and the leaderboard at once",
		Action: overview,
	}
}

func overview(c *cli.Context) error {
	rt, p, ctx, cancel, err := setup(c)
	if err != nil {
		return err
	}
	defer cancel()

	resources := []struct {
		key    string
		req    api.Request
		cached bool
	}{
		{"games", api.NewFetch(api.GamesPath()), true},
		{"sections", api.NewFetch(api.SectionsPath()), true},
		{"goals", api.NewFetch(api.RecentGoalsPath()), false},
		{"leaderboard", api.NewFetch(api.LeaderboardPath()), false},
	}

	rows := make([]OverviewRow, len(resources))
	for i, r := range resources {
		rows[i].Resource = r.key
		key := r.key
		row := &rows[i]
		rt.Dispatcher.Go(ctx, r.req, r.cached, func(res api.Result) {
			row.Count, row.Error = countItems(res, key)
		})
	}

	if err := rt.Dispatcher.Queue().Await(ctx, len(resources)); err != nil {
		return err
	}
	return p.Print(rows)
}

// countItems runs on the goroutine draining the queue.
func countItems(res api.Result, key string) (int, string) {
	if !res.OK() {
		return 0, Describe(res.Err)
	}
	if res.Response.Status != domain.StatusOK {
		if res.Response.Message != "" {
			return 0, res.Response.Message
		}
		return 0, fmt.Sprintf("unexpected %s", res.Response.Status)
	}

	var items []map[string]any
	if err := res.Response.Decode(key, &items); err != nil {
		return 0, err.Error()
	}
	return len(items), ""
}
